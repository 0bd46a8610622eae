package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/pkg/dbmetrics"
	"github.com/velmark/NST-BookingService/pkg/psqlbuilder"
)

// NextNumber атомарно выдает следующий порядковый номер бронирования
// из строки-счетчика booking_sequence. Вызывается внутри транзакции создания
// бронирования: при откате транзакции инкремент тоже откатывается,
// поэтому нумерация остается без дыр и без коллизий
func (r *Repository) NextNumber(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `UPDATE booking_sequence SET last_number = last_number + 1 WHERE id = 1 RETURNING last_number`

	var n int64
	err := executor.QueryRowContext(ctx, query).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSequenceNotInitialized
	}
	if err != nil {
		return 0, fmt.Errorf("%w: NextNumber - execute update: %v", ErrExecQuery, err)
	}

	return n, nil
}

// MaxAssignedNumber сканирует существующие номера бронирований и возвращает
// максимальный числовой суффикс среди корректных номеров формата NB + 5 цифр.
// Legacy-номера, не попадающие под шаблон, игнорируются.
// Используется для сверки и восстановления счетчика, не для выдачи номеров
func (r *Repository) MaxAssignedNumber(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_number").
		From("bookings").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MaxAssignedNumber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MaxAssignedNumber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var max int64
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return 0, fmt.Errorf("%w: MaxAssignedNumber - scan row: %v", ErrScanRow, err)
		}
		if n, ok := domain.ParseBookingNumber(number); ok && n > max {
			max = n
		}
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: MaxAssignedNumber - rows error: %v", ErrScanRow, err)
	}

	return max, nil
}

// SyncSequence подтягивает счетчик к фактическим данным: last_number
// становится не меньше максимального выданного номера. Вызывается на старте
// сервиса на случай ручных правок данных или восстановления из бэкапа
func (r *Repository) SyncSequence(ctx context.Context) error {
	max, err := r.MaxAssignedNumber(ctx)
	if err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `UPDATE booking_sequence SET last_number = GREATEST(last_number, $1) WHERE id = 1`

	result, err := executor.ExecContext(ctx, query, max)
	if err != nil {
		return fmt.Errorf("%w: SyncSequence - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SyncSequence - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSequenceNotInitialized
	}

	return nil
}
