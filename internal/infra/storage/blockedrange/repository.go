package blockedrange

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/pkg/dbmetrics"
	"github.com/velmark/NST-BookingService/pkg/psqlbuilder"
)

var rangeColumns = []string{
	"id",
	"start_date",
	"end_date",
	"reason",
	"scope",
	"active",
	"created_at",
}

// Repository репозиторий для работы с закрытыми диапазонами дат
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытых диапазонов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый закрытый диапазон
func (r *Repository) Create(ctx context.Context, br *domain.BlockedRange) (*domain.BlockedRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_ranges").
		Columns(
			"start_date",
			"end_date",
			"reason",
			"scope",
			"active",
		).
		Values(
			br.StartDate,
			br.EndDate,
			br.Reason,
			br.Scope,
			br.Active,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&br.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	br.CreatedAt = createdAt.Time

	return br, nil
}

// ListActive получает все активные закрытые диапазоны
// Читается внутри транзакций аллокации и подтверждения, чтобы решение
// о блокировке принималось по актуальному набору диапазонов
func (r *Repository) ListActive(ctx context.Context) ([]*domain.BlockedRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rangeColumns...).
		From("blocked_ranges").
		Where(squirrel.Eq{"active": true}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows)
}

// List получает все закрытые диапазоны, включая деактивированные
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rangeColumns...).
		From("blocked_ranges").
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows)
}

// Deactivate деактивирует закрытый диапазон
// Физическое удаление не используется, диапазоны остаются для истории
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("blocked_ranges").
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRangeNotFound
	}

	return nil
}

func (r *Repository) scanRanges(rows *sql.Rows) ([]*domain.BlockedRange, error) {
	ranges := make([]*domain.BlockedRange, 0)

	for rows.Next() {
		var br domain.BlockedRange
		var createdAt sql.NullTime

		err := rows.Scan(
			&br.ID,
			&br.StartDate,
			&br.EndDate,
			&br.Reason,
			&br.Scope,
			&br.Active,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRanges - scan row: %v", ErrScanRow, err)
		}

		br.CreatedAt = createdAt.Time
		ranges = append(ranges, &br)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}
