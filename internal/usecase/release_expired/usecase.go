package release_expired

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
	bookingRepo "github.com/velmark/NST-BookingService/internal/infra/storage/booking"
)

// UseCase use case для освобождения просроченных черновиков бронирований.
// Запускается периодически фоновым sweeper'ом и вручную через internal API
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	maxAge       time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	maxAge time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		maxAge:       maxAge,
		logger:       logger,
	}
}

// Execute находит черновики pending_form старше maxAge, удаляет их и
// возвращает слоты цепочек в продажу. Возвращает число освобожденных
// бронирований.
//
// Каждое бронирование обрабатывается в отдельной транзакции: отказ на одном
// не мешает освобождению остальных. Внутри транзакции черновик перечитывается,
// бронирование, успевшее подтвердиться между выборкой и обработкой,
// пропускается. Слоты переводятся условно pending -> available, слот, уже
// измененный администратором, не трогаем
func (uc *UseCase) Execute(ctx context.Context) (int, error) {
	now := uc.timeProvider.Now()
	cutoff := now.Add(-uc.maxAge)

	drafts, err := uc.bookingRepo.ListExpiredDrafts(ctx, cutoff)
	if err != nil {
		uc.logger.Error("ReleaseExpired: failed to list expired drafts: %v", err)
		return 0, fmt.Errorf("%w: failed to list expired drafts: %v", ErrInternal, err)
	}

	if len(drafts) == 0 {
		return 0, nil
	}

	uc.logger.Info("ReleaseExpired: found %d expired draft(s) older than %s", len(drafts), cutoff.Format(time.RFC3339))

	released := 0
	for _, draft := range drafts {
		if err := uc.releaseOne(ctx, draft.ID, now); err != nil {
			// Логируем и продолжаем, остальные черновики не страдают
			uc.logger.Error("ReleaseExpired: failed to release booking id=%d: %v", draft.ID, err)
			continue
		}
		released++
	}

	uc.logger.Info("ReleaseExpired: released %d of %d draft(s)", released, len(drafts))
	return released, nil
}

// releaseOne освобождает один черновик в собственной транзакции
func (uc *UseCase) releaseOne(ctx context.Context, bookingID int64, now time.Time) error {
	return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				// Уже освобожден параллельным запуском
				return nil
			}
			return fmt.Errorf("failed to reload booking: %w", err)
		}

		// Между выборкой и этой транзакцией форму могли прикрепить
		// или бронирование подтвердить
		if !booking.IsExpired(now, uc.maxAge) {
			uc.logger.Info("ReleaseExpired: booking id=%d no longer expired (status=%s), skipping",
				bookingID, booking.Status)
			return nil
		}

		if err := uc.bookingRepo.Delete(txCtx, bookingID); err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		for _, slotID := range booking.ChainSlotIDs() {
			updated, err := uc.slotRepo.UpdateStatusIf(txCtx, slotID, domain.SlotStatusPending, domain.SlotStatusAvailable)
			if err != nil {
				return fmt.Errorf("failed to release slot %d: %w", slotID, err)
			}
			if !updated {
				uc.logger.Warn("ReleaseExpired: slot id=%d of booking id=%d is not pending, left unchanged",
					slotID, bookingID)
			}
		}

		uc.logger.Info("ReleaseExpired: released booking id=%d number=%s", bookingID, booking.BookingNumber)
		return nil
	})
}
