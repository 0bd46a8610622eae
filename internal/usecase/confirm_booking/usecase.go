package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/velmark/NST-BookingService/internal/domain"
	bookingRepo "github.com/velmark/NST-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/velmark/NST-BookingService/internal/infra/storage/slot"
	"github.com/velmark/NST-BookingService/internal/integrations/notifyservice"
)

// UseCase use case для подтверждения бронирования после оплаты
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	blockedRepo  BlockedRangeRepository
	notifyClient NotifyServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	blockedRepo BlockedRangeRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		blockedRepo:  blockedRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения бронирования.
// Закрытие даты перепроверяется на момент подтверждения: резерв мог быть
// сделан до того, как администратор закрыл дату. Переход каскадный,
// бронирование и все слоты цепочки подтверждаются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("ConfirmBooking: booking=%d", bookingID)

	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	var confirmed *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeConfirmed() {
			uc.logger.Warn("ConfirmBooking: booking id=%d has status %q", bookingID, booking.Status)
			return fmt.Errorf("%w: status is %q", ErrCannotConfirm, booking.Status)
		}

		blockedRanges, err := uc.blockedRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to list blocked ranges: %v", err)
			return fmt.Errorf("%w: failed to list blocked ranges: %v", ErrInternal, err)
		}

		chain := booking.ChainSlotIDs()

		// Сначала проверяем всю цепочку, потом переводим статусы:
		// при отказе ни слоты, ни бронирование не меняются
		slots := make([]*domain.Slot, 0, len(chain))
		for _, slotID := range chain {
			sl, err := uc.slotRepo.GetByID(txCtx, slotID)
			if err != nil {
				if errors.Is(err, slotRepo.ErrSlotNotFound) {
					uc.logger.Error("ConfirmBooking: chain slot id=%d missing for booking id=%d", slotID, bookingID)
					return fmt.Errorf("%w: chain slot %d not found", ErrInternal, slotID)
				}
				uc.logger.Error("ConfirmBooking: failed to get slot id=%d: %v", slotID, err)
				return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
			}

			if sl.IsBlocked() || domain.IsDateBlocked(sl.Date, blockedRanges) {
				uc.logger.Warn("ConfirmBooking: slot id=%d on %s is blocked, booking id=%d left unchanged",
					slotID, sl.Date.Format(domain.DateFormat), bookingID)
				return fmt.Errorf("%w: slot %d on %s", ErrDateBlocked, slotID, sl.Date.Format(domain.DateFormat))
			}

			slots = append(slots, sl)
		}

		for _, sl := range slots {
			if err := uc.slotRepo.UpdateStatus(txCtx, sl.ID, domain.SlotStatusConfirmed); err != nil {
				uc.logger.Error("ConfirmBooking: failed to confirm slot id=%d: %v", sl.ID, err)
				return fmt.Errorf("%w: failed to confirm slot: %v", ErrInternal, err)
			}
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusConfirmed); err != nil {
			uc.logger.Error("ConfirmBooking: failed to update booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		confirmed = booking
		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("ConfirmBooking: booking id=%d number=%s confirmed", bookingID, confirmed.BookingNumber)

	// Уведомление вне транзакции, отказ доставки не откатывает подтверждение
	uc.notifyClient.NotifyAsync(notifyservice.NotifyRequest{
		Event:         notifyservice.EventBookingConfirmed,
		BookingNumber: confirmed.BookingNumber,
		CustomerID:    confirmed.CustomerID,
	})

	return nil
}
