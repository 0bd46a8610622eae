package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/velmark/NST-BookingService/internal/domain"
	bookingRepo "github.com/velmark/NST-BookingService/internal/infra/storage/booking"
	"github.com/velmark/NST-BookingService/internal/integrations/notifyservice"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	notifyClient NotifyServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования.
// Слоты цепочки при отмене НЕ освобождаются: возврат слотов в продажу
// делается отдельной административной операцией после решения по возврату
// средств (см. calendar.ReleaseBookingSlots)
func (uc *UseCase) Execute(ctx context.Context, bookingID int64, reason string) error {
	uc.logger.Info("CancelBooking: booking=%d", bookingID)

	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var cancelled *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", bookingID)
			return ErrAlreadyCancelled
		}

		if err := uc.bookingRepo.Cancel(txCtx, bookingID, reason); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		cancelled = booking
		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelBooking: booking id=%d number=%s cancelled", bookingID, cancelled.BookingNumber)

	uc.notifyClient.NotifyAsync(notifyservice.NotifyRequest{
		Event:         notifyservice.EventBookingCancelled,
		BookingNumber: cancelled.BookingNumber,
		CustomerID:    cancelled.CustomerID,
		Reason:        reason,
	})

	return nil
}
