package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/internal/service/allocator"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	allocator   SlotAllocator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotAllocator SlotAllocator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		allocator:   slotAllocator,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Номер, резерв цепочки и вставка бронирования выполняются в одной
// сериализуемой транзакции: либо клиент получает номер и удержанную цепочку,
// либо все слоты остаются available
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%d, service=%s, linked=%v",
		req.StartSlotID, req.ServiceType, req.LinkedSlotIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var chain []*domain.Slot

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Выделяем следующий номер из счетчика.
		// UPDATE ... RETURNING на строке счетчика заодно упорядочивает
		// конкурентные создания между собой
		number, err := uc.bookingRepo.NextNumber(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get next booking number: %v", err)
			return fmt.Errorf("%w: failed to get next booking number: %v", ErrInternal, err)
		}

		// 2.2. Проверяем и резервируем цепочку слотов
		allocated, err := uc.allocator.AllocateChain(txCtx, req.StartSlotID, req.ServiceType, req.LinkedSlotIDs)
		if err != nil {
			return mapAllocatorError(err)
		}

		chain = allocated
		start := chain[0]

		linkedIDs := make([]int64, 0, len(chain)-1)
		for _, sl := range chain[1:] {
			linkedIDs = append(linkedIDs, sl.ID)
		}

		// 2.3. Создаем черновик бронирования
		booking := &domain.Booking{
			BookingNumber:  domain.FormatBookingNumber(number),
			ReferenceToken: uuid.NewString(),
			SlotID:         start.ID,
			LinkedSlotIDs:  linkedIDs,
			ServiceType:    req.ServiceType,
			ResourceID:     start.ResourceID,
			Status:         domain.StatusPendingForm,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d number=%s with %d slot(s)",
		result.ID, result.BookingNumber, len(chain))

	start := chain[0]

	return &Response{
		ID:             result.ID,
		BookingNumber:  result.BookingNumber,
		ReferenceToken: result.ReferenceToken,
		SlotID:         result.SlotID,
		LinkedSlotIDs:  result.LinkedSlotIDs,
		ServiceType:    string(result.ServiceType),
		ResourceID:     result.ResourceID,
		Status:         string(result.Status),
		Date:           start.Date,
		StartTime:      start.StartTime,
		CreatedAt:      result.CreatedAt,
	}, nil
}

// mapAllocatorError переводит ошибки аллокатора в ошибки usecase
func mapAllocatorError(err error) error {
	switch {
	case errors.Is(err, allocator.ErrSlotNotFound):
		return fmt.Errorf("%w: %v", ErrSlotNotFound, err)
	case errors.Is(err, allocator.ErrSlotUnavailable):
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	case errors.Is(err, allocator.ErrBlockedSlot):
		return fmt.Errorf("%w: %v", ErrDateBlocked, err)
	case errors.Is(err, allocator.ErrInvalidServiceType):
		return fmt.Errorf("%w: %v", ErrInvalidServiceType, err)
	case errors.Is(err, allocator.ErrNonConsecutiveSlots),
		errors.Is(err, allocator.ErrCrossDateSlots),
		errors.Is(err, allocator.ErrCrossResourceSlots),
		errors.Is(err, allocator.ErrUnexpectedLinkedSlots),
		errors.Is(err, allocator.ErrMissingLinkedSlots):
		return fmt.Errorf("%w: %v", ErrInvalidChain, err)
	default:
		return fmt.Errorf("%w: failed to allocate slot chain: %v", ErrInternal, err)
	}
}
