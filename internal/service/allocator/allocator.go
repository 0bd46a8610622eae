package allocator

import (
	"context"
	"errors"
	"fmt"

	"github.com/velmark/NST-BookingService/internal/domain"
	slotRepo "github.com/velmark/NST-BookingService/internal/infra/storage/slot"
	"github.com/velmark/NST-BookingService/pkg/dbmetrics"
)

// Service аллокатор цепочек слотов
// Проверяет и резервирует цепочку последовательных слотов под бронирование.
// Все методы чтения-записи вызываются строго внутри сериализуемой транзакции:
// из двух конкурирующих аллокаций пересекающихся слотов успешно коммитится
// ровно одна, вторая видит статус pending или откатывается на конфликте
type Service struct {
	slotRepo    SlotRepository
	blockedRepo BlockedRangeRepository
	logger      Logger
}

// NewService создает новый экземпляр аллокатора
func NewService(slotRepo SlotRepository, blockedRepo BlockedRangeRepository, logger Logger) *Service {
	return &Service{
		slotRepo:    slotRepo,
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// AllocateChain резервирует цепочку слотов под услугу serviceType,
// переводя каждый слот цепочки в pending.
// Возвращает упорядоченную цепочку: основной слот, затем связанные.
//
// Для однослотовых услуг linkedSlotIDs должен быть пуст.
// Для многослотовых услуг вызывающий передает ровно RequiredSlots()-1
// дополнительных слотов; каждый проверяется на доступность, совпадение даты
// и мастера с предыдущим слотом цепочки и строгую последовательность
// по канонической сетке времен
func (s *Service) AllocateChain(
	ctx context.Context,
	startSlotID int64,
	serviceType domain.ServiceType,
	linkedSlotIDs []int64,
) ([]*domain.Slot, error) {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil, ErrNotInTransaction
	}

	if !serviceType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServiceType, serviceType)
	}

	requiredCount := serviceType.RequiredSlots()

	// Проверка длины цепочки до обращения к БД
	if requiredCount == 1 && len(linkedSlotIDs) > 0 {
		return nil, ErrUnexpectedLinkedSlots
	}
	if requiredCount > 1 && len(linkedSlotIDs) != requiredCount-1 {
		return nil, fmt.Errorf("%w: service %q needs %d linked slots, got %d",
			ErrMissingLinkedSlots, serviceType, requiredCount-1, len(linkedSlotIDs))
	}

	blockedRanges, err := s.blockedRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocator: failed to list blocked ranges: %w", err)
	}

	// Основной слот
	start, err := s.loadAvailableSlot(ctx, startSlotID, blockedRanges)
	if err != nil {
		return nil, err
	}

	chain := []*domain.Slot{start}

	// Обходим связанные слоты в переданном порядке, сверяя каждый с предыдущим
	prev := start
	for _, linkedID := range linkedSlotIDs {
		linked, err := s.loadAvailableSlot(ctx, linkedID, blockedRanges)
		if err != nil {
			return nil, err
		}

		if err := validateConsecutive(prev, linked); err != nil {
			return nil, err
		}

		chain = append(chain, linked)
		prev = linked
	}

	// Вся цепочка проверена - переводим слоты в pending
	// Откат транзакции снимает все переходы разом, частичного резерва не бывает
	for _, sl := range chain {
		if err := s.slotRepo.UpdateStatus(ctx, sl.ID, domain.SlotStatusPending); err != nil {
			return nil, fmt.Errorf("allocator: failed to hold slot %d: %w", sl.ID, err)
		}
		sl.Status = domain.SlotStatusPending
	}

	s.logger.Info("AllocateChain: reserved %d slot(s) starting at slot %d for service %s",
		len(chain), startSlotID, serviceType)

	return chain, nil
}

// loadAvailableSlot читает слот с блокировкой и проверяет, что он доступен
// и его дата не закрыта
func (s *Service) loadAvailableSlot(
	ctx context.Context,
	id int64,
	blockedRanges []*domain.BlockedRange,
) (*domain.Slot, error) {
	sl, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, fmt.Errorf("%w: slot %d", ErrSlotNotFound, id)
		}
		return nil, fmt.Errorf("allocator: failed to get slot %d: %w", id, err)
	}

	if !sl.IsAvailable() {
		return nil, fmt.Errorf("%w: slot %d has status %q", ErrSlotUnavailable, id, sl.Status)
	}

	if domain.IsDateBlocked(sl.Date, blockedRanges) {
		return nil, fmt.Errorf("%w: slot %d on %s", ErrBlockedSlot, id, sl.Date.Format(domain.DateFormat))
	}

	return sl, nil
}

// validateConsecutive проверяет, что linked идет сразу после prev:
// та же дата, тот же мастер, следующее время канонической сетки
func validateConsecutive(prev, linked *domain.Slot) error {
	if !prev.SameDate(linked) {
		return fmt.Errorf("%w: slot %d is on %s, slot %d is on %s",
			ErrCrossDateSlots,
			prev.ID, prev.Date.Format(domain.DateFormat),
			linked.ID, linked.Date.Format(domain.DateFormat))
	}

	if !prev.SameResource(linked) {
		return fmt.Errorf("%w: slots %d and %d", ErrCrossResourceSlots, prev.ID, linked.ID)
	}

	next, ok := domain.NextStartTime(prev.StartTime)
	if !ok {
		// После последнего времени сетки следующего слота не существует
		return fmt.Errorf("%w: no slot follows %s", ErrNonConsecutiveSlots, prev.StartTime)
	}
	if linked.StartTime != next {
		return fmt.Errorf("%w: expected %s after %s, got %s",
			ErrNonConsecutiveSlots, next, prev.StartTime, linked.StartTime)
	}

	return nil
}
