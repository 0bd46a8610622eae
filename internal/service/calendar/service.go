package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
	bookingRepo "github.com/velmark/NST-BookingService/internal/infra/storage/booking"
	blockedRepo "github.com/velmark/NST-BookingService/internal/infra/storage/blockedrange"
	slotRepo "github.com/velmark/NST-BookingService/internal/infra/storage/slot"
	"github.com/velmark/NST-BookingService/pkg/types"
)

// Service админ-сервис календаря: ручное создание слотов,
// закрытые диапазоны дат и явное освобождение слотов отмененных бронирований
type Service struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	blockedRepo BlockedRangeRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	blockedRepo BlockedRangeRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		blockedRepo: blockedRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateSlot создает слот вручную
// Время начала обязано принадлежать канонической сетке, дата не должна быть
// закрыта; дубликат (дата, время, мастер) отклоняется уникальным индексом
func (s *Service) CreateSlot(ctx context.Context, date time.Time, startTime types.TimeString, resourceID *int64, note *string) (*domain.Slot, error) {
	s.logger.Info("CreateSlot: date=%s, time=%s", date.Format(domain.DateFormat), startTime)

	if !domain.IsValidStartTime(startTime) {
		s.logger.Warn("CreateSlot: start time %s is not in the grid", startTime)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStartTime, startTime)
	}

	var created *domain.Slot

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		ranges, err := s.blockedRepo.ListActive(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list blocked ranges: %v", ErrInternal, err)
		}

		if domain.IsDateBlocked(date, ranges) {
			return fmt.Errorf("%w: %s", ErrDateBlocked, date.Format(domain.DateFormat))
		}

		slot := &domain.Slot{
			Date:       date,
			StartTime:  startTime,
			Status:     domain.SlotStatusAvailable,
			ResourceID: resourceID,
			Note:       note,
		}

		created, err = s.slotRepo.Create(txCtx, slot)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotAlreadyExists) {
				return ErrSlotAlreadyExists
			}
			return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("CreateSlot: created slot id=%d", created.ID)
	return created, nil
}

// ListSlots получает слоты по фильтру
func (s *Service) ListSlots(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error) {
	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}
	return slots, nil
}

// DeleteSlot удаляет слот
// Слот, на который ссылается неотмененное бронирование, удалить нельзя
func (s *Service) DeleteSlot(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSlot: deleting slot id=%d", id)

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.slotRepo.GetByID(txCtx, id); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		referenced, err := s.bookingRepo.ExistsActiveBySlotID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: failed to check references: %v", ErrInternal, err)
		}
		if referenced {
			s.logger.Warn("DeleteSlot: slot id=%d is referenced by an active booking", id)
			return ErrSlotReferenced
		}

		if err := s.slotRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("%w: failed to delete slot: %v", ErrInternal, err)
		}

		return nil
	})
}

// ReleaseBookingSlots явный админ-шаг: возвращает слоты отмененного
// бронирования в available. Единственный путь confirmed -> available.
// Отмена бронирования сама по себе слоты не трогает - оплаченная, но
// отмененная запись может требовать сохранения слотов для аудита
func (s *Service) ReleaseBookingSlots(ctx context.Context, bookingID int64) error {
	s.logger.Info("ReleaseBookingSlots: releasing slots of booking id=%d", bookingID)

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.Status != domain.StatusCancelled {
			s.logger.Warn("ReleaseBookingSlots: booking id=%d has status %s", bookingID, booking.Status)
			return ErrBookingNotCancelled
		}

		for _, slotID := range booking.ChainSlotIDs() {
			if err := s.slotRepo.UpdateStatus(txCtx, slotID, domain.SlotStatusAvailable); err != nil {
				if errors.Is(err, slotRepo.ErrSlotNotFound) {
					// Слот мог быть удален вручную - пропускаем
					s.logger.Warn("ReleaseBookingSlots: slot id=%d not found, skipping", slotID)
					continue
				}
				return fmt.Errorf("%w: failed to release slot %d: %v", ErrInternal, slotID, err)
			}
		}

		s.logger.Info("ReleaseBookingSlots: released %d slot(s) of booking id=%d",
			len(booking.ChainSlotIDs()), bookingID)
		return nil
	})
}

// CreateBlockedRange создает закрытый диапазон дат
// Scope описывает способ создания (день/диапазон/месяц) и на проверку не влияет
func (s *Service) CreateBlockedRange(ctx context.Context, startDate, endDate time.Time, reason *string, scope domain.BlockedRangeScope) (*domain.BlockedRange, error) {
	s.logger.Info("CreateBlockedRange: %s to %s, scope=%s",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), scope)

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidRange)
	}

	br := &domain.BlockedRange{
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		Scope:     scope,
		Active:    true,
	}

	created, err := s.blockedRepo.Create(ctx, br)
	if err != nil {
		s.logger.Error("CreateBlockedRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to create blocked range: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedRange: created range id=%d", created.ID)
	return created, nil
}

// ListBlockedRanges получает все закрытые диапазоны
func (s *Service) ListBlockedRanges(ctx context.Context) ([]*domain.BlockedRange, error) {
	ranges, err := s.blockedRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlockedRanges: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedRanges - repository error: %v", ErrInternal, err)
	}
	return ranges, nil
}

// DeactivateBlockedRange деактивирует закрытый диапазон
func (s *Service) DeactivateBlockedRange(ctx context.Context, id int64) error {
	s.logger.Info("DeactivateBlockedRange: deactivating range id=%d", id)

	if err := s.blockedRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrRangeNotFound) {
			return ErrRangeNotFound
		}
		s.logger.Error("DeactivateBlockedRange: repository error: %v", err)
		return fmt.Errorf("%w: failed to deactivate range: %v", ErrInternal, err)
	}

	return nil
}
