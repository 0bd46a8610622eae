package get_day_slots

import (
	"context"
	"fmt"
	"sort"

	"github.com/velmark/NST-BookingService/internal/domain"
)

// UseCase use case для получения сетки слотов на день
type UseCase struct {
	slotRepo    SlotRepository
	blockedRepo BlockedRangeRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, blockedRepo BlockedRangeRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// Execute возвращает слоты на дату с признаком доступности для записи.
// Слоты закрытой даты остаются в выдаче, но помечаются как недоступные
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.ResourceID != nil && *req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceId must be positive", ErrInvalidInput)
	}

	blockedRanges, err := uc.blockedRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to list blocked ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked ranges: %v", ErrInternal, err)
	}

	dateBlocked := domain.IsDateBlocked(req.Date, blockedRanges)

	slots, err := uc.slotRepo.List(ctx, domain.SlotsFilter{
		Date:       &req.Date,
		ResourceID: req.ResourceID,
	})
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	infos := make([]SlotInfo, 0, len(slots))
	for _, s := range slots {
		infos = append(infos, fromDomainSlot(s, dateBlocked))
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].StartTime.IsBefore(infos[j].StartTime)
	})

	return &Response{
		Date:        req.Date,
		DateBlocked: dateBlocked,
		Slots:       infos,
	}, nil
}
