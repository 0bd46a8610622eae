package get_day_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/pkg/types"
)

type fakeSlotRepo struct {
	slots      []*domain.Slot
	lastFilter domain.SlotsFilter
}

func (f *fakeSlotRepo) List(_ context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error) {
	f.lastFilter = filter
	return f.slots, nil
}

type fakeBlockedRepo struct {
	ranges []*domain.BlockedRange
}

func (f *fakeBlockedRepo) ListActive(context.Context) ([]*domain.BlockedRange, error) {
	return f.ranges, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(day int) time.Time {
	return time.Date(2026, time.May, day, 0, 0, 0, 0, time.UTC)
}

func slot(id int64, start string, status domain.SlotStatus) *domain.Slot {
	return &domain.Slot{
		ID:        id,
		Date:      date(20),
		StartTime: types.TimeString(start),
		Status:    status,
	}
}

func TestExecute_ReturnsSortedSlots(t *testing.T) {
	repo := &fakeSlotRepo{slots: []*domain.Slot{
		slot(3, "16:00", domain.SlotStatusAvailable),
		slot(1, "10:00", domain.SlotStatusConfirmed),
		slot(2, "13:00", domain.SlotStatusAvailable),
	}}
	uc := NewUseCase(repo, &fakeBlockedRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(20)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{resp.Slots[0].ID, resp.Slots[1].ID, resp.Slots[2].ID})
	assert.False(t, resp.DateBlocked)

	// Доступен для записи только свободный слот
	assert.False(t, resp.Slots[0].Bookable)
	assert.True(t, resp.Slots[1].Bookable)
	assert.True(t, resp.Slots[2].Bookable)
}

func TestExecute_BlockedDateMarksAllUnbookable(t *testing.T) {
	repo := &fakeSlotRepo{slots: []*domain.Slot{
		slot(1, "10:00", domain.SlotStatusAvailable),
		slot(2, "11:30", domain.SlotStatusAvailable),
	}}
	blocked := &fakeBlockedRepo{ranges: []*domain.BlockedRange{
		{ID: 1, StartDate: date(20), EndDate: date(20), Active: true},
	}}
	uc := NewUseCase(repo, blocked, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(20)})
	require.NoError(t, err)

	assert.True(t, resp.DateBlocked)
	require.Len(t, resp.Slots, 2, "slots of a blocked date stay visible")
	for _, s := range resp.Slots {
		assert.False(t, s.Bookable)
	}
}

func TestExecute_PassesResourceFilter(t *testing.T) {
	repo := &fakeSlotRepo{}
	uc := NewUseCase(repo, &fakeBlockedRepo{}, nopLogger{})

	resourceID := int64(7)
	_, err := uc.Execute(context.Background(), &Request{Date: date(20), ResourceID: &resourceID})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.ResourceID)
	assert.Equal(t, int64(7), *repo.lastFilter.ResourceID)
	require.NotNil(t, repo.lastFilter.Date)
	assert.True(t, repo.lastFilter.Date.Equal(date(20)))
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeBlockedRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badResource := int64(0)
	_, err = uc.Execute(context.Background(), &Request{Date: date(20), ResourceID: &badResource})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeBlockedRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(21)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
