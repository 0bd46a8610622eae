package allocator

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/NST-BookingService/internal/domain"
	slotRepo "github.com/velmark/NST-BookingService/internal/infra/storage/slot"
	"github.com/velmark/NST-BookingService/pkg/dbmetrics"
	"github.com/velmark/NST-BookingService/pkg/ptr"
	"github.com/velmark/NST-BookingService/pkg/types"
)

// stubTx помечает контекст как транзакционный, запросы в тестах не выполняются
type stubTx struct{}

func (stubTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (stubTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (stubTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (stubTx) Commit() error                                                   { return nil }
func (stubTx) Rollback() error                                                 { return nil }

func txContext() context.Context {
	return dbmetrics.WithTx(context.Background(), stubTx{})
}

type fakeSlotRepo struct {
	slots map[int64]*domain.Slot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSlotRepo) UpdateStatus(_ context.Context, id int64, status domain.SlotStatus) error {
	s, ok := f.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	s.Status = status
	return nil
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

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func availableSlot(id int64, d int, start string, resourceID *int64) *domain.Slot {
	return &domain.Slot{
		ID:         id,
		Date:       day(d),
		StartTime:  types.TimeString(start),
		Status:     domain.SlotStatusAvailable,
		ResourceID: resourceID,
	}
}

func newService(slots ...*domain.Slot) (*Service, *fakeSlotRepo) {
	repo := &fakeSlotRepo{slots: map[int64]*domain.Slot{}}
	for _, s := range slots {
		repo.slots[s.ID] = s
	}
	return NewService(repo, &fakeBlockedRepo{}, nopLogger{}), repo
}

func TestAllocateChain_SingleSlot(t *testing.T) {
	svc, repo := newService(availableSlot(1, 10, "10:00", nil))

	chain, err := svc.AllocateChain(txContext(), 1, domain.ServiceManicure, nil)
	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, int64(1), chain[0].ID)
	assert.Equal(t, domain.SlotStatusPending, repo.slots[1].Status)
}

func TestAllocateChain_TwoSlotChain(t *testing.T) {
	svc, repo := newService(
		availableSlot(1, 10, "10:00", ptr.Ptr(int64(7))),
		availableSlot(2, 10, "11:30", ptr.Ptr(int64(7))),
	)

	chain, err := svc.AllocateChain(txContext(), 1, domain.ServiceManiPedi, []int64{2})
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, int64(1), chain[0].ID)
	assert.Equal(t, int64(2), chain[1].ID)
	assert.Equal(t, domain.SlotStatusPending, repo.slots[1].Status)
	assert.Equal(t, domain.SlotStatusPending, repo.slots[2].Status)
}

func TestAllocateChain_ThreeSlotChain(t *testing.T) {
	svc, _ := newService(
		availableSlot(1, 10, "13:00", nil),
		availableSlot(2, 10, "14:30", nil),
		availableSlot(3, 10, "16:00", nil),
	)

	chain, err := svc.AllocateChain(txContext(), 1, domain.ServiceFullSet, []int64{2, 3})
	require.NoError(t, err)
	assert.Len(t, chain, 3)
}

func TestAllocateChain_RequiresTransaction(t *testing.T) {
	svc, _ := newService(availableSlot(1, 10, "10:00", nil))

	_, err := svc.AllocateChain(context.Background(), 1, domain.ServiceManicure, nil)
	assert.ErrorIs(t, err, ErrNotInTransaction)
}

func TestAllocateChain_InvalidServiceType(t *testing.T) {
	svc, _ := newService(availableSlot(1, 10, "10:00", nil))

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceType("massage"), nil)
	assert.ErrorIs(t, err, ErrInvalidServiceType)
}

func TestAllocateChain_UnexpectedLinkedSlots(t *testing.T) {
	svc, _ := newService(
		availableSlot(1, 10, "10:00", nil),
		availableSlot(2, 10, "11:30", nil),
	)

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManicure, []int64{2})
	assert.ErrorIs(t, err, ErrUnexpectedLinkedSlots)
}

func TestAllocateChain_MissingLinkedSlots(t *testing.T) {
	svc, _ := newService(availableSlot(1, 10, "10:00", nil))

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManiPedi, nil)
	assert.ErrorIs(t, err, ErrMissingLinkedSlots)

	_, err = svc.AllocateChain(txContext(), 1, domain.ServiceFullSet, []int64{2})
	assert.ErrorIs(t, err, ErrMissingLinkedSlots)
}

func TestAllocateChain_SlotNotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.AllocateChain(txContext(), 99, domain.ServiceManicure, nil)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestAllocateChain_SlotUnavailable(t *testing.T) {
	held := availableSlot(1, 10, "10:00", nil)
	held.Status = domain.SlotStatusPending
	svc, _ := newService(held)

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManicure, nil)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestAllocateChain_BlockedDate(t *testing.T) {
	repo := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		1: availableSlot(1, 10, "10:00", nil),
	}}
	blocked := &fakeBlockedRepo{ranges: []*domain.BlockedRange{
		{StartDate: day(10), EndDate: day(10), Active: true},
	}}
	svc := NewService(repo, blocked, nopLogger{})

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManicure, nil)
	assert.ErrorIs(t, err, ErrBlockedSlot)
	assert.Equal(t, domain.SlotStatusAvailable, repo.slots[1].Status, "blocked slot must not be held")
}

func TestAllocateChain_NonConsecutiveSlots(t *testing.T) {
	svc, _ := newService(
		availableSlot(1, 10, "10:00", nil),
		availableSlot(2, 10, "13:00", nil), // пропущен 11:30
	)

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManiPedi, []int64{2})
	assert.ErrorIs(t, err, ErrNonConsecutiveSlots)
}

func TestAllocateChain_NoSlotAfterLastGridTime(t *testing.T) {
	svc, _ := newService(
		availableSlot(1, 10, "19:00", nil),
		availableSlot(2, 10, "10:00", nil),
	)

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManiPedi, []int64{2})
	assert.ErrorIs(t, err, ErrNonConsecutiveSlots)
}

func TestAllocateChain_CrossDateSlots(t *testing.T) {
	svc, _ := newService(
		availableSlot(1, 10, "10:00", nil),
		availableSlot(2, 11, "11:30", nil),
	)

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManiPedi, []int64{2})
	assert.ErrorIs(t, err, ErrCrossDateSlots)
}

func TestAllocateChain_CrossResourceSlots(t *testing.T) {
	svc, _ := newService(
		availableSlot(1, 10, "10:00", ptr.Ptr(int64(7))),
		availableSlot(2, 10, "11:30", ptr.Ptr(int64(8))),
	)

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManiPedi, []int64{2})
	assert.ErrorIs(t, err, ErrCrossResourceSlots)
}

func TestAllocateChain_NilResourceMismatch(t *testing.T) {
	svc, _ := newService(
		availableSlot(1, 10, "10:00", nil),
		availableSlot(2, 10, "11:30", ptr.Ptr(int64(7))),
	)

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManiPedi, []int64{2})
	assert.ErrorIs(t, err, ErrCrossResourceSlots)
}

func TestAllocateChain_NoPartialHoldOnFailure(t *testing.T) {
	held := availableSlot(2, 10, "11:30", nil)
	held.Status = domain.SlotStatusConfirmed
	svc, repo := newService(availableSlot(1, 10, "10:00", nil), held)

	_, err := svc.AllocateChain(txContext(), 1, domain.ServiceManiPedi, []int64{2})
	require.ErrorIs(t, err, ErrSlotUnavailable)

	// Вся цепочка валидируется до первого UpdateStatus
	assert.Equal(t, domain.SlotStatusAvailable, repo.slots[1].Status)
}
