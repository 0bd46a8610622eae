package create_booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/internal/service/allocator"
	"github.com/velmark/NST-BookingService/pkg/dbmetrics"
	"github.com/velmark/NST-BookingService/pkg/ptr"
	"github.com/velmark/NST-BookingService/pkg/types"
)

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

// fakeTxManager выполняет fn в контексте с транзакцией, без реальной БД
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(dbmetrics.WithTx(ctx, stubTx{}))
}

type fakeBookingRepo struct {
	nextNumber int64
	created    []*domain.Booking
}

func (f *fakeBookingRepo) NextNumber(context.Context) (int64, error) {
	f.nextNumber++
	return f.nextNumber, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = int64(len(f.created) + 1)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = append(f.created, b)
	return b, nil
}

type fakeAllocator struct {
	chain []*domain.Slot
	err   error
	calls int
}

func (f *fakeAllocator) AllocateChain(context.Context, int64, domain.ServiceType, []int64) ([]*domain.Slot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.chain, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func slotOn(id int64, start string, resourceID *int64) *domain.Slot {
	return &domain.Slot{
		ID:         id,
		Date:       time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString(start),
		Status:     domain.SlotStatusPending,
		ResourceID: resourceID,
	}
}

func TestExecute_SingleSlotBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	alloc := &fakeAllocator{chain: []*domain.Slot{slotOn(10, "10:00", ptr.Ptr(int64(7)))}}
	uc := NewUseCase(repo, alloc, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartSlotID: 10,
		ServiceType: domain.ServiceManicure,
	})
	require.NoError(t, err)

	assert.Equal(t, "NB00001", resp.BookingNumber)
	assert.NotEmpty(t, resp.ReferenceToken)
	assert.Equal(t, int64(10), resp.SlotID)
	assert.Empty(t, resp.LinkedSlotIDs)
	assert.Equal(t, string(domain.StatusPendingForm), resp.Status)
	assert.Equal(t, int64(7), *resp.ResourceID)

	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.StatusPendingForm, repo.created[0].Status)
}

func TestExecute_ChainBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	alloc := &fakeAllocator{chain: []*domain.Slot{
		slotOn(10, "10:00", nil),
		slotOn(11, "11:30", nil),
	}}
	uc := NewUseCase(repo, alloc, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartSlotID:   10,
		ServiceType:   domain.ServiceManiPedi,
		LinkedSlotIDs: []int64{11},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.SlotID)
	assert.Equal(t, []int64{11}, resp.LinkedSlotIDs)
}

func TestExecute_NumbersAreSequential(t *testing.T) {
	repo := &fakeBookingRepo{}
	alloc := &fakeAllocator{chain: []*domain.Slot{slotOn(10, "10:00", nil)}}
	uc := NewUseCase(repo, alloc, fakeTxManager{}, nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{StartSlotID: 10, ServiceType: domain.ServiceManicure})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{StartSlotID: 10, ServiceType: domain.ServiceManicure})
	require.NoError(t, err)

	assert.Equal(t, "NB00001", first.BookingNumber)
	assert.Equal(t, "NB00002", second.BookingNumber)
	assert.NotEqual(t, first.ReferenceToken, second.ReferenceToken)
}

func TestExecute_MapsAllocatorErrors(t *testing.T) {
	cases := []struct {
		name     string
		allocErr error
		wantErr  error
	}{
		{"slot not found", allocator.ErrSlotNotFound, ErrSlotNotFound},
		{"slot held", allocator.ErrSlotUnavailable, ErrSlotNotAvailable},
		{"date blocked", allocator.ErrBlockedSlot, ErrDateBlocked},
		{"gap in chain", allocator.ErrNonConsecutiveSlots, ErrInvalidChain},
		{"cross date", allocator.ErrCrossDateSlots, ErrInvalidChain},
		{"cross resource", allocator.ErrCrossResourceSlots, ErrInvalidChain},
		{"missing linked", allocator.ErrMissingLinkedSlots, ErrInvalidChain},
		{"unknown", errors.New("boom"), ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := NewUseCase(repo, &fakeAllocator{err: tc.allocErr}, fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				StartSlotID: 10,
				ServiceType: domain.ServiceManicure,
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, repo.created, "no booking must be created on allocation failure")
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	alloc := &fakeAllocator{chain: []*domain.Slot{slotOn(10, "10:00", nil)}}
	uc := NewUseCase(&fakeBookingRepo{}, alloc, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartSlotID: 0, ServiceType: domain.ServiceManicure})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StartSlotID: 10, ServiceType: "massage"})
	assert.ErrorIs(t, err, ErrInvalidServiceType)

	_, err = uc.Execute(context.Background(), &Request{
		StartSlotID:   10,
		ServiceType:   domain.ServiceManiPedi,
		LinkedSlotIDs: []int64{10},
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "linked slot duplicating the start slot is rejected")

	_, err = uc.Execute(context.Background(), &Request{
		StartSlotID:   10,
		ServiceType:   domain.ServiceFullSet,
		LinkedSlotIDs: []int64{11, 11},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, alloc.calls, "allocator must not be called on invalid input")
}
