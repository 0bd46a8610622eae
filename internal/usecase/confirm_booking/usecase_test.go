package confirm_booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/NST-BookingService/internal/domain"
	bookingRepo "github.com/velmark/NST-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/velmark/NST-BookingService/internal/infra/storage/slot"
	"github.com/velmark/NST-BookingService/internal/integrations/notifyservice"
	"github.com/velmark/NST-BookingService/pkg/dbmetrics"
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(dbmetrics.WithTx(ctx, stubTx{}))
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.bookings[id].Status = status
	return nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.Slot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	sl, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *sl
	return &copied, nil
}

func (f *fakeSlotRepo) UpdateStatus(_ context.Context, id int64, status domain.SlotStatus) error {
	f.slots[id].Status = status
	return nil
}

type fakeBlockedRepo struct {
	ranges []*domain.BlockedRange
}

func (f *fakeBlockedRepo) ListActive(context.Context) ([]*domain.BlockedRange, error) {
	return f.ranges, nil
}

type fakeNotify struct {
	sent []notifyservice.NotifyRequest
}

func (f *fakeNotify) NotifyAsync(req notifyservice.NotifyRequest) {
	f.sent = append(f.sent, req)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func pendingSlot(id int64, day int, start string) *domain.Slot {
	return &domain.Slot{
		ID:        id,
		Date:      date(day),
		StartTime: types.TimeString(start),
		Status:    domain.SlotStatusPending,
	}
}

func chainBooking(slotIDs ...int64) *domain.Booking {
	return &domain.Booking{
		ID:            1,
		BookingNumber: "NB00007",
		SlotID:        slotIDs[0],
		LinkedSlotIDs: pq.Int64Array(slotIDs[1:]),
		Status:        domain.StatusPendingPayment,
	}
}

func TestExecute_ConfirmsBookingAndChain(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: chainBooking(10, 11, 12)}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		10: pendingSlot(10, 15, "10:00"),
		11: pendingSlot(11, 15, "11:30"),
		12: pendingSlot(12, 15, "13:00"),
	}}
	notify := &fakeNotify{}
	uc := NewUseCase(bookings, slots, &fakeBlockedRepo{}, notify, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, bookings.bookings[1].Status)
	for _, id := range []int64{10, 11, 12} {
		assert.Equal(t, domain.SlotStatusConfirmed, slots.slots[id].Status, "slot %d", id)
	}

	require.Len(t, notify.sent, 1)
	assert.Equal(t, notifyservice.EventBookingConfirmed, notify.sent[0].Event)
	assert.Equal(t, "NB00007", notify.sent[0].BookingNumber)
}

func TestExecute_ConfirmsPendingFormBooking(t *testing.T) {
	// Оплата может прийти раньше данных формы, подтверждение
	// из pending_form допустимо
	booking := chainBooking(10)
	booking.Status = domain.StatusPendingForm
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: booking}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{10: pendingSlot(10, 15, "10:00")}}
	notify := &fakeNotify{}
	uc := NewUseCase(bookings, slots, &fakeBlockedRepo{}, notify, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, bookings.bookings[1].Status)
	assert.Equal(t, domain.SlotStatusConfirmed, slots.slots[10].Status)
	require.Len(t, notify.sent, 1)
	assert.Equal(t, notifyservice.EventBookingConfirmed, notify.sent[0].Event)
}

func TestExecute_CannotConfirm(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			booking := chainBooking(10)
			booking.Status = status
			bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: booking}}
			slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{10: pendingSlot(10, 15, "10:00")}}
			notify := &fakeNotify{}
			uc := NewUseCase(bookings, slots, &fakeBlockedRepo{}, notify, fakeTxManager{}, nopLogger{})

			err := uc.Execute(context.Background(), 1)
			assert.ErrorIs(t, err, ErrCannotConfirm)
			assert.Equal(t, status, bookings.bookings[1].Status)
			assert.Empty(t, notify.sent)
		})
	}
}

func TestExecute_DateBlockedAfterReservation(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: chainBooking(10, 11)}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		10: pendingSlot(10, 15, "10:00"),
		11: pendingSlot(11, 15, "11:30"),
	}}
	blocked := &fakeBlockedRepo{ranges: []*domain.BlockedRange{
		{ID: 1, StartDate: date(15), EndDate: date(15), Active: true},
	}}
	notify := &fakeNotify{}
	uc := NewUseCase(bookings, slots, blocked, notify, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDateBlocked)

	// Ни бронирование, ни слоты не изменились
	assert.Equal(t, domain.StatusPendingPayment, bookings.bookings[1].Status)
	assert.Equal(t, domain.SlotStatusPending, slots.slots[10].Status)
	assert.Equal(t, domain.SlotStatusPending, slots.slots[11].Status)
	assert.Empty(t, notify.sent)
}

func TestExecute_AdminBlockedSlotInChain(t *testing.T) {
	blockedSlot := pendingSlot(11, 15, "11:30")
	blockedSlot.Status = domain.SlotStatusBlocked
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: chainBooking(10, 11)}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		10: pendingSlot(10, 15, "10:00"),
		11: blockedSlot,
	}}
	uc := NewUseCase(bookings, slots, &fakeBlockedRepo{}, &fakeNotify{}, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDateBlocked)
	assert.Equal(t, domain.SlotStatusPending, slots.slots[10].Status, "first slot must stay untouched")
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: map[int64]*domain.Booking{}},
		&fakeSlotRepo{slots: map[int64]*domain.Slot{}},
		&fakeBlockedRepo{}, &fakeNotify{}, fakeTxManager{}, nopLogger{},
	)

	err := uc.Execute(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidID(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: map[int64]*domain.Booking{}},
		&fakeSlotRepo{slots: map[int64]*domain.Slot{}},
		&fakeBlockedRepo{}, &fakeNotify{}, fakeTxManager{}, nopLogger{},
	)

	err := uc.Execute(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
