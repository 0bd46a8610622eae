package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_ChainSlotIDs(t *testing.T) {
	single := &Booking{SlotID: 10}
	assert.Equal(t, []int64{10}, single.ChainSlotIDs())

	chained := &Booking{SlotID: 10, LinkedSlotIDs: []int64{11, 12}}
	assert.Equal(t, []int64{10, 11, 12}, chained.ChainSlotIDs())
}

func TestBooking_CanBeConfirmed(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPendingForm}).CanBeConfirmed())
	assert.True(t, (&Booking{Status: StatusPendingPayment}).CanBeConfirmed())
	assert.False(t, (&Booking{Status: StatusConfirmed}).CanBeConfirmed())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeConfirmed())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPendingForm}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusPendingPayment}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_IsExpired(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	maxAge := 30 * time.Minute

	fresh := &Booking{Status: StatusPendingForm, CreatedAt: now.Add(-10 * time.Minute)}
	assert.False(t, fresh.IsExpired(now, maxAge))

	stale := &Booking{Status: StatusPendingForm, CreatedAt: now.Add(-31 * time.Minute)}
	assert.True(t, stale.IsExpired(now, maxAge))

	// Истекает только pending_form, остальные статусы sweeper не трогает
	attached := &Booking{Status: StatusPendingPayment, CreatedAt: now.Add(-2 * time.Hour)}
	assert.False(t, attached.IsExpired(now, maxAge))

	confirmed := &Booking{Status: StatusConfirmed, CreatedAt: now.Add(-2 * time.Hour)}
	assert.False(t, confirmed.IsExpired(now, maxAge))
}

func TestBooking_IsExpired_ExactBoundary(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	maxAge := 30 * time.Minute

	boundary := &Booking{Status: StatusPendingForm, CreatedAt: now.Add(-30 * time.Minute)}
	assert.False(t, boundary.IsExpired(now, maxAge), "exactly maxAge old is not yet expired")
}
