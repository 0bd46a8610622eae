package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/NST-BookingService/pkg/types"
)

func TestIsValidStartTime(t *testing.T) {
	for _, gridTime := range StartTimeGrid {
		assert.True(t, IsValidStartTime(gridTime), "grid time %s must be valid", gridTime)
	}

	assert.False(t, IsValidStartTime("09:00"))
	assert.False(t, IsValidStartTime("10:30"))
	assert.False(t, IsValidStartTime("20:30"))
	assert.False(t, IsValidStartTime(""))
}

func TestNextStartTime(t *testing.T) {
	next, ok := NextStartTime("10:00")
	require.True(t, ok)
	assert.Equal(t, types.TimeString("11:30"), next)

	next, ok = NextStartTime("17:30")
	require.True(t, ok)
	assert.Equal(t, types.TimeString("19:00"), next)
}

func TestNextStartTime_LastSlot(t *testing.T) {
	_, ok := NextStartTime("19:00")
	assert.False(t, ok, "last grid time has no successor")
}

func TestNextStartTime_UnknownTime(t *testing.T) {
	_, ok := NextStartTime("12:00")
	assert.False(t, ok)
}

func TestStartTimeGrid_IsOrdered(t *testing.T) {
	for i := 1; i < len(StartTimeGrid); i++ {
		assert.True(t, StartTimeGrid[i-1].IsBefore(StartTimeGrid[i]),
			"grid must be strictly increasing at index %d", i)
	}
}
