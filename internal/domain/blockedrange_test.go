package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBlockedRange_Contains(t *testing.T) {
	r := &BlockedRange{
		StartDate: date(2026, time.September, 10),
		EndDate:   date(2026, time.September, 12),
		Active:    true,
	}

	assert.True(t, r.Contains(date(2026, time.September, 10)), "start date is inclusive")
	assert.True(t, r.Contains(date(2026, time.September, 11)))
	assert.True(t, r.Contains(date(2026, time.September, 12)), "end date is inclusive")

	assert.False(t, r.Contains(date(2026, time.September, 9)))
	assert.False(t, r.Contains(date(2026, time.September, 13)))
}

func TestBlockedRange_Contains_IgnoresTimeOfDay(t *testing.T) {
	r := &BlockedRange{
		StartDate: date(2026, time.September, 10),
		EndDate:   date(2026, time.September, 10),
		Active:    true,
	}

	lateEvening := time.Date(2026, time.September, 10, 23, 45, 0, 0, time.UTC)
	assert.True(t, r.Contains(lateEvening))
}

func TestIsDateBlocked(t *testing.T) {
	ranges := []*BlockedRange{
		{StartDate: date(2026, time.September, 1), EndDate: date(2026, time.September, 5), Active: true},
		{StartDate: date(2026, time.September, 20), EndDate: date(2026, time.September, 20), Active: true},
	}

	assert.True(t, IsDateBlocked(date(2026, time.September, 3), ranges))
	assert.True(t, IsDateBlocked(date(2026, time.September, 20), ranges))
	assert.False(t, IsDateBlocked(date(2026, time.September, 10), ranges))
}

func TestIsDateBlocked_SkipsInactiveRanges(t *testing.T) {
	ranges := []*BlockedRange{
		{StartDate: date(2026, time.September, 1), EndDate: date(2026, time.September, 30), Active: false},
	}

	assert.False(t, IsDateBlocked(date(2026, time.September, 15), ranges))
}

func TestIsDateBlocked_EmptyRanges(t *testing.T) {
	assert.False(t, IsDateBlocked(date(2026, time.September, 15), nil))
}
