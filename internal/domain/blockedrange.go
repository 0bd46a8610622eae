package domain

import "time"

// BlockedRangeScope describes how the blocked range was authored.
// На вычисление блокировки scope не влияет - проверяется только интервал
type BlockedRangeScope string

const (
	ScopeDay   BlockedRangeScope = "day"
	ScopeRange BlockedRangeScope = "range"
	ScopeMonth BlockedRangeScope = "month"
)

// BlockedRange represents a closed date interval on which the studio
// does not accept bookings
type BlockedRange struct {
	ID        int64
	StartDate time.Time // Включительно
	EndDate   time.Time // Включительно
	Reason    *string
	Scope     BlockedRangeScope
	Active    bool
	CreatedAt time.Time
}

// Contains returns true if date falls inside the inclusive interval
func (r *BlockedRange) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(r.StartDate)) && !d.After(truncateToDay(r.EndDate))
}

// IsDateBlocked returns true if date falls inside any active blocked range.
// Чистая функция, O(количество диапазонов)
func IsDateBlocked(date time.Time, ranges []*BlockedRange) bool {
	for _, r := range ranges {
		if !r.Active {
			continue
		}
		if r.Contains(date) {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
