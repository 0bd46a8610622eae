package blocked_ranges

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDates_ScopeDay(t *testing.T) {
	req := &CreateBlockedRangeRequest{StartDate: "2026-09-15", Scope: "day"}

	start, end, err := req.parseDates()
	require.NoError(t, err)

	assert.True(t, start.Equal(day(2026, time.September, 15)))
	assert.True(t, end.Equal(start), "day scope collapses to a single date")
}

func TestParseDates_ScopeMonth(t *testing.T) {
	cases := []struct {
		name  string
		start string
		first time.Time
		last  time.Time
	}{
		{"september", "2026-09-01", day(2026, time.September, 1), day(2026, time.September, 30)},
		{"mid-month input normalised", "2026-09-15", day(2026, time.September, 1), day(2026, time.September, 30)},
		{"leap february", "2028-02-01", day(2028, time.February, 1), day(2028, time.February, 29)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &CreateBlockedRangeRequest{StartDate: tc.start, Scope: "month"}

			start, end, err := req.parseDates()
			require.NoError(t, err)
			assert.True(t, start.Equal(tc.first))
			assert.True(t, end.Equal(tc.last))
		})
	}
}

func TestParseDates_ScopeRange(t *testing.T) {
	req := &CreateBlockedRangeRequest{StartDate: "2026-09-10", EndDate: "2026-09-20", Scope: "range"}

	start, end, err := req.parseDates()
	require.NoError(t, err)
	assert.True(t, start.Equal(day(2026, time.September, 10)))
	assert.True(t, end.Equal(day(2026, time.September, 20)))
}

func TestParseDates_Errors(t *testing.T) {
	cases := []struct {
		name string
		req  *CreateBlockedRangeRequest
	}{
		{"range without end date", &CreateBlockedRangeRequest{StartDate: "2026-09-10", Scope: "range"}},
		{"bad start date", &CreateBlockedRangeRequest{StartDate: "10.09.2026", Scope: "day"}},
		{"bad end date", &CreateBlockedRangeRequest{StartDate: "2026-09-10", EndDate: "x", Scope: "range"}},
		{"unknown scope", &CreateBlockedRangeRequest{StartDate: "2026-09-10", Scope: "week"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := tc.req.parseDates()
			assert.Error(t, err)
		})
	}
}
