package padel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangeShortcut_Week(t *testing.T) {
	start := time.Date(2024, 12, 20, 9, 0, 0, 0, time.Local)
	// Walk three weeks so every weekday and a year boundary are covered.
	for i := 0; i < 21; i++ {
		now := start.AddDate(0, 0, i)
		w, err := DateRangeShortcut(RangeWeek, now)
		require.NoError(t, err)

		monday, err := ParseDate(w.MinDate)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, monday.Weekday(), "now=%s", now)
		assert.Equal(t, now.Format(DateLayout), w.MaxDate)
		assert.False(t, monday.AddDate(0, 0, 7).Format(DateLayout) <= w.MaxDate, "start is within the current week")
	}
}

func TestDateRangeShortcut_Cases(t *testing.T) {
	tests := []struct {
		name string
		kind RangeKind
		now  time.Time
		want DateWindow
	}{
		{"sunday goes back six days", RangeWeek, time.Date(2025, 1, 5, 23, 0, 0, 0, time.UTC), DateWindow{"2024-12-30", "2025-01-05"}},
		{"monday is its own start", RangeWeek, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), DateWindow{"2025-01-06", "2025-01-06"}},
		{"month", RangeMonth, time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC), DateWindow{"2025-03-01", "2025-03-17"}},
		{"year", RangeYear, time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC), DateWindow{"2025-01-01", "2025-03-17"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateRangeShortcut(tt.kind, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateRangeShortcut_LocalDate(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC; the local date wins.
	loc := time.FixedZone("EST", -5*60*60)
	now := time.Date(2025, 1, 31, 23, 30, 0, 0, loc)
	w, err := DateRangeShortcut(RangeMonth, now)
	require.NoError(t, err)
	assert.Equal(t, DateWindow{"2025-01-01", "2025-01-31"}, w)
}

func TestDateRangeShortcut_Unknown(t *testing.T) {
	_, err := DateRangeShortcut("decade", time.Now())
	assert.Error(t, err)
}
