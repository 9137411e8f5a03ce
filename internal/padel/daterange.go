package padel

import (
	"fmt"
	"time"
)

// RangeKind names a date-range shortcut.
type RangeKind string

const (
	RangeWeek  RangeKind = "week"
	RangeMonth RangeKind = "month"
	RangeYear  RangeKind = "year"
)

// DateRangeShortcut returns the inclusive window from the start of the
// current week (Monday), month or year up to today. Dates are taken from
// now's location.
func DateRangeShortcut(kind RangeKind, now time.Time) (DateWindow, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var start time.Time
	switch kind {
	case RangeWeek:
		// Sunday is 0; Monday starts the week.
		back := (int(today.Weekday()) + 6) % 7
		start = today.AddDate(0, 0, -back)
	case RangeMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	case RangeYear:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	default:
		return DateWindow{}, fmt.Errorf("unknown date range %q", kind)
	}
	return DateWindow{MinDate: FormatDate(start), MaxDate: FormatDate(today)}, nil
}
