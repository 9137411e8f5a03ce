package padel

import (
	"sort"
	"time"
)

// DateWindow is an inclusive calendar-date window. Either bound may be empty.
type DateWindow struct {
	MinDate string `json:"minDate,omitempty"`
	MaxDate string `json:"maxDate,omitempty"`
}

// FilterByPlayerAndDate returns the entries belonging to player whose date
// falls inside window, keeping the input order. An empty player yields an
// empty result. Entries or bounds with unparseable dates never match.
func FilterByPlayerAndDate[E Entry](entries []E, player string, window DateWindow) []E {
	filtered := make([]E, 0)
	if player == "" {
		return filtered
	}

	from, hasMin, ok := parseBound(window.MinDate)
	if !ok {
		return filtered
	}
	to, hasMax, ok := parseBound(window.MaxDate)
	if !ok {
		return filtered
	}

	for _, e := range entries {
		if e.EntryPlayer() != player {
			continue
		}
		if hasMin || hasMax {
			d, err := ParseDate(e.EntryDate())
			if err != nil {
				continue
			}
			if hasMin && d.Before(from) {
				continue
			}
			if hasMax && d.After(to) {
				continue
			}
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func parseBound(s string) (time.Time, bool, bool) {
	if s == "" {
		return time.Time{}, false, true
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, false, false
	}
	return t, true, true
}

// SortByDate orders entries ascending by calendar date. The sort is stable so
// entries sharing a date keep their relative order. Unparseable dates sort last.
func SortByDate[E Entry](entries []E) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, errI := ParseDate(entries[i].EntryDate())
		dj, errJ := ParseDate(entries[j].EntryDate())
		switch {
		case errI != nil:
			return false
		case errJ != nil:
			return true
		}
		return di.Before(dj)
	})
}

// DateSpan returns the earliest and latest dates present in entries. It is
// used as the default window when the caller gave none.
func DateSpan[E Entry](entries []E) DateWindow {
	var (
		span          DateWindow
		first, latest time.Time
	)
	for _, e := range entries {
		d, err := ParseDate(e.EntryDate())
		if err != nil {
			continue
		}
		if span.MinDate == "" || d.Before(first) {
			first = d
			span.MinDate = FormatDate(d)
		}
		if span.MaxDate == "" || d.After(latest) {
			latest = d
			span.MaxDate = FormatDate(d)
		}
	}
	return span
}
