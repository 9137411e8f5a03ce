package padel

import "time"

// UpsertMode says whether a submission creates a new entry or replaces one.
type UpsertMode string

const (
	ModeCreate  UpsertMode = "create"
	ModeReplace UpsertMode = "replace"
)

// Resolution is the outcome of ResolveUpsert. TargetID is only set for
// ModeReplace.
type Resolution struct {
	Mode     UpsertMode `json:"mode"`
	TargetID string     `json:"targetId,omitempty"`
}

// ResolveUpsert looks for a member of snapshot sharing entry's (player, date)
// pair. The first match wins; storage ids play no part in the comparison.
func ResolveUpsert[E Entry](snapshot []E, entry Entry) Resolution {
	for _, existing := range snapshot {
		if sameKey(existing, entry) {
			return Resolution{Mode: ModeReplace, TargetID: existing.EntryID()}
		}
	}
	return Resolution{Mode: ModeCreate}
}

func sameKey(a, b Entry) bool {
	if a.EntryPlayer() != b.EntryPlayer() {
		return false
	}
	if a.EntryDate() == b.EntryDate() {
		return true
	}
	da, errA := ParseDate(a.EntryDate())
	db, errB := ParseDate(b.EntryDate())
	return errA == nil && errB == nil && da.Equal(db)
}

// IsFutureDate reports whether the calendar date starts strictly after now.
// The date is interpreted in now's location, so today is never in the future.
func IsFutureDate(date string, now time.Time) (bool, error) {
	d, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	return start.After(now), nil
}

// PrepareTournamentEntry returns the entry as it must be persisted: a result
// given for a future date is dropped so the entry is stored as scheduled.
func PrepareTournamentEntry(entry TournamentResultEntry, now time.Time) (TournamentResultEntry, error) {
	future, err := IsFutureDate(entry.Date, now)
	if err != nil {
		return entry, err
	}
	if future {
		entry.Result = nil
	}
	return entry, nil
}
