package tracker

import "github.com/mauv0809/padel-tracker/internal/padel"

// RatingInput is a rating submission as received from a client.
type RatingInput struct {
	Player string `json:"player"`
	Date   string `json:"date"`
	Rating int    `json:"rating"`
	Type   string `json:"type"`
}

// TournamentInput is a tournament submission as received from a client.
// Result may be empty for a tournament scheduled in the future.
type TournamentInput struct {
	Player         string `json:"player"`
	TournamentName string `json:"tournamentName"`
	Date           string `json:"date"`
	Result         string `json:"result"`
}

// SubmitResult tells the caller where an entry was stored.
type SubmitResult struct {
	ID   string           `json:"id"`
	Mode padel.UpsertMode `json:"mode"`
}

// ViewQuery selects the entries a view is derived from. A non-empty Range
// takes precedence over Window. An empty Policy falls back to the configured one.
type ViewQuery struct {
	Player string
	Window padel.DateWindow
	Range  padel.RangeKind
	Policy padel.ScorePolicy
}

// RatingsView is the filtered rating list of a player with its summary and
// chart series.
type RatingsView struct {
	Player  string               `json:"player"`
	Window  padel.DateWindow     `json:"window"`
	Entries []padel.RatingEntry  `json:"entries"`
	Summary *padel.RatingSummary `json:"summary"`
	Labels  []string             `json:"labels"`
	Values  []int                `json:"values"`
}

// TournamentView splits a player's tournaments into played chart points and
// upcoming entries.
type TournamentView struct {
	Player   string                        `json:"player"`
	Window   padel.DateWindow              `json:"window"`
	Points   []padel.ChartPoint            `json:"points"`
	Upcoming []padel.TournamentResultEntry `json:"upcoming"`
	Labels   []string                      `json:"labels"`
	Values   []int                         `json:"values"`
}

// RatingLoggedEvent is published after a rating is stored.
type RatingLoggedEvent struct {
	ID     string `msgpack:"id"`
	Player string `msgpack:"player"`
	Date   string `msgpack:"date"`
	Rating int    `msgpack:"rating"`
	Type   string `msgpack:"type"`
	Mode   string `msgpack:"mode"`
}

// Entry rebuilds the stored rating from the event.
func (e RatingLoggedEvent) Entry() padel.RatingEntry {
	return padel.RatingEntry{
		ID:     e.ID,
		Player: e.Player,
		Date:   e.Date,
		Rating: e.Rating,
		Type:   padel.GameType(e.Type),
	}
}

// TournamentResultLoggedEvent is published after a tournament entry is stored.
// Result is empty for a scheduled tournament.
type TournamentResultLoggedEvent struct {
	ID             string `msgpack:"id"`
	Player         string `msgpack:"player"`
	TournamentName string `msgpack:"tournament_name"`
	Date           string `msgpack:"date"`
	Result         string `msgpack:"result,omitempty"`
	Mode           string `msgpack:"mode"`
}

// Entry rebuilds the stored entry from the event.
func (e TournamentResultLoggedEvent) Entry() padel.TournamentResultEntry {
	entry := padel.TournamentResultEntry{
		ID:             e.ID,
		Player:         e.Player,
		TournamentName: e.TournamentName,
		Date:           e.Date,
	}
	if e.Result != "" {
		r := padel.Result(e.Result)
		entry.Result = &r
	}
	return entry
}
