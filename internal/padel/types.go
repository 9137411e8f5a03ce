package padel

import "time"

// DateLayout is the ISO calendar date layout used for every stored date.
const DateLayout = "2006-01-02"

// GameType describes the context a self-rating was given in.
type GameType string

const (
	GameTypePractice       GameType = "Practice"
	GameTypeFriendlyGame   GameType = "Friendly Game"
	GameTypeTournamentGame GameType = "Tournament Game"
)

// GameTypes lists the accepted rating types in display order.
var GameTypes = []GameType{GameTypePractice, GameTypeFriendlyGame, GameTypeTournamentGame}

// Valid reports whether t is one of the known game types.
func (t GameType) Valid() bool {
	for _, known := range GameTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Result is the stage a player reached in a tournament.
type Result string

const (
	ResultGroupStage    Result = "Group Stage"
	ResultBestOf32      Result = "Best of 32"
	ResultBestOf16      Result = "Best of 16"
	ResultQuarterfinals Result = "Quarterfinals"
	ResultSemifinals    Result = "Semifinals"
	ResultFinalist      Result = "Finalist"
	ResultWinner        Result = "Winner"
)

// Results holds every result in rank order. Index+1 is the rank.
var Results = []Result{
	ResultGroupStage,
	ResultBestOf32,
	ResultBestOf16,
	ResultQuarterfinals,
	ResultSemifinals,
	ResultFinalist,
	ResultWinner,
}

// Roster is the ordered list of known player names.
type Roster struct {
	Names []string `json:"names"`
}

// Contains reports whether name is on the roster. Comparison is case-sensitive.
func (r Roster) Contains(name string) bool {
	for _, n := range r.Names {
		if n == name {
			return true
		}
	}
	return false
}

// RatingEntry is a single self-assessment. Its upsert identity is (Player, Date).
// ID is the store key and is left empty in stored documents.
type RatingEntry struct {
	ID     string   `json:"id,omitempty"`
	Player string   `json:"player"`
	Date   string   `json:"date"`
	Rating int      `json:"rating"`
	Type   GameType `json:"type,omitempty"`
}

// TournamentResultEntry is a tournament outcome. A nil Result marks a
// scheduled tournament that has not been played yet. ID is the store key and
// is left empty in stored documents.
type TournamentResultEntry struct {
	ID             string  `json:"id,omitempty"`
	Player         string  `json:"player"`
	TournamentName string  `json:"tournamentName"`
	Date           string  `json:"date"`
	Result         *Result `json:"result,omitempty"`
}

// Entry is implemented by both entry kinds so the upsert and filter rules can
// be shared.
type Entry interface {
	EntryID() string
	EntryPlayer() string
	EntryDate() string
}

func (e RatingEntry) EntryID() string     { return e.ID }
func (e RatingEntry) EntryPlayer() string { return e.Player }
func (e RatingEntry) EntryDate() string   { return e.Date }

func (e TournamentResultEntry) EntryID() string     { return e.ID }
func (e TournamentResultEntry) EntryPlayer() string { return e.Player }
func (e TournamentResultEntry) EntryDate() string   { return e.Date }

// Played reports whether the entry carries a result.
func (e TournamentResultEntry) Played() bool {
	return e.Result != nil
}

// ParseDate parses an ISO calendar date. Unpadded month and day values such
// as "2025-1-2" are accepted so that comparisons stay semantic.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-1-2", s)
}

// FormatDate renders t's calendar date in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
