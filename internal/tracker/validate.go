package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/mauv0809/padel-tracker/internal/padel"
)

func validateRating(in RatingInput) (padel.RatingEntry, error) {
	player := strings.TrimSpace(in.Player)
	if player == "" {
		return padel.RatingEntry{}, invalid("player", "Please select a player")
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return padel.RatingEntry{}, err
	}
	if in.Rating < 1 || in.Rating > 5 {
		return padel.RatingEntry{}, invalid("rating", "Rating must be between 1 and 5")
	}

	gameType := padel.GameType(strings.TrimSpace(in.Type))
	if gameType == "" {
		gameType = padel.GameTypePractice
	}
	if !gameType.Valid() {
		return padel.RatingEntry{}, invalid("type", fmt.Sprintf("Unknown game type %q", in.Type))
	}

	return padel.RatingEntry{Player: player, Date: date, Rating: in.Rating, Type: gameType}, nil
}

func validateTournament(in TournamentInput, now time.Time) (padel.TournamentResultEntry, error) {
	player := strings.TrimSpace(in.Player)
	if player == "" {
		return padel.TournamentResultEntry{}, invalid("player", "Please select a player")
	}
	name := strings.TrimSpace(in.TournamentName)
	if name == "" {
		return padel.TournamentResultEntry{}, invalid("tournamentName", "Please enter a tournament name")
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return padel.TournamentResultEntry{}, err
	}

	future, err := padel.IsFutureDate(date, now)
	if err != nil {
		return padel.TournamentResultEntry{}, invalid("date", "Date must be a calendar date (YYYY-MM-DD)")
	}

	entry := padel.TournamentResultEntry{Player: player, TournamentName: name, Date: date}
	if raw := strings.TrimSpace(in.Result); raw != "" {
		result, err := padel.ParseResult(raw)
		if err != nil && !future {
			return padel.TournamentResultEntry{}, invalid("result", fmt.Sprintf("Unknown tournament result %q", raw))
		}
		if err == nil {
			entry.Result = &result
		}
	}

	entry, err = padel.PrepareTournamentEntry(entry, now)
	if err != nil {
		return padel.TournamentResultEntry{}, invalid("date", "Date must be a calendar date (YYYY-MM-DD)")
	}
	if !future && !entry.Played() {
		return padel.TournamentResultEntry{}, invalid("result", "Please select a result for a tournament that has taken place")
	}
	return entry, nil
}

// normalizeDate rewrites a date to its zero-padded form so that equality
// queries on the stored string match.
func normalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", invalid("date", "Please select a date")
	}
	d, err := padel.ParseDate(raw)
	if err != nil {
		return "", invalid("date", "Date must be a calendar date (YYYY-MM-DD)")
	}
	return padel.FormatDate(d), nil
}

func normalizeWindow(w padel.DateWindow) (padel.DateWindow, error) {
	var err error
	if w.MinDate != "" {
		if w.MinDate, err = normalizeDate(w.MinDate); err != nil {
			return padel.DateWindow{}, invalid("from", "from must be a calendar date (YYYY-MM-DD)")
		}
	}
	if w.MaxDate != "" {
		if w.MaxDate, err = normalizeDate(w.MaxDate); err != nil {
			return padel.DateWindow{}, invalid("to", "to must be a calendar date (YYYY-MM-DD)")
		}
	}
	return w, nil
}
