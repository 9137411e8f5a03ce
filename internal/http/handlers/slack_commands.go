package handlers

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-tracker/internal/notifier"
	"github.com/mauv0809/padel-tracker/internal/padel"
	"github.com/mauv0809/padel-tracker/internal/tracker"
)

// parseSummaryText splits the text field of a slash command into a player
// name and an optional trailing range.
// Expected formats: "Ana", "Ana Lopez week", "Ana month", "Ana year"
func parseSummaryText(text string) (player string, kind padel.RangeKind) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) > 1 {
		switch last := padel.RangeKind(strings.ToLower(parts[len(parts)-1])); last {
		case padel.RangeWeek, padel.RangeMonth, padel.RangeYear:
			kind = last
			parts = parts[:len(parts)-1]
		}
	}
	return strings.Join(parts, " "), kind
}

// rosterPlayer looks the name up on the roster and writes the not-found
// response when it is missing. It reports whether the caller should continue.
func rosterPlayer(w http.ResponseWriter, r *http.Request, tr tracker.Tracker, n notifier.Notifier, name string) bool {
	player, err := tr.SharedPlayer(r.Context(), name)
	if err != nil {
		writeError(w, err, "Failed to load roster")
		return false
	}
	if player != "" {
		return true
	}

	log.Warn("Slash command for unknown player", "player", name)
	msg, err := n.FormatPlayerNotFoundResponse(name)
	if err != nil {
		log.Error("Failed to format player not found response", "error", err)
		http.Error(w, "Failed to format response", http.StatusInternalServerError)
		return false
	}
	writeJSON(w, http.StatusOK, msg)
	return false
}

func SummaryCommandHandler(tr tracker.Tracker, n notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		player, kind := parseSummaryText(r.FormValue("text"))
		if player == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}
		log.Info("Received summary command", "player", player, "range", kind)

		if !rosterPlayer(w, r, tr, n, player) {
			return
		}
		view, err := tr.RatingsView(r.Context(), tracker.ViewQuery{Player: player, Range: kind})
		if err != nil {
			writeError(w, err, "Failed to load ratings")
			return
		}

		msg, err := n.FormatRatingSummaryResponse(player, view.Window, view.Summary)
		if err != nil {
			log.Error("Failed to format rating summary", "error", err)
			http.Error(w, "Failed to format rating summary", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, msg)
	}
}

func UpcomingCommandHandler(tr tracker.Tracker, n notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		player := strings.TrimSpace(r.FormValue("text"))
		if player == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}
		log.Info("Received upcoming command", "player", player)

		if !rosterPlayer(w, r, tr, n, player) {
			return
		}
		view, err := tr.TournamentView(r.Context(), tracker.ViewQuery{Player: player})
		if err != nil {
			writeError(w, err, "Failed to load tournaments")
			return
		}

		msg, err := n.FormatUpcomingResponse(player, view.Upcoming)
		if err != nil {
			log.Error("Failed to format upcoming tournaments", "error", err)
			http.Error(w, "Failed to format upcoming tournaments", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, msg)
	}
}
