package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-tracker/internal/padel"
	"github.com/mauv0809/padel-tracker/internal/tracker"
)

func SubmitRatingHandler(tr tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in tracker.RatingInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			log.Warn("Failed to decode rating", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		res, err := tr.SubmitRating(r.Context(), in)
		if err != nil {
			writeError(w, err, "Failed to store rating")
			return
		}
		writeJSON(w, statusFor(res), res)
	}
}

func RatingsViewHandler(tr tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := tr.RatingsView(r.Context(), viewQueryFromRequest(r))
		if err != nil {
			writeError(w, err, "Failed to load ratings")
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func SubmitTournamentHandler(tr tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in tracker.TournamentInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			log.Warn("Failed to decode tournament result", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		res, err := tr.SubmitTournamentResult(r.Context(), in)
		if err != nil {
			writeError(w, err, "Failed to store tournament result")
			return
		}
		writeJSON(w, statusFor(res), res)
	}
}

func TournamentViewHandler(tr tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := tr.TournamentView(r.Context(), viewQueryFromRequest(r))
		if err != nil {
			writeError(w, err, "Failed to load tournament results")
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func DeleteTournamentHandler(tr tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := tr.DeleteTournamentResult(r.Context(), r.PathValue("id")); err != nil {
			writeError(w, err, "Failed to delete tournament result")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DateRangeHandler returns the window for a week, month or year shortcut
// ending today.
func DateRangeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := padel.RangeKind(r.PathValue("kind"))
		window, err := padel.DateRangeShortcut(kind, time.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, window)
	}
}

func BackfillRatingTypesHandler(tr tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := tr.BackfillRatingTypes(r.Context())
		if err != nil {
			writeError(w, err, "Failed to backfill rating types")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
	}
}

func statusFor(res tracker.SubmitResult) int {
	if res.Mode == padel.ModeCreate {
		return http.StatusCreated
	}
	return http.StatusOK
}
