package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-tracker/internal/entrystore"
	"github.com/mauv0809/padel-tracker/internal/padel"
	"github.com/mauv0809/padel-tracker/internal/tracker"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// writeError maps tracker and store errors onto status codes. Validation
// messages are meant for users and are passed through as is.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *tracker.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Message, http.StatusBadRequest)
	case errors.Is(err, entrystore.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		log.Error(fallback, "error", err)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

// viewQueryFromRequest reads the shared view parameters player, from, to,
// range and policy.
func viewQueryFromRequest(r *http.Request) tracker.ViewQuery {
	q := r.URL.Query()
	return tracker.ViewQuery{
		Player: q.Get("player"),
		Window: padel.DateWindow{MinDate: q.Get("from"), MaxDate: q.Get("to")},
		Range:  padel.RangeKind(q.Get("range")),
		Policy: padel.ScorePolicy(q.Get("policy")),
	}
}
