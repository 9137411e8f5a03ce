package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-tracker/internal/tracker"
)

func ListPlayersHandler(tr tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roster, err := tr.Roster(r.Context())
		if err != nil {
			writeError(w, err, "Failed to get players")
			return
		}
		writeJSON(w, http.StatusOK, roster)
	}
}

func AddPlayerHandler(tr tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Warn("Failed to decode add player request", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		roster, err := tr.AddPlayer(r.Context(), body.Name)
		if err != nil {
			writeError(w, err, "Failed to add player")
			return
		}
		writeJSON(w, http.StatusCreated, roster)
	}
}

// ShareHandler returns the link that opens the views on a roster player.
func ShareHandler(tr tracker.Tracker, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requested := r.URL.Query().Get("player")
		player, err := tr.SharedPlayer(r.Context(), requested)
		if err != nil {
			writeError(w, err, "Failed to resolve player")
			return
		}
		if player == "" {
			http.Error(w, "Unknown player", http.StatusNotFound)
			return
		}

		link, err := tracker.ShareURL(baseURL, player)
		if err != nil {
			writeError(w, err, "Failed to build share link")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"player": player, "url": link})
	}
}
