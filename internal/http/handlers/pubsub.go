package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-tracker/internal/notifier"
	"github.com/mauv0809/padel-tracker/internal/padel"
	"github.com/mauv0809/padel-tracker/internal/pubsub"
	"github.com/mauv0809/padel-tracker/internal/tracker"
)

// pushEnvelope is the body of a Pub/Sub push delivery.
type pushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data      string `json:"data"`
		MessageID string `json:"messageId"`
	} `json:"message"`
}

// decodePush unwraps a push delivery into event. It writes the error
// response itself and reports whether the handler should continue.
func decodePush(w http.ResponseWriter, r *http.Request, pubsubClient pubsub.PubSubClient, event any) bool {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return false
	}
	log.Debug("Received push message", "path", r.URL.Path, "body", string(bodyBytes))

	var pubsubMsg pushEnvelope
	if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
		log.Error("Failed to unmarshal wrapper JSON", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}

	rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
	if err != nil {
		log.Error("Failed to decode base64 data", "error", err)
		http.Error(w, "Invalid base64 data", http.StatusBadRequest)
		return false
	}

	if err := pubsubClient.ProcessMessage(rawData, event); err != nil {
		log.Error("Failed to decode event", "error", err, "subscription", pubsubMsg.Subscription)
		http.Error(w, "Invalid message payload", http.StatusBadRequest)
		return false
	}
	return true
}

// NotifyTournamentResultHandler receives tournament-result-logged events
// from a push subscription and posts them to Slack.
func NotifyTournamentResultHandler(n notifier.Notifier, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event tracker.TournamentResultLoggedEvent
		if !decodePush(w, r, pubsubClient, &event) {
			return
		}

		isDryRun := IsDryRunFromContext(r)
		if _, err := n.SendTournamentResult(event.Entry(), padel.UpsertMode(event.Mode), isDryRun); err != nil {
			log.Error("Failed to notify tournament result", "error", err, "id", event.ID)
			http.Error(w, "Failed to notify tournament result", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// NotifyRatingHandler receives rating-logged events from a push subscription
// and posts them to Slack.
func NotifyRatingHandler(n notifier.Notifier, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event tracker.RatingLoggedEvent
		if !decodePush(w, r, pubsubClient, &event) {
			return
		}

		isDryRun := IsDryRunFromContext(r)
		if _, err := n.SendRating(event.Entry(), padel.UpsertMode(event.Mode), isDryRun); err != nil {
			log.Error("Failed to notify rating", "error", err, "id", event.ID)
			http.Error(w, "Failed to notify rating", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
