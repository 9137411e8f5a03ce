package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/mauv0809/padel-tracker/internal/entrystore"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Views are served from other origins.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Snapshot is one websocket frame: the full current contents of the
// subscribed target.
type Snapshot struct {
	Collection string                `json:"collection"`
	Documents  []entrystore.Document `json:"documents"`
}

func subscriptionTarget(name string) (entrystore.Target, bool) {
	switch name {
	case entrystore.RosterID:
		return entrystore.DocumentTarget(entrystore.CollectionData, entrystore.RosterID), true
	case entrystore.CollectionRatings, entrystore.CollectionTournamentResults:
		return entrystore.CollectionTarget(name), true
	}
	return entrystore.Target{}, false
}

// SubscribeHandler streams snapshots of a collection, or of the roster for
// "players", over a websocket until the client goes away.
func SubscribeHandler(store entrystore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("collection")
		target, ok := subscriptionTarget(name)
		if !ok {
			http.Error(w, "Unknown collection", http.StatusNotFound)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written the HTTP error.
			log.Error("Failed to upgrade connection", "collection", name, "error", err)
			return
		}
		defer conn.Close()

		// Only the latest snapshot matters, so a slow client skips stale ones.
		updates := make(chan []entrystore.Document, 1)
		push := func(docs []entrystore.Document) {
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- docs:
			default:
			}
		}

		unsubscribe, err := store.Subscribe(r.Context(), target, push)
		if err != nil {
			log.Error("Failed to subscribe", "collection", name, "error", err)
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "subscribe failed"))
			return
		}
		defer unsubscribe()
		log.Info("Subscriber connected", "collection", name)

		done := make(chan struct{})
		go readPump(conn, done)

		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case docs := <-updates:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(Snapshot{Collection: name, Documents: docs}); err != nil {
					log.Warn("Failed to write snapshot", "collection", name, "error", err)
					return
				}
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				log.Info("Subscriber disconnected", "collection", name)
				return
			}
		}
	}
}

// readPump drains client frames so control messages are processed and
// closes done once the connection fails.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("Subscriber connection error", "error", err)
			}
			return
		}
	}
}
