package entrystore

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-tracker/internal/metrics"
)

type subscription struct {
	target   Target
	onUpdate func([]Document)
}

// hub fans collection snapshots out to subscribers. Deliveries are
// serialised so a subscriber never sees an older snapshot after a newer one.
type hub struct {
	mu        sync.Mutex
	publishMu sync.Mutex
	next      int
	subs      map[int]subscription
	metrics   metrics.Metrics
}

func newHub(m metrics.Metrics) *hub {
	return &hub{subs: make(map[int]subscription), metrics: m}
}

func (h *hub) add(target Target, onUpdate func([]Document)) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.subs[h.next] = subscription{target: target, onUpdate: onUpdate}
	return h.next
}

func (h *hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, id)
}

func (h *hub) matching(collection string) []subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []subscription
	for _, s := range h.subs {
		if s.target.Collection == collection {
			out = append(out, s)
		}
	}
	return out
}

// subscribe registers onUpdate and hands it the first snapshot. Holding
// publishMu keeps a concurrent publish from slipping in between.
func (h *hub) subscribe(ctx context.Context, target Target, onUpdate func([]Document), load func(context.Context, string) ([]Document, error)) (func(), error) {
	h.publishMu.Lock()
	defer h.publishMu.Unlock()

	docs, err := load(ctx, target.Collection)
	if err != nil {
		return nil, err
	}
	id := h.add(target, onUpdate)
	onUpdate(target.narrow(docs))

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}, nil
}

// publish reloads collection and pushes it to every subscriber watching it.
func (h *hub) publish(ctx context.Context, collection string, load func(context.Context, string) ([]Document, error)) {
	h.publishMu.Lock()
	defer h.publishMu.Unlock()

	subs := h.matching(collection)
	if len(subs) == 0 {
		return
	}
	docs, err := load(ctx, collection)
	if err != nil {
		log.Error("Failed to load snapshot for subscribers", "error", err, "collection", collection)
		return
	}
	for _, s := range subs {
		s.onUpdate(s.target.narrow(docs))
	}
	if h.metrics != nil {
		h.metrics.IncSnapshotPushes(collection)
	}
	log.Debug("Pushed snapshot", "collection", collection, "subscribers", len(subs), "documents", len(docs))
}
