package entrystore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-tracker/internal/metrics"
)

// store keeps documents in the documents table as JSON text.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	hub *hub
}

var _ Store = (*store)(nil)

// New creates a Store backed by db. metrics may be nil.
func New(db *sql.DB, m metrics.Metrics) Store {
	return &store{
		db:  db,
		hub: newHub(m),
	}
}

func (s *store) Get(ctx context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE collection = ? AND id = ?", collection, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}
	return &Document{ID: id, Data: json.RawMessage(data)}, nil
}

func (s *store) List(ctx context.Context, collection string) ([]Document, error) {
	return s.QueryByEquality(ctx, collection)
}

func (s *store) QueryByEquality(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query(ctx, collection, filters)
}

func (s *store) query(ctx context.Context, collection string, filters []Filter) ([]Document, error) {
	var (
		where = []string{"collection = ?"}
		args  = []any{collection}
	)
	for _, f := range filters {
		if err := f.validate(); err != nil {
			return nil, err
		}
		where = append(where, "json_extract(data, ?) = ?")
		args = append(args, "$."+f.Field, f.Value)
	}
	query := "SELECT id, data FROM documents WHERE " + strings.Join(where, " AND ") + " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, Document{ID: id, Data: json.RawMessage(data)})
	}
	return docs, rows.Err()
}

func (s *store) Put(ctx context.Context, collection, id string, doc any) error {
	if id == "" {
		return errors.New("document id must not be empty")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s/%s: %w", collection, id, err)
	}

	s.mu.Lock()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at;
	`, collection, id, string(data), time.Now().UnixMilli())
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to put document %s/%s: %w", collection, id, err)
	}
	log.Debug("Stored document", "collection", collection, "id", id)

	s.hub.publish(ctx, collection, s.load)
	return nil
}

func (s *store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE collection = ? AND id = ?", collection, id)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		log.Debug("Delete of missing document ignored", "collection", collection, "id", id)
		return nil
	}
	s.hub.publish(ctx, collection, s.load)
	return nil
}

func (s *store) Subscribe(ctx context.Context, target Target, onUpdate func([]Document)) (func(), error) {
	return s.hub.subscribe(ctx, target, onUpdate, s.load)
}

// load reads a full snapshot for subscribers. It detaches from the writer's
// context so a cancelled request does not starve other subscribers.
func (s *store) load(ctx context.Context, collection string) ([]Document, error) {
	return s.List(context.WithoutCancel(ctx), collection)
}
