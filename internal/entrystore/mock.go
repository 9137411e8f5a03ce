package entrystore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// PutCall holds the arguments for a call to Put.
type PutCall struct {
	Collection string
	ID         string
	Doc        any
}

// DeleteCall holds the arguments for a call to Delete.
type DeleteCall struct {
	Collection string
	ID         string
}

// Mock is an in-memory Store with the same semantics as the SQL store,
// including subscriptions. The Func hooks replace the default behaviour.
// It is safe for concurrent use.
type Mock struct {
	mu   sync.Mutex
	docs map[string]map[string]json.RawMessage
	hub  *hub

	// Spies for method calls
	PutFunc             func(collection, id string, doc any) error
	DeleteFunc          func(collection, id string) error
	QueryByEqualityFunc func(collection string, filters ...Filter) ([]Document, error)

	// Call records
	PutCalls             []PutCall
	DeleteCalls          []DeleteCall
	QueryByEqualityCalls [][]Filter
}

var _ Store = (*Mock)(nil)

// NewMock creates an empty in-memory store.
func NewMock() *Mock {
	return &Mock{
		docs: make(map[string]map[string]json.RawMessage),
		hub:  newHub(nil),
	}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = nil
	m.DeleteCalls = nil
	m.QueryByEqualityCalls = nil
}

func (m *Mock) Get(ctx context.Context, collection, id string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[collection][id]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	return &Document{ID: id, Data: data}, nil
}

func (m *Mock) List(ctx context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(collection, nil)
}

func (m *Mock) QueryByEquality(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	m.mu.Lock()
	m.QueryByEqualityCalls = append(m.QueryByEqualityCalls, filters)
	fn := m.QueryByEqualityFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(collection, filters...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(collection, filters)
}

func (m *Mock) Put(ctx context.Context, collection, id string, doc any) error {
	m.mu.Lock()
	m.PutCalls = append(m.PutCalls, PutCall{Collection: collection, ID: id, Doc: doc})
	fn := m.PutFunc
	m.mu.Unlock()
	if fn != nil {
		if err := fn(collection, id, doc); err != nil {
			return err
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string]json.RawMessage)
	}
	m.docs[collection][id] = data
	m.mu.Unlock()

	m.hub.publish(ctx, collection, m.List)
	return nil
}

func (m *Mock) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, DeleteCall{Collection: collection, ID: id})
	fn := m.DeleteFunc
	m.mu.Unlock()
	if fn != nil {
		if err := fn(collection, id); err != nil {
			return err
		}
	}

	m.mu.Lock()
	_, existed := m.docs[collection][id]
	delete(m.docs[collection], id)
	m.mu.Unlock()

	if existed {
		m.hub.publish(ctx, collection, m.List)
	}
	return nil
}

func (m *Mock) Subscribe(ctx context.Context, target Target, onUpdate func([]Document)) (func(), error) {
	return m.hub.subscribe(ctx, target, onUpdate, m.List)
}

// snapshot must be called with m.mu held.
func (m *Mock) snapshot(collection string, filters []Filter) ([]Document, error) {
	for _, f := range filters {
		if err := f.validate(); err != nil {
			return nil, err
		}
	}
	ids := make([]string, 0, len(m.docs[collection]))
	for id := range m.docs[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		data := m.docs[collection][id]
		if len(filters) > 0 && !matches(data, filters) {
			continue
		}
		docs = append(docs, Document{ID: id, Data: data})
	}
	return docs, nil
}

func matches(data json.RawMessage, filters []Filter) bool {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}
	for _, f := range filters {
		v, ok := fields[f.Field]
		if !ok || fmt.Sprint(v) != fmt.Sprint(f.Value) {
			return false
		}
	}
	return true
}
