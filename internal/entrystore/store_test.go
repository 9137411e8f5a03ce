package entrystore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/mauv0809/padel-tracker/internal/database"
	"github.com/mauv0809/padel-tracker/internal/entrystore"
	"github.com/mauv0809/padel-tracker/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rating struct {
	Player string `json:"player"`
	Date   string `json:"date"`
	Rating int    `json:"rating"`
	Type   string `json:"type,omitempty"`
}

// stores runs fn against the SQL store and the in-memory mock so both keep
// the same semantics.
func stores(t *testing.T, fn func(t *testing.T, s entrystore.Store)) {
	t.Run("sql", func(t *testing.T) {
		db, teardown, err := database.InitDB(":memory:", "", "")
		require.NoError(t, err)
		defer teardown()
		fn(t, entrystore.New(db, metrics.NewMock()))
	})
	t.Run("mock", func(t *testing.T) {
		fn(t, entrystore.NewMock())
	})
}

func TestPutGetReplace(t *testing.T) {
	stores(t, func(t *testing.T, s entrystore.Store) {
		ctx := context.Background()

		_, err := s.Get(ctx, entrystore.CollectionRatings, "r1")
		assert.ErrorIs(t, err, entrystore.ErrNotFound)

		require.NoError(t, s.Put(ctx, entrystore.CollectionRatings, "r1", rating{Player: "Ana", Date: "2025-01-01", Rating: 3, Type: "Practice"}))
		// Put replaces the whole document: the type field disappears.
		require.NoError(t, s.Put(ctx, entrystore.CollectionRatings, "r1", rating{Player: "Ana", Date: "2025-01-01", Rating: 5}))

		doc, err := s.Get(ctx, entrystore.CollectionRatings, "r1")
		require.NoError(t, err)
		var got rating
		require.NoError(t, doc.Decode(&got))
		assert.Equal(t, rating{Player: "Ana", Date: "2025-01-01", Rating: 5}, got)

		all, err := s.List(ctx, entrystore.CollectionRatings)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestQueryByEquality(t *testing.T) {
	stores(t, func(t *testing.T, s entrystore.Store) {
		ctx := context.Background()
		require.NoError(t, s.Put(ctx, entrystore.CollectionRatings, "a", rating{Player: "Ana", Date: "2025-01-01", Rating: 3}))
		require.NoError(t, s.Put(ctx, entrystore.CollectionRatings, "b", rating{Player: "Ana", Date: "2025-01-02", Rating: 4}))
		require.NoError(t, s.Put(ctx, entrystore.CollectionRatings, "c", rating{Player: "Ben", Date: "2025-01-01", Rating: 4}))
		require.NoError(t, s.Put(ctx, entrystore.CollectionTournamentResults, "d", rating{Player: "Ana", Date: "2025-01-01"}))

		docs, err := s.QueryByEquality(ctx, entrystore.CollectionRatings,
			entrystore.Eq("player", "Ana"), entrystore.Eq("date", "2025-01-01"))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "a", docs[0].ID)

		docs, err = s.QueryByEquality(ctx, entrystore.CollectionRatings, entrystore.Eq("rating", 4))
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "b", docs[0].ID)
		assert.Equal(t, "c", docs[1].ID)

		docs, err = s.QueryByEquality(ctx, entrystore.CollectionRatings, entrystore.Eq("player", "Nobody"))
		require.NoError(t, err)
		assert.Empty(t, docs)

		_, err = s.QueryByEquality(ctx, entrystore.CollectionRatings, entrystore.Eq("player') OR 1=1 --", "x"))
		assert.ErrorIs(t, err, entrystore.ErrInvalidField)
	})
}

func TestDelete(t *testing.T) {
	stores(t, func(t *testing.T, s entrystore.Store) {
		ctx := context.Background()
		require.NoError(t, s.Put(ctx, entrystore.CollectionTournamentResults, "t1", rating{Player: "Ana"}))
		require.NoError(t, s.Delete(ctx, entrystore.CollectionTournamentResults, "t1"))
		_, err := s.Get(ctx, entrystore.CollectionTournamentResults, "t1")
		assert.ErrorIs(t, err, entrystore.ErrNotFound)

		assert.NoError(t, s.Delete(ctx, entrystore.CollectionTournamentResults, "missing"), "deleting a missing id is a no-op")
	})
}

// recorder collects every snapshot a subscription receives.
type recorder struct {
	mu        sync.Mutex
	snapshots [][]entrystore.Document
}

func (r *recorder) onUpdate(docs []entrystore.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, docs)
}

func (r *recorder) sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, len(r.snapshots))
	for _, s := range r.snapshots {
		out = append(out, len(s))
	}
	return out
}

func TestSubscribeCollection(t *testing.T) {
	stores(t, func(t *testing.T, s entrystore.Store) {
		ctx := context.Background()
		require.NoError(t, s.Put(ctx, entrystore.CollectionRatings, "a", rating{Player: "Ana"}))

		rec := &recorder{}
		unsubscribe, err := s.Subscribe(ctx, entrystore.CollectionTarget(entrystore.CollectionRatings), rec.onUpdate)
		require.NoError(t, err)

		require.NoError(t, s.Put(ctx, entrystore.CollectionRatings, "b", rating{Player: "Ben"}))
		require.NoError(t, s.Put(ctx, entrystore.CollectionTournamentResults, "x", rating{Player: "Ben"}))
		require.NoError(t, s.Delete(ctx, entrystore.CollectionRatings, "a"))
		require.NoError(t, s.Delete(ctx, entrystore.CollectionRatings, "missing"))

		unsubscribe()
		unsubscribe()
		require.NoError(t, s.Put(ctx, entrystore.CollectionRatings, "c", rating{Player: "Cleo"}))

		// initial, after put b, after delete a. Other collections, no-op
		// deletes and post-unsubscribe writes are not delivered.
		assert.Equal(t, []int{1, 2, 1}, rec.sizes())
	})
}

func TestSubscribeDocument(t *testing.T) {
	stores(t, func(t *testing.T, s entrystore.Store) {
		ctx := context.Background()
		rec := &recorder{}
		unsubscribe, err := s.Subscribe(ctx, entrystore.DocumentTarget(entrystore.CollectionData, entrystore.RosterID), rec.onUpdate)
		require.NoError(t, err)
		defer unsubscribe()

		require.NoError(t, s.Put(ctx, entrystore.CollectionData, entrystore.RosterID, map[string][]string{"names": {"Ana"}}))
		require.NoError(t, s.Put(ctx, entrystore.CollectionData, "other", map[string]string{"k": "v"}))

		assert.Equal(t, []int{0, 1, 1}, rec.sizes())
		rec.mu.Lock()
		last := rec.snapshots[len(rec.snapshots)-1]
		rec.mu.Unlock()
		assert.Equal(t, entrystore.RosterID, last[0].ID)
		assert.JSONEq(t, `{"names":["Ana"]}`, string(last[0].Data))
	})
}

func TestSubscribeCountsPushes(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	m := metrics.NewMock()
	s := entrystore.New(db, m)
	ctx := context.Background()

	unsubscribe, err := s.Subscribe(ctx, entrystore.CollectionTarget(entrystore.CollectionRatings), func([]entrystore.Document) {})
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, s.Put(ctx, entrystore.CollectionRatings, "a", rating{Player: "Ana"}))
	assert.Equal(t, 1, m.SnapshotPushes(entrystore.CollectionRatings))
}

func TestMockHooks(t *testing.T) {
	m := entrystore.NewMock()
	m.PutFunc = func(collection, id string, doc any) error {
		return assert.AnError
	}
	err := m.Put(context.Background(), entrystore.CollectionRatings, "a", rating{})
	assert.ErrorIs(t, err, assert.AnError)
	require.Len(t, m.PutCalls, 1)

	docs, err := m.List(context.Background(), entrystore.CollectionRatings)
	require.NoError(t, err)
	assert.Empty(t, docs, "a failed put stores nothing")
}
