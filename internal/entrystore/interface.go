package entrystore

import "context"

// Store is the document database the tracker persists entries in. Writes
// always replace a whole document; there is no partial patch.
type Store interface {
	// Get returns the document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// List returns every document of a collection ordered by id.
	List(ctx context.Context, collection string) ([]Document, error)
	// QueryByEquality returns the documents whose fields equal every filter.
	QueryByEquality(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	// Put creates or replaces the document stored under id.
	Put(ctx context.Context, collection, id string, doc any) error
	// Delete removes a document. Deleting a missing id is not an error.
	Delete(ctx context.Context, collection, id string) error
	// Subscribe delivers the current contents of target immediately and again
	// after every change to it, until the returned func is called.
	// onUpdate runs on the writer's goroutine and must not block.
	Subscribe(ctx context.Context, target Target, onUpdate func([]Document)) (func(), error)
}
