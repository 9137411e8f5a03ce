package entrystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

const (
	// CollectionData holds singleton documents such as the roster.
	CollectionData              = "data"
	CollectionRatings           = "ratings"
	CollectionTournamentResults = "tournamentResults"

	// RosterID is the id of the roster document inside CollectionData.
	RosterID = "players"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrInvalidField = errors.New("invalid filter field")
)

var fieldPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Document is a stored document: its id plus the JSON encoded fields.
type Document struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Decode unmarshals the document fields into v.
func (d Document) Decode(v any) error {
	if err := json.Unmarshal(d.Data, v); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", d.ID, err)
	}
	return nil
}

// Filter is a single field == value condition.
type Filter struct {
	Field string
	Value any
}

// Eq builds a Filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

func (f Filter) validate() error {
	if !fieldPattern.MatchString(f.Field) {
		return fmt.Errorf("%w: %q", ErrInvalidField, f.Field)
	}
	return nil
}

// Target selects what a subscription watches: a whole collection, or a single
// document when ID is set.
type Target struct {
	Collection string
	ID         string
}

// CollectionTarget watches every document of collection.
func CollectionTarget(collection string) Target {
	return Target{Collection: collection}
}

// DocumentTarget watches a single document.
func DocumentTarget(collection, id string) Target {
	return Target{Collection: collection, ID: id}
}

func (t Target) narrow(docs []Document) []Document {
	if t.ID == "" {
		return docs
	}
	for _, d := range docs {
		if d.ID == t.ID {
			return []Document{d}
		}
	}
	return []Document{}
}
