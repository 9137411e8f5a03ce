package padel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRatings() []RatingEntry {
	return []RatingEntry{
		{ID: "1", Player: "Ana", Date: "2025-01-01", Rating: 3},
		{ID: "2", Player: "Ben", Date: "2025-01-02", Rating: 4},
		{ID: "3", Player: "Ana", Date: "2025-01-05", Rating: 5},
		{ID: "4", Player: "Ana", Date: "2025-02-01", Rating: 2},
	}
}

func ids(entries []RatingEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterByPlayerAndDate(t *testing.T) {
	entries := sampleRatings()

	tests := []struct {
		name   string
		player string
		window DateWindow
		want   []string
	}{
		{"empty player yields nothing", "", DateWindow{}, []string{}},
		{"player without window", "Ana", DateWindow{}, []string{"1", "3", "4"}},
		{"inclusive bounds", "Ana", DateWindow{MinDate: "2025-01-01", MaxDate: "2025-01-05"}, []string{"1", "3"}},
		{"min only", "Ana", DateWindow{MinDate: "2025-01-02"}, []string{"3", "4"}},
		{"max only", "Ana", DateWindow{MaxDate: "2025-01-04"}, []string{"1"}},
		{"unpadded bounds compare as dates", "Ana", DateWindow{MinDate: "2025-1-5", MaxDate: "2025-2-1"}, []string{"3", "4"}},
		{"unknown player", "Zed", DateWindow{}, []string{}},
		{"invalid bound matches nothing", "Ana", DateWindow{MinDate: "soon"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPlayerAndDate(entries, tt.player, tt.window)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterByPlayerAndDate_Idempotent(t *testing.T) {
	window := DateWindow{MinDate: "2025-01-01", MaxDate: "2025-01-31"}
	once := FilterByPlayerAndDate(sampleRatings(), "Ana", window)
	twice := FilterByPlayerAndDate(once, "Ana", window)
	assert.Equal(t, once, twice)
}

func TestSortByDate(t *testing.T) {
	entries := []RatingEntry{
		{ID: "c", Date: "2025-03-01"},
		{ID: "a", Date: "2025-1-15"},
		{ID: "x", Date: "garbage"},
		{ID: "b", Date: "2025-02-01"},
		{ID: "b2", Date: "2025-02-01"},
	}
	SortByDate(entries)
	assert.Equal(t, []string{"a", "b", "b2", "c", "x"}, ids(entries))
}

func TestDateSpan(t *testing.T) {
	assert.Equal(t, DateWindow{}, DateSpan([]RatingEntry{}))
	span := DateSpan(sampleRatings())
	assert.Equal(t, DateWindow{MinDate: "2025-01-01", MaxDate: "2025-02-01"}, span)
}
