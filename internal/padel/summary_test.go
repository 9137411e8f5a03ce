package padel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratings(values ...int) []RatingEntry {
	out := make([]RatingEntry, 0, len(values))
	for _, v := range values {
		out = append(out, RatingEntry{Player: "P", Rating: v})
	}
	return out
}

func TestDeriveRatingSummary_NoData(t *testing.T) {
	for _, policy := range []ScorePolicy{PolicyMinMaxAvg, PolicyRoundedScore} {
		summary, err := DeriveRatingSummary(nil, policy)
		require.NoError(t, err)
		assert.Nil(t, summary)
	}
}

func TestDeriveRatingSummary_MinMaxAvg(t *testing.T) {
	summary, err := DeriveRatingSummary(ratings(2, 4, 3), PolicyMinMaxAvg)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.Min)
	assert.Equal(t, 4, summary.Max)
	assert.Equal(t, "3.00", summary.Avg)
	assert.Equal(t, 3, summary.Count)
	assert.Nil(t, summary.Score)

	summary, err = DeriveRatingSummary(ratings(1, 2), PolicyMinMaxAvg)
	require.NoError(t, err)
	assert.Equal(t, "1.50", summary.Avg)
}

func TestDeriveRatingSummary_RoundedScoreScenario(t *testing.T) {
	entries := []RatingEntry{
		{ID: "1", Player: "P", Date: "2025-01-01", Rating: 3},
		{ID: "2", Player: "P", Date: "2025-01-02", Rating: 5},
	}
	summary, err := DeriveRatingSummary(entries, PolicyRoundedScore)
	require.NoError(t, err)
	require.NotNil(t, summary.Score)
	assert.Equal(t, 4, *summary.Score, "mean 4.0")

	entries = append(entries, RatingEntry{ID: "3", Player: "P", Date: "2025-01-03", Rating: 5})
	summary, err = DeriveRatingSummary(entries, PolicyRoundedScore)
	require.NoError(t, err)
	assert.Equal(t, 4, *summary.Score, "mean 4.33")

	entries[0].Rating = 5
	summary, err = DeriveRatingSummary(entries, PolicyRoundedScore)
	require.NoError(t, err)
	assert.Equal(t, 5, *summary.Score, "mean 5")
}

func TestRoundedScore(t *testing.T) {
	tests := []struct {
		mean float64
		want int
	}{
		{4.7, 4},
		{4.71, 5},
		{4.69, 4},
		{1.0, 1},
		{2.99, 2},
		{5.0, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundedScore(tt.mean), "mean %v", tt.mean)
	}

	// 47/10 lands exactly on the threshold and must round down.
	summary, err := DeriveRatingSummary(ratings(5, 5, 5, 5, 5, 5, 5, 4, 4, 4), PolicyRoundedScore)
	require.NoError(t, err)
	assert.Equal(t, 4, *summary.Score)
}

func TestDeriveRatingSummary_UnknownPolicy(t *testing.T) {
	_, err := DeriveRatingSummary(ratings(1), ScorePolicy("median"))
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}
