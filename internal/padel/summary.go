package padel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ScorePolicy selects how a list of ratings is summarised.
type ScorePolicy string

const (
	// PolicyMinMaxAvg reports the minimum, maximum and mean rating.
	PolicyMinMaxAvg ScorePolicy = "minmaxavg"
	// PolicyRoundedScore reports a single 0-5 score: 5 once the mean is above
	// RoundUpThreshold, otherwise the mean truncated to an integer.
	PolicyRoundedScore ScorePolicy = "roundedScore"
)

// RoundUpThreshold is the mean a player must exceed to be awarded a 5.
const RoundUpThreshold = 4.7

var ErrUnknownPolicy = errors.New("unknown score policy")

// ParseScorePolicy validates a policy name.
func ParseScorePolicy(s string) (ScorePolicy, error) {
	switch p := ScorePolicy(s); p {
	case PolicyMinMaxAvg, PolicyRoundedScore:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// RatingSummary is the derived view of a filtered rating list. Only the
// fields belonging to Policy are populated.
type RatingSummary struct {
	Policy ScorePolicy `json:"policy"`
	Count  int         `json:"count"`
	Min    int         `json:"min,omitempty"`
	Max    int         `json:"max,omitempty"`
	Avg    string      `json:"avg,omitempty"`
	Score  *int        `json:"score,omitempty"`
}

// DeriveRatingSummary summarises entries under policy. It returns nil when
// entries is empty.
func DeriveRatingSummary(entries []RatingEntry, policy ScorePolicy) (*RatingSummary, error) {
	if _, err := ParseScorePolicy(string(policy)); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	lowest, highest, sum := entries[0].Rating, entries[0].Rating, 0
	for _, e := range entries {
		sum += e.Rating
		if e.Rating < lowest {
			lowest = e.Rating
		}
		if e.Rating > highest {
			highest = e.Rating
		}
	}
	mean := float64(sum) / float64(len(entries))

	summary := &RatingSummary{Policy: policy, Count: len(entries)}
	switch policy {
	case PolicyMinMaxAvg:
		summary.Min = lowest
		summary.Max = highest
		summary.Avg = strconv.FormatFloat(mean, 'f', 2, 64)
	case PolicyRoundedScore:
		score := RoundedScore(mean)
		summary.Score = &score
	}
	return summary, nil
}

// RoundedScore applies the grading curve: strictly above the threshold rounds
// up to 5, anything else is truncated toward zero.
func RoundedScore(mean float64) int {
	if mean > RoundUpThreshold {
		return 5
	}
	return int(math.Trunc(mean))
}
