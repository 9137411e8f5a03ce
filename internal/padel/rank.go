package padel

import "fmt"

// MapResultToRank returns the fixed 1..7 rank for result, or 0 and an error
// for an unknown label.
func MapResultToRank(result Result) (int, error) {
	for i, r := range Results {
		if r == result {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown tournament result %q", result)
}

// RankToLabel is the inverse of MapResultToRank.
func RankToLabel(rank int) (Result, error) {
	if rank < 1 || rank > len(Results) {
		return "", fmt.Errorf("tournament rank %d out of range 1..%d", rank, len(Results))
	}
	return Results[rank-1], nil
}

// ParseResult validates a result label.
func ParseResult(s string) (Result, error) {
	r := Result(s)
	if _, err := MapResultToRank(r); err != nil {
		return "", err
	}
	return r, nil
}

// ChartPoint is one bar of the tournament chart.
type ChartPoint struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	TournamentName string `json:"tournamentName"`
	Result         Result `json:"result"`
	Rank           int    `json:"rank"`
}

// SplitTournamentEntries separates played entries, mapped to chart points in
// input order, from upcoming ones, which are returned ascending by date.
// Entries carrying an unknown result label are left out of both.
func SplitTournamentEntries(entries []TournamentResultEntry) ([]ChartPoint, []TournamentResultEntry) {
	points := make([]ChartPoint, 0, len(entries))
	upcoming := make([]TournamentResultEntry, 0)
	for _, e := range entries {
		if !e.Played() {
			upcoming = append(upcoming, e)
			continue
		}
		rank, err := MapResultToRank(*e.Result)
		if err != nil {
			continue
		}
		points = append(points, ChartPoint{
			ID:             e.ID,
			Date:           e.Date,
			TournamentName: e.TournamentName,
			Result:         *e.Result,
			Rank:           rank,
		})
	}
	SortByDate(upcoming)
	return points, upcoming
}
