package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/mauv0809/padel-tracker/internal/entrystore"
	"github.com/mauv0809/padel-tracker/internal/padel"
)

// RatingsView returns a player's ratings inside the requested window, their
// summary under the requested policy and the chart series. Without a window
// the view reports the span of the dates it found.
func (s *Service) RatingsView(ctx context.Context, q ViewQuery) (*RatingsView, error) {
	window, explicit, err := s.resolveWindow(q)
	if err != nil {
		s.metrics.IncValidationFailures("ratings_view")
		return nil, err
	}
	policy, err := s.resolvePolicy(q.Policy)
	if err != nil {
		s.metrics.IncValidationFailures("ratings_view")
		return nil, err
	}

	player := strings.TrimSpace(q.Player)
	view := &RatingsView{
		Player:  player,
		Window:  window,
		Entries: []padel.RatingEntry{},
		Labels:  []string{},
		Values:  []int{},
	}
	if player == "" {
		return view, nil
	}

	all, err := s.ratingsFor(ctx, entrystore.Eq("player", player))
	if err != nil {
		s.metrics.IncStoreFailures("ratings_view")
		return nil, err
	}
	view.Entries = padel.FilterByPlayerAndDate(all, player, window)
	if view.Summary, err = padel.DeriveRatingSummary(view.Entries, policy); err != nil {
		return nil, fmt.Errorf("failed to summarise ratings: %w", err)
	}
	for _, e := range view.Entries {
		view.Labels = append(view.Labels, e.Date)
		view.Values = append(view.Values, e.Rating)
	}
	if !explicit {
		view.Window = padel.DateSpan(view.Entries)
	}
	return view, nil
}

// TournamentView returns a player's played tournaments as chart points and
// the upcoming ones in date order.
func (s *Service) TournamentView(ctx context.Context, q ViewQuery) (*TournamentView, error) {
	window, explicit, err := s.resolveWindow(q)
	if err != nil {
		s.metrics.IncValidationFailures("tournament_view")
		return nil, err
	}

	player := strings.TrimSpace(q.Player)
	view := &TournamentView{
		Player:   player,
		Window:   window,
		Points:   []padel.ChartPoint{},
		Upcoming: []padel.TournamentResultEntry{},
		Labels:   []string{},
		Values:   []int{},
	}
	if player == "" {
		return view, nil
	}

	all, err := s.tournamentsFor(ctx, entrystore.Eq("player", player))
	if err != nil {
		s.metrics.IncStoreFailures("tournament_view")
		return nil, err
	}
	filtered := padel.FilterByPlayerAndDate(all, player, window)
	view.Points, view.Upcoming = padel.SplitTournamentEntries(filtered)
	for _, p := range view.Points {
		view.Labels = append(view.Labels, p.Date)
		view.Values = append(view.Values, p.Rank)
	}
	if !explicit {
		view.Window = padel.DateSpan(filtered)
	}
	return view, nil
}

// resolveWindow reports whether the caller asked for a window at all.
func (s *Service) resolveWindow(q ViewQuery) (padel.DateWindow, bool, error) {
	if q.Range != "" {
		w, err := padel.DateRangeShortcut(q.Range, s.now())
		if err != nil {
			return padel.DateWindow{}, false, invalid("range", fmt.Sprintf("Unknown range %q, expected week, month or year", q.Range))
		}
		return w, true, nil
	}
	w, err := normalizeWindow(q.Window)
	if err != nil {
		return padel.DateWindow{}, false, err
	}
	return w, w.MinDate != "" || w.MaxDate != "", nil
}

func (s *Service) resolvePolicy(p padel.ScorePolicy) (padel.ScorePolicy, error) {
	if p == "" {
		return s.policy, nil
	}
	policy, err := padel.ParseScorePolicy(string(p))
	if err != nil {
		return "", invalid("policy", fmt.Sprintf("Unknown score policy %q", p))
	}
	return policy, nil
}
