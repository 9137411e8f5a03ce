package notifier

import (
	"sync"

	"github.com/mauv0809/padel-tracker/internal/padel"
)

// SendTournamentResultCall holds the arguments for a call to SendTournamentResult.
type SendTournamentResultCall struct {
	Entry  padel.TournamentResultEntry
	Mode   padel.UpsertMode
	DryRun bool
}

// SendRatingCall holds the arguments for a call to SendRating.
type SendRatingCall struct {
	Entry  padel.RatingEntry
	Mode   padel.UpsertMode
	DryRun bool
}

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendRatingCalls           []SendRatingCall
	SendTournamentResultCalls []SendTournamentResultCall
	RatingSummaryCalls        []string
	UpcomingCalls             []string
	PlayerNotFoundCalls       []string

	// Spies
	SendRatingFunc                   func(entry padel.RatingEntry, mode padel.UpsertMode, dryRun bool) (string, error)
	SendTournamentResultFunc         func(entry padel.TournamentResultEntry, mode padel.UpsertMode, dryRun bool) (string, error)
	FormatRatingSummaryResponseFunc  func(player string, window padel.DateWindow, summary *padel.RatingSummary) (any, error)
	FormatUpcomingResponseFunc       func(player string, upcoming []padel.TournamentResultEntry) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRatingCalls = nil
	m.SendTournamentResultCalls = nil
	m.RatingSummaryCalls = nil
	m.UpcomingCalls = nil
	m.PlayerNotFoundCalls = nil
}

func (m *Mock) SendRating(entry padel.RatingEntry, mode padel.UpsertMode, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRatingCalls = append(m.SendRatingCalls, SendRatingCall{Entry: entry, Mode: mode, DryRun: dryRun})
	if m.SendRatingFunc != nil {
		return m.SendRatingFunc(entry, mode, dryRun)
	}
	return "mock-ts", nil
}

func (m *Mock) SendTournamentResult(entry padel.TournamentResultEntry, mode padel.UpsertMode, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTournamentResultCalls = append(m.SendTournamentResultCalls, SendTournamentResultCall{Entry: entry, Mode: mode, DryRun: dryRun})
	if m.SendTournamentResultFunc != nil {
		return m.SendTournamentResultFunc(entry, mode, dryRun)
	}
	return "mock-ts", nil
}

func (m *Mock) FormatRatingSummaryResponse(player string, window padel.DateWindow, summary *padel.RatingSummary) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RatingSummaryCalls = append(m.RatingSummaryCalls, player)
	if m.FormatRatingSummaryResponseFunc != nil {
		return m.FormatRatingSummaryResponseFunc(player, window, summary)
	}
	return map[string]string{"text": "summary for " + player}, nil
}

func (m *Mock) FormatUpcomingResponse(player string, upcoming []padel.TournamentResultEntry) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpcomingCalls = append(m.UpcomingCalls, player)
	if m.FormatUpcomingResponseFunc != nil {
		return m.FormatUpcomingResponseFunc(player, upcoming)
	}
	return map[string]string{"text": "upcoming for " + player}, nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayerNotFoundCalls = append(m.PlayerNotFoundCalls, query)
	if m.FormatPlayerNotFoundResponseFunc != nil {
		return m.FormatPlayerNotFoundResponseFunc(query)
	}
	return map[string]string{"text": "not found: " + query}, nil
}
