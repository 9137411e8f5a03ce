package notifier

import "github.com/mauv0809/padel-tracker/internal/padel"

// Notifier defines a high-level interface for sending notifications about tracker events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For logged ratings
	SendRating(entry padel.RatingEntry, mode padel.UpsertMode, dryRun bool) (string, error)

	// For logged or scheduled tournaments
	SendTournamentResult(entry padel.TournamentResultEntry, mode padel.UpsertMode, dryRun bool) (string, error)

	// For formatting responses for slash commands
	FormatRatingSummaryResponse(player string, window padel.DateWindow, summary *padel.RatingSummary) (any, error)
	FormatUpcomingResponse(player string, upcoming []padel.TournamentResultEntry) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
