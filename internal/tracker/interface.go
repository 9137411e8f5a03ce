package tracker

import (
	"context"

	"github.com/mauv0809/padel-tracker/internal/padel"
)

// Tracker records ratings and tournament results and derives the views
// served to clients.
type Tracker interface {
	Roster(ctx context.Context) (padel.Roster, error)
	AddPlayer(ctx context.Context, name string) (padel.Roster, error)
	SharedPlayer(ctx context.Context, player string) (string, error)

	SubmitRating(ctx context.Context, in RatingInput) (SubmitResult, error)
	SubmitTournamentResult(ctx context.Context, in TournamentInput) (SubmitResult, error)
	DeleteTournamentResult(ctx context.Context, id string) error

	RatingsView(ctx context.Context, q ViewQuery) (*RatingsView, error)
	TournamentView(ctx context.Context, q ViewQuery) (*TournamentView, error)

	BackfillRatingTypes(ctx context.Context) (int, error)
}
