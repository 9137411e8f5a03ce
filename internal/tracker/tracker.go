package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/padel-tracker/internal/entrystore"
	"github.com/mauv0809/padel-tracker/internal/metrics"
	"github.com/mauv0809/padel-tracker/internal/padel"
	"github.com/mauv0809/padel-tracker/internal/pubsub"
)

// Service implements Tracker on top of an entrystore.Store. It keeps no
// entry state of its own: every call reads the store and hands the snapshot
// to the padel engine.
type Service struct {
	store   entrystore.Store
	pubsub  pubsub.PubSubClient
	metrics metrics.Metrics
	policy  padel.ScorePolicy
	now     func() time.Time
}

var _ Tracker = (*Service)(nil)

// New creates a Service. policy is the deployment's default score policy.
func New(store entrystore.Store, ps pubsub.PubSubClient, m metrics.Metrics, policy padel.ScorePolicy) *Service {
	return &Service{
		store:   store,
		pubsub:  ps,
		metrics: m,
		policy:  policy,
		now:     time.Now,
	}
}

// Roster returns the roster document, creating it empty on first access.
func (s *Service) Roster(ctx context.Context) (padel.Roster, error) {
	doc, err := s.store.Get(ctx, entrystore.CollectionData, entrystore.RosterID)
	if errors.Is(err, entrystore.ErrNotFound) {
		roster := padel.Roster{Names: []string{}}
		if err := s.store.Put(ctx, entrystore.CollectionData, entrystore.RosterID, roster); err != nil {
			s.metrics.IncStoreFailures("roster")
			return padel.Roster{}, fmt.Errorf("failed to create roster: %w", err)
		}
		log.Info("Created empty roster")
		return roster, nil
	}
	if err != nil {
		s.metrics.IncStoreFailures("roster")
		return padel.Roster{}, fmt.Errorf("failed to load roster: %w", err)
	}

	var roster padel.Roster
	if err := doc.Decode(&roster); err != nil {
		return padel.Roster{}, err
	}
	if roster.Names == nil {
		roster.Names = []string{}
	}
	return roster, nil
}

// AddPlayer appends a new name to the roster. Names are trimmed and compared
// case-sensitively.
func (s *Service) AddPlayer(ctx context.Context, name string) (padel.Roster, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		s.metrics.IncValidationFailures("add_player")
		return padel.Roster{}, invalid("name", "Player name must not be empty")
	}

	roster, err := s.Roster(ctx)
	if err != nil {
		return padel.Roster{}, err
	}
	if roster.Contains(name) {
		s.metrics.IncValidationFailures("add_player")
		return padel.Roster{}, invalid("name", fmt.Sprintf("Player %q already exists", name))
	}

	updated := padel.Roster{Names: append(append([]string{}, roster.Names...), name)}
	if err := s.store.Put(ctx, entrystore.CollectionData, entrystore.RosterID, updated); err != nil {
		s.metrics.IncStoreFailures("add_player")
		return padel.Roster{}, fmt.Errorf("failed to add player: %w", err)
	}
	s.metrics.IncPlayersAdded()
	log.Info("Player added", "player", name, "roster_size", len(updated.Names))
	return updated, nil
}

// SharedPlayer resolves a player named in a shared link. A name missing from
// the roster resolves to the empty string.
func (s *Service) SharedPlayer(ctx context.Context, player string) (string, error) {
	roster, err := s.Roster(ctx)
	if err != nil {
		return "", err
	}
	return ResolveSharedPlayer(roster, player), nil
}

// SubmitRating validates the input and stores it, replacing the entry that
// already exists for the same player and date.
func (s *Service) SubmitRating(ctx context.Context, in RatingInput) (SubmitResult, error) {
	entry, err := validateRating(in)
	if err != nil {
		s.metrics.IncValidationFailures("submit_rating")
		return SubmitResult{}, err
	}

	existing, err := s.ratingsFor(ctx, entrystore.Eq("player", entry.Player), entrystore.Eq("date", entry.Date))
	if err != nil {
		s.metrics.IncStoreFailures("submit_rating")
		return SubmitResult{}, err
	}

	res := padel.ResolveUpsert(existing, entry)
	id := resolvedID(res)
	if err := s.store.Put(ctx, entrystore.CollectionRatings, id, entry); err != nil {
		s.metrics.IncStoreFailures("submit_rating")
		return SubmitResult{}, fmt.Errorf("failed to store rating: %w", err)
	}
	s.metrics.IncRatingsStored(string(res.Mode))
	log.Info("Rating stored", "player", entry.Player, "date", entry.Date, "rating", entry.Rating, "mode", res.Mode)

	s.publish(pubsub.EventRatingLogged, RatingLoggedEvent{
		ID:     id,
		Player: entry.Player,
		Date:   entry.Date,
		Rating: entry.Rating,
		Type:   string(entry.Type),
		Mode:   string(res.Mode),
	})
	return SubmitResult{ID: id, Mode: res.Mode}, nil
}

// SubmitTournamentResult validates and stores a tournament entry. A result
// is required unless the date lies in the future, in which case any given
// result is dropped and the entry is stored as scheduled.
func (s *Service) SubmitTournamentResult(ctx context.Context, in TournamentInput) (SubmitResult, error) {
	entry, err := validateTournament(in, s.now())
	if err != nil {
		s.metrics.IncValidationFailures("submit_tournament")
		return SubmitResult{}, err
	}

	existing, err := s.tournamentsFor(ctx, entrystore.Eq("player", entry.Player), entrystore.Eq("date", entry.Date))
	if err != nil {
		s.metrics.IncStoreFailures("submit_tournament")
		return SubmitResult{}, err
	}

	res := padel.ResolveUpsert(existing, entry)
	id := resolvedID(res)
	if err := s.store.Put(ctx, entrystore.CollectionTournamentResults, id, entry); err != nil {
		s.metrics.IncStoreFailures("submit_tournament")
		return SubmitResult{}, fmt.Errorf("failed to store tournament result: %w", err)
	}
	s.metrics.IncTournamentResultsStored(string(res.Mode))
	log.Info("Tournament result stored", "player", entry.Player, "tournament", entry.TournamentName, "date", entry.Date, "played", entry.Played(), "mode", res.Mode)

	event := TournamentResultLoggedEvent{
		ID:             id,
		Player:         entry.Player,
		TournamentName: entry.TournamentName,
		Date:           entry.Date,
		Mode:           string(res.Mode),
	}
	if entry.Played() {
		event.Result = string(*entry.Result)
	}
	s.publish(pubsub.EventTournamentResultLogged, event)
	return SubmitResult{ID: id, Mode: res.Mode}, nil
}

// DeleteTournamentResult removes a scheduled tournament by id. Unknown ids
// are a no-op. Entries that already carry a result cannot be deleted.
func (s *Service) DeleteTournamentResult(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		s.metrics.IncValidationFailures("delete_tournament")
		return invalid("id", "Tournament result id must not be empty")
	}

	doc, err := s.store.Get(ctx, entrystore.CollectionTournamentResults, id)
	if errors.Is(err, entrystore.ErrNotFound) {
		log.Debug("Tournament result already gone", "id", id)
		return nil
	}
	if err != nil {
		s.metrics.IncStoreFailures("delete_tournament")
		return fmt.Errorf("failed to load tournament result %s: %w", id, err)
	}
	var entry padel.TournamentResultEntry
	if err := doc.Decode(&entry); err != nil {
		return err
	}
	if entry.Played() {
		s.metrics.IncValidationFailures("delete_tournament")
		return invalid("id", "Only upcoming tournaments can be deleted")
	}

	if err := s.store.Delete(ctx, entrystore.CollectionTournamentResults, id); err != nil {
		s.metrics.IncStoreFailures("delete_tournament")
		return fmt.Errorf("failed to delete tournament result %s: %w", id, err)
	}
	s.metrics.IncTournamentResultsDeleted()
	log.Info("Tournament result deleted", "id", id)
	return nil
}

// BackfillRatingTypes sets the Practice type on every rating stored without
// one and returns how many were updated.
func (s *Service) BackfillRatingTypes(ctx context.Context) (int, error) {
	ratings, err := s.ratingsFor(ctx)
	if err != nil {
		s.metrics.IncStoreFailures("backfill_rating_types")
		return 0, err
	}

	updated := 0
	for _, r := range ratings {
		if r.Type != "" {
			continue
		}
		id := r.ID
		r.ID = ""
		r.Type = padel.GameTypePractice
		if err := s.store.Put(ctx, entrystore.CollectionRatings, id, r); err != nil {
			s.metrics.IncStoreFailures("backfill_rating_types")
			return updated, fmt.Errorf("failed to update rating %s: %w", id, err)
		}
		updated++
		log.Debug("Backfilled rating type", "id", id, "player", r.Player, "date", r.Date)
	}
	log.Info("Rating type backfill finished", "checked", len(ratings), "updated", updated)
	return updated, nil
}

func (s *Service) publish(topic pubsub.EventType, event any) {
	if s.pubsub == nil {
		return
	}
	if err := s.pubsub.SendMessage(topic, event); err != nil {
		log.Error("Failed to publish event", "topic", topic, "error", err)
	}
}

func (s *Service) ratingsFor(ctx context.Context, filters ...entrystore.Filter) ([]padel.RatingEntry, error) {
	docs, err := s.store.QueryByEquality(ctx, entrystore.CollectionRatings, filters...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	entries := make([]padel.RatingEntry, 0, len(docs))
	for _, doc := range docs {
		var e padel.RatingEntry
		if err := doc.Decode(&e); err != nil {
			log.Warn("Skipping malformed rating", "id", doc.ID, "error", err)
			continue
		}
		e.ID = doc.ID
		entries = append(entries, e)
	}
	padel.SortByDate(entries)
	return entries, nil
}

func (s *Service) tournamentsFor(ctx context.Context, filters ...entrystore.Filter) ([]padel.TournamentResultEntry, error) {
	docs, err := s.store.QueryByEquality(ctx, entrystore.CollectionTournamentResults, filters...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournament results: %w", err)
	}
	entries := make([]padel.TournamentResultEntry, 0, len(docs))
	for _, doc := range docs {
		var e padel.TournamentResultEntry
		if err := doc.Decode(&e); err != nil {
			log.Warn("Skipping malformed tournament result", "id", doc.ID, "error", err)
			continue
		}
		e.ID = doc.ID
		entries = append(entries, e)
	}
	padel.SortByDate(entries)
	return entries, nil
}

func resolvedID(res padel.Resolution) string {
	if res.Mode == padel.ModeReplace {
		return res.TargetID
	}
	return uuid.NewString()
}
