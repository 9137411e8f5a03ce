package main

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-tracker/internal/config"
	"github.com/mauv0809/padel-tracker/internal/database"
	"github.com/mauv0809/padel-tracker/internal/entrystore"
	"github.com/mauv0809/padel-tracker/internal/metrics"
	"github.com/mauv0809/padel-tracker/internal/padel"
	"github.com/mauv0809/padel-tracker/internal/pubsub"
	"github.com/mauv0809/padel-tracker/internal/tracker"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ratingDays      = 120
	ratingsPerWeek  = 3
	pastTournaments = 6
	nextTournaments = 2
)

var seedPlayers = []string{"Seeder Player A", "Seeder Player B", "Seeder Player C", "Seeder Player D"}

func main() {
	log.Info("Starting database seeder...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	metricsSvc := metrics.NewService(prometheus.NewRegistry())
	store := entrystore.New(db, metricsSvc)
	tr := tracker.New(store, pubsub.NewLocal(), metricsSvc, cfg.Policy())

	ctx := context.Background()
	startTime := time.Now()

	for _, name := range seedPlayers {
		if _, err := tr.AddPlayer(ctx, name); err != nil && !errors.Is(err, tracker.ErrValidation) {
			log.Fatalf("Failed to add player %s: %s", name, err)
		}
	}
	log.Info("Ensured seed players exist.", "players", len(seedPlayers))

	today := time.Now()
	ratings := 0
	for _, name := range seedPlayers {
		for day := 0; day < ratingDays; day++ {
			if rand.Intn(7) >= ratingsPerWeek {
				continue
			}
			in := tracker.RatingInput{
				Player: name,
				Date:   padel.FormatDate(today.AddDate(0, 0, -day)),
				Rating: 1 + rand.Intn(5),
				Type:   string(padel.GameTypes[rand.Intn(len(padel.GameTypes))]),
			}
			if _, err := tr.SubmitRating(ctx, in); err != nil {
				log.Fatalf("Failed to seed rating: %s", err)
			}
			ratings++
		}
	}
	log.Info("Seeded ratings", "count", ratings)

	tournaments := 0
	for _, name := range seedPlayers {
		for i := 1; i <= pastTournaments; i++ {
			in := tracker.TournamentInput{
				Player:         name,
				TournamentName: "Seeded Open",
				Date:           padel.FormatDate(today.AddDate(0, 0, -14*i)),
				Result:         string(padel.Results[rand.Intn(len(padel.Results))]),
			}
			if _, err := tr.SubmitTournamentResult(ctx, in); err != nil {
				log.Fatalf("Failed to seed tournament result: %s", err)
			}
			tournaments++
		}
		for i := 1; i <= nextTournaments; i++ {
			in := tracker.TournamentInput{
				Player:         name,
				TournamentName: "Seeded Cup",
				Date:           padel.FormatDate(today.AddDate(0, 0, 21*i)),
			}
			if _, err := tr.SubmitTournamentResult(ctx, in); err != nil {
				log.Fatalf("Failed to seed upcoming tournament: %s", err)
			}
			tournaments++
		}
	}
	log.Info("Seeded tournaments", "count", tournaments)

	log.Info("Seeding finished.", "duration", time.Since(startTime))
}
