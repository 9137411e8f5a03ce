package http

import (
	"net/http"

	"github.com/mauv0809/padel-tracker/internal/config"
	"github.com/mauv0809/padel-tracker/internal/entrystore"
	"github.com/mauv0809/padel-tracker/internal/http/handlers"
	"github.com/mauv0809/padel-tracker/internal/metrics"
	"github.com/mauv0809/padel-tracker/internal/notifier"
	"github.com/mauv0809/padel-tracker/internal/pubsub"
	"github.com/mauv0809/padel-tracker/internal/tracker"
)

func NewServer(tr tracker.Tracker, store entrystore.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Tracker:        tr,
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	verifySlack := slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(handlers.ListPlayersHandler(s.Tracker), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(handlers.AddPlayerHandler(s.Tracker), paramsMiddleware))

	s.Router.Handle("GET /ratings", Chain(handlers.RatingsViewHandler(s.Tracker), paramsMiddleware))
	s.Router.Handle("POST /ratings", Chain(handlers.SubmitRatingHandler(s.Tracker), paramsMiddleware))

	s.Router.Handle("GET /tournaments", Chain(handlers.TournamentViewHandler(s.Tracker), paramsMiddleware))
	s.Router.Handle("POST /tournaments", Chain(handlers.SubmitTournamentHandler(s.Tracker), paramsMiddleware))
	s.Router.Handle("DELETE /tournaments/{id}", Chain(handlers.DeleteTournamentHandler(s.Tracker), paramsMiddleware))

	s.Router.Handle("GET /ranges/{kind}", Chain(handlers.DateRangeHandler(), paramsMiddleware))
	s.Router.Handle("GET /share", Chain(handlers.ShareHandler(s.Tracker, s.Cfg.PublicBaseURL), paramsMiddleware))
	s.Router.Handle("GET /subscribe/{collection}", Chain(handlers.SubscribeHandler(s.Store), paramsMiddleware))

	s.Router.Handle("POST /migrate/rating-types", Chain(handlers.BackfillRatingTypesHandler(s.Tracker), paramsMiddleware))

	s.Router.Handle("POST /notify-tournament-result", Chain(handlers.NotifyTournamentResultHandler(s.Notifier, s.pubsub), paramsMiddleware))
	s.Router.Handle("POST /notify-rating", Chain(handlers.NotifyRatingHandler(s.Notifier, s.pubsub), paramsMiddleware))
	s.Router.Handle("POST /slack/command/summary", Chain(handlers.SummaryCommandHandler(s.Tracker, s.Notifier), paramsMiddleware, verifySlack))
	s.Router.Handle("POST /slack/command/upcoming", Chain(handlers.UpcomingCommandHandler(s.Tracker, s.Notifier), paramsMiddleware, verifySlack))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
