package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RatingsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_ratings_stored_total",
			Help: "The total number of ratings written, by upsert mode.",
		}, []string{"mode"}),
		TournamentResultsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_tournament_results_stored_total",
			Help: "The total number of tournament results written, by upsert mode.",
		}, []string{"mode"}),
		TournamentResultsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_tournament_results_deleted_total",
			Help: "The total number of scheduled tournaments deleted.",
		}),
		PlayersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_players_added_total",
			Help: "The total number of players added to the roster.",
		}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_validation_failures_total",
			Help: "The total number of submissions rejected before reaching the store.",
		}, []string{"operation"}),
		StoreFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_store_failures_total",
			Help: "The total number of failed entry store calls.",
		}, []string{"operation"}),
		SnapshotPushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_snapshot_pushes_total",
			Help: "The total number of collection snapshots pushed to subscribers.",
		}, []string{"collection"}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padel_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RatingsStored,
		s.TournamentResultsStored,
		s.TournamentResultsDeleted,
		s.PlayersAdded,
		s.ValidationFailures,
		s.StoreFailures,
		s.SnapshotPushes,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRatingsStored(mode string) {
	s.RatingsStored.WithLabelValues(mode).Inc()
}

func (s *Service) IncTournamentResultsStored(mode string) {
	s.TournamentResultsStored.WithLabelValues(mode).Inc()
}

func (s *Service) IncTournamentResultsDeleted() {
	s.TournamentResultsDeleted.Inc()
}

func (s *Service) IncPlayersAdded() {
	s.PlayersAdded.Inc()
}

func (s *Service) IncValidationFailures(operation string) {
	s.ValidationFailures.WithLabelValues(operation).Inc()
}

func (s *Service) IncStoreFailures(operation string) {
	s.StoreFailures.WithLabelValues(operation).Inc()
}

func (s *Service) IncSnapshotPushes(collection string) {
	s.SnapshotPushes.WithLabelValues(collection).Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
