package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	RatingsStored            *prometheus.CounterVec
	TournamentResultsStored  *prometheus.CounterVec
	TournamentResultsDeleted prometheus.Counter
	PlayersAdded             prometheus.Counter
	ValidationFailures       *prometheus.CounterVec
	StoreFailures            *prometheus.CounterVec
	SnapshotPushes           *prometheus.CounterVec
	SlackNotifSent           prometheus.Counter
	SlackNotifFailed         prometheus.Counter
	StartupTimeSeconds       prometheus.Gauge
}
