package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRatingsStored(mode string)
	IncTournamentResultsStored(mode string)
	IncTournamentResultsDeleted()
	IncPlayersAdded()
	IncValidationFailures(operation string)
	IncStoreFailures(operation string)
	IncSnapshotPushes(collection string)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
