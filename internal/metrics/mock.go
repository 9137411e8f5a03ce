package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                       sync.Mutex
	ratingsStored            map[string]int
	tournamentResultsStored  map[string]int
	tournamentResultsDeleted int
	playersAdded             int
	validationFailures       map[string]int
	storeFailures            map[string]int
	snapshotPushes           map[string]int
	slackNotifSent           int
	slackNotifFailed         int
	startupTime              float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		ratingsStored:           make(map[string]int),
		tournamentResultsStored: make(map[string]int),
		validationFailures:      make(map[string]int),
		storeFailures:           make(map[string]int),
		snapshotPushes:          make(map[string]int),
	}
}

func (m *Mock) IncRatingsStored(mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingsStored[mode]++
}

func (m *Mock) IncTournamentResultsStored(mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentResultsStored[mode]++
}

func (m *Mock) IncTournamentResultsDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentResultsDeleted++
}

func (m *Mock) IncPlayersAdded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersAdded++
}

func (m *Mock) IncValidationFailures(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationFailures[operation]++
}

func (m *Mock) IncStoreFailures(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeFailures[operation]++
}

func (m *Mock) IncSnapshotPushes(collection string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotPushes[collection]++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// RatingsStored returns how often IncRatingsStored was called with mode.
func (m *Mock) RatingsStored(mode string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ratingsStored[mode]
}

// TournamentResultsStored returns how often IncTournamentResultsStored was called with mode.
func (m *Mock) TournamentResultsStored(mode string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentResultsStored[mode]
}

func (m *Mock) TournamentResultsDeleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentResultsDeleted
}

func (m *Mock) PlayersAdded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersAdded
}

func (m *Mock) ValidationFailures(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validationFailures[operation]
}

func (m *Mock) StoreFailures(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeFailures[operation]
}

func (m *Mock) SnapshotPushes(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotPushes[collection]
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
