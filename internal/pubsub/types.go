package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
// It doubles as the topic name.
type EventType string

const (
	EventRatingLogged           EventType = "rating-logged"
	EventTournamentResultLogged EventType = "tournament-result-logged"
)
