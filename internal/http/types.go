package http

import (
	"net/http"

	"github.com/mauv0809/padel-tracker/internal/config"
	"github.com/mauv0809/padel-tracker/internal/entrystore"
	"github.com/mauv0809/padel-tracker/internal/metrics"
	"github.com/mauv0809/padel-tracker/internal/notifier"
	"github.com/mauv0809/padel-tracker/internal/pubsub"
	"github.com/mauv0809/padel-tracker/internal/tracker"
)

type Server struct {
	Tracker        tracker.Tracker
	Store          entrystore.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
