package platform

import (
	"log/slog"
	"time"

	"github.com/curator-app/curator/pkg/docstore"
	"github.com/curator-app/curator/pkg/kv"
	"github.com/curator-app/curator/pkg/notify"
)

// options holds the internal configuration for the curator app.
type options struct {
	backend   string
	substrate kv.Store
	logger    *slog.Logger
	clock     func() time.Time
	idFunc    docstore.IDFunc
	scheduler notify.Scheduler
}

// Option defines a functional option for configuring the app.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend: "file",
		clock:   time.Now,
		idFunc:  docstore.TimestampID,
	}
}

// WithBackend selects the substrate adapter by name (file, bolt, sqlite, memory).
func WithBackend(name string) Option {
	return func(o *options) { o.backend = name }
}

// WithSubstrate injects a custom substrate (e.g. a mock). When set, the
// backend name and path are ignored.
func WithSubstrate(s kv.Store) Option {
	return func(o *options) { o.substrate = s }
}

// WithLogger sets the logger for the services and adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithIDFunc overrides the identifier scheme for all services.
func WithIDFunc(fn docstore.IDFunc) Option {
	return func(o *options) { o.idFunc = fn }
}

// WithScheduler wires a notification scheduler so App.Reminders is available.
func WithScheduler(s notify.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}
