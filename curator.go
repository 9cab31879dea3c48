package curator

import (
	"log/slog"
	"time"

	"github.com/curator-app/curator/internal/platform"
	"github.com/curator-app/curator/pkg/docstore"
	"github.com/curator-app/curator/pkg/kv"
	"github.com/curator-app/curator/pkg/notify"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// App bundles the wired domain services over one shared substrate.
type App = platform.App

// --- Configuration ---

// Option defines a functional option for configuring the app.
type Option = platform.Option

// WithBackend selects the substrate adapter by name (file, bolt, sqlite, memory).
func WithBackend(name string) Option {
	return platform.WithBackend(name)
}

// WithSubstrate injects a custom substrate adapter.
func WithSubstrate(s kv.Store) Option {
	return platform.WithSubstrate(s)
}

// WithLogger sets the logger for the services and adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithIDFunc overrides the identifier scheme for all services.
// docstore.TimestampID is the default; docstore.UUID is collision-proof.
func WithIDFunc(fn docstore.IDFunc) Option {
	return platform.WithIDFunc(fn)
}

// WithScheduler wires a notification scheduler so App.Reminders is available.
func WithScheduler(s notify.Scheduler) Option {
	return platform.WithScheduler(s)
}

// --- Factory ---

// Open resolves a substrate at path and wires the domain services.
func Open(path string, opts ...Option) (*App, error) {
	return platform.New(path, opts...)
}
