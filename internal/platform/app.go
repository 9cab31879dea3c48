// Package platform is the wiring layer: it resolves a substrate adapter,
// scopes one document store per entity kind, and assembles the domain
// services. The prefix set lives here and nowhere else, which is what keeps
// the one-prefix-per-store convention honest.
package platform

import (
	"fmt"
	"io"

	"github.com/curator-app/curator/pkg/collection"
	"github.com/curator-app/curator/pkg/docstore"
	"github.com/curator-app/curator/pkg/item"
	"github.com/curator-app/curator/pkg/kv"
	"github.com/curator-app/curator/pkg/notify"
	"github.com/curator-app/curator/pkg/tag"
)

// App bundles the wired domain services over one shared substrate.
type App struct {
	Collections *collection.Service
	Items       *item.Service
	Tags        *tag.Service
	Reminders   *notify.Reminders

	substrate kv.Store
}

// New resolves the substrate for path and wires the services.
func New(path string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	substrate := o.substrate
	if substrate == nil {
		var err error
		substrate, err = kv.Open(o.backend, path, o.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open substrate: %w", err)
		}
	}

	items := item.NewService(
		docstore.New[item.Item](substrate, item.Prefix, o.logger),
		item.WithClock(o.clock),
		item.WithIDFunc(o.idFunc),
	)
	collections := collection.NewService(
		docstore.New[collection.Collection](substrate, collection.Prefix, o.logger),
		items,
		collection.WithClock(o.clock),
		collection.WithIDFunc(o.idFunc),
	)
	tags := tag.NewService(
		docstore.New[tag.Tag](substrate, tag.Prefix, o.logger),
		docstore.New[tag.Link](substrate, tag.LinkPrefix, o.logger),
		tag.WithClock(o.clock),
		tag.WithIDFunc(o.idFunc),
	)

	app := &App{
		Collections: collections,
		Items:       items,
		Tags:        tags,
		substrate:   substrate,
	}
	if o.scheduler != nil {
		app.Reminders = notify.NewReminders(items, o.scheduler)
	}
	return app, nil
}

// Substrate exposes the underlying key-value store, e.g. for watch hooks.
func (a *App) Substrate() kv.Store { return a.substrate }

// Close releases the substrate when it holds resources (bolt, sqlite).
func (a *App) Close() error {
	if closer, ok := a.substrate.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
