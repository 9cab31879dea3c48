// Package curator is the composition root for the curator library.
//
// It connects the domain services (collections, items, tags, reminders) with
// the persistence adapters (key-value substrates) behind one Open call.
//
// Philosophy:
//
// Curator is a local-first cataloguing engine. Users group whatever they
// collect (films, books, places, recipes, notes, links) into typed
// collections and fill them with typed items. Everything persists as JSON
// documents in a flat key-value substrate, namespaced by an immutable prefix
// per entity kind.
//
// Features:
//
//   - **Prefix-scoped document stores**: one generic store per entity kind
//     over a single shared substrate.
//   - **Pluggable substrates**: file-per-key (default), bbolt, SQLite, or
//     in-memory, selected by name or injected directly.
//   - **Weak references, explicit cascades**: items point at collections by
//     value; deleting a collection cascades only when asked to.
//   - **Honest concurrency contract**: updates are read-modify-write with
//     last-writer-wins, documented rather than hidden.
//
// Usage:
//
//	app, err := curator.Open("./data",
//		curator.WithBackend("bolt"),
//		curator.WithLogger(logger),
//	)
//
//	c, err := app.Collections.Create(ctx, collection.CreateInput{
//		Name: "My Films",
//		Type: collection.TypeFilm,
//	})
package curator
