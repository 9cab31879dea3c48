// Package kv defines the key-value substrate the document stores are built on,
// along with the bundled adapters (memory, file, bolt, sqlite).
package kv

import (
	"context"
	"time"
)

// Store is the contract for the persistent key-value substrate.
// Keys and values are plain strings; serialization is the caller's concern.
// Durability across restarts is expected from every adapter except memory.
// The substrate offers no transactions spanning multiple keys.
type Store interface {
	// SetItem writes value under key, overwriting any existing value.
	SetItem(ctx context.Context, key, value string) error

	// GetItem reads the value stored under key.
	// The second return is false when the key is absent; absence is not an error.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// RemoveItem deletes key. Removing an absent key is a no-op.
	RemoveItem(ctx context.Context, key string) error

	// Keys returns every key currently stored.
	Keys(ctx context.Context) ([]string, error)

	// MultiGet reads several keys in one call.
	// Absent keys are simply omitted from the result map.
	MultiGet(ctx context.Context, keys []string) (map[string]string, error)

	// MultiRemove deletes several keys in one call.
	MultiRemove(ctx context.Context, keys []string) error
}

// EventType represents the type of change observed in the substrate.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored key.
type Event struct {
	Type EventType
	Key  string
	Time time.Time
}

// Watcher is implemented by adapters that can emit change events for their
// keys, e.g. when another process mutates the backing files.
type Watcher interface {
	// Watch emits events for keys matching the glob pattern until ctx is done.
	// An empty pattern matches every key.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
