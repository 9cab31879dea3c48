// Package docstore implements a generic, prefix-scoped document store on top
// of the kv substrate. One Store instance is constructed per entity kind; the
// prefix namespaces its keys inside the shared flat keyspace.
package docstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/curator-app/curator/pkg/kv"
)

// Store provides CRUD and predicate queries for documents of type T, all
// scoped to an immutable key prefix. Keys take the form "{prefix}:{id}".
//
// Two Store instances sharing a substrate MUST use distinct prefixes, or
// their data sets will interleave. Nothing in the type system enforces this;
// it is a wiring convention (see the platform factory).
//
// Update is a bare read-modify-write with no isolation: concurrent updates to
// the same id are last-writer-wins. Adequate for a single logical writer.
type Store[T any] struct {
	kv     kv.Store
	prefix string
	logger *slog.Logger
}

// New creates a Store over substrate, scoped to prefix.
func New[T any](substrate kv.Store, prefix string, logger *slog.Logger) *Store[T] {
	return &Store[T]{kv: substrate, prefix: prefix, logger: logger}
}

// Prefix returns the store's key prefix.
func (s *Store[T]) Prefix() string { return s.prefix }

func (s *Store[T]) key(id string) string {
	return s.prefix + ":" + id
}

func (s *Store[T]) ownsKey(key string) bool {
	return strings.HasPrefix(key, s.prefix+":")
}

// Set serializes value and writes it under id, overwriting any existing value.
func (s *Store[T]) Set(ctx context.Context, id string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return wrapErr(ErrWrite, "marshal", id, err)
	}
	if err := s.kv.SetItem(ctx, s.key(id), string(data)); err != nil {
		return wrapErr(ErrWrite, "set", id, err)
	}
	return nil
}

// Get reads the document stored under id. A missing id yields (nil, nil),
// never an error.
func (s *Store[T]) Get(ctx context.Context, id string) (*T, error) {
	raw, ok, err := s.kv.GetItem(ctx, s.key(id))
	if err != nil {
		return nil, wrapErr(ErrRead, "get", id, err)
	}
	if !ok {
		return nil, nil
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, wrapErr(ErrRead, "unmarshal", id, err)
	}
	return &value, nil
}

// Remove deletes the document under id. Removing an absent id is a no-op.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	if s.logger != nil {
		s.logger.Debug("removing document", "prefix", s.prefix, "id", id)
	}
	if err := s.kv.RemoveItem(ctx, s.key(id)); err != nil {
		return wrapErr(ErrDelete, "remove", id, err)
	}
	return nil
}

// GetAll returns every document under this store's prefix. Values that fail
// to decode are dropped (with a warning), not surfaced as errors.
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	owned, err := s.ownedKeys(ctx)
	if err != nil {
		return nil, wrapErr(ErrRead, "list keys", "", err)
	}
	if len(owned) == 0 {
		return []T{}, nil
	}

	raws, err := s.kv.MultiGet(ctx, owned)
	if err != nil {
		return nil, wrapErr(ErrRead, "multi get", "", err)
	}

	values := make([]T, 0, len(raws))
	for _, key := range owned {
		raw, ok := raws[key]
		if !ok || raw == "" {
			continue
		}
		var value T
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			if s.logger != nil {
				s.logger.Warn("dropping undecodable document", "key", key, "error", err)
			}
			continue
		}
		values = append(values, value)
	}
	return values, nil
}

// Update applies fn to the current document under id and writes the result
// back. A missing id yields (nil, nil) and fn is never called.
//
// This is read-then-write with no compare-and-swap; a concurrent update to
// the same id can be silently overwritten.
func (s *Store[T]) Update(ctx context.Context, id string, fn func(T) T) (*T, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, wrapErr(ErrUpdate, "read for update", id, err)
	}
	if current == nil {
		return nil, nil
	}

	next := fn(*current)
	if err := s.Set(ctx, id, next); err != nil {
		return nil, wrapErr(ErrUpdate, "write back", id, err)
	}
	return &next, nil
}

// Query returns every document matching the predicate. Filtering happens
// client-side over GetAll; cost is linear in the number of stored documents.
func (s *Store[T]) Query(ctx context.Context, predicate func(T) bool) ([]T, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, wrapErr(ErrQuery, "query", "", err)
	}
	matched := make([]T, 0, len(all))
	for _, v := range all {
		if predicate(v) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

// Clear removes every document under this store's prefix. No-op when empty.
func (s *Store[T]) Clear(ctx context.Context) error {
	owned, err := s.ownedKeys(ctx)
	if err != nil {
		return wrapErr(ErrClear, "list keys", "", err)
	}
	if len(owned) == 0 {
		return nil
	}
	if s.logger != nil {
		s.logger.Debug("clearing prefix", "prefix", s.prefix, "count", len(owned))
	}
	if err := s.kv.MultiRemove(ctx, owned); err != nil {
		return wrapErr(ErrClear, "multi remove", "", err)
	}
	return nil
}

func (s *Store[T]) ownedKeys(ctx context.Context) ([]string, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return nil, err
	}
	var owned []string
	for _, k := range keys {
		if s.ownsKey(k) {
			owned = append(owned, k)
		}
	}
	return owned, nil
}
