package collection

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/curator-app/curator/pkg/docstore"
)

// Prefix is the key namespace for collections in the shared substrate.
const Prefix = "collection"

// ItemInfo is the slim projection of an item the collection service needs for
// cascade deletes and summaries.
type ItemInfo struct {
	UpdatedAt time.Time
	Succeeded bool
}

// Items is the item-service surface the collection service depends on.
// *item.Service satisfies it.
type Items interface {
	// InfoByCollection returns one ItemInfo per item in the collection.
	InfoByCollection(ctx context.Context, collectionID string) ([]ItemInfo, error)

	// DeleteByCollection removes every item in the collection, sequentially.
	DeleteByCollection(ctx context.Context, collectionID string) error
}

// Service handles the business logic for collections.
type Service struct {
	store *docstore.Store[Collection]
	items Items
	now   func() time.Time
	newID docstore.IDFunc
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDFunc overrides the identifier scheme.
func WithIDFunc(fn docstore.IDFunc) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates a collection service over store. items may be nil when
// cascade operations and summaries are not needed.
func NewService(store *docstore.Store[Collection], items Items, opts ...Option) *Service {
	s := &Service{
		store: store,
		items: items,
		now:   time.Now,
		newID: docstore.TimestampID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new collection. The id and both timestamps are assigned
// here; CreatedAt equals UpdatedAt on a fresh collection.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Collection, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("invalid collection type: %q", input.Type)
	}

	now := s.now()
	c := Collection{
		ID:            s.newID(Prefix),
		Name:          input.Name,
		Type:          input.Type,
		CreatedAt:     now,
		UpdatedAt:     now,
		CoverImageURL: input.CoverImageURL,
		Description:   input.Description,
		Platform:      input.Platform,
		Genre:         input.Genre,
		Category:      input.Category,
		CustomFields:  input.CustomFields,
	}

	if err := s.store.Set(ctx, c.ID, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a collection, or nil when it does not exist.
func (s *Service) GetByID(ctx context.Context, id string) (*Collection, error) {
	return s.store.Get(ctx, id)
}

// GetAll returns every collection, newest first by CreatedAt. The ordering is
// part of the service contract, not an implementation accident.
func (s *Service) GetAll(ctx context.Context) ([]Collection, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

// Update applies a partial patch and stamps UpdatedAt. CreatedAt is immutable.
// Returns nil when the collection does not exist.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Collection, error) {
	return s.store.Update(ctx, id, func(c Collection) Collection {
		c = patch.apply(c)
		c.UpdatedAt = s.now()
		return c
	})
}

// Delete removes the collection only. Items referencing it are left behind;
// use DeleteWithItems for the cascade.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

// SearchByName returns collections whose name contains the query,
// case-insensitively.
func (s *Service) SearchByName(ctx context.Context, query string) ([]Collection, error) {
	q := strings.ToLower(query)
	return s.store.Query(ctx, func(c Collection) bool {
		return strings.Contains(strings.ToLower(c.Name), q)
	})
}

// Count returns the number of stored collections.
func (s *Service) Count(ctx context.Context) (int, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
