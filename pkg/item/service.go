package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/curator-app/curator/pkg/collection"
	"github.com/curator-app/curator/pkg/docstore"
)

// Prefix is the key namespace for items in the shared substrate.
const Prefix = "item"

// Service handles the business logic for items.
type Service struct {
	store *docstore.Store[Item]
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

// NewService creates an item service over store.
func NewService(store *docstore.Store[Item], opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		newID: docstore.TimestampID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new item. SuccessAt is explicitly left absent; only
// MarkSuccess ever sets it.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Item, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("item title cannot be empty")
	}
	if input.CollectionID == "" {
		return nil, fmt.Errorf("item must reference a collection")
	}
	if !input.CollectionType.Valid() {
		return nil, fmt.Errorf("invalid collection type: %q", input.CollectionType)
	}

	now := s.now()
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	it := Item{
		ID:             s.newID(Prefix),
		CollectionID:   input.CollectionID,
		CollectionType: input.CollectionType,
		Title:          input.Title,
		CreatedAt:      now,
		UpdatedAt:      now,
		SuccessAt:      nil,
		Tags:           tags,
		ImageURLs:      input.ImageURLs,
		Notes:          input.Notes,
		Director:       input.Director,
		Author:         input.Author,
		Year:           input.Year,
		Genre:          input.Genre,
		Duration:       input.Duration,
		Season:         input.Season,
		Episode:        input.Episode,
		PageCount:      input.PageCount,
		Address:        input.Address,
		Website:        input.Website,
		Phone:          input.Phone,
		Ingredients:    input.Ingredients,
		PrepMinutes:    input.PrepMinutes,
		Servings:       input.Servings,
		Source:         input.Source,
		Content:        input.Content,
		Priority:       input.Priority,
		URL:            input.URL,
		Category:       input.Category,
		Rating:         input.Rating,
		CustomFields:   input.CustomFields,
	}

	if err := s.store.Set(ctx, it.ID, it); err != nil {
		return nil, err
	}
	return &it, nil
}

// GetByID retrieves an item, or nil when it does not exist.
func (s *Service) GetByID(ctx context.Context, id string) (*Item, error) {
	return s.store.Get(ctx, id)
}

// GetAll returns every item, in store iteration order.
func (s *Service) GetAll(ctx context.Context) ([]Item, error) {
	return s.store.GetAll(ctx)
}

// GetByCollection returns every item referencing the collection. No ordering
// is guaranteed; callers needing one must sort explicitly.
func (s *Service) GetByCollection(ctx context.Context, collectionID string) ([]Item, error) {
	return s.store.Query(ctx, func(i Item) bool {
		return i.CollectionID == collectionID
	})
}

// Update applies a partial patch and stamps UpdatedAt. CreatedAt is immutable.
// Returns nil when the item does not exist.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		i = patch.apply(i)
		i.UpdatedAt = s.now()
		return i
	})
}

// MarkSuccess records the item as successfully used now.
func (s *Service) MarkSuccess(ctx context.Context, id string) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		now := s.now()
		i.SuccessAt = &now
		i.UpdatedAt = now
		return i
	})
}

// MoveToCollection rewrites the item's collection reference.
func (s *Service) MoveToCollection(ctx context.Context, id, newCollectionID string) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		i.CollectionID = newCollectionID
		i.UpdatedAt = s.now()
		return i
	})
}

// Delete removes a single item.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

// DeleteByCollection removes every item referencing the collection, one
// delete at a time. NOT atomic: a failure partway through leaves the
// remaining items in place and is surfaced to the caller.
func (s *Service) DeleteByCollection(ctx context.Context, collectionID string) error {
	items, err := s.GetByCollection(ctx, collectionID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := s.store.Remove(ctx, it.ID); err != nil {
			return fmt.Errorf("cascade stopped at item %s: %w", it.ID, err)
		}
	}
	return nil
}

// SearchByTitle returns items whose title contains the query,
// case-insensitively.
func (s *Service) SearchByTitle(ctx context.Context, query string) ([]Item, error) {
	q := strings.ToLower(query)
	return s.store.Query(ctx, func(i Item) bool {
		return strings.Contains(strings.ToLower(i.Title), q)
	})
}

// SearchByTags returns items whose tag set intersects tags (OR semantics).
// An empty tags slice short-circuits to an empty result without touching the
// store.
func (s *Service) SearchByTags(ctx context.Context, tags []string) ([]Item, error) {
	if len(tags) == 0 {
		return []Item{}, nil
	}
	return s.store.Query(ctx, func(i Item) bool {
		if len(i.Tags) == 0 {
			return false
		}
		for _, t := range tags {
			if i.HasTag(t) {
				return true
			}
		}
		return false
	})
}

// GetSuccessful returns every item marked as successfully used.
func (s *Service) GetSuccessful(ctx context.Context) ([]Item, error) {
	return s.store.Query(ctx, func(i Item) bool {
		return i.Succeeded()
	})
}

// CountByCollection returns how many items reference the collection.
func (s *Service) CountByCollection(ctx context.Context, collectionID string) (int, error) {
	items, err := s.GetByCollection(ctx, collectionID)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// InfoByCollection projects the collection's items for the collection
// service's cascade and summary operations (collection.Items).
func (s *Service) InfoByCollection(ctx context.Context, collectionID string) ([]collection.ItemInfo, error) {
	items, err := s.GetByCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	infos := make([]collection.ItemInfo, 0, len(items))
	for _, it := range items {
		infos = append(infos, collection.ItemInfo{
			UpdatedAt: it.UpdatedAt,
			Succeeded: it.Succeeded(),
		})
	}
	return infos, nil
}
