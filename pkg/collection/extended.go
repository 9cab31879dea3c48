package collection

import (
	"context"
	"fmt"
	"time"
)

// UpdateCoverImage replaces the collection's cover image URL.
func (s *Service) UpdateCoverImage(ctx context.Context, id, imageURL string) (*Collection, error) {
	return s.store.Update(ctx, id, func(c Collection) Collection {
		c.CoverImageURL = imageURL
		c.UpdatedAt = s.now()
		return c
	})
}

// AddDescription sets the collection's description.
func (s *Service) AddDescription(ctx context.Context, id, description string) (*Collection, error) {
	return s.store.Update(ctx, id, func(c Collection) Collection {
		c.Description = description
		c.UpdatedAt = s.now()
		return c
	})
}

// GetByType returns every collection of the given type.
func (s *Service) GetByType(ctx context.Context, t Type) ([]Collection, error) {
	return s.store.Query(ctx, func(c Collection) bool {
		return c.Type == t
	})
}

// DeleteWithItems removes the collection together with all of its items and
// returns how many items existed before the cascade.
//
// The cascade is a two-phase plan (collect, then delete) over independent
// substrate writes; it is NOT transactional. A failure partway through leaves
// some items deleted and others not, with no rollback.
func (s *Service) DeleteWithItems(ctx context.Context, id string) (int, error) {
	if s.items == nil {
		return 0, fmt.Errorf("no item service wired for cascade delete")
	}

	infos, err := s.items.InfoByCollection(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate items for cascade: %w", err)
	}
	count := len(infos)

	if err := s.items.DeleteByCollection(ctx, id); err != nil {
		return 0, fmt.Errorf("failed to delete items of collection %s: %w", id, err)
	}
	if err := s.store.Remove(ctx, id); err != nil {
		return 0, err
	}
	return count, nil
}

// Summary aggregates a collection with its items.
type Summary struct {
	ItemCount    int
	SuccessCount int
	LastUpdated  time.Time
}

// GetSummary computes counts and the most recent update across the collection
// and its items. Returns ErrNotFound when the collection does not exist.
func (s *Service) GetSummary(ctx context.Context, id string) (*Summary, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("collection %s: %w", id, ErrNotFound)
	}

	var infos []ItemInfo
	if s.items != nil {
		infos, err = s.items.InfoByCollection(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate items for summary: %w", err)
		}
	}

	summary := Summary{
		ItemCount:   len(infos),
		LastUpdated: c.UpdatedAt,
	}
	for _, info := range infos {
		if info.Succeeded {
			summary.SuccessCount++
		}
		if info.UpdatedAt.After(summary.LastUpdated) {
			summary.LastUpdated = info.UpdatedAt
		}
	}
	return &summary, nil
}
