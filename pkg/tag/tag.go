// Package tag implements the tag vocabulary and the item/tag relationship
// records. Tag names are normalized (trimmed, lowercased) so "Sci-Fi " and
// "sci-fi" resolve to the same tag.
package tag

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/curator-app/curator/pkg/docstore"
)

// Key namespaces. Tags and relationship records have different shapes, so
// they live under separate prefixes of the shared substrate.
const (
	Prefix     = "tag"
	LinkPrefix = "tag_link"
)

// Tag is a normalized label that can be attached to any number of items.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Link records that one item carries one tag.
type Link struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	TagID     string    `json:"tagId"`
	CreatedAt time.Time `json:"createdAt"`
}

var nameCollator = collate.New(language.Und)

// Service manages tags and their item relationships.
type Service struct {
	tags  *docstore.Store[Tag]
	links *docstore.Store[Link]
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

// NewService creates a tag service over the two stores.
func NewService(tags *docstore.Store[Tag], links *docstore.Store[Link], opts ...Option) *Service {
	s := &Service{
		tags:  tags,
		links: links,
		now:   time.Now,
		newID: docstore.TimestampID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Normalize canonicalizes a tag name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CreateTag stores a new tag under the normalized name.
func (s *Service) CreateTag(ctx context.Context, name string) (*Tag, error) {
	t := Tag{
		ID:        s.newID(Prefix),
		Name:      Normalize(name),
		CreatedAt: s.now(),
	}
	if err := s.tags.Set(ctx, t.ID, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAllTags returns every tag, alphabetically by name.
func (s *Service) GetAllTags(ctx context.Context) ([]Tag, error) {
	all, err := s.tags.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return nameCollator.CompareString(all[i].Name, all[j].Name) < 0
	})
	return all, nil
}

// GetOrCreateTag returns the tag with the normalized name, creating it when
// no match exists.
func (s *Service) GetOrCreateTag(ctx context.Context, name string) (*Tag, error) {
	normalized := Normalize(name)
	existing, err := s.tags.Query(ctx, func(t Tag) bool {
		return strings.ToLower(t.Name) == normalized
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return &existing[0], nil
	}
	return s.CreateTag(ctx, normalized)
}

// AddTagToItem links the named tag (created on demand) to the item.
func (s *Service) AddTagToItem(ctx context.Context, itemID, tagName string) error {
	t, err := s.GetOrCreateTag(ctx, tagName)
	if err != nil {
		return err
	}
	link := Link{
		ID:        s.newID(LinkPrefix),
		ItemID:    itemID,
		TagID:     t.ID,
		CreatedAt: s.now(),
	}
	return s.links.Set(ctx, link.ID, link)
}

// RemoveTagFromItem removes the link between an item and a tag; a no-op when
// no link exists.
func (s *Service) RemoveTagFromItem(ctx context.Context, itemID, tagID string) error {
	links, err := s.links.Query(ctx, func(l Link) bool {
		return l.ItemID == itemID && l.TagID == tagID
	})
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}
	return s.links.Remove(ctx, links[0].ID)
}

// GetTagsForItem returns every tag linked to the item.
func (s *Service) GetTagsForItem(ctx context.Context, itemID string) ([]Tag, error) {
	links, err := s.links.Query(ctx, func(l Link) bool {
		return l.ItemID == itemID
	})
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []Tag{}, nil
	}

	wanted := make(map[string]bool, len(links))
	for _, l := range links {
		wanted[l.TagID] = true
	}

	all, err := s.GetAllTags(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]Tag, 0, len(wanted))
	for _, t := range all {
		if wanted[t.ID] {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// GetItemsForTag returns the ids of every item linked to the tag.
func (s *Service) GetItemsForTag(ctx context.Context, tagID string) ([]string, error) {
	links, err := s.links.Query(ctx, func(l Link) bool {
		return l.TagID == tagID
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ItemID)
	}
	return ids, nil
}

// DeleteTag removes the tag and cascades to all of its relationship records.
// The cascade is sequential and not transactional.
func (s *Service) DeleteTag(ctx context.Context, tagID string) error {
	if err := s.tags.Remove(ctx, tagID); err != nil {
		return err
	}
	links, err := s.links.Query(ctx, func(l Link) bool {
		return l.TagID == tagID
	})
	if err != nil {
		return err
	}
	for _, l := range links {
		if err := s.links.Remove(ctx, l.ID); err != nil {
			return err
		}
	}
	return nil
}

// SearchTags returns tags whose name starts with the query. An empty query
// returns every tag, alphabetically.
func (s *Service) SearchTags(ctx context.Context, query string) ([]Tag, error) {
	normalized := Normalize(query)
	if normalized == "" {
		return s.GetAllTags(ctx)
	}
	return s.tags.Query(ctx, func(t Tag) bool {
		return strings.HasPrefix(strings.ToLower(t.Name), normalized)
	})
}
