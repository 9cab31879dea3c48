// Package item implements the domain service for items, the individual
// catalogued entries that belong to a collection.
package item

import (
	"time"

	"github.com/curator-app/curator/pkg/collection"
)

// Item is a single catalogued entry. CollectionID is a weak reference: it is
// matched by value, never enforced by the store, so deleting a collection
// does not touch its items unless the cascade is invoked explicitly.
//
// SuccessAt stays nil until MarkSuccess is called and is removed again by
// UnmarkSuccess; it is never set implicitly. The omitempty tag keeps the key
// absent (not null) in the stored JSON while the pointer is nil.
type Item struct {
	ID             string          `json:"id"`
	CollectionID   string          `json:"collectionId"`
	CollectionType collection.Type `json:"collectionType"`
	Title          string          `json:"title"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	SuccessAt      *time.Time      `json:"successfullyUsedAt,omitempty"`
	Tags           []string        `json:"tags"`
	ImageURLs      []string        `json:"imageUrls,omitempty"`
	Notes          string          `json:"notes,omitempty"`

	// Reminder metadata, managed by the extended mutators.
	ReminderAt     *time.Time `json:"reminderDate,omitempty"`
	NotificationID string     `json:"notificationId,omitempty"`

	// Type-specific optional fields, selected by CollectionType.
	Director     string            `json:"director,omitempty"`     // film
	Author       string            `json:"author,omitempty"`       // book
	Year         int               `json:"year,omitempty"`         // film, book
	Genre        string            `json:"genre,omitempty"`        // film, series, book
	Duration     int               `json:"durationMinutes,omitempty"`
	Season       int               `json:"season,omitempty"`  // series
	Episode      int               `json:"episode,omitempty"` // series
	PageCount    int               `json:"pageCount,omitempty"`
	Address      string            `json:"address,omitempty"` // place
	Website      string            `json:"website,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Ingredients  []string          `json:"ingredients,omitempty"` // recipe
	PrepMinutes  int               `json:"prepMinutes,omitempty"`
	Servings     int               `json:"servings,omitempty"`
	Source       string            `json:"source,omitempty"`
	Content      string            `json:"content,omitempty"`  // note
	Priority     string            `json:"priority,omitempty"` // note: low, medium, high
	URL          string            `json:"url,omitempty"`      // link
	Category     string            `json:"category,omitempty"`
	Completed    bool              `json:"completed,omitempty"` // watched / read / visited / tried
	Rating       int               `json:"rating,omitempty"`    // 1..5
	CustomFields map[string]string `json:"customFields,omitempty"` // other
}

// Succeeded reports whether the item has been marked as successfully used.
func (i Item) Succeeded() bool { return i.SuccessAt != nil }

// HasTag reports whether the item carries the given tag.
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CreateInput carries the caller-supplied fields for a new item. ID,
// timestamps and the absent success marker are assigned by the service.
type CreateInput struct {
	CollectionID   string
	CollectionType collection.Type
	Title          string
	Tags           []string
	ImageURLs      []string
	Notes          string

	Director     string
	Author       string
	Year         int
	Genre        string
	Duration     int
	Season       int
	Episode      int
	PageCount    int
	Address      string
	Website      string
	Phone        string
	Ingredients  []string
	PrepMinutes  int
	Servings     int
	Source       string
	Content      string
	Priority     string
	URL          string
	Category     string
	Rating       int
	CustomFields map[string]string
}

// Patch is a partial update. Nil fields are left untouched; the service
// stamps UpdatedAt on every applied patch and never touches CreatedAt.
type Patch struct {
	Title     *string
	Notes     *string
	Content   *string
	URL       *string
	Category  *string
	Priority  *string
	Rating    *int
	Completed *bool
	Tags      []string
	ImageURLs []string
}

func (p Patch) apply(i Item) Item {
	if p.Title != nil {
		i.Title = *p.Title
	}
	if p.Notes != nil {
		i.Notes = *p.Notes
	}
	if p.Content != nil {
		i.Content = *p.Content
	}
	if p.URL != nil {
		i.URL = *p.URL
	}
	if p.Category != nil {
		i.Category = *p.Category
	}
	if p.Priority != nil {
		i.Priority = *p.Priority
	}
	if p.Rating != nil {
		i.Rating = *p.Rating
	}
	if p.Completed != nil {
		i.Completed = *p.Completed
	}
	if p.Tags != nil {
		i.Tags = p.Tags
	}
	if p.ImageURLs != nil {
		i.ImageURLs = p.ImageURLs
	}
	return i
}
