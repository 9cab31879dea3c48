// Package collection implements the domain service for collections, the
// user-defined typed groups that items belong to.
package collection

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by aggregate operations whose root collection is
// missing. Plain lookups return nil instead.
var ErrNotFound = errors.New("collection not found")

// Type discriminates the kind of a collection.
type Type string

const (
	TypeFilm   Type = "film"
	TypeSeries Type = "series"
	TypeBook   Type = "book"
	TypePlace  Type = "place"
	TypeRecipe Type = "recipe"
	TypeNote   Type = "note"
	TypeLink   Type = "link"
	TypeOther  Type = "other"
)

// Valid reports whether t is one of the known collection types.
func (t Type) Valid() bool {
	switch t {
	case TypeFilm, TypeSeries, TypeBook, TypePlace, TypeRecipe, TypeNote, TypeLink, TypeOther:
		return true
	}
	return false
}

// ParseType converts a raw string into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown collection type: %q", s)
	}
	return t, nil
}

// Collection is a named, typed group of items. The Type discriminant selects
// which of the optional fields are meaningful; the rest stay empty and are
// omitted from the stored JSON.
type Collection struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          Type      `json:"type"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	Description   string    `json:"description,omitempty"`

	// Type-specific optional fields.
	Platform     string   `json:"platform,omitempty"`     // film, series
	Genre        string   `json:"genre,omitempty"`        // book
	Category     string   `json:"category,omitempty"`     // place, recipe, note, link
	CustomFields []string `json:"customFields,omitempty"` // other
}

// CreateInput carries the caller-supplied fields for a new collection.
// ID and timestamps are assigned by the service.
type CreateInput struct {
	Name          string
	Type          Type
	CoverImageURL string
	Description   string
	Platform      string
	Genre         string
	Category      string
	CustomFields  []string
}

// Patch is a partial update. Nil fields are left untouched; the service
// stamps UpdatedAt on every applied patch and never touches CreatedAt.
type Patch struct {
	Name          *string
	CoverImageURL *string
	Description   *string
	Platform      *string
	Genre         *string
	Category      *string
	CustomFields  []string
}

func (p Patch) apply(c Collection) Collection {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.CoverImageURL != nil {
		c.CoverImageURL = *p.CoverImageURL
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Platform != nil {
		c.Platform = *p.Platform
	}
	if p.Genre != nil {
		c.Genre = *p.Genre
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.CustomFields != nil {
		c.CustomFields = p.CustomFields
	}
	return c
}
