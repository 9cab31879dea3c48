package item

import (
	"context"
	"time"
)

// Extended mutators. Each is a read-modify-write through the store's Update,
// so the same last-writer-wins caveat applies. All of them propagate errors;
// none downgrade a failure into a nil result.

// AddImages appends image URLs, dropping duplicates. An absent list is
// treated as empty.
func (s *Service) AddImages(ctx context.Context, id string, imageURLs []string) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		seen := make(map[string]bool, len(i.ImageURLs)+len(imageURLs))
		merged := make([]string, 0, len(i.ImageURLs)+len(imageURLs))
		for _, url := range append(append([]string{}, i.ImageURLs...), imageURLs...) {
			if seen[url] {
				continue
			}
			seen[url] = true
			merged = append(merged, url)
		}
		i.ImageURLs = merged
		i.UpdatedAt = s.now()
		return i
	})
}

// RemoveImages filters the given URLs out of the image list.
func (s *Service) RemoveImages(ctx context.Context, id string, imageURLs []string) (*Item, error) {
	drop := make(map[string]bool, len(imageURLs))
	for _, url := range imageURLs {
		drop[url] = true
	}
	return s.store.Update(ctx, id, func(i Item) Item {
		kept := make([]string, 0, len(i.ImageURLs))
		for _, url := range i.ImageURLs {
			if !drop[url] {
				kept = append(kept, url)
			}
		}
		i.ImageURLs = kept
		i.UpdatedAt = s.now()
		return i
	})
}

// UpdateTags replaces the tag list wholesale.
func (s *Service) UpdateTags(ctx context.Context, id string, tags []string) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		i.Tags = tags
		i.UpdatedAt = s.now()
		return i
	})
}

// AddTag appends a tag. Idempotent: adding an existing tag changes nothing
// but still stamps UpdatedAt.
func (s *Service) AddTag(ctx context.Context, id, tag string) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		if !i.HasTag(tag) {
			i.Tags = append(i.Tags, tag)
		}
		i.UpdatedAt = s.now()
		return i
	})
}

// RemoveTag removes a tag; a no-op when the tag is absent.
func (s *Service) RemoveTag(ctx context.Context, id, tag string) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		kept := make([]string, 0, len(i.Tags))
		for _, t := range i.Tags {
			if t != tag {
				kept = append(kept, t)
			}
		}
		i.Tags = kept
		i.UpdatedAt = s.now()
		return i
	})
}

// SetReminderDate records when the user wants to be reminded about the item.
func (s *Service) SetReminderDate(ctx context.Context, id string, at time.Time) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		i.ReminderAt = &at
		i.UpdatedAt = s.now()
		return i
	})
}

// SetNotificationID persists the scheduler's opaque notification identifier.
func (s *Service) SetNotificationID(ctx context.Context, id, notificationID string) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		i.NotificationID = notificationID
		i.UpdatedAt = s.now()
		return i
	})
}

// RemoveReminderDate clears both the reminder date and the notification id
// within a single update call.
func (s *Service) RemoveReminderDate(ctx context.Context, id string) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		i.ReminderAt = nil
		i.NotificationID = ""
		i.UpdatedAt = s.now()
		return i
	})
}

// GetWithReminderDate returns every item with a reminder date set.
func (s *Service) GetWithReminderDate(ctx context.Context) ([]Item, error) {
	return s.store.Query(ctx, func(i Item) bool {
		return i.ReminderAt != nil
	})
}

// GetUpcoming returns items whose reminder date falls within
// [now, now+daysAhead], inclusive of both bounds. daysAhead <= 0 defaults
// to 7.
func (s *Service) GetUpcoming(ctx context.Context, daysAhead int) ([]Item, error) {
	if daysAhead <= 0 {
		daysAhead = 7
	}
	now := s.now()
	end := now.AddDate(0, 0, daysAhead)
	return s.store.Query(ctx, func(i Item) bool {
		if i.ReminderAt == nil {
			return false
		}
		d := *i.ReminderAt
		return !d.Before(now) && !d.After(end)
	})
}

// Duplicate clones an item under a new id with fresh timestamps and a
// " (Copy)" title suffix. The clone never inherits success status or the
// original's reminder wiring.
func (s *Service) Duplicate(ctx context.Context, id string) (*Item, error) {
	original, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, nil
	}

	now := s.now()
	clone := *original
	clone.ID = s.newID(Prefix)
	clone.Title = original.Title + " (Copy)"
	clone.CreatedAt = now
	clone.UpdatedAt = now
	clone.SuccessAt = nil
	clone.ReminderAt = nil
	clone.NotificationID = ""

	if err := s.store.Set(ctx, clone.ID, clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

// UnmarkSuccess removes the success marker entirely: the field is absent from
// the stored JSON afterwards, not null.
func (s *Service) UnmarkSuccess(ctx context.Context, id string) (*Item, error) {
	return s.store.Update(ctx, id, func(i Item) Item {
		i.SuccessAt = nil
		i.UpdatedAt = s.now()
		return i
	})
}
