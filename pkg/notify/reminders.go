package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/curator-app/curator/pkg/item"
)

// Reminders keeps an item's persisted reminder metadata and its scheduled
// notification in step. Every mutation goes scheduler-first, so a scheduling
// failure never leaves a dangling reminder date behind.
type Reminders struct {
	items     *item.Service
	scheduler Scheduler
}

// NewReminders wires the orchestrator.
func NewReminders(items *item.Service, scheduler Scheduler) *Reminders {
	return &Reminders{items: items, scheduler: scheduler}
}

// Set schedules a notification for the item at the given time and persists
// both the reminder date and the notification id. Any previously scheduled
// notification for the item is cancelled first. Returns nil when the item
// does not exist.
func (r *Reminders) Set(ctx context.Context, itemID string, at time.Time) (*item.Item, error) {
	current, err := r.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	if current.NotificationID != "" {
		if err := r.scheduler.Cancel(ctx, current.NotificationID); err != nil {
			return nil, fmt.Errorf("failed to cancel previous notification: %w", err)
		}
	}

	notificationID, err := r.scheduler.Schedule(ctx, Notification{
		Title:   "Reminder",
		Message: current.Title,
		At:      at,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule notification: %w", err)
	}

	if _, err := r.items.SetReminderDate(ctx, itemID, at); err != nil {
		// Best effort: don't leave an orphaned notification behind.
		_ = r.scheduler.Cancel(ctx, notificationID)
		return nil, err
	}
	updated, err := r.items.SetNotificationID(ctx, itemID, notificationID)
	if err != nil {
		_ = r.scheduler.Cancel(ctx, notificationID)
		return nil, err
	}
	return updated, nil
}

// Clear cancels the item's notification and removes both reminder fields.
// Returns nil when the item does not exist.
func (r *Reminders) Clear(ctx context.Context, itemID string) (*item.Item, error) {
	current, err := r.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	if current.NotificationID != "" {
		if err := r.scheduler.Cancel(ctx, current.NotificationID); err != nil {
			return nil, fmt.Errorf("failed to cancel notification: %w", err)
		}
	}
	return r.items.RemoveReminderDate(ctx, itemID)
}
