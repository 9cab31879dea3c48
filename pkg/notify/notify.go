// Package notify defines the local-notification contract consumed by the
// reminder features and the orchestration that keeps scheduled notifications
// in step with persisted reminder metadata. Actual OS notification delivery
// lives behind the Scheduler interface and is out of scope here.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification is a local notification request.
type Notification struct {
	Title   string
	Message string
	At      time.Time
}

// Scheduler schedules and cancels local notifications. Schedule returns an
// opaque identifier the caller persists so the notification can be cancelled
// or replaced later.
type Scheduler interface {
	Schedule(ctx context.Context, n Notification) (string, error)
	Cancel(ctx context.Context, id string) error
}

// MemoryScheduler is an in-process Scheduler for tests and dry runs. It only
// tracks what would have been delivered.
type MemoryScheduler struct {
	mu      sync.Mutex
	pending map[string]Notification
}

// NewMemoryScheduler creates an empty MemoryScheduler.
func NewMemoryScheduler() *MemoryScheduler {
	return &MemoryScheduler{pending: make(map[string]Notification)}
}

func (m *MemoryScheduler) Schedule(ctx context.Context, n Notification) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	m.pending[id] = n
	return id, nil
}

func (m *MemoryScheduler) Cancel(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, id)
	return nil
}

// Pending returns the notification scheduled under id, if any.
func (m *MemoryScheduler) Pending(id string) (Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.pending[id]
	return n, ok
}

// PendingCount returns how many notifications are currently scheduled.
func (m *MemoryScheduler) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
