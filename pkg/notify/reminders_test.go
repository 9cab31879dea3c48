package notify_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curator-app/curator/pkg/collection"
	"github.com/curator-app/curator/pkg/docstore"
	"github.com/curator-app/curator/pkg/item"
	"github.com/curator-app/curator/pkg/kv"
	"github.com/curator-app/curator/pkg/notify"
)

func setup(t *testing.T) (*notify.Reminders, *item.Service, *notify.MemoryScheduler) {
	t.Helper()
	substrate := kv.NewMemoryStore()
	items := item.NewService(docstore.New[item.Item](substrate, item.Prefix, nil))
	scheduler := notify.NewMemoryScheduler()
	return notify.NewReminders(items, scheduler), items, scheduler
}

func createItem(t *testing.T, items *item.Service, title string) *item.Item {
	t.Helper()
	it, err := items.Create(context.Background(), item.CreateInput{
		CollectionID:   "collection_1",
		CollectionType: collection.TypeNote,
		Title:          title,
	})
	require.NoError(t, err)
	return it
}

func TestReminders_Set(t *testing.T) {
	reminders, items, scheduler := setup(t)
	ctx := context.Background()

	it := createItem(t, items, "water the plants")
	at := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	updated, err := reminders.Set(ctx, it.ID, at)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.ReminderAt)
	assert.True(t, updated.ReminderAt.Equal(at))
	require.NotEmpty(t, updated.NotificationID)

	pending, ok := scheduler.Pending(updated.NotificationID)
	require.True(t, ok)
	assert.Equal(t, "water the plants", pending.Message)
	assert.True(t, pending.At.Equal(at))
}

func TestReminders_SetReplacesPrevious(t *testing.T) {
	reminders, items, scheduler := setup(t)
	ctx := context.Background()

	it := createItem(t, items, "call the library")

	first, err := reminders.Set(ctx, it.ID, time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := reminders.Set(ctx, it.ID, time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.NotEqual(t, first.NotificationID, second.NotificationID)
	assert.Equal(t, 1, scheduler.PendingCount(), "the previous notification must be cancelled")
	_, stillPending := scheduler.Pending(first.NotificationID)
	assert.False(t, stillPending)
}

func TestReminders_SetMissingItem(t *testing.T) {
	reminders, _, scheduler := setup(t)

	updated, err := reminders.Set(context.Background(), "ghost", time.Now())
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Zero(t, scheduler.PendingCount())
}

func TestReminders_Clear(t *testing.T) {
	reminders, items, scheduler := setup(t)
	ctx := context.Background()

	it := createItem(t, items, "return the book")
	_, err := reminders.Set(ctx, it.ID, time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	cleared, err := reminders.Clear(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, cleared)
	assert.Nil(t, cleared.ReminderAt)
	assert.Empty(t, cleared.NotificationID)
	assert.Zero(t, scheduler.PendingCount())
}

func TestReminders_ClearWithoutReminder(t *testing.T) {
	reminders, items, _ := setup(t)
	ctx := context.Background()

	it := createItem(t, items, "no reminder yet")

	cleared, err := reminders.Clear(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, cleared)
	assert.Nil(t, cleared.ReminderAt)
}

// failingScheduler rejects every call.
type failingScheduler struct{}

func (failingScheduler) Schedule(context.Context, notify.Notification) (string, error) {
	return "", fmt.Errorf("scheduler offline")
}

func (failingScheduler) Cancel(context.Context, string) error {
	return fmt.Errorf("scheduler offline")
}

func TestReminders_SetSchedulerFailure(t *testing.T) {
	substrate := kv.NewMemoryStore()
	items := item.NewService(docstore.New[item.Item](substrate, item.Prefix, nil))
	reminders := notify.NewReminders(items, failingScheduler{})
	ctx := context.Background()

	it := createItem(t, items, "doomed")

	_, err := reminders.Set(ctx, it.ID, time.Now())
	require.Error(t, err)

	// Nothing was persisted since scheduling never succeeded.
	current, err := items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Nil(t, current.ReminderAt)
	assert.Empty(t, current.NotificationID)
}
