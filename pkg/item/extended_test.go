package item_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curator-app/curator/pkg/docstore"
	"github.com/curator-app/curator/pkg/item"
	"github.com/curator-app/curator/pkg/kv"
)

func TestService_Duplicate(t *testing.T) {
	items, _ := setup(t)
	ctx := context.Background()

	original := create(t, items, "Andrei Rublev", "tarkovsky")
	_, err := items.MarkSuccess(ctx, original.ID)
	require.NoError(t, err)
	_, err = items.SetReminderDate(ctx, original.ID, time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = items.SetNotificationID(ctx, original.ID, "notif-7")
	require.NoError(t, err)

	clone, err := items.Duplicate(ctx, original.ID)
	require.NoError(t, err)
	require.NotNil(t, clone)

	assert.NotEqual(t, original.ID, clone.ID)
	assert.Equal(t, "Andrei Rublev (Copy)", clone.Title)
	assert.Equal(t, original.CollectionID, clone.CollectionID)
	assert.Equal(t, []string{"tarkovsky"}, clone.Tags)
	assert.Nil(t, clone.SuccessAt, "clones never inherit success status")
	assert.Nil(t, clone.ReminderAt)
	assert.Empty(t, clone.NotificationID)
	assert.True(t, clone.CreatedAt.After(original.CreatedAt))
}

func TestService_Duplicate_Missing(t *testing.T) {
	items, _ := setup(t)

	clone, err := items.Duplicate(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, clone)
}

func TestService_AddImagesDeduplicates(t *testing.T) {
	items, _ := setup(t)
	ctx := context.Background()

	it := create(t, items, "poster wall")
	_, err := items.AddImages(ctx, it.ID, []string{"a.png", "b.png"})
	require.NoError(t, err)

	updated, err := items.AddImages(ctx, it.ID, []string{"b.png", "c.png"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, updated.ImageURLs)
}

func TestService_RemoveImages(t *testing.T) {
	items, _ := setup(t)
	ctx := context.Background()

	it := create(t, items, "gallery")
	_, err := items.AddImages(ctx, it.ID, []string{"a.png", "b.png", "c.png"})
	require.NoError(t, err)

	updated, err := items.RemoveImages(ctx, it.ID, []string{"b.png", "missing.png"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"a.png", "c.png"}, updated.ImageURLs)
}

func TestService_AddTagIdempotent(t *testing.T) {
	items, _ := setup(t)
	ctx := context.Background()

	it := create(t, items, "tagged", "sci-fi")

	once, err := items.AddTag(ctx, it.ID, "sci-fi")
	require.NoError(t, err)
	require.NotNil(t, once)
	assert.Equal(t, []string{"sci-fi"}, once.Tags)
	assert.True(t, once.UpdatedAt.After(it.UpdatedAt),
		"a no-op add still stamps UpdatedAt")

	twice, err := items.AddTag(ctx, it.ID, "classic")
	require.NoError(t, err)
	assert.Equal(t, []string{"sci-fi", "classic"}, twice.Tags)
}

func TestService_RemoveTag(t *testing.T) {
	items, _ := setup(t)
	ctx := context.Background()

	it := create(t, items, "tagged", "a", "b")

	updated, err := items.RemoveTag(ctx, it.ID, "a")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"b"}, updated.Tags)
}

func TestService_RemoveReminderDateClearsBoth(t *testing.T) {
	items, _ := setup(t)
	ctx := context.Background()

	it := create(t, items, "reminded")
	_, err := items.SetReminderDate(ctx, it.ID, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = items.SetNotificationID(ctx, it.ID, "notif-1")
	require.NoError(t, err)

	cleared, err := items.RemoveReminderDate(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, cleared)
	assert.Nil(t, cleared.ReminderAt)
	assert.Empty(t, cleared.NotificationID)
}

func TestService_GetUpcomingInclusiveBounds(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	substrate := kv.NewMemoryStore()
	items := item.NewService(
		docstore.New[item.Item](substrate, item.Prefix, nil),
		item.WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	cases := map[string]time.Time{
		"at-now":     now,
		"at-end":     now.AddDate(0, 0, 3),
		"inside":     now.AddDate(0, 0, 1),
		"before-now": now.Add(-time.Second),
		"past-end":   now.AddDate(0, 0, 3).Add(time.Second),
		"far-future": now.AddDate(0, 1, 0),
	}
	for title, at := range cases {
		it := create(t, items, title)
		_, err := items.SetReminderDate(ctx, it.ID, at)
		require.NoError(t, err)
	}
	create(t, items, "no-reminder")

	upcoming, err := items.GetUpcoming(ctx, 3)
	require.NoError(t, err)

	titles := make([]string, len(upcoming))
	for i, it := range upcoming {
		titles[i] = it.Title
	}
	assert.ElementsMatch(t, []string{"at-now", "at-end", "inside"}, titles,
		"both interval bounds are inclusive")
}

func TestService_GetUpcomingDefaultsToSevenDays(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	substrate := kv.NewMemoryStore()
	items := item.NewService(
		docstore.New[item.Item](substrate, item.Prefix, nil),
		item.WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	within := create(t, items, "within")
	_, err := items.SetReminderDate(ctx, within.ID, now.AddDate(0, 0, 6))
	require.NoError(t, err)
	beyond := create(t, items, "beyond")
	_, err = items.SetReminderDate(ctx, beyond.ID, now.AddDate(0, 0, 8))
	require.NoError(t, err)

	upcoming, err := items.GetUpcoming(ctx, 0)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "within", upcoming[0].Title)
}

func TestService_UpdateTagsReplacesWholesale(t *testing.T) {
	items, _ := setup(t)
	ctx := context.Background()

	it := create(t, items, "retagged", "old-a", "old-b")

	updated, err := items.UpdateTags(ctx, it.ID, []string{"fresh"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"fresh"}, updated.Tags)
}

func TestService_GetWithReminderDate(t *testing.T) {
	items, _ := setup(t)
	ctx := context.Background()

	reminded := create(t, items, "reminded")
	_, err := items.SetReminderDate(ctx, reminded.ID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	create(t, items, "plain")

	withReminder, err := items.GetWithReminderDate(ctx)
	require.NoError(t, err)
	require.Len(t, withReminder, 1)
	assert.Equal(t, reminded.ID, withReminder[0].ID)
}
