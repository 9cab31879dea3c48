package docstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curator-app/curator/pkg/docstore"
	"github.com/curator-app/curator/pkg/kv"
)

type note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Stars int    `json:"stars,omitempty"`
}

func newStore(t *testing.T) *docstore.Store[note] {
	t.Helper()
	return docstore.New[note](kv.NewMemoryStore(), "note", nil)
}

func TestStore_RoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	got, err := s.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Nil(t, got, "get before set should yield nil")

	want := note{ID: "n1", Title: "Solaris", Stars: 5}
	require.NoError(t, s.Set(ctx, "n1", want))

	got, err = s.Get(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "n1", note{ID: "n1", Title: "first"}))
	require.NoError(t, s.Set(ctx, "n1", note{ID: "n1", Title: "second"}))

	got, err := s.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "n1", note{ID: "n1", Title: "x"}))
	require.NoError(t, s.Remove(ctx, "n1"))
	require.NoError(t, s.Remove(ctx, "n1"), "removing an absent id must not fail")

	got, err := s.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_UpdateOnMissing(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	called := false
	got, err := s.Update(ctx, "ghost", func(n note) note {
		called = true
		return n
	})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, called, "update fn must not run for a missing id")
}

func TestStore_UpdateAppliesAndReturns(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "n1", note{ID: "n1", Title: "draft", Stars: 1}))

	got, err := s.Update(ctx, "n1", func(n note) note {
		n.Stars = 4
		return n
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Stars)

	stored, err := s.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, *got, *stored)
}

func TestStore_PrefixIsolation(t *testing.T) {
	substrate := kv.NewMemoryStore()
	a := docstore.New[note](substrate, "alpha", nil)
	b := docstore.New[note](substrate, "beta", nil)
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, "same-id", note{ID: "same-id", Title: "from a"}))
	require.NoError(t, b.Set(ctx, "same-id", note{ID: "same-id", Title: "from b"}))

	fromA, err := a.Get(ctx, "same-id")
	require.NoError(t, err)
	assert.Equal(t, "from a", fromA.Title)

	all, err := a.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "store a must not see store b's documents")
}

// A prefix that is a proper prefix of another store's prefix must still be
// isolated; the key separator guarantees it.
func TestStore_PrefixIsolation_SharedStem(t *testing.T) {
	substrate := kv.NewMemoryStore()
	short := docstore.New[note](substrate, "tag", nil)
	long := docstore.New[note](substrate, "tag_link", nil)
	ctx := context.Background()

	require.NoError(t, long.Set(ctx, "l1", note{ID: "l1"}))

	all, err := short.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_GetAllEmpty(t *testing.T) {
	s := newStore(t)

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestStore_GetAllDropsUndecodable(t *testing.T) {
	substrate := kv.NewMemoryStore()
	s := docstore.New[note](substrate, "note", nil)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "ok", note{ID: "ok", Title: "fine"}))
	require.NoError(t, substrate.SetItem(ctx, "note:broken", "{not json"))
	require.NoError(t, substrate.SetItem(ctx, "note:empty", ""))

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ok", all[0].ID)
}

func TestStore_Query(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "n1", note{ID: "n1", Stars: 5}))
	require.NoError(t, s.Set(ctx, "n2", note{ID: "n2", Stars: 2}))
	require.NoError(t, s.Set(ctx, "n3", note{ID: "n3", Stars: 4}))

	good, err := s.Query(ctx, func(n note) bool { return n.Stars >= 4 })
	require.NoError(t, err)
	assert.Len(t, good, 2)
}

func TestStore_Clear(t *testing.T) {
	substrate := kv.NewMemoryStore()
	s := docstore.New[note](substrate, "note", nil)
	other := docstore.New[note](substrate, "other", nil)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "n1", note{ID: "n1"}))
	require.NoError(t, s.Set(ctx, "n2", note{ID: "n2"}))
	require.NoError(t, other.Set(ctx, "o1", note{ID: "o1"}))

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx), "clearing an empty prefix is a no-op")

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	kept, err := other.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "clear must not cross the prefix boundary")
}

// --- error taxonomy ---

// failingStore fails every substrate call with a fixed cause.
type failingStore struct {
	cause error
}

func (f *failingStore) SetItem(ctx context.Context, key, value string) error { return f.cause }
func (f *failingStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.cause
}
func (f *failingStore) RemoveItem(ctx context.Context, key string) error { return f.cause }
func (f *failingStore) Keys(ctx context.Context) ([]string, error)       { return nil, f.cause }
func (f *failingStore) MultiGet(ctx context.Context, keys []string) (map[string]string, error) {
	return nil, f.cause
}
func (f *failingStore) MultiRemove(ctx context.Context, keys []string) error { return f.cause }

func TestStore_ErrorKinds(t *testing.T) {
	cause := errors.New("disk on fire")
	s := docstore.New[note](&failingStore{cause: cause}, "note", nil)
	ctx := context.Background()

	err := s.Set(ctx, "n1", note{ID: "n1"})
	assert.ErrorIs(t, err, docstore.ErrWrite)
	assert.ErrorIs(t, err, cause, "the substrate cause must stay reachable")

	_, err = s.Get(ctx, "n1")
	assert.ErrorIs(t, err, docstore.ErrRead)

	assert.ErrorIs(t, s.Remove(ctx, "n1"), docstore.ErrDelete)

	_, err = s.GetAll(ctx)
	assert.ErrorIs(t, err, docstore.ErrRead)

	_, err = s.Update(ctx, "n1", func(n note) note { return n })
	assert.ErrorIs(t, err, docstore.ErrUpdate)
	assert.ErrorIs(t, err, cause)

	_, err = s.Query(ctx, func(note) bool { return true })
	assert.ErrorIs(t, err, docstore.ErrQuery)

	assert.ErrorIs(t, s.Clear(ctx), docstore.ErrClear)
}

func TestStore_GetDeserializationFailure(t *testing.T) {
	substrate := kv.NewMemoryStore()
	s := docstore.New[note](substrate, "note", nil)
	ctx := context.Background()

	require.NoError(t, substrate.SetItem(ctx, "note:bad", "{broken"))

	_, err := s.Get(ctx, "bad")
	assert.ErrorIs(t, err, docstore.ErrRead)
}
