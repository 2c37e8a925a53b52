package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateSelfHeals(t *testing.T) {
	store := NewMemorySessionStore(0)
	state, err := store.GetOrCreate(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", state.ID)
	assert.Empty(t, state.ShownRecipeIDs)
	assert.False(t, state.LastInteraction.IsZero())
}

func TestRecordShownAccumulates(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(0)

	require.NoError(t, store.RecordShown(ctx, "s1", []int64{1, 2, 3}))
	require.NoError(t, store.RecordShown(ctx, "s1", []int64{3, 4}))

	state, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, state.ShownRecipeIDs, 4)
}

func TestSessionBoundTriggersFullClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(50)

	ids := make([]int64, 50)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	require.NoError(t, store.RecordShown(ctx, "s1", ids))

	state, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, state.ShownRecipeIDs, 50)

	// One more id pushes past the bound: the whole set clears, no LRU.
	require.NoError(t, store.RecordShown(ctx, "s1", []int64{51}))
	state, err = store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, state.ShownRecipeIDs)
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(0)

	require.NoError(t, store.RecordShown(ctx, "a", []int64{1}))
	require.NoError(t, store.RecordShown(ctx, "b", []int64{2, 3}))

	a, _ := store.GetOrCreate(ctx, "a")
	b, _ := store.GetOrCreate(ctx, "b")
	assert.Len(t, a.ShownRecipeIDs, 1)
	assert.Len(t, b.ShownRecipeIDs, 2)
}

func TestRememberPreferences(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(0)

	require.NoError(t, store.RememberPreferences(ctx, "s1", Preferences{Ingredients: []string{"chicken"}}))
	state, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, state.LastPreferences)
	assert.Equal(t, []string{"chicken"}, state.LastPreferences.Ingredients)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(0)

	require.NoError(t, store.RecordShown(ctx, "s1", []int64{1, 2}))
	require.NoError(t, store.Reset(ctx, "s1"))

	state, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, state.ShownRecipeIDs)
	assert.Nil(t, state.LastPreferences)
}

func TestConcurrentWritesToOneSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(1000)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for j := int64(0); j < 10; j++ {
				_ = store.RecordShown(ctx, "s1", []int64{base*10 + j})
			}
		}(int64(i))
	}
	wg.Wait()

	state, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, state.ShownRecipeIDs, 100)
}
