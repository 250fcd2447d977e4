package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotastic/quotastic/internal/domain"
)

func sub(text, author string) domain.Submission {
	return domain.Submission{Text: text, Author: author}
}

func TestStore_Add(t *testing.T) {
	s := New()
	ctx := context.Background()

	quote, err := s.Add(ctx, sub("First", "A"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), quote.ID)
	assert.Equal(t, "First", quote.Text)
	assert.Equal(t, "A", quote.Author)
	assert.Zero(t, quote.Views)
	assert.False(t, quote.CreatedAt.IsZero())

	second, err := s.Add(ctx, sub("Second", "B"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestStore_IDsNeverReused(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.Add(ctx, sub("First", "A"))
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	second, err := s.Add(ctx, sub("Second", "B"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestStore_Random_Empty(t *testing.T) {
	s := New()

	quote, err := s.Random(context.Background())
	require.NoError(t, err)
	assert.Nil(t, quote)
}

func TestStore_Random_IncrementsViews(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Add(ctx, sub("Only one", "A"))
	require.NoError(t, err)

	const reads = 5
	for i := 1; i <= reads; i++ {
		quote, err := s.Random(ctx)
		require.NoError(t, err)
		require.NotNil(t, quote)
		assert.Equal(t, int64(i), quote.Views)
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(reads), stats.TotalViews)
}

func TestStore_Random_CoversAllQuotes(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		_, err := s.Add(ctx, sub(text, "X"))
		require.NoError(t, err)
	}

	seen := make(map[int64]bool)
	for range 200 {
		quote, err := s.Random(ctx)
		require.NoError(t, err)
		seen[quote.ID] = true
	}

	assert.Len(t, seen, 3, "all quotes should eventually be selected")
}

func TestStore_List_CreationOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		_, err := s.Add(ctx, sub(text, "X"))
		require.NoError(t, err)
	}

	quotes, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	for i, quote := range quotes {
		assert.Equal(t, texts[i], quote.Text)
	}
}

func TestStore_List_SnapshotSemantics(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Add(ctx, sub("kept", "X"))
	require.NoError(t, err)

	snapshot, err := s.List(ctx)
	require.NoError(t, err)

	// Mutations after the call must not disturb the returned slice.
	_, err = s.Add(ctx, sub("later", "Y"))
	require.NoError(t, err)
	_, err = s.Random(ctx)
	require.NoError(t, err)

	require.Len(t, snapshot, 1)
	assert.Equal(t, "kept", snapshot[0].Text)
	assert.Zero(t, snapshot[0].Views)
}

func TestStore_Delete(t *testing.T) {
	s := New()
	ctx := context.Background()

	quote, err := s.Add(ctx, sub("doomed", "X"))
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, quote.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete of the same id reports false, not an error.
	deleted, err = s.Delete(ctx, quote.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Unknown ids likewise.
	deleted, err = s.Delete(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStore_Stats(t *testing.T) {
	s := New()
	ctx := context.Background()

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalQuotes)
	assert.Zero(t, stats.TotalViews)

	_, err = s.Add(ctx, sub("one", "A"))
	require.NoError(t, err)
	_, err = s.Add(ctx, sub("two", "B"))
	require.NoError(t, err)

	_, err = s.Random(ctx)
	require.NoError(t, err)

	stats, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalQuotes)
	assert.Equal(t, int64(1), stats.TotalViews)

	// Idempotent with no intervening writes.
	again, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, again)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	quote, err := s.Add(ctx, sub("original", "X"))
	require.NoError(t, err)

	quote.Text = "tampered"
	quote.Views = 100

	quotes, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "original", quotes[0].Text)
	assert.Zero(t, quotes[0].Views)
}

func TestStore_ConcurrentRandom_NoLostIncrements(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Add(ctx, sub("contended", "X"))
	require.NoError(t, err)

	const goroutines = 64
	const readsPerGoroutine = 50

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range readsPerGoroutine {
				_, err := s.Random(ctx)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(goroutines*readsPerGoroutine), stats.TotalViews)
}

func TestStore_ConcurrentMixedOperations(t *testing.T) {
	s := New()
	ctx := context.Background()

	// Random reads racing adds and deletes must never panic or return a
	// quote that does not exist.
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		for i := range 100 {
			quote, err := s.Add(ctx, sub("q", "A"))
			assert.NoError(t, err)

			if i%2 == 0 {
				_, err := s.Delete(ctx, quote.ID)
				assert.NoError(t, err)
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		for range 200 {
			quote, err := s.Random(ctx)
			assert.NoError(t, err)
			if quote != nil {
				assert.Positive(t, quote.ID)
				assert.Positive(t, quote.Views)
			}
		}
	}()

	wg.Wait()

	require.NoError(t, s.Check(ctx))
}

func TestStore_HealthCheck(t *testing.T) {
	s := New()
	assert.Equal(t, "quote-store", s.Name())
	assert.NoError(t, s.Check(context.Background()))
}

func TestStore_CreatedAtUsesClock(t *testing.T) {
	s := New()
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return frozen }

	quote, err := s.Add(context.Background(), sub("timed", "X"))
	require.NoError(t, err)
	assert.Equal(t, frozen, quote.CreatedAt)
}
