package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinemood/internal/catalog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	store, err := NewStore(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate(ctx))
	return store
}

func TestStore_Migrate_idempotent(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestStore_GetPutMovie(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("miss returns nil, nil", func(t *testing.T) {
		m, err := store.GetMovie(ctx, "tt404")
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	movie := &catalog.Movie{
		ID:       "tt001",
		Title:    "The Example",
		Year:     "1999",
		Genre:    "Comedy",
		Director: "Jane Doe",
		Plot:     "Things happen.",
		Poster:   "http://img.example/p.jpg",
		Rating:   "7.4",
		Link:     "https://www.imdb.com/title/tt001/",
	}

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.PutMovie(ctx, movie))

		got, err := store.GetMovie(ctx, "tt001")
		require.NoError(t, err)
		assert.Equal(t, movie, got)
	})

	t.Run("upsert replaces fields", func(t *testing.T) {
		updated := *movie
		updated.Rating = "8.0"
		require.NoError(t, store.PutMovie(ctx, &updated))

		got, err := store.GetMovie(ctx, "tt001")
		require.NoError(t, err)
		assert.Equal(t, "8.0", got.Rating)
	})

	t.Run("count", func(t *testing.T) {
		count, err := store.CountMovies(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
