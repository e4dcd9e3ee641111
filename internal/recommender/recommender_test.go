package recommender

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinemood/internal/catalog"
	"cinemood/internal/emotion"
	"cinemood/internal/genre"
)

// stubSearcher serves canned movies per genre and records requested
// limits.
type stubSearcher struct {
	byGenre map[string][]catalog.Movie
	limits  map[string]int
}

func newStubSearcher() *stubSearcher {
	return &stubSearcher{
		byGenre: make(map[string][]catalog.Movie),
		limits:  make(map[string]int),
	}
}

func (s *stubSearcher) SearchGenre(ctx context.Context, g string, limit int) []catalog.Movie {
	s.limits[g] = limit
	movies := s.byGenre[g]
	if len(movies) > limit {
		movies = movies[:limit]
	}
	return movies
}

func movie(id, title string) catalog.Movie {
	return catalog.Movie{ID: id, Title: title}
}

func newAggregator(s Searcher) *Aggregator {
	return New(Config{
		Genres:   genre.NewMapper(),
		Searcher: s,
		Rand:     rand.New(rand.NewSource(1)),
	})
}

func TestAggregator_Recommend_quota(t *testing.T) {
	s := newStubSearcher()
	a := newAggregator(s)

	// joy maps to 5 genres: floor(3/5)+1 = 1 per genre.
	a.Recommend(context.Background(), emotion.Joy, 3)

	for _, g := range []string{"Comedy", "Romance", "Family", "Animation", "Musical"} {
		assert.Equal(t, 1, s.limits[g], "genre %s", g)
	}

	// neutral maps to 4 genres: floor(10/4)+1 = 3 per genre.
	a.Recommend(context.Background(), emotion.Neutral, 10)
	for _, g := range []string{"Action", "Adventure", "Comedy", "Drama"} {
		assert.Equal(t, 3, s.limits[g], "genre %s", g)
	}
}

func TestAggregator_Recommend_dedupFirstWins(t *testing.T) {
	s := newStubSearcher()
	// love maps to [Romance, Comedy, Family, Drama]; the same catalog ID
	// shows up under two genres with different titles.
	s.byGenre["Romance"] = []catalog.Movie{movie("tt001", "First Title")}
	s.byGenre["Comedy"] = []catalog.Movie{movie("tt001", "Second Title")}

	a := newAggregator(s)
	got := a.Recommend(context.Background(), emotion.Love, 5)

	require.Len(t, got, 1)
	assert.Equal(t, "tt001", got[0].ID)
	assert.Equal(t, "First Title", got[0].Title)
}

func TestAggregator_Recommend_sizeLaw(t *testing.T) {
	// Pool of 5 unique movies, one per joy genre.
	build := func() *stubSearcher {
		s := newStubSearcher()
		for i, g := range []string{"Comedy", "Romance", "Family", "Animation", "Musical"} {
			id := fmt.Sprintf("tt%03d", i)
			s.byGenre[g] = []catalog.Movie{movie(id, "Movie "+id)}
		}
		return s
	}

	for _, count := range []int{1, 2, 3, 5, 7, 50} {
		t.Run(fmt.Sprintf("count=%d", count), func(t *testing.T) {
			a := newAggregator(build())
			got := a.Recommend(context.Background(), emotion.Joy, count)

			expected := count
			if expected > 5 {
				expected = 5
			}
			assert.Len(t, got, expected)

			seen := make(map[string]bool)
			for _, m := range got {
				assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
				seen[m.ID] = true
			}
		})
	}
}

func TestAggregator_Recommend_empty(t *testing.T) {
	a := newAggregator(newStubSearcher())

	got := a.Recommend(context.Background(), emotion.Sadness, 3)

	assert.Empty(t, got)
}

func TestAggregator_Recommend_drawsAcrossGenres(t *testing.T) {
	s := newStubSearcher()
	for i, g := range []string{"Comedy", "Romance", "Family", "Animation", "Musical"} {
		id := fmt.Sprintf("tt%03d", i)
		s.byGenre[g] = []catalog.Movie{movie(id, "Movie "+id)}
	}

	a := newAggregator(s)
	got := a.Recommend(context.Background(), emotion.Joy, 3)

	require.Len(t, got, 3)
	ids := make(map[string]bool)
	for _, m := range got {
		ids[m.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestAggregator_Recommend_clampsCount(t *testing.T) {
	s := newStubSearcher()
	s.byGenre["Drama"] = []catalog.Movie{movie("tt001", "A")}

	a := newAggregator(s)
	got := a.Recommend(context.Background(), emotion.Sadness, 0)

	assert.Len(t, got, 1)
}
