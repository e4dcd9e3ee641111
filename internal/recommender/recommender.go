// Package recommender aggregates per-genre catalog searches into a
// bounded, deduplicated, randomly sampled recommendation set.
package recommender

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"cinemood/internal/catalog"
	"cinemood/internal/emotion"
	"cinemood/internal/genre"
)

// Searcher is the capability the aggregator needs from the catalog.
type Searcher interface {
	// SearchGenre returns up to limit detail records for the genre,
	// best-effort.
	SearchGenre(ctx context.Context, genre string, limit int) []catalog.Movie
}

// Aggregator turns an emotion into a set of movie recommendations.
type Aggregator struct {
	genres   *genre.Mapper
	searcher Searcher
	rng      *rand.Rand
}

// Config holds configuration for the aggregator.
type Config struct {
	Genres   *genre.Mapper
	Searcher Searcher

	// Rand is the shuffle source. Defaults to a time-seeded source;
	// tests inject a fixed seed for reproducibility.
	Rand *rand.Rand
}

// New creates a new aggregator.
func New(cfg Config) *Aggregator {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Aggregator{
		genres:   cfg.Genres,
		searcher: cfg.Searcher,
		rng:      rng,
	}
}

// Recommend returns up to count movies for the emotion. Each mapped
// genre is searched with a quota of floor(count/G)+1 so dedup and
// sampling still have enough unique candidates; duplicates across
// genres collapse to the first record seen; the surviving pool is
// shuffled uniformly before truncation so no genre's table position
// biases which movies surface. An empty result means the catalog had
// nothing to offer, not that something failed.
func (a *Aggregator) Recommend(ctx context.Context, e emotion.Emotion, count int) []catalog.Movie {
	if count < 1 {
		count = 1
	}

	genres := a.genres.ForEmotion(e)
	perGenre := count/len(genres) + 1

	var pool []catalog.Movie
	for _, g := range genres {
		found := a.searcher.SearchGenre(ctx, g, perGenre)
		pool = append(pool, found...)
	}

	unique := dedupe(pool)

	a.rng.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	if len(unique) > count {
		unique = unique[:count]
	}

	slog.Debug("aggregation complete",
		"emotion", e,
		"genres", len(genres),
		"per_genre_quota", perGenre,
		"fetched", len(pool),
		"returned", len(unique),
	)

	return unique
}

// dedupe removes duplicate catalog IDs, keeping the first occurrence.
func dedupe(movies []catalog.Movie) []catalog.Movie {
	seen := make(map[string]bool, len(movies))
	unique := make([]catalog.Movie, 0, len(movies))

	for _, m := range movies {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		unique = append(unique, m)
	}

	return unique
}
