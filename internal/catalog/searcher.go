package catalog

import (
	"context"
	"log/slog"
)

// Maximum keyword variants tried per genre before giving up.
const maxKeywordsPerGenre = 3

// KeywordSource supplies search keyword variants for a genre.
type KeywordSource interface {
	Keywords(genre string) []string
}

// DetailCache is an optional cache of detail records keyed by catalog ID.
// Get returns (nil, nil) on a miss.
type DetailCache interface {
	GetMovie(ctx context.Context, id string) (*Movie, error)
	PutMovie(ctx context.Context, m *Movie) error
}

// GenreSearcher finds detail records for a genre by walking keyword
// variants and resolving each search hit to a full record. It is
// best-effort: single failed lookups are logged and skipped, never
// surfaced, so a partially unreachable catalog degrades the result
// instead of aborting the aggregation.
type GenreSearcher struct {
	client   *Client
	keywords KeywordSource
	cache    DetailCache
}

// SearcherConfig holds configuration for the genre searcher.
type SearcherConfig struct {
	Client   *Client
	Keywords KeywordSource
	Cache    DetailCache // optional
}

// NewGenreSearcher creates a new genre searcher.
func NewGenreSearcher(cfg SearcherConfig) *GenreSearcher {
	return &GenreSearcher{
		client:   cfg.Client,
		keywords: cfg.Keywords,
		cache:    cfg.Cache,
	}
}

// SearchGenre returns up to limit detail records for the genre. Fewer
// records (including zero) are returned when searches fail or come back
// sparse.
func (s *GenreSearcher) SearchGenre(ctx context.Context, genre string, limit int) []Movie {
	if limit <= 0 {
		return nil
	}

	keywords := s.keywords.Keywords(genre)
	if len(keywords) > maxKeywordsPerGenre {
		keywords = keywords[:maxKeywordsPerGenre]
	}

	var movies []Movie
	seen := make(map[string]bool)

	for _, keyword := range keywords {
		hits, err := s.client.Search(ctx, keyword)
		if err != nil {
			slog.Warn("genre search failed",
				"genre", genre,
				"keyword", keyword,
				"error", err,
			)
			continue
		}

		for _, hit := range hits {
			if len(movies) >= limit {
				break
			}
			if hit.ID == "" || seen[hit.ID] {
				continue
			}
			seen[hit.ID] = true

			movie := s.resolve(ctx, hit.ID)
			if movie == nil {
				continue
			}
			movies = append(movies, *movie)
		}

		if len(movies) >= limit {
			break
		}
	}

	slog.Debug("genre search complete",
		"genre", genre,
		"requested", limit,
		"found", len(movies),
	)

	return movies
}

// resolve fetches a detail record, consulting the cache first. Cache
// failures only cost the round-trip they would have saved.
func (s *GenreSearcher) resolve(ctx context.Context, id string) *Movie {
	if s.cache != nil {
		cached, err := s.cache.GetMovie(ctx, id)
		if err != nil {
			slog.Warn("cache read failed", "id", id, "error", err)
		} else if cached != nil {
			return cached
		}
	}

	movie, err := s.client.Detail(ctx, id)
	if err != nil {
		slog.Warn("detail lookup failed", "id", id, "error", err)
		return nil
	}

	if s.cache != nil {
		if err := s.cache.PutMovie(ctx, movie); err != nil {
			slog.Warn("cache write failed", "id", id, "error", err)
		}
	}

	return movie
}
