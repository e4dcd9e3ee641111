// Package genre holds the policy tables mapping emotions to movie genres
// and genres to catalog search keywords.
package genre

import (
	"strings"

	"cinemood/internal/emotion"
)

// emotionGenres is the policy table mapping each canonical emotion to an
// ordered list of target genres. Order is the iteration order during
// aggregation, not a display ranking.
var emotionGenres = map[emotion.Emotion][]string{
	emotion.Joy:      {"Comedy", "Romance", "Family", "Animation", "Musical"},
	emotion.Love:     {"Romance", "Comedy", "Family", "Drama"},
	emotion.Sadness:  {"Drama", "Animation", "Biography", "Romance"},
	emotion.Anger:    {"Comedy", "Adventure", "Action", "Thriller"},
	emotion.Fear:     {"Family", "Fantasy", "Adventure", "Animation"},
	emotion.Surprise: {"Mystery", "Adventure", "Thriller", "Sci-Fi"},
	// Broadly popular genres for a neutral or unrecognized mood.
	emotion.Neutral: {"Action", "Adventure", "Comedy", "Drama"},
}

// genreKeywords lists search keyword variants per genre. Catalog keyword
// search works far better with these than with the genre name alone.
var genreKeywords = map[string][]string{
	"Comedy":    {"funny", "laugh", "humor", "comedy"},
	"Romance":   {"love", "romantic", "romance"},
	"Drama":     {"drama", "emotional", "story"},
	"Action":    {"action", "adventure", "hero"},
	"Thriller":  {"thriller", "suspense", "mystery"},
	"Horror":    {"horror", "scary", "fear"},
	"Sci-Fi":    {"science", "fiction", "future", "space"},
	"Fantasy":   {"fantasy", "magic", "adventure"},
	"Animation": {"animated", "cartoon", "family"},
	"Family":    {"family", "kids", "children"},
	"Musical":   {"musical", "music", "song"},
	"Biography": {"biography", "true", "story"},
	"Mystery":   {"mystery", "detective", "crime"},
}

// Mapper resolves emotions to genres and genres to search keywords.
type Mapper struct {
	genres   map[emotion.Emotion][]string
	keywords map[string][]string
}

// NewMapper creates a mapper with the built-in policy tables.
func NewMapper() *Mapper {
	genres := make(map[emotion.Emotion][]string, len(emotionGenres))
	for e, list := range emotionGenres {
		genres[e] = append([]string(nil), list...)
	}

	keywords := make(map[string][]string, len(genreKeywords))
	for g, list := range genreKeywords {
		keywords[g] = append([]string(nil), list...)
	}

	return &Mapper{
		genres:   genres,
		keywords: keywords,
	}
}

// ForEmotion returns the ordered genre list for an emotion. The neutral
// list covers anything outside the taxonomy, which cannot happen through
// the detector but keeps the lookup total.
func (m *Mapper) ForEmotion(e emotion.Emotion) []string {
	if list, ok := m.genres[e]; ok {
		return append([]string(nil), list...)
	}
	return append([]string(nil), m.genres[emotion.Neutral]...)
}

// Keywords returns the search keyword variants for a genre. Genres
// without a table entry fall back to the lowercased genre name.
func (m *Mapper) Keywords(genre string) []string {
	if list, ok := m.keywords[genre]; ok {
		return append([]string(nil), list...)
	}
	return []string{strings.ToLower(genre)}
}
