package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cinemood/internal/emotion"
)

func TestMapper_ForEmotion(t *testing.T) {
	m := NewMapper()

	tests := []struct {
		emotion  emotion.Emotion
		expected []string
	}{
		{emotion.Joy, []string{"Comedy", "Romance", "Family", "Animation", "Musical"}},
		{emotion.Love, []string{"Romance", "Comedy", "Family", "Drama"}},
		{emotion.Sadness, []string{"Drama", "Animation", "Biography", "Romance"}},
		{emotion.Anger, []string{"Comedy", "Adventure", "Action", "Thriller"}},
		{emotion.Fear, []string{"Family", "Fantasy", "Adventure", "Animation"}},
		{emotion.Surprise, []string{"Mystery", "Adventure", "Thriller", "Sci-Fi"}},
		{emotion.Neutral, []string{"Action", "Adventure", "Comedy", "Drama"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.emotion), func(t *testing.T) {
			assert.Equal(t, tt.expected, m.ForEmotion(tt.emotion))
		})
	}
}

func TestMapper_ForEmotion_unknownFallsBackToNeutral(t *testing.T) {
	m := NewMapper()

	assert.Equal(t, m.ForEmotion(emotion.Neutral), m.ForEmotion(emotion.Emotion("ennui")))
}

func TestMapper_ForEmotion_returnsCopy(t *testing.T) {
	m := NewMapper()

	list := m.ForEmotion(emotion.Joy)
	list[0] = "Horror"

	assert.Equal(t, "Comedy", m.ForEmotion(emotion.Joy)[0])
}

func TestMapper_Keywords(t *testing.T) {
	m := NewMapper()

	assert.Equal(t, []string{"funny", "laugh", "humor", "comedy"}, m.Keywords("Comedy"))
	assert.Equal(t, []string{"mystery", "detective", "crime"}, m.Keywords("Mystery"))

	t.Run("unknown genre falls back to lowercased name", func(t *testing.T) {
		assert.Equal(t, []string{"western"}, m.Keywords("Western"))
	})
}
