package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		score    float64
		expected Tier
	}{
		{0.95, TierHigh},
		{0.8, TierHigh},
		{0.79, TierMedium},
		{0.6, TierMedium},
		{0.59, TierLow},
		{0.4, TierLow},
		{0.39, TierVeryLow},
		{0.0, TierVeryLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierFor(tt.score), "score %.2f", tt.score)
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, Joy, Parse("joy"))
	assert.Equal(t, Surprise, Parse("  Surprise "))
	assert.Equal(t, Neutral, Parse("melancholy"))
	assert.Equal(t, Neutral, Parse(""))
}
