// Package emotion maps free-text mood descriptions to a fixed emotion
// taxonomy with a coarse confidence tier.
package emotion

import "strings"

// Emotion is one of the canonical emotion categories used internally,
// decoupled from whatever vocabulary a classification model emits.
type Emotion string

const (
	Joy      Emotion = "joy"
	Love     Emotion = "love"
	Sadness  Emotion = "sadness"
	Anger    Emotion = "anger"
	Fear     Emotion = "fear"
	Surprise Emotion = "surprise"
	Neutral  Emotion = "neutral"
)

// All lists the canonical emotions in display order.
var All = []Emotion{Joy, Love, Sadness, Anger, Fear, Surprise, Neutral}

// Parse returns the canonical emotion matching s, or Neutral if s is not
// a member of the taxonomy.
func Parse(s string) Emotion {
	e := Emotion(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All {
		if e == known {
			return known
		}
	}
	return Neutral
}

// labelTable collapses model-specific raw labels into the canonical set.
// Unrecognized labels map to Neutral.
var labelTable = map[string]Emotion{
	// Joy/happiness
	"joy":       Joy,
	"happiness": Joy,
	"positive":  Joy,
	"trust":     Joy,

	"love": Love,

	// Sadness
	"sadness":  Sadness,
	"grief":    Sadness,
	"negative": Sadness,

	// Anger
	"anger":       Anger,
	"rage":        Anger,
	"frustration": Anger,

	// Fear
	"fear":    Fear,
	"anxiety": Fear,
	"worry":   Fear,

	// Surprise
	"surprise":     Surprise,
	"amazement":    Surprise,
	"anticipation": Surprise,

	// Disgust has no useful genre mapping, treat it as neutral.
	"neutral": Neutral,
	"disgust": Neutral,
}

// Tier is a coarse confidence bucket for user-facing messaging.
type Tier string

const (
	TierHigh    Tier = "high"
	TierMedium  Tier = "medium"
	TierLow     Tier = "low"
	TierVeryLow Tier = "very_low"
)

// TierFor buckets a confidence score. Breakpoints: >=0.8 high,
// >=0.6 medium, >=0.4 low, otherwise very_low.
func TierFor(score float64) Tier {
	switch {
	case score >= 0.8:
		return TierHigh
	case score >= 0.6:
		return TierMedium
	case score >= 0.4:
		return TierLow
	default:
		return TierVeryLow
	}
}

// Result is the outcome of classifying one mood description.
type Result struct {
	RawLabel   string
	Confidence float64
	Emotion    Emotion
	Tier       Tier
}

// neutralResult is what classification degrades to on empty input or
// model failure.
func neutralResult() Result {
	return Result{
		RawLabel:   "",
		Confidence: 0,
		Emotion:    Neutral,
		Tier:       TierVeryLow,
	}
}
