package emotion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubClassifier records calls and returns a canned prediction or error.
type stubClassifier struct {
	calls int
	pred  Prediction
	err   error
}

func (s *stubClassifier) Name() string { return "stub" }

func (s *stubClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	s.calls++
	if s.err != nil {
		return Prediction{}, s.err
	}
	return s.pred, nil
}

func TestDetector_Normalize(t *testing.T) {
	d := NewDetector(Config{Classifier: &stubClassifier{}})

	tests := []struct {
		raw      string
		expected Emotion
	}{
		{"joy", Joy},
		{"happiness", Joy},
		{"positive", Joy},
		{"trust", Joy},
		{"love", Love},
		{"sadness", Sadness},
		{"grief", Sadness},
		{"negative", Sadness},
		{"anger", Anger},
		{"rage", Anger},
		{"frustration", Anger},
		{"fear", Fear},
		{"anxiety", Fear},
		{"worry", Fear},
		{"surprise", Surprise},
		{"amazement", Surprise},
		{"anticipation", Surprise},
		{"neutral", Neutral},
		{"disgust", Neutral},
		{"LABEL_7", Neutral},
		{"", Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.Normalize(tt.raw))
		})
	}
}

func TestDetector_Normalize_caseInsensitive(t *testing.T) {
	d := NewDetector(Config{Classifier: &stubClassifier{}})

	assert.Equal(t, Joy, d.Normalize("JOY"))
	assert.Equal(t, Fear, d.Normalize(" Anxiety "))
}

func TestDetector_Detect(t *testing.T) {
	t.Run("normalizes model prediction", func(t *testing.T) {
		stub := &stubClassifier{pred: Prediction{Label: "JOY", Score: 0.92}}
		d := NewDetector(Config{Classifier: stub})

		result := d.Detect(context.Background(), "I feel really happy today!")

		assert.Equal(t, "joy", result.RawLabel)
		assert.Equal(t, Joy, result.Emotion)
		assert.Equal(t, 0.92, result.Confidence)
		assert.Equal(t, TierHigh, result.Tier)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("empty input skips the model", func(t *testing.T) {
		stub := &stubClassifier{pred: Prediction{Label: "joy", Score: 0.9}}
		d := NewDetector(Config{Classifier: stub})

		for _, text := range []string{"", "   ", "\t\n"} {
			result := d.Detect(context.Background(), text)

			assert.Equal(t, Neutral, result.Emotion)
			assert.Equal(t, 0.0, result.Confidence)
			assert.Equal(t, TierVeryLow, result.Tier)
			assert.Empty(t, result.RawLabel)
		}

		assert.Equal(t, 0, stub.calls)
	})

	t.Run("model failure degrades to neutral", func(t *testing.T) {
		stub := &stubClassifier{err: errors.New("model exploded")}
		d := NewDetector(Config{Classifier: stub})

		result := d.Detect(context.Background(), "I feel great")

		assert.Equal(t, Neutral, result.Emotion)
		assert.Equal(t, 0.0, result.Confidence)
		assert.Equal(t, TierVeryLow, result.Tier)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("fallback sentiment labels funnel through the table", func(t *testing.T) {
		stub := &stubClassifier{pred: Prediction{Label: "POSITIVE", Score: 0.71}}
		d := NewDetector(Config{Classifier: stub})

		result := d.Detect(context.Background(), "pretty good day")

		assert.Equal(t, Joy, result.Emotion)
		assert.Equal(t, TierMedium, result.Tier)
	})
}
