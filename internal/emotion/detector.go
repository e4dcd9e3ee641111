package emotion

import (
	"context"
	"log/slog"
	"strings"
)

// Prediction is the top prediction from a classification model.
type Prediction struct {
	Label string
	Score float64
}

// Classifier is the capability the detector needs from a model. Both the
// primary emotion model and the fallback sentiment model satisfy it.
type Classifier interface {
	// Name identifies the model for logging.
	Name() string

	// Classify returns the top prediction for the given text.
	Classify(ctx context.Context, text string) (Prediction, error)
}

// Detector turns raw mood text into a normalized emotion Result.
type Detector struct {
	classifier Classifier
	table      map[string]Emotion
}

// Config holds configuration for the detector.
type Config struct {
	Classifier Classifier
}

// NewDetector creates a detector backed by the given classifier.
func NewDetector(cfg Config) *Detector {
	table := make(map[string]Emotion, len(labelTable))
	for k, v := range labelTable {
		table[k] = v
	}

	return &Detector{
		classifier: cfg.Classifier,
		table:      table,
	}
}

// Normalize maps a raw model label to a canonical emotion.
// Matching is case-insensitive; unknown labels map to Neutral.
func (d *Detector) Normalize(rawLabel string) Emotion {
	if e, ok := d.table[strings.ToLower(strings.TrimSpace(rawLabel))]; ok {
		return e
	}
	return Neutral
}

// Detect classifies the text and normalizes the result. Empty or
// whitespace-only input short-circuits to a neutral result without
// calling the model. A failed model call degrades to the same neutral
// result rather than propagating: a low-confidence neutral answer keeps
// the pipeline going where an error would abort it.
func (d *Detector) Detect(ctx context.Context, text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return neutralResult()
	}

	pred, err := d.classifier.Classify(ctx, text)
	if err != nil {
		slog.Warn("classification failed, degrading to neutral",
			"model", d.classifier.Name(),
			"error", err,
		)
		return neutralResult()
	}

	label := strings.ToLower(pred.Label)

	return Result{
		RawLabel:   label,
		Confidence: pred.Score,
		Emotion:    d.Normalize(label),
		Tier:       TierFor(pred.Score),
	}
}
