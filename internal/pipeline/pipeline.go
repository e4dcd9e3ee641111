// Package pipeline wires mood text through emotion detection, genre
// mapping, and recommendation aggregation into a displayable batch.
package pipeline

import (
	"context"
	"log/slog"

	"cinemood/internal/catalog"
	"cinemood/internal/emotion"
	"cinemood/internal/genre"
	"cinemood/internal/recommender"
)

// Advisory threshold: below this confidence the caller should suggest a
// more specific mood description.
const lowConfidenceThreshold = 0.4

// Batch is the result of one recommendation cycle. It is assembled per
// query and never persisted.
type Batch struct {
	Text      string
	Detection emotion.Result
	Genres    []string
	Movies    []catalog.Movie

	// LowConfidence flags that the detection is weak. It is advisory
	// only; recommendations are still produced.
	LowConfidence bool
}

// Empty reports whether the aggregation produced no recommendations.
// This is a valid outcome, distinct from any failure.
func (b *Batch) Empty() bool {
	return len(b.Movies) == 0
}

// Orchestrator runs the recommendation pipeline.
type Orchestrator struct {
	detector   *emotion.Detector
	genres     *genre.Mapper
	aggregator *recommender.Aggregator
}

// Config holds configuration for the orchestrator.
type Config struct {
	Detector   *emotion.Detector
	Genres     *genre.Mapper
	Aggregator *recommender.Aggregator
}

// New creates a new orchestrator.
func New(cfg Config) *Orchestrator {
	return &Orchestrator{
		detector:   cfg.Detector,
		genres:     cfg.Genres,
		aggregator: cfg.Aggregator,
	}
}

// Run classifies the mood text and assembles up to count
// recommendations. Every failure below this level has already been
// absorbed and degraded, so Run always returns a batch; callers decide
// how to present an empty one.
func (o *Orchestrator) Run(ctx context.Context, text string, count int) *Batch {
	detection := o.detector.Detect(ctx, text)

	slog.Info("mood analyzed",
		"emotion", detection.Emotion,
		"raw_label", detection.RawLabel,
		"confidence", detection.Confidence,
		"tier", detection.Tier,
	)

	genres := o.genres.ForEmotion(detection.Emotion)
	movies := o.aggregator.Recommend(ctx, detection.Emotion, count)

	return &Batch{
		Text:          text,
		Detection:     detection,
		Genres:        genres,
		Movies:        movies,
		LowConfidence: detection.Confidence < lowConfidenceThreshold,
	}
}
