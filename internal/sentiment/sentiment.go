// Package sentiment provides a coarse two-class sentiment model used when
// the primary emotion model is unavailable. It classifies by nearest
// neighbor over a small set of labeled anchor phrases held in a VecLite
// collection, and emits "positive"/"negative" labels that the emotion
// normalization table already knows how to collapse.
package sentiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdul-hamid-achik/veclite"

	"cinemood/internal/emotion"
)

const (
	anchorsCollection = "sentiment_anchors"

	// Number of nearest anchors consulted per classification.
	voteK = 5
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
)

// anchorPhrases seed the collection on first open.
var anchorPhrases = map[string][]string{
	LabelPositive: {
		"I feel great and everything is going well",
		"this is wonderful, I am so happy",
		"what a lovely day, I am delighted",
		"I am excited and full of energy",
		"things are looking up, I feel good",
		"I am grateful and content",
	},
	LabelNegative: {
		"I feel terrible and nothing is going right",
		"this is awful, I am so upset",
		"I am sad and lonely today",
		"everything is going wrong, I feel bad",
		"I am worried and stressed out",
		"I feel miserable and exhausted",
	},
}

// Config holds configuration for the sentiment model.
type Config struct {
	// Path to the VecLite database file (e.g., "data/sentiment.veclite").
	Path string

	// ConfigPath is the path to veclite.yaml config file (optional).
	// If empty, searches ./veclite.yaml, ~/.veclite/config.yaml.
	ConfigPath string
}

// Model is the fallback sentiment classifier.
type Model struct {
	vecdb *veclite.DB
	coll  *veclite.Collection
}

// Open creates the sentiment model, seeding anchor phrases if the
// collection is empty.
func Open(cfg Config) (*Model, error) {
	slog.Debug("opening sentiment model", "path", cfg.Path)

	vecliteCfg, err := veclite.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load veclite config: %w", err)
	}

	embedder, err := veclite.NewEmbedderFromConfig(vecliteCfg.Embedder)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	vecdb, err := veclite.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open veclite db: %w", err)
	}

	coll, err := vecdb.CreateCollection(anchorsCollection,
		veclite.WithDimension(embedder.Dimension()),
		veclite.WithDistanceType(veclite.DistanceCosine),
		veclite.WithHNSW(16, 200),
		veclite.WithEmbedder(embedder),
	)
	if err != nil {
		// Collection might already exist, try to get it
		coll, err = vecdb.GetCollection(anchorsCollection)
		if err != nil {
			vecdb.Close()
			return nil, fmt.Errorf("get collection: %w", err)
		}
	}

	m := &Model{
		vecdb: vecdb,
		coll:  coll,
	}

	if m.coll.Count() == 0 {
		if err := m.seed(); err != nil {
			vecdb.Close()
			return nil, fmt.Errorf("seed anchors: %w", err)
		}
	}

	return m, nil
}

// seed inserts the anchor phrases with their sentiment labels.
func (m *Model) seed() error {
	for label, phrases := range anchorPhrases {
		for _, phrase := range phrases {
			payload := map[string]any{"label": label}
			if _, err := m.coll.InsertText(phrase, payload); err != nil {
				return fmt.Errorf("insert anchor %q: %w", phrase, err)
			}
		}
	}

	if err := m.vecdb.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	slog.Info("seeded sentiment anchors", "count", m.coll.Count())
	return nil
}

// Name identifies the model for logging.
func (m *Model) Name() string {
	return "sentiment-anchors"
}

// Classify returns the sentiment label winning a similarity-weighted vote
// among the nearest anchor phrases. The score is the winning label's
// share of the total vote weight, in [0,1].
func (m *Model) Classify(ctx context.Context, text string) (emotion.Prediction, error) {
	results, err := m.coll.SearchText(text, veclite.TopK(voteK))
	if err != nil {
		return emotion.Prediction{}, fmt.Errorf("search anchors: %w", err)
	}

	if len(results) == 0 {
		return emotion.Prediction{}, fmt.Errorf("no anchors in collection")
	}

	weights := make(map[string]float64)
	var total float64
	for _, r := range results {
		label, ok := r.Record.Payload["label"].(string)
		if !ok {
			continue
		}

		w := float64(r.Score)
		if w < 0 {
			w = 0
		}
		weights[label] += w
		total += w
	}

	if total == 0 {
		return emotion.Prediction{}, fmt.Errorf("no usable anchor matches")
	}

	best := ""
	for label, w := range weights {
		if best == "" || w > weights[best] {
			best = label
		}
	}

	return emotion.Prediction{
		Label: best,
		Score: weights[best] / total,
	}, nil
}

// Close closes the underlying VecLite database.
func (m *Model) Close() error {
	if m.vecdb != nil {
		return m.vecdb.Close()
	}
	return nil
}
