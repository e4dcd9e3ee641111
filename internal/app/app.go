// Package app wires the application's dependencies together.
package app

import (
	"context"
	"log/slog"

	"cinemood/internal/catalog"
	"cinemood/internal/classifier"
	"cinemood/internal/config"
	"cinemood/internal/db"
	"cinemood/internal/emotion"
	"cinemood/internal/genre"
	"cinemood/internal/pipeline"
	"cinemood/internal/recommender"
	"cinemood/internal/sentiment"
)

// App is the main application container holding all dependencies.
type App struct {
	Config       *config.Config
	Store        *db.Store
	Detector     *emotion.Detector
	Genres       *genre.Mapper
	Orchestrator *pipeline.Orchestrator

	fallback *sentiment.Model
}

// New creates a new application instance with all dependencies wired up.
// Model selection happens here: if the primary emotion model is
// unreachable, the fallback sentiment model is used; both feed the same
// detector. Neither case aborts startup.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := db.NewStore(ctx, cfg.CachePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}

	a := &App{
		Config: cfg,
		Store:  store,
		Genres: genre.NewMapper(),
	}

	a.Detector = emotion.NewDetector(emotion.Config{
		Classifier: a.selectClassifier(ctx, cfg),
	})

	omdb := catalog.NewClient(catalog.ClientConfig{
		BaseURL: cfg.OMDbBaseURL,
		APIKey:  cfg.OMDbAPIKey,
	})

	searcher := catalog.NewGenreSearcher(catalog.SearcherConfig{
		Client:   omdb,
		Keywords: a.Genres,
		Cache:    store,
	})

	aggregator := recommender.New(recommender.Config{
		Genres:   a.Genres,
		Searcher: searcher,
	})

	a.Orchestrator = pipeline.New(pipeline.Config{
		Detector:   a.Detector,
		Genres:     a.Genres,
		Aggregator: aggregator,
	})

	return a, nil
}

// selectClassifier probes the primary emotion model and falls back to
// the sentiment model when it is unavailable. If the fallback cannot be
// opened either, the primary client is kept: its per-call failures
// degrade to neutral inside the detector.
func (a *App) selectClassifier(ctx context.Context, cfg *config.Config) emotion.Classifier {
	primary := classifier.New(classifier.Config{
		Host:  cfg.InferenceHost,
		Model: cfg.EmotionModel,
	})

	err := primary.Ping(ctx)
	if err == nil {
		slog.Info("emotion model loaded", "model", primary.Name())
		return primary
	}

	slog.Warn("emotion model unavailable, falling back to sentiment analysis",
		"model", primary.Name(),
		"error", err,
	)

	fallback, err := sentiment.Open(sentiment.Config{
		Path:       cfg.SentimentPath,
		ConfigPath: cfg.SentimentConfigPath,
	})
	if err != nil {
		slog.Error("sentiment fallback unavailable, classification will degrade to neutral",
			"error", err,
		)
		return primary
	}

	a.fallback = fallback
	return fallback
}

// Close closes all resources.
func (a *App) Close() error {
	if a.fallback != nil {
		if err := a.fallback.Close(); err != nil {
			slog.Warn("close sentiment model", "error", err)
		}
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
