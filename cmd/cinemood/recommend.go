package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinemood/internal/app"
	"cinemood/internal/config"
	"cinemood/internal/pipeline"
)

var recommendCount int

var recommendCmd = &cobra.Command{
	Use:   "recommend [mood description]",
	Short: "Recommend movies for a mood",
	Long: `Analyze a free-text mood description and recommend matching movies.

Example:
  cinemood recommend "I feel really happy today!"
  cinemood recommend --count 5 feeling a bit anxious tonight`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendCount, "count", "n", 0, "number of recommendations (default from config)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	text := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForRecommend(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	count := recommendCount
	if count < 1 {
		count = cfg.DefaultCount
	}

	batch := a.Orchestrator.Run(ctx, text, count)
	printBatch(batch)

	return nil
}

// printBatch renders one recommendation cycle to stdout.
func printBatch(batch *pipeline.Batch) {
	fmt.Println(pipeline.FormatDetection(batch))

	if batch.LowConfidence {
		fmt.Println("Note: emotion detection confidence is low. Try describing your mood with more specific words.")
	}

	if batch.Empty() {
		fmt.Println("No recommendations found for your current mood. Try describing it differently.")
		return
	}

	fmt.Printf("Matching genres: %s\n\n", strings.Join(batch.Genres, ", "))
	fmt.Println(renderMovieTable(batch.Movies))

	for i, m := range batch.Movies {
		fmt.Printf("\n%d. %s\n", i+1, pipeline.FormatMovie(m))
	}
}
