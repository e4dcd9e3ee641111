package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinemood/internal/app"
	"cinemood/internal/config"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [mood description]",
	Short: "Test emotion detection on a text",
	Long: `Classify a mood description without fetching recommendations.

Example:
  cinemood classify "I'm scared and nervous"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	text := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForClassify(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	result := a.Detector.Detect(ctx, text)

	fmt.Printf("Input:      %q\n", text)
	fmt.Printf("Raw label:  %s\n", orNone(result.RawLabel))
	fmt.Printf("Emotion:    %s\n", result.Emotion)
	fmt.Printf("Confidence: %.2f (%s)\n", result.Confidence, result.Tier)

	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
