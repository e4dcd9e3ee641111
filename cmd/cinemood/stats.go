package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cinemood/internal/config"
	"cinemood/internal/db"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog cache statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	store, err := db.NewStore(ctx, cfg.CachePath)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	count, err := store.CountMovies(ctx)
	if err != nil {
		return fmt.Errorf("count movies: %w", err)
	}

	fmt.Printf("Cache path:    %s\n", cfg.CachePath)
	fmt.Printf("Cached movies: %d\n", count)

	return nil
}
