package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinemood/internal/emotion"
	"cinemood/internal/genre"
)

var genresCmd = &cobra.Command{
	Use:   "genres [emotion]",
	Short: "Show the emotion-to-genre mapping",
	Long: `Print the genre list for an emotion, or the full mapping table
when no emotion is given.

Example:
  cinemood genres joy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenres,
}

func init() {
	rootCmd.AddCommand(genresCmd)
}

func runGenres(cmd *cobra.Command, args []string) error {
	mapper := genre.NewMapper()

	if len(args) == 1 {
		e := emotion.Parse(args[0])
		fmt.Printf("%s: %s\n", e, strings.Join(mapper.ForEmotion(e), ", "))
		return nil
	}

	for _, e := range emotion.All {
		fmt.Printf("%-8s %s\n", e, strings.Join(mapper.ForEmotion(e), ", "))
	}

	return nil
}
