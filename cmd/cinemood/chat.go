package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cinemood/internal/app"
	"cinemood/internal/config"
)

// moreCount is how many recommendations a "more" follow-up asks for.
const moreCount = 5

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive mood-to-movie session",
	Long: `Run an interactive session: describe your mood, get movie
recommendations, repeat. Type quit, exit, bye, or q to stop.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	fmt.Println("Describe your mood and I'll recommend movies for you.")
	fmt.Println("Examples: 'I feel happy', 'I'm sad today', 'I want something exciting'")
	fmt.Println("Type 'quit', 'exit', or 'bye' to stop.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("How are you feeling today? ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if isExitWord(input) {
			fmt.Println("Happy watching! See you next time.")
			break
		}

		if input == "" {
			fmt.Println("Please tell me how you're feeling!")
			continue
		}

		batch := a.Orchestrator.Run(ctx, input, cfg.DefaultCount)
		printBatch(batch)

		if !batch.Empty() {
			fmt.Printf("\nWant more %s movies? (y/n): ", batch.Detection.Emotion)
			if !scanner.Scan() {
				break
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer == "y" || answer == "yes" {
				printBatch(a.Orchestrator.Run(ctx, input, moreCount))
			}
		}

		fmt.Println()
	}

	return scanner.Err()
}

func isExitWord(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "bye", "q":
		return true
	}
	return false
}
