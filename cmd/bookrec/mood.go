package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/krishna123-lang/semantic-book-recommender/internal/discover"
	"github.com/krishna123-lang/semantic-book-recommender/internal/recommend"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(moodCmd)
}

var moodCmd = &cobra.Command{
	Use:   "mood [name]",
	Short: "Recommend books for a mood",
	Long: `Recommend books for a named mood. Each mood expands to a fixed
semantic query. Without an argument, lists the available moods.

Examples:
  bookrec mood
  bookrec mood Dark
  bookrec mood Adventurous --human`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMood,
}

func runMood(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if humanOutput {
			fmt.Println("Available moods:")
			for _, m := range discover.Moods {
				fmt.Printf("  %-12s %s\n", m.Name, m.Query)
			}
		} else {
			outputJSON(discover.Moods)
		}
		return nil
	}

	mood := args[0]
	query, known := discover.MoodQuery(mood)
	if !known {
		names := make([]string, len(discover.Moods))
		for i, m := range discover.Moods {
			names[i] = m.Name
		}
		exitWithError(ExitError, "unknown mood %q (valid: %v)", mood, names)
	}

	root := mustFindRepository()
	engine, _, _ := mustBuildEngine(root)

	recs, err := engine.Recommend(context.Background(), query, DefaultRecommendCount)
	if err != nil {
		if errors.Is(err, recommend.ErrEmbedding) {
			exitWithError(ExitProviderError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	_ = newTracker(root).RecordMood(mood)

	if humanOutput {
		fmt.Printf("Books for your %s mood:\n\n", mood)
		printRecommendationsHuman(recs)
	} else {
		outputJSON(recs)
	}

	return nil
}
