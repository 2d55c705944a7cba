package main

import (
	"fmt"

	"github.com/krishna123-lang/semantic-book-recommender/internal/config"
	"github.com/krishna123-lang/semantic-book-recommender/internal/dashboard"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
	Long: `Aggregate the interaction log into usage statistics: event counts,
top queries, most viewed books, and mood distribution.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	stats, err := dashboard.Build(config.InteractionsPath(root))
	if err != nil {
		exitWithError(ExitError, "building stats: %v", err)
	}

	if humanOutput {
		fmt.Printf("Total events: %d (%d active days", stats.TotalEvents, stats.ActiveDays)
		if stats.FirstEventDate != "" {
			fmt.Printf(", %s to %s", stats.FirstEventDate, stats.LastEventDate)
		}
		fmt.Println(")")
		fmt.Printf("  Searches: %d  Chat messages: %d  Surprises: %d  Book views: %d\n",
			stats.Searches, stats.ChatMessages, stats.SurprisePicks, stats.BookViews)

		printCounts := func(label string, counts []dashboard.Count) {
			if len(counts) == 0 {
				return
			}
			fmt.Printf("\n%s:\n", label)
			for _, c := range counts {
				fmt.Printf("  %4d  %s\n", c.Count, truncateString(c.Name, TitleMaxLen))
			}
		}
		printCounts("Top queries", stats.TopQueries)
		printCounts("Most viewed books", stats.TopBooks)
		printCounts("Moods", stats.TopMoods)
		printCounts("Query languages", stats.Languages)
	} else {
		outputJSON(stats)
	}

	return nil
}
