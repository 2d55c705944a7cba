package main

import (
	"context"
	"errors"

	"github.com/krishna123-lang/semantic-book-recommender/internal/recommend"
	"github.com/spf13/cobra"
)

var recommendCount int

func init() {
	recommendCmd.Flags().IntVarP(&recommendCount, "count", "k", DefaultRecommendCount, "Number of recommendations")
	rootCmd.AddCommand(recommendCmd)
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <query>",
	Short: "Recommend books matching a free-text query",
	Long: `Recommend books semantically matching a free-text query.

The query is embedded and matched against indexed book descriptions by
nearest-neighbor search. Each result carries a similarity score, a match
tier, detected themes, and keyword overlap explaining why it matched.

Examples:
  bookrec recommend "a murder mystery with an unreliable narrator"
  bookrec recommend "space exploration and first contact" -k 3`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	engine, _, _ := mustBuildEngine(root)

	recs, err := engine.Recommend(context.Background(), args[0], recommendCount)
	if err != nil {
		if errors.Is(err, recommend.ErrEmbedding) {
			exitWithError(ExitProviderError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	language := "en"
	if len(recs) > 0 {
		language = recs[0].Language
	}
	_ = newTracker(root).RecordSearch(args[0], language)

	if humanOutput {
		printRecommendationsHuman(recs)
	} else {
		outputJSON(recs)
	}

	return nil
}
