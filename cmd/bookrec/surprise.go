package main

import (
	"fmt"
	"math/rand"

	"github.com/krishna123-lang/semantic-book-recommender/internal/discover"
	"github.com/spf13/cobra"
)

var surpriseSeed int64

func init() {
	surpriseCmd.Flags().Int64Var(&surpriseSeed, "seed", 0, "Random seed for reproducible picks (0 = random)")
	rootCmd.AddCommand(surpriseCmd)
}

var surpriseCmd = &cobra.Command{
	Use:   "surprise",
	Short: "Pick random books from the corpus",
	Long: `Pick up to 5 random books from the corpus, no query needed.

Examples:
  bookrec surprise
  bookrec surprise --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSurprise,
}

func runSurprise(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	books := mustLoadCatalog(root, loadRepoConfig(root))

	var rng *rand.Rand
	if surpriseSeed != 0 {
		rng = rand.New(rand.NewSource(surpriseSeed))
	}
	picks := discover.Surprise(books, rng)

	trk := newTracker(root)
	for _, book := range picks {
		_ = trk.RecordSurprise(book.Title)
	}

	if humanOutput {
		fmt.Printf("Surprise! Here are %d random books:\n\n", len(picks))
		for i, book := range picks {
			fmt.Printf("[%d] %s\n", i+1, truncateString(book.Title, TitleMaxLen))
			fmt.Printf("    %s | %s\n", book.Authors, book.Categories)
			fmt.Printf("    %s\n\n", wrapText(truncateString(book.Description, DescriptionMaxLen), TextWrapWidth, "    "))
		}
	} else {
		outputJSON(picks)
	}

	return nil
}
