package main

import (
	"fmt"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Search books by title substring",
	Long: `Search the corpus by case-insensitive title substring.

This is a plain catalog lookup, not a semantic search; use
'bookrec recommend' for meaning-based queries. At most 5 matches are
returned, in corpus order.

Examples:
  bookrec search "mockingbird"
  bookrec search "the"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	books := mustLoadCatalog(root, loadRepoConfig(root))

	matches := books.SearchByTitle(args[0])
	if matches == nil {
		matches = []catalog.Book{}
	}

	if humanOutput {
		if len(matches) == 0 {
			fmt.Println("No books found")
		} else {
			fmt.Printf("Found %d books:\n\n", len(matches))
			for i, book := range matches {
				fmt.Printf("[%d] %s\n", i+1, truncateString(book.Title, TitleMaxLen))
				fmt.Printf("    %s | %s\n\n", book.Authors, book.Categories)
			}
		}
	} else {
		outputJSON(matches)
	}

	return nil
}
