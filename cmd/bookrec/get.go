package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <title>",
	Short: "Show one book by exact title",
	Long: `Show the full record of one book, looked up by exact title
(case-insensitive).

Examples:
  bookrec get "The Silent Patient"`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	books := mustLoadCatalog(root, loadRepoConfig(root))

	book, ok := books.GetByTitle(args[0])
	if !ok {
		exitWithError(ExitError, "book not found: %s", args[0])
	}

	_ = newTracker(root).RecordBookView(book.Title)

	if humanOutput {
		printBookDetailHuman(book)
	} else {
		outputJSON(book)
	}

	return nil
}
