package main

import (
	"fmt"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
	"github.com/krishna123-lang/semantic-book-recommender/internal/config"
	"github.com/krishna123-lang/semantic-book-recommender/internal/ingest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(ingestCmd)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <csv>",
	Short: "Import and clean a raw book CSV",
	Long: `Import a raw book CSV into the repository corpus.

The input needs title, authors, categories and description columns.
Rows without a usable description are dropped, missing authors and
categories are filled with "Unknown", and duplicate titles are
collapsed. The cleaned corpus is written to .bookrec/books.csv.

Rebuild the index after ingesting: a changed corpus makes any existing
index stale.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

// IngestResult is the response for the ingest command.
type IngestResult struct {
	Status string        `json:"status"`
	Corpus string        `json:"corpus"`
	Report ingest.Report `json:"report"`
}

func runIngest(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	raw, err := catalog.LoadCSV(args[0])
	if err != nil {
		exitWithError(ExitCorpusError, "reading input: %v", err)
	}

	cleaned, report := ingest.Clean(raw.Books())
	if len(cleaned) == 0 {
		exitWithError(ExitCorpusError, "no usable rows in %s (%d input rows)", args[0], report.Input)
	}

	corpusPath := config.CorpusPath(root, loadRepoConfig(root))
	if err := catalog.WriteCSV(corpusPath, cleaned); err != nil {
		exitWithError(ExitError, "writing corpus: %v", err)
	}

	if humanOutput {
		fmt.Printf("Ingested %d of %d rows into %s\n", report.Kept, report.Input, corpusPath)
		if dropped := report.Input - report.Kept; dropped > 0 {
			fmt.Printf("  Dropped: %d empty description, %d short description, %d untitled, %d duplicate title\n",
				report.DroppedEmpty, report.DroppedShort, report.DroppedUntitled, report.DroppedDuplicate)
		}
		fmt.Println("\nRun 'bookrec index build' to index the new corpus.")
	} else {
		outputJSON(IngestResult{Status: "ingested", Corpus: corpusPath, Report: report})
	}

	return nil
}
