// Package ingest cleans a raw book CSV into the corpus the recommender
// indexes: rows without a usable description are dropped, fields are
// normalized, and duplicate titles are collapsed.
package ingest

import (
	"strings"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
)

// UnknownFiller replaces empty authors and categories so downstream
// explanation text never interpolates a blank field.
const UnknownFiller = "Unknown"

// minDescriptionWords keeps only rows whose description carries enough text
// to embed meaningfully.
const minDescriptionWords = 5

// Report summarizes one cleaning pass.
type Report struct {
	Input            int `json:"input"`
	Kept             int `json:"kept"`
	DroppedEmpty     int `json:"dropped_empty_description"`
	DroppedShort     int `json:"dropped_short_description"`
	DroppedUntitled  int `json:"dropped_untitled"`
	DroppedDuplicate int `json:"dropped_duplicate_title"`
}

// Clean normalizes raw rows into corpus rows. Order is preserved; the first
// occurrence of a duplicated title wins. IDs carried on input rows are
// ignored, the catalog reassigns them.
func Clean(raw []catalog.Book) ([]catalog.Book, Report) {
	report := Report{Input: len(raw)}
	seen := make(map[string]bool, len(raw))
	kept := make([]catalog.Book, 0, len(raw))

	for _, row := range raw {
		book := normalize(row)
		if book.Description == "" {
			report.DroppedEmpty++
			continue
		}
		if len(strings.Fields(book.Description)) < minDescriptionWords {
			report.DroppedShort++
			continue
		}
		key := strings.ToLower(book.Title)
		if key == "" {
			report.DroppedUntitled++
			continue
		}
		if seen[key] {
			report.DroppedDuplicate++
			continue
		}
		seen[key] = true
		kept = append(kept, book)
	}

	report.Kept = len(kept)
	return kept, report
}

func normalize(row catalog.Book) catalog.Book {
	book := catalog.Book{
		Title:       strings.TrimSpace(row.Title),
		Authors:     strings.TrimSpace(row.Authors),
		Categories:  strings.TrimSpace(row.Categories),
		Description: strings.Join(strings.Fields(row.Description), " "),
	}
	if book.Authors == "" {
		book.Authors = UnknownFiller
	}
	if book.Categories == "" {
		book.Categories = UnknownFiller
	}
	return book
}
