package ingest

import (
	"testing"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
)

func TestCleanDropsUnusableRows(t *testing.T) {
	raw := []catalog.Book{
		{Title: "Good Book", Authors: "Someone", Categories: "Fiction", Description: "A long enough description with many words here."},
		{Title: "No Description", Authors: "Someone", Categories: "Fiction", Description: ""},
		{Title: "Short Description", Authors: "Someone", Categories: "Fiction", Description: "Too short."},
		{Title: "", Authors: "Someone", Categories: "Fiction", Description: "A perfectly fine description but the row has no title."},
		{Title: "good book", Authors: "Someone Else", Categories: "Fiction", Description: "A duplicate title differing only in letter case here."},
	}

	kept, report := Clean(raw)

	if len(kept) != 1 || kept[0].Title != "Good Book" {
		t.Fatalf("kept = %+v, want only Good Book", kept)
	}
	if report.Input != 5 || report.Kept != 1 {
		t.Errorf("report counts = %+v", report)
	}
	if report.DroppedEmpty != 1 || report.DroppedShort != 1 || report.DroppedUntitled != 1 || report.DroppedDuplicate != 1 {
		t.Errorf("drop breakdown = %+v", report)
	}
}

func TestCleanNormalizesFields(t *testing.T) {
	raw := []catalog.Book{
		{
			Title:       "  Padded Title  ",
			Authors:     "",
			Categories:  "   ",
			Description: "A  description\twith   irregular\n whitespace collapsed into single spaces.",
		},
	}

	kept, _ := Clean(raw)
	if len(kept) != 1 {
		t.Fatalf("kept = %d rows, want 1", len(kept))
	}
	book := kept[0]
	if book.Title != "Padded Title" {
		t.Errorf("title = %q, want trimmed", book.Title)
	}
	if book.Authors != UnknownFiller || book.Categories != UnknownFiller {
		t.Errorf("fillers = %q/%q, want %q", book.Authors, book.Categories, UnknownFiller)
	}
	if book.Description != "A description with irregular whitespace collapsed into single spaces." {
		t.Errorf("description = %q", book.Description)
	}
}

func TestCleanPreservesOrderAndFirstWins(t *testing.T) {
	raw := []catalog.Book{
		{Title: "Alpha", Authors: "A", Categories: "C", Description: "First alpha row with the original author attribution."},
		{Title: "Beta", Authors: "B", Categories: "C", Description: "A distinct second row that must stay in position."},
		{Title: "Alpha", Authors: "Z", Categories: "C", Description: "Second alpha row that must lose to the first one."},
	}

	kept, report := Clean(raw)
	if len(kept) != 2 {
		t.Fatalf("kept = %d rows, want 2", len(kept))
	}
	if kept[0].Title != "Alpha" || kept[0].Authors != "A" {
		t.Errorf("first row = %+v, want original Alpha", kept[0])
	}
	if kept[1].Title != "Beta" {
		t.Errorf("second row = %+v, want Beta", kept[1])
	}
	if report.DroppedDuplicate != 1 {
		t.Errorf("DroppedDuplicate = %d, want 1", report.DroppedDuplicate)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	kept, report := Clean(nil)
	if len(kept) != 0 {
		t.Errorf("kept = %+v, want empty", kept)
	}
	if report.Input != 0 || report.Kept != 0 {
		t.Errorf("report = %+v", report)
	}
}
