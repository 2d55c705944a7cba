package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Errors returned by corpus file operations.
var (
	ErrCorpusNotFound = errors.New("corpus file not found")
	ErrMissingColumn  = errors.New("corpus file missing required column")
)

// requiredColumns are the columns every corpus file must carry. Extra columns
// are ignored.
var requiredColumns = []string{"title", "authors", "categories", "description"}

// LoadCSV reads the corpus wholesale from a CSV file. Row order defines the
// row-id-to-vector correspondence, so rows are kept exactly as written.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, path)
		}
		return nil, fmt.Errorf("opening corpus file: %w", err)
	}
	defer f.Close()

	books, err := ReadBooks(f)
	if err != nil {
		return nil, err
	}
	return New(books), nil
}

// ReadBooks parses corpus rows from CSV. The first row must be a header
// containing at least title, authors, categories, description.
func ReadBooks(r io.Reader) ([]Book, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count validated via the header

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading corpus header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var books []Book
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing corpus line %d: %w", line+1, err)
		}
		line++

		field := func(name string) string {
			idx := cols[name]
			if idx >= len(record) {
				return ""
			}
			return record[idx]
		}

		books = append(books, Book{
			ID:          len(books),
			Title:       field("title"),
			Authors:     field("authors"),
			Categories:  field("categories"),
			Description: field("description"),
		})
	}

	return books, nil
}

// WriteCSV writes books to a corpus CSV file, replacing existing content.
// Output column order is fixed so rebuilt corpora diff cleanly.
func WriteCSV(path string, books []Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating corpus file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(requiredColumns); err != nil {
		return fmt.Errorf("writing corpus header: %w", err)
	}
	for i, b := range books {
		row := []string{b.Title, b.Authors, b.Categories, b.Description}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing corpus row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing corpus file: %w", err)
	}
	return nil
}
