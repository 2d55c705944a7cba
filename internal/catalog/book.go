// Package catalog holds the read-only book corpus loaded at startup.
package catalog

import (
	"strings"
)

// TitleSearchLimit caps the number of results from SearchByTitle.
const TitleSearchLimit = 5

// Book is one catalog entry. ID is the 0-based row ordinal and must match the
// position of the book's vector in the index; the two stores are built
// together and never reordered independently.
type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Categories  string `json:"categories"`
	Description string `json:"description"`
}

// Catalog is the immutable in-memory corpus. It is safe for concurrent reads.
type Catalog struct {
	books []Book
}

// New builds a catalog from books in row order, assigning IDs 0..n-1.
func New(books []Book) *Catalog {
	owned := make([]Book, len(books))
	copy(owned, books)
	for i := range owned {
		owned[i].ID = i
	}
	return &Catalog{books: owned}
}

// Len returns the number of books in the corpus.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Get returns the book at the given row id.
func (c *Catalog) Get(id int) (Book, bool) {
	if id < 0 || id >= len(c.books) {
		return Book{}, false
	}
	return c.books[id], true
}

// Books returns all books in row order. The returned slice must not be
// modified.
func (c *Catalog) Books() []Book {
	return c.books
}

// SearchByTitle returns books whose title contains the substring,
// case-insensitively, in corpus scan order. At most TitleSearchLimit matches
// are returned; results are not ranked by relevance.
func (c *Catalog) SearchByTitle(substring string) []Book {
	needle := strings.ToLower(strings.TrimSpace(substring))
	if needle == "" {
		return nil
	}
	var matches []Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matches = append(matches, b)
			if len(matches) == TitleSearchLimit {
				break
			}
		}
	}
	return matches
}

// GetByTitle looks up a book by exact title, case-insensitively. Absence is
// reported through the boolean, not an error.
func (c *Catalog) GetByTitle(title string) (Book, bool) {
	want := strings.ToLower(strings.TrimSpace(title))
	for _, b := range c.books {
		if strings.ToLower(b.Title) == want {
			return b, true
		}
	}
	return Book{}, false
}
