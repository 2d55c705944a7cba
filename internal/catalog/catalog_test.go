package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testBooks() []Book {
	return []Book{
		{Title: "To Kill a Mockingbird", Authors: "Harper Lee", Categories: "Fiction", Description: "A lawyer defends a black man in the Depression-era South."},
		{Title: "1984", Authors: "George Orwell", Categories: "Fiction", Description: "A dystopian future under total surveillance."},
		{Title: "The Mockingbird Next Door", Authors: "Marja Mills", Categories: "Biography", Description: "Life alongside Harper Lee."},
		{Title: "Mockingbird Songs", Authors: "Wayne Flynt", Categories: "Biography", Description: "Letters exchanged with Harper Lee."},
		{Title: "Mockingbird", Authors: "Kathryn Erskine", Categories: "Juvenile Fiction", Description: "A girl with Asperger's copes with loss."},
		{Title: "Mockingbird Summer", Authors: "Lynda Rutledge", Categories: "Fiction", Description: "A small Texas town in 1964."},
		{Title: "Still Life with Mockingbird", Authors: "Anon", Categories: "Poetry", Description: "Collected poems."},
	}
}

func TestNew_AssignsSequentialIDs(t *testing.T) {
	c := New([]Book{{Title: "A"}, {Title: "B"}, {Title: "C"}})
	for i := 0; i < c.Len(); i++ {
		b, ok := c.Get(i)
		if !ok {
			t.Fatalf("Get(%d) not found", i)
		}
		if b.ID != i {
			t.Errorf("book %d has ID %d", i, b.ID)
		}
	}
}

func TestGet_OutOfRange(t *testing.T) {
	c := New(testBooks())
	if _, ok := c.Get(-1); ok {
		t.Error("Get(-1) should not be found")
	}
	if _, ok := c.Get(c.Len()); ok {
		t.Error("Get(len) should not be found")
	}
}

func TestSearchByTitle(t *testing.T) {
	c := New(testBooks())

	tests := []struct {
		name      string
		substring string
		wantCount int
		wantFirst string
	}{
		{
			name:      "case insensitive substring",
			substring: "mockingbird",
			wantCount: TitleSearchLimit, // 6 titles match, capped at 5
			wantFirst: "To Kill a Mockingbird",
		},
		{
			name:      "exact case",
			substring: "1984",
			wantCount: 1,
			wantFirst: "1984",
		},
		{
			name:      "no match",
			substring: "zzz",
			wantCount: 0,
		},
		{
			name:      "empty query",
			substring: "   ",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.SearchByTitle(tt.substring)
			if len(got) != tt.wantCount {
				t.Fatalf("got %d results, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount > 0 && got[0].Title != tt.wantFirst {
				t.Errorf("first result = %q, want %q", got[0].Title, tt.wantFirst)
			}
		})
	}
}

func TestSearchByTitle_ScanOrder(t *testing.T) {
	c := New(testBooks())
	got := c.SearchByTitle("Mockingbird")
	prev := -1
	for _, b := range got {
		if b.ID <= prev {
			t.Fatalf("results not in corpus scan order: id %d after %d", b.ID, prev)
		}
		prev = b.ID
	}
}

func TestGetByTitle(t *testing.T) {
	c := New(testBooks())

	b, ok := c.GetByTitle("to kill a mockingbird")
	if !ok {
		t.Fatal("expected to find book by lowercase title")
	}
	if b.Authors != "Harper Lee" {
		t.Errorf("authors = %q", b.Authors)
	}

	if _, ok := c.GetByTitle("No Such Book"); ok {
		t.Error("expected not-found for missing title")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.csv")

	books := testBooks()
	if err := WriteCSV(path, books); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	c, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if c.Len() != len(books) {
		t.Fatalf("loaded %d books, want %d", c.Len(), len(books))
	}
	for i, want := range books {
		got, _ := c.Get(i)
		if got.Title != want.Title || got.Description != want.Description {
			t.Errorf("row %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestLoadCSV_NotFound(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil || !strings.Contains(err.Error(), "corpus file not found") {
		t.Errorf("expected ErrCorpusNotFound, got %v", err)
	}
}

func TestReadBooks_MissingColumn(t *testing.T) {
	r := strings.NewReader("title,authors\nA,B\n")
	_, err := ReadBooks(r)
	if err == nil || !strings.Contains(err.Error(), "missing required column") {
		t.Errorf("expected missing column error, got %v", err)
	}
}

func TestReadBooks_ExtraColumnsIgnored(t *testing.T) {
	r := strings.NewReader("isbn,title,authors,categories,description\nx,T,A,C,D\n")
	books, err := ReadBooks(r)
	if err != nil {
		t.Fatalf("ReadBooks: %v", err)
	}
	if len(books) != 1 || books[0].Title != "T" || books[0].Description != "D" {
		t.Errorf("books = %+v", books)
	}
}

func TestReadBooks_CommaInDescription(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "books*.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := WriteCSV(f.Name(), []Book{{Title: "T", Authors: "A", Categories: "C", Description: "one, two, three"}}); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCSV(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := c.Get(0)
	if b.Description != "one, two, three" {
		t.Errorf("description = %q", b.Description)
	}
}
