package discover

import (
	"math/rand"
	"testing"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
)

func TestMoodQuery(t *testing.T) {
	tests := []struct {
		mood      string
		wantQuery string
		wantKnown bool
	}{
		{"Happy", "uplifting joyful comedy", true},
		{"Dark", "thriller horror mystery", true},
		{"Romantic", "love emotional romance", true},
		{"Sleepy", "interesting books", false},
	}

	for _, tt := range tests {
		query, known := MoodQuery(tt.mood)
		if query != tt.wantQuery || known != tt.wantKnown {
			t.Errorf("MoodQuery(%q) = %q, %v; want %q, %v", tt.mood, query, known, tt.wantQuery, tt.wantKnown)
		}
	}
}

func TestMoodPalette(t *testing.T) {
	want := []string{"Happy", "Emotional", "Dark", "Adventurous", "Romantic"}
	if len(Moods) != len(want) {
		t.Fatalf("palette has %d moods, want %d", len(Moods), len(want))
	}
	for i, name := range want {
		if Moods[i].Name != name {
			t.Errorf("mood %d = %q, want %q", i, Moods[i].Name, name)
		}
	}
}

func TestSurprise(t *testing.T) {
	books := make([]catalog.Book, 20)
	for i := range books {
		books[i] = catalog.Book{Title: string(rune('A' + i))}
	}
	cat := catalog.New(books)

	picks := Surprise(cat, rand.New(rand.NewSource(1)))
	if len(picks) != SurpriseCount {
		t.Fatalf("picks = %d, want %d", len(picks), SurpriseCount)
	}

	seen := map[string]bool{}
	for _, book := range picks {
		if seen[book.Title] {
			t.Errorf("duplicate pick %q", book.Title)
		}
		seen[book.Title] = true
	}

	// Same seed, same picks.
	again := Surprise(cat, rand.New(rand.NewSource(1)))
	for i := range picks {
		if picks[i].Title != again[i].Title {
			t.Fatalf("seeded picks differ: %v vs %v", picks, again)
		}
	}
}

func TestSurpriseSmallCorpus(t *testing.T) {
	cat := catalog.New([]catalog.Book{{Title: "Only"}, {Title: "Two"}})

	picks := Surprise(cat, rand.New(rand.NewSource(1)))
	if len(picks) != 2 {
		t.Errorf("picks = %d, want whole corpus", len(picks))
	}
}
