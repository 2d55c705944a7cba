// Package discover implements the non-query entry points into the corpus:
// mood-based search queries and random surprise picks.
package discover

import (
	"math/rand"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
)

// SurpriseCount is how many random books one surprise pick returns.
const SurpriseCount = 5

// Mood maps a named mood to the semantic query sent to the recommender.
type Mood struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// Moods is the fixed mood palette, in display order.
var Moods = []Mood{
	{Name: "Happy", Query: "uplifting joyful comedy"},
	{Name: "Emotional", Query: "emotional drama relationships"},
	{Name: "Dark", Query: "thriller horror mystery"},
	{Name: "Adventurous", Query: "adventure fantasy exploration"},
	{Name: "Romantic", Query: "love emotional romance"},
}

// MoodQuery resolves a mood name to its search query. Unknown moods get a
// generic query rather than an error.
func MoodQuery(name string) (string, bool) {
	for _, m := range Moods {
		if m.Name == name {
			return m.Query, true
		}
	}
	return "interesting books", false
}

// Surprise returns up to SurpriseCount distinct random books. Pass a seeded
// source for reproducible picks; a nil rng uses the shared global source.
func Surprise(books *catalog.Catalog, rng *rand.Rand) []catalog.Book {
	n := books.Len()
	count := SurpriseCount
	if count > n {
		count = n
	}

	perm := rand.Perm(n)
	if rng != nil {
		perm = rng.Perm(n)
	}

	picks := make([]catalog.Book, 0, count)
	for _, row := range perm[:count] {
		book, _ := books.Get(row)
		picks = append(picks, book)
	}
	return picks
}
