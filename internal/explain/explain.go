package explain

import (
	"fmt"
	"strings"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
)

const (
	// QueryKeywordCount is how many keywords are extracted from a query.
	QueryKeywordCount = 10

	// bookKeywordCount is how many keywords are extracted from a book
	// description.
	bookKeywordCount = 8

	// commonKeywordLimit caps the reported query/book keyword overlap.
	commonKeywordLimit = 5
)

// Match tier boundaries. Exclusive on the lower side: a similarity of exactly
// 0.75 is Good, not Excellent. These are calibrated to the embedding model's
// distance distribution and must not be changed without re-tuning.
const (
	excellentThreshold = 0.75
	goodThreshold      = 0.55
)

// Tier is a qualitative similarity band with presentation hints.
type Tier struct {
	Level string `json:"match_level"`
	Color string `json:"match_color"`
	Desc  string `json:"match_desc"`
}

var (
	tierExcellent = Tier{Level: "Excellent", Color: "#27ae60", Desc: "An outstanding semantic match for your query."}
	tierGood      = Tier{Level: "Good", Color: "#f39c12", Desc: "A solid match with strong overlapping themes."}
	tierFair      = Tier{Level: "Fair", Color: "#e74c3c", Desc: "A partial match that may still be worth a look."}
)

// MatchTier maps a similarity score to its band.
func MatchTier(similarity float64) Tier {
	switch {
	case similarity > excellentThreshold:
		return tierExcellent
	case similarity > goodThreshold:
		return tierGood
	default:
		return tierFair
	}
}

// Explanation is the structured rationale attached to one recommendation.
type Explanation struct {
	CommonKeywords      []string `json:"common_keywords"`
	QueryKeywords       []string `json:"query_keywords"`
	BookKeywords        []string `json:"book_keywords"`
	CategoryMatch       bool     `json:"category_match"`
	CategoryExplanation string   `json:"category_explanation"`
	MatchLevel          string   `json:"match_level"`
	MatchColor          string   `json:"match_color"`
	MatchDesc           string   `json:"match_desc"`
	Themes              []string `json:"themes"`
	SimilarityPct       string   `json:"similarity_pct"`
}

// Generator builds explanations. It carries only configuration (vocabulary),
// so it is safe for concurrent use.
type Generator struct {
	extractor *Extractor
	themes    []Theme
}

// NewGenerator builds a generator over the given vocabulary.
func NewGenerator(lists *Wordlists) *Generator {
	return &Generator{
		extractor: NewExtractor(lists.StopWords),
		themes:    lists.Themes,
	}
}

// QueryKeywords extracts the keywords for a query. Callers extract once per
// recommendation batch and reuse the result across all k explanations.
func (g *Generator) QueryKeywords(query string) []string {
	return g.extractor.Extract(query, QueryKeywordCount)
}

// Explain produces the rationale for recommending a book against a query.
// Pure and deterministic; no I/O.
func (g *Generator) Explain(query string, queryKeywords []string, book catalog.Book, similarity float64) Explanation {
	bookKeywords := g.extractor.Extract(book.Description, bookKeywordCount)
	common := CommonKeywords(queryKeywords, bookKeywords, book.Description, commonKeywordLimit)
	categoryMatch, categoryExplanation := categoryRelevance(queryKeywords, book.Categories)
	tier := MatchTier(similarity)

	return Explanation{
		CommonKeywords:      common,
		QueryKeywords:       queryKeywords,
		BookKeywords:        bookKeywords,
		CategoryMatch:       categoryMatch,
		CategoryExplanation: categoryExplanation,
		MatchLevel:          tier.Level,
		MatchColor:          tier.Color,
		MatchDesc:           tier.Desc,
		Themes:              DetectThemes(query, book.Description, g.themes),
		SimilarityPct:       fmt.Sprintf("%.1f%%", similarity*100),
	}
}

// categoryRelevance reports whether any query keyword appears inside the
// book's category string, with one of two templated sentences. The sentence
// is presentation text; the boolean is not consumed elsewhere.
func categoryRelevance(queryKeywords []string, category string) (bool, string) {
	catLower := strings.ToLower(category)
	for _, k := range queryKeywords {
		if strings.Contains(catLower, k) {
			return true, fmt.Sprintf("This book's category (%s) matches themes in your query.", category)
		}
	}
	return false, fmt.Sprintf("This book is categorized as %s, which may offer a different angle on your query.", category)
}
