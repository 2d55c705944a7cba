// Package recommend implements the semantic retrieval engine: embed query,
// nearest-neighbor search, distance-to-similarity scoring, explanation
// assembly.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
	"github.com/krishna123-lang/semantic-book-recommender/internal/explain"
	"github.com/krishna123-lang/semantic-book-recommender/internal/langdetect"
)

// similarityScale converts raw L2 distance to a similarity score via
// exponential decay: similarity = exp(-distance/similarityScale). The
// constant is tuned for the embedding space in use and must be preserved
// exactly for score comparability across runs.
const similarityScale = 10.0

// Stage errors. Callers distinguish embedding failures from index failures
// because each may warrant different fallback copy.
var (
	ErrEmbedding = errors.New("embedding query failed")
	ErrSearch    = errors.New("index search failed")
)

// Embedder is the query-embedding surface the engine needs.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Index is the read-only nearest-neighbor surface the engine needs.
type Index interface {
	Search(query []float32, k int) (ids []int, distances []float32, err error)
}

// Detector reports the language of free text, best effort.
type Detector interface {
	Detect(text string) (langdetect.Result, bool)
}

// Recommendation is one ranked result. Composed at query time, never
// persisted.
type Recommendation struct {
	Rank            int                 `json:"rank"`
	Book            catalog.Book        `json:"book"`
	Distance        float64             `json:"distance"`
	SimilarityScore float64             `json:"similarity_score"`
	Language        string              `json:"language"`
	LanguageName    string              `json:"language_name"`
	Explanation     explain.Explanation `json:"explanation"`
}

// Similarity converts a raw L2 distance to a (0,1] score. Small distances
// map close to 1.0 and the score decays smoothly rather than linearly.
func Similarity(distance float64) float64 {
	return math.Exp(-distance / similarityScale)
}

// Engine is the retrieval core. It owns read-only references to its
// collaborators, holds no mutable state, and is safe for concurrent use.
type Engine struct {
	embedder  Embedder
	index     Index
	books     *catalog.Catalog
	detector  Detector
	explainer *explain.Generator
}

// NewEngine wires the retrieval engine. All collaborators are required
// except detector, which may be nil (every result then carries the default
// language tag).
func NewEngine(embedder Embedder, index Index, books *catalog.Catalog, detector Detector, explainer *explain.Generator) *Engine {
	return &Engine{
		embedder:  embedder,
		index:     index,
		books:     books,
		detector:  detector,
		explainer: explainer,
	}
}

// Recommend returns the k books nearest to the query in embedding space,
// ranked by ascending distance. If k exceeds the corpus size all rows are
// returned; the call never pads and never errors for oversized k. Embedder
// and index failures propagate as typed stage errors; language detection
// failures are absorbed with the default language.
func (e *Engine) Recommend(ctx context.Context, query string, k int) ([]Recommendation, error) {
	if k < 1 {
		k = 1
	}

	lang := langdetect.Default
	if e.detector != nil {
		if detected, ok := e.detector.Detect(query); ok {
			lang = detected
		}
	}

	vector, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbedding, err)
	}

	ids, distances, err := e.index.Search(vector, k)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearch, err)
	}

	// Query keywords are extracted once and shared across all k results.
	queryKeywords := e.explainer.QueryKeywords(query)

	recs := make([]Recommendation, 0, len(ids))
	for i, id := range ids {
		book, ok := e.books.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: row %d not in corpus", ErrSearch, id)
		}
		distance := float64(distances[i])
		score := Similarity(distance)
		recs = append(recs, Recommendation{
			Rank:            i + 1,
			Book:            book,
			Distance:        distance,
			SimilarityScore: score,
			Language:        lang.Code,
			LanguageName:    lang.Name,
			Explanation:     e.explainer.Explain(query, queryKeywords, book, score),
		})
	}
	return recs, nil
}

// SearchByTitle is a case-insensitive substring filter over titles, at most
// 5 matches in corpus scan order. It shares the corpus store but is not part
// of the semantic path.
func (e *Engine) SearchByTitle(substring string) []catalog.Book {
	return e.books.SearchByTitle(substring)
}

// GetBookInfo looks up one book by exact title. Absence is a boolean, not an
// error.
func (e *Engine) GetBookInfo(title string) (catalog.Book, bool) {
	return e.books.GetByTitle(title)
}

// Books exposes the read-only corpus for consumers that iterate it (surprise
// picks, the curiosity layer).
func (e *Engine) Books() *catalog.Catalog {
	return e.books
}
