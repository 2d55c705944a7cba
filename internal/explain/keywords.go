// Package explain builds structured "why this was recommended" rationales
// from keyword overlap, category text, and theme heuristics. Everything here
// is a pure function of its inputs: identical arguments produce identical
// output.
package explain

import (
	"regexp"
	"sort"
	"strings"
)

// tokenPattern defines a keyword token: an alphabetic run of length >= 3.
// The exact rule is part of the explanation-stability contract.
var tokenPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// DefaultStopWords is the shipped stop-word list: common English function
// words plus terms too generic for a book catalog to carry signal. The list
// itself is tunable configuration; filtering behavior is not.
var DefaultStopWords = []string{
	// function words
	"a", "an", "the", "and", "but", "for", "nor", "not", "are", "was",
	"were", "has", "have", "had", "this", "that", "these", "those", "with",
	"from", "into", "onto", "out", "over", "under", "about", "after",
	"before", "between", "during", "their", "there", "them", "they", "then",
	"than", "can", "could", "will", "would", "should", "its", "his", "her",
	"she", "him", "you", "your", "all", "any", "each", "our", "who", "whom",
	"what", "when", "where", "which", "why", "how", "one", "two", "some",
	"more", "most", "much", "many", "very", "just", "also", "like", "such",
	"own", "same", "too", "who", "get", "gets",
	// domain-generic terms
	"book", "books", "story", "stories", "novel", "novels", "read",
	"reading", "reader", "recommend", "recommendation", "recommendations",
	"author", "authors", "written", "want", "looking", "find", "something",
}

// Extractor extracts the most frequent meaningful keywords from text.
type Extractor struct {
	stop map[string]struct{}
}

// NewExtractor builds an extractor over the given stop-word list.
func NewExtractor(stopWords []string) *Extractor {
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{stop: stop}
}

// Extract lowercases the text, tokenizes it into alphabetic runs of length
// >= 3, discards stop words, and returns the topN most frequent tokens. Ties
// break by first-encountered order, so output is deterministic for a given
// input.
func (e *Extractor) Extract(text string, topN int) []string {
	if topN <= 0 {
		return nil
	}

	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if _, stopped := e.stop[tok]; stopped {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order
}

// CommonKeywords returns the query keywords that also appear in the book,
// either among the book's extracted keywords or as raw substrings of its
// description. At most limit results, in query-keyword order.
func CommonKeywords(queryKeywords, bookKeywords []string, description string, limit int) []string {
	bookSet := make(map[string]struct{}, len(bookKeywords))
	for _, k := range bookKeywords {
		bookSet[k] = struct{}{}
	}
	descLower := strings.ToLower(description)

	var common []string
	for _, k := range queryKeywords {
		if len(common) == limit {
			break
		}
		if _, ok := bookSet[k]; ok {
			common = append(common, k)
			continue
		}
		if strings.Contains(descLower, k) {
			common = append(common, k)
		}
	}
	return common
}
