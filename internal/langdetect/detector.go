// Package langdetect provides best-effort language identification for
// queries. The result is descriptive metadata only and is never used for
// ranking, filtering, or embedding selection.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Default is substituted by callers whenever detection is unavailable.
var Default = Result{Code: "en", Name: "English"}

// Result is an ISO 639-1 code plus a human-readable language name.
type Result struct {
	Code string `json:"language"`
	Name string `json:"language_name"`
}

// languages is the detection alphabet. A narrower set than "all" keeps model
// loading cheap while covering the catalog's query traffic.
var languages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Swedish,
	lingua.Polish,
	lingua.Turkish,
	lingua.Russian,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Japanese,
	lingua.Korean,
	lingua.Chinese,
}

// Detector identifies the language of free text.
type Detector struct {
	inner lingua.LanguageDetector
}

// New builds a detector. Construction loads language models and should happen
// once at startup, not per query.
func New() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the detected language and true, or the zero Result and false
// when the input is too short or ambiguous to classify reliably. Callers
// substitute Default on false; Detect itself never fails.
func (d *Detector) Detect(text string) (Result, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{}, false
	}

	lang, ok := d.inner.DetectLanguageOf(trimmed)
	if !ok {
		return Result{}, false
	}

	return Result{
		Code: strings.ToLower(lang.IsoCode639_1().String()),
		Name: lang.String(),
	}, true
}
