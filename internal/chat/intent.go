package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent classes, checked in priority order. The recommend intent is a broad
// catch: any message mentioning genre or search vocabulary is treated as a
// query, and so is any message of three or more words.
const (
	IntentGreeting  = "greeting"
	IntentHelp      = "help"
	IntentThanks    = "thanks"
	IntentDetail    = "detail"
	IntentRecommend = "recommend"
	IntentGeneral   = "general"
)

var greetingWords = []string{
	"hello", "hi", "hey", "good morning", "good evening",
	"howdy", "greetings", "namaste", "hola", "bonjour",
}

var helpWords = []string{
	"help", "what can you do", "how to use", "features",
	"what do you do", "how does this work",
}

var thanksWords = []string{
	"thank", "thanks", "thx", "appreciate", "great", "awesome",
	"wonderful", "perfect", "nice",
}

var detailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(tell me more|more about|details|info|information).*(first|1st|second|2nd|third|3rd|fourth|4th|fifth|5th|\d+)`),
	regexp.MustCompile(`(first|1st|second|2nd|third|3rd|fourth|4th|fifth|5th|\d+).*(one|book|option|choice|recommendation)`),
	regexp.MustCompile(`(what is|what's|describe|explain).*(first|1st|second|2nd|third|3rd|fourth|4th|fifth|5th|\d+)`),
	regexp.MustCompile(`(#\d+|number \d+|no\.?\s*\d+)`),
	regexp.MustCompile(`(tell me more|more details|elaborate|expand)`),
}

var recommendWords = []string{
	"recommend", "suggest", "find", "search", "look", "want",
	"need", "give me", "show me", "any", "book about", "books about",
	"novel", "story", "read", "genre", "mystery", "romance",
	"fantasy", "thriller", "horror", "adventure", "sci-fi",
	"science fiction", "historical", "comedy", "drama",
	"fiction", "non-fiction", "biography", "autobiography",
}

var ordinals = []struct {
	word string
	num  int
}{
	{"first", 1}, {"1st", 1},
	{"second", 2}, {"2nd", 2},
	{"third", 3}, {"3rd", 3},
	{"fourth", 4}, {"4th", 4},
	{"fifth", 5}, {"5th", 5},
}

var numberedRef = regexp.MustCompile(`#(\d+)|number\s+(\d+)|no\.?\s*(\d+)`)

// DetectIntent classifies one user message. Greeting, help and thanks are
// simple substring checks; detail requires one of the reference patterns;
// everything genre-flavored or longer than two words falls through to
// recommend.
func DetectIntent(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	if containsAny(msg, greetingWords) {
		return IntentGreeting
	}
	if containsAny(msg, helpWords) {
		return IntentHelp
	}
	if containsAny(msg, thanksWords) {
		return IntentThanks
	}
	for _, pattern := range detailPatterns {
		if pattern.MatchString(msg) {
			return IntentDetail
		}
	}
	if containsAny(msg, recommendWords) {
		return IntentRecommend
	}
	if len(strings.Fields(msg)) >= 3 {
		return IntentRecommend
	}
	return IntentGeneral
}

// ExtractBookNumber finds which earlier recommendation a detail message
// refers to. Ordinal words win over #N forms; a bare "tell me more"
// defaults to the first result.
func ExtractBookNumber(message string) int {
	msg := strings.ToLower(message)

	for _, o := range ordinals {
		if strings.Contains(msg, o.word) {
			return o.num
		}
	}

	if match := numberedRef.FindStringSubmatch(msg); match != nil {
		for _, group := range match[1:] {
			if group != "" {
				if n, err := strconv.Atoi(group); err == nil {
					return n
				}
			}
		}
	}

	return 1
}

func containsAny(msg string, words []string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}
