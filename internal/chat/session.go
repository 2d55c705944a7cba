// Package chat is a conversational front end over the retrieval engine. It
// classifies each message into an intent, keeps the last batch of
// recommendations as session memory so follow-ups like "tell me more about
// #2" resolve, and renders plain-text replies.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
	"github.com/krishna123-lang/semantic-book-recommender/internal/langdetect"
	"github.com/krishna123-lang/semantic-book-recommender/internal/recommend"
)

// Result counts per intent. A direct query returns a full page, the general
// fallback a smaller one.
const (
	recommendCount = 5
	fallbackCount  = 3
)

// chatDescriptionLimit truncates long descriptions in list replies; the
// detail view shows the full text.
const chatDescriptionLimit = 250

// Recommender is the retrieval surface the session needs.
type Recommender interface {
	Recommend(ctx context.Context, query string, k int) ([]recommend.Recommendation, error)
	SearchByTitle(substring string) []catalog.Book
}

// Logger receives chat events. Optional.
type Logger interface {
	RecordChat(message, intent string) error
	RecordBookView(book string) error
}

// Reply is one turn of the conversation.
type Reply struct {
	Intent          string                     `json:"intent"`
	Text            string                     `json:"text"`
	Recommendations []recommend.Recommendation `json:"recommendations,omitempty"`
}

// Session holds per-conversation state. Not safe for concurrent use; each
// conversation owns one session.
type Session struct {
	recommender Recommender
	logger      Logger
	lastRecs    []recommend.Recommendation
}

// NewSession starts an empty conversation. logger may be nil.
func NewSession(recommender Recommender, logger Logger) *Session {
	return &Session{recommender: recommender, logger: logger}
}

// Respond handles one user message and returns the reply for it. Retrieval
// failures inside a recommendation turn degrade to an apologetic reply
// rather than an error; the caller only sees errors it can act on.
func (s *Session) Respond(ctx context.Context, message string) Reply {
	if strings.TrimSpace(message) == "" {
		return Reply{Intent: IntentGeneral, Text: "Please type a message. Describe the kind of book you are looking for."}
	}

	intent := DetectIntent(message)
	if s.logger != nil {
		_ = s.logger.RecordChat(message, intent)
	}

	switch intent {
	case IntentGreeting:
		return Reply{Intent: intent, Text: greetingReply}
	case IntentHelp:
		return Reply{Intent: intent, Text: helpReply}
	case IntentThanks:
		return Reply{Intent: intent, Text: thanksReply}
	case IntentDetail:
		return s.detailReply(message)
	case IntentRecommend:
		return s.recommendReply(ctx, message, recommendCount)
	default:
		return s.generalReply(ctx, message)
	}
}

// LastRecommendations exposes session memory, mainly for callers that want
// to render the previous batch again.
func (s *Session) LastRecommendations() []recommend.Recommendation {
	return s.lastRecs
}

const greetingReply = `Hello! I'm your book companion. I can:

- find book recommendations from a description of what you want
- search by genre, theme, or mood
- give details about a recommended book ("tell me more about #2")
- understand queries in multiple languages

Just describe what kind of book you're looking for, for example:
"I want a mystery novel with lots of suspense"`

const helpReply = `Here's what you can do:

1. Ask for recommendations: "Suggest a fantasy book with dragons"
2. Search by mood: "I'm feeling adventurous, what should I read?"
3. Get details: after a recommendation, say "Tell me more about the first one"
4. Ask in any supported language
5. Follow up: I remember the previous batch of recommendations

Go ahead, try asking me something.`

const thanksReply = `You're welcome! Happy reading.

Feel free to ask for more recommendations anytime.`

const noMemoryReply = `I don't have a previous recommendation to refer to. Ask me to recommend some books first, for example: "Recommend me a mystery novel".`

const confusedReply = `I'm not sure I understand. Here are some things you can try:

- "Recommend a thriller book"
- "I want to read something romantic"
- "Find me a sci-fi adventure"

Just describe what you're in the mood for.`

func (s *Session) detailReply(message string) Reply {
	num := ExtractBookNumber(message)
	if num >= 1 && num <= len(s.lastRecs) {
		rec := s.lastRecs[num-1]
		if s.logger != nil {
			_ = s.logger.RecordBookView(rec.Book.Title)
		}
		return Reply{Intent: IntentDetail, Text: formatBookDetail(rec.Book)}
	}

	// No usable session memory; the message may name a title. Try the whole
	// message first, then its longer words.
	candidates := []string{strings.TrimSpace(message)}
	for _, word := range strings.Fields(message) {
		if len(word) >= 4 {
			candidates = append(candidates, word)
		}
	}
	for _, candidate := range candidates {
		if matches := s.recommender.SearchByTitle(candidate); len(matches) > 0 {
			if s.logger != nil {
				_ = s.logger.RecordBookView(matches[0].Title)
			}
			return Reply{Intent: IntentDetail, Text: formatBookDetail(matches[0])}
		}
	}

	return Reply{Intent: IntentDetail, Text: noMemoryReply}
}

func (s *Session) recommendReply(ctx context.Context, message string, k int) Reply {
	recs, err := s.recommender.Recommend(ctx, message, k)
	if err != nil {
		return Reply{
			Intent: IntentRecommend,
			Text:   fmt.Sprintf("Something went wrong: %v\nPlease try rephrasing your query.", err),
		}
	}
	s.lastRecs = recs

	var b strings.Builder
	b.WriteString("Here are my top recommendations:\n")
	if len(recs) > 0 && recs[0].LanguageName != langdetect.Default.Name {
		fmt.Fprintf(&b, "(detected language: %s)\n", recs[0].LanguageName)
	}
	b.WriteString("\n")
	for _, rec := range recs {
		b.WriteString(formatRecommendation(rec))
		b.WriteString("\n")
	}
	b.WriteString("Tip: say \"tell me more about #2\" for details, or describe another type of book.")

	return Reply{Intent: IntentRecommend, Text: b.String(), Recommendations: recs}
}

func (s *Session) generalReply(ctx context.Context, message string) Reply {
	recs, err := s.recommender.Recommend(ctx, message, fallbackCount)
	if err != nil {
		return Reply{Intent: IntentGeneral, Text: confusedReply}
	}
	s.lastRecs = recs

	var b strings.Builder
	b.WriteString("I'm not entirely sure what you mean, but here are some books that might match:\n\n")
	for _, rec := range recs {
		b.WriteString(formatRecommendation(rec))
		b.WriteString("\n")
	}
	b.WriteString("Try being more specific about the genre or theme you're interested in.")

	return Reply{Intent: IntentGeneral, Text: b.String(), Recommendations: recs}
}

func formatRecommendation(rec recommend.Recommendation) string {
	desc := rec.Book.Description
	if len(desc) > chatDescriptionLimit {
		desc = desc[:chatDescriptionLimit] + "..."
	}
	themes := strings.Join(rec.Explanation.Themes, ", ")
	return fmt.Sprintf("#%d — %s\n%s | %s\nMatch: %s (%s) | Themes: %s\n%s\n",
		rec.Rank, rec.Book.Title,
		rec.Book.Authors, rec.Book.Categories,
		rec.Explanation.MatchLevel, rec.Explanation.SimilarityPct, themes,
		desc)
}

func formatBookDetail(book catalog.Book) string {
	return fmt.Sprintf("%s\n\nAuthor(s): %s\nCategory: %s\n\n%s\n\nWould you like me to find similar books, or do you have another query?",
		book.Title, book.Authors, book.Categories, book.Description)
}
