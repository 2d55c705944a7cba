// Package tracker records user interactions as an append-only JSONL event
// log. Events feed the stats dashboard and the curiosity layer; losing the
// log degrades those features but never the recommender itself.
package tracker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event types. One constant per user-visible interaction.
const (
	EventSearch        = "search"
	EventMoodSelection = "mood_selection"
	EventSurprise      = "surprise"
	EventChatMessage   = "chat_message"
	EventBookView      = "book_view"
	EventJourneyStart  = "journey_start"
)

// MaxLineCapacity is the maximum buffer size for reading event lines (1MB per line).
const MaxLineCapacity = 1024 * 1024

// Event is one logged interaction. Query and Book are optional depending on
// the event type; Meta carries type-specific extras (mood name, chat intent).
type Event struct {
	Timestamp time.Time         `json:"timestamp"`
	Type      string            `json:"type"`
	Query     string            `json:"query,omitempty"`
	Book      string            `json:"book,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// Tracker appends events to a single JSONL file. Safe for concurrent use
// within one process.
type Tracker struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New returns a tracker writing to path. The file is created on first
// append.
func New(path string) *Tracker {
	return &Tracker{path: path, now: time.Now}
}

// Record appends one event, stamping it with the current time.
func (t *Tracker) Record(event Event) error {
	event.Timestamp = t.now().UTC()

	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening interaction log for append: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	if _, err := f.WriteString("\n"); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}

	return nil
}

// RecordSearch logs a free-text recommendation query with its detected
// language code.
func (t *Tracker) RecordSearch(query, language string) error {
	return t.Record(Event{Type: EventSearch, Query: query, Meta: map[string]string{"language": language}})
}

// RecordMood logs a mood-based recommendation request.
func (t *Tracker) RecordMood(mood string) error {
	return t.Record(Event{Type: EventMoodSelection, Meta: map[string]string{"mood": mood}})
}

// RecordSurprise logs a surprise pick.
func (t *Tracker) RecordSurprise(book string) error {
	return t.Record(Event{Type: EventSurprise, Book: book})
}

// RecordChat logs one user chat message with its classified intent.
func (t *Tracker) RecordChat(message, intent string) error {
	return t.Record(Event{Type: EventChatMessage, Query: message, Meta: map[string]string{"intent": intent}})
}

// RecordJourneyStart logs the start of a reading journey toward a topic area.
func (t *Tracker) RecordJourneyStart(toArea string) error {
	return t.Record(Event{Type: EventJourneyStart, Meta: map[string]string{"to_area": toArea}})
}

// RecordBookView logs a detail lookup for one title.
func (t *Tracker) RecordBookView(book string) error {
	return t.Record(Event{Type: EventBookView, Book: book})
}

// ReadAll reads every event from the log. A missing file is an empty
// history, not an error.
func (t *Tracker) ReadAll() ([]Event, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ReadLog(t.path)
}

// ReadLog reads all events from a JSONL log file.
func ReadLog(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening interaction log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxLineCapacity)
	scanner.Buffer(buf, MaxLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading interaction log: %w", err)
	}

	return events, nil
}
