// Package dashboard aggregates the interaction log into usage statistics.
// The JSONL log is the canonical store; events are loaded into an ephemeral
// in-memory SQLite database so the aggregations stay plain SQL.
package dashboard

import (
	"database/sql"
	"fmt"

	"github.com/krishna123-lang/semantic-book-recommender/internal/tracker"
	_ "modernc.org/sqlite"
)

// topLimit caps each ranked breakdown.
const topLimit = 10

// Count is one ranked aggregation row.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats is the full dashboard payload.
type Stats struct {
	TotalEvents    int     `json:"total_events"`
	Searches       int     `json:"searches"`
	ChatMessages   int     `json:"chat_messages"`
	SurprisePicks  int     `json:"surprise_picks"`
	BookViews      int     `json:"book_views"`
	EventsByType   []Count `json:"events_by_type"`
	TopQueries     []Count `json:"top_queries"`
	TopBooks       []Count `json:"top_books"`
	TopMoods       []Count `json:"top_moods"`
	Languages      []Count `json:"languages"`
	ActiveDays     int     `json:"active_days"`
	FirstEventDate string  `json:"first_event_date,omitempty"`
	LastEventDate  string  `json:"last_event_date,omitempty"`
}

// Build loads events from the interaction log at logPath and computes usage
// statistics. A missing log yields zero stats, not an error.
func Build(logPath string) (Stats, error) {
	events, err := tracker.ReadLog(logPath)
	if err != nil {
		return Stats{}, fmt.Errorf("loading interaction log: %w", err)
	}
	return Aggregate(events)
}

// Aggregate computes statistics over an in-memory event table.
func Aggregate(events []tracker.Event) (Stats, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return Stats{}, fmt.Errorf("opening stats database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE events (
			day      TEXT NOT NULL,
			type     TEXT NOT NULL,
			query    TEXT,
			book     TEXT,
			mood     TEXT,
			language TEXT
		);
	`); err != nil {
		return Stats{}, fmt.Errorf("creating schema: %w", err)
	}

	stmt, err := db.Prepare("INSERT INTO events (day, type, query, book, mood, language) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return Stats{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, event := range events {
		if _, err := stmt.Exec(
			event.Timestamp.UTC().Format("2006-01-02"),
			event.Type,
			event.Query,
			event.Book,
			event.Meta["mood"],
			event.Meta["language"],
		); err != nil {
			return Stats{}, fmt.Errorf("inserting event %d: %w", i, err)
		}
	}

	var stats Stats
	stats.TotalEvents = len(events)

	byType, err := rankedCounts(db, `
		SELECT type, COUNT(*) FROM events GROUP BY type ORDER BY COUNT(*) DESC, type`, 0)
	if err != nil {
		return Stats{}, err
	}
	stats.EventsByType = byType
	for _, c := range byType {
		switch c.Name {
		case tracker.EventSearch:
			stats.Searches = c.Count
		case tracker.EventChatMessage:
			stats.ChatMessages = c.Count
		case tracker.EventSurprise:
			stats.SurprisePicks = c.Count
		case tracker.EventBookView:
			stats.BookViews = c.Count
		}
	}

	if stats.TopQueries, err = rankedCounts(db, `
		SELECT query, COUNT(*) FROM events
		WHERE query != '' AND type IN (?, ?)
		GROUP BY query ORDER BY COUNT(*) DESC, query`, topLimit,
		tracker.EventSearch, tracker.EventChatMessage); err != nil {
		return Stats{}, err
	}

	if stats.TopBooks, err = rankedCounts(db, `
		SELECT book, COUNT(*) FROM events
		WHERE book != ''
		GROUP BY book ORDER BY COUNT(*) DESC, book`, topLimit); err != nil {
		return Stats{}, err
	}

	if stats.TopMoods, err = rankedCounts(db, `
		SELECT mood, COUNT(*) FROM events
		WHERE mood != ''
		GROUP BY mood ORDER BY COUNT(*) DESC, mood`, topLimit); err != nil {
		return Stats{}, err
	}

	if stats.Languages, err = rankedCounts(db, `
		SELECT language, COUNT(*) FROM events
		WHERE language != ''
		GROUP BY language ORDER BY COUNT(*) DESC, language`, topLimit); err != nil {
		return Stats{}, err
	}

	if err := db.QueryRow("SELECT COUNT(DISTINCT day) FROM events").Scan(&stats.ActiveDays); err != nil {
		return Stats{}, fmt.Errorf("counting active days: %w", err)
	}

	if stats.TotalEvents > 0 {
		if err := db.QueryRow("SELECT MIN(day), MAX(day) FROM events").
			Scan(&stats.FirstEventDate, &stats.LastEventDate); err != nil {
			return Stats{}, fmt.Errorf("reading date range: %w", err)
		}
	}

	return stats, nil
}

func rankedCounts(db *sql.DB, query string, limit int, args ...any) ([]Count, error) {
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("running aggregation: %w", err)
	}
	defer rows.Close()

	var counts []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning aggregation row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
