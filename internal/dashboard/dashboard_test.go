package dashboard

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/krishna123-lang/semantic-book-recommender/internal/tracker"
)

func testEvents() []tracker.Event {
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return []tracker.Event{
		{Timestamp: day1, Type: tracker.EventSearch, Query: "mystery novel", Meta: map[string]string{"language": "en"}},
		{Timestamp: day1, Type: tracker.EventSearch, Query: "mystery novel", Meta: map[string]string{"language": "en"}},
		{Timestamp: day1, Type: tracker.EventSearch, Query: "space adventure", Meta: map[string]string{"language": "fr"}},
		{Timestamp: day1, Type: tracker.EventMoodSelection, Meta: map[string]string{"mood": "Dark"}},
		{Timestamp: day2, Type: tracker.EventMoodSelection, Meta: map[string]string{"mood": "Dark"}},
		{Timestamp: day2, Type: tracker.EventMoodSelection, Meta: map[string]string{"mood": "Happy"}},
		{Timestamp: day2, Type: tracker.EventSurprise, Book: "The Silent Patient"},
		{Timestamp: day2, Type: tracker.EventBookView, Book: "The Silent Patient"},
		{Timestamp: day2, Type: tracker.EventBookView, Book: "Project Hail Mary"},
		{Timestamp: day2, Type: tracker.EventChatMessage, Query: "recommend a thriller"},
	}
}

func TestAggregate(t *testing.T) {
	stats, err := Aggregate(testEvents())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if stats.TotalEvents != 10 {
		t.Errorf("TotalEvents = %d, want 10", stats.TotalEvents)
	}
	if stats.Searches != 3 || stats.ChatMessages != 1 || stats.SurprisePicks != 1 || stats.BookViews != 2 {
		t.Errorf("headline counts = %+v", stats)
	}
	if stats.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d, want 2", stats.ActiveDays)
	}
	if stats.FirstEventDate != "2026-03-01" || stats.LastEventDate != "2026-03-02" {
		t.Errorf("date range = %s .. %s", stats.FirstEventDate, stats.LastEventDate)
	}

	if len(stats.TopQueries) == 0 || stats.TopQueries[0].Name != "mystery novel" || stats.TopQueries[0].Count != 2 {
		t.Errorf("TopQueries = %+v", stats.TopQueries)
	}
	if len(stats.TopBooks) == 0 || stats.TopBooks[0].Name != "The Silent Patient" || stats.TopBooks[0].Count != 2 {
		t.Errorf("TopBooks = %+v", stats.TopBooks)
	}
	if len(stats.TopMoods) == 0 || stats.TopMoods[0].Name != "Dark" || stats.TopMoods[0].Count != 2 {
		t.Errorf("TopMoods = %+v", stats.TopMoods)
	}
	if len(stats.Languages) != 2 || stats.Languages[0].Name != "en" || stats.Languages[0].Count != 2 {
		t.Errorf("Languages = %+v", stats.Languages)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats, err := Aggregate(nil)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if stats.TotalEvents != 0 || stats.ActiveDays != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
	if stats.FirstEventDate != "" || stats.LastEventDate != "" {
		t.Errorf("empty date range = %s .. %s", stats.FirstEventDate, stats.LastEventDate)
	}
}

func TestBuildFromLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactions.jsonl")
	tr := tracker.New(path)
	if err := tr.RecordSearch("mystery novel", "en"); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}
	if err := tr.RecordMood("Adventurous"); err != nil {
		t.Fatalf("RecordMood: %v", err)
	}

	stats, err := Build(path)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if stats.TotalEvents != 2 || stats.Searches != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestBuildMissingLog(t *testing.T) {
	stats, err := Build(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("Build on missing log: %v", err)
	}
	if stats.TotalEvents != 0 {
		t.Errorf("stats = %+v", stats)
	}
}
