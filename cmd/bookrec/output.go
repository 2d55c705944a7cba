package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
	"github.com/krishna123-lang/semantic-book-recommender/internal/recommend"
)

// Constants for output formatting.
const (
	DefaultRecommendCount = 5 // Default k for recommend and mood commands

	TitleMaxLen         = 70 // Title truncation in list views
	DescriptionMaxLen   = 250
	TextWrapWidth       = 72
	DetailTextWrapWidth = 68
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// printRecommendationsHuman prints ranked recommendations in human-readable format.
// Shared by the recommend and mood commands.
func printRecommendationsHuman(recs []recommend.Recommendation) {
	if len(recs) == 0 {
		fmt.Println("No recommendations found")
		return
	}
	if recs[0].Language != "en" {
		fmt.Printf("Detected language: %s\n\n", recs[0].LanguageName)
	}
	for _, rec := range recs {
		exp := rec.Explanation
		fmt.Printf("%d. [%s %s] %s\n", rec.Rank, exp.MatchLevel, exp.SimilarityPct, truncateString(rec.Book.Title, TitleMaxLen))
		fmt.Printf("   %s | %s\n", rec.Book.Authors, rec.Book.Categories)
		if len(exp.Themes) > 0 {
			fmt.Printf("   Themes: %s\n", strings.Join(exp.Themes, ", "))
		}
		if len(exp.CommonKeywords) > 0 {
			fmt.Printf("   Shared keywords: %s\n", strings.Join(exp.CommonKeywords, ", "))
		}
		fmt.Printf("   %s\n\n", wrapText(truncateString(rec.Book.Description, DescriptionMaxLen), TextWrapWidth, "   "))
	}
}

// printBookDetailHuman prints one book in detail.
func printBookDetailHuman(book catalog.Book) {
	fmt.Printf("%s\n", book.Title)
	fmt.Printf("  Authors:    %s\n", book.Authors)
	fmt.Printf("  Categories: %s\n", book.Categories)
	fmt.Printf("  %s\n", wrapText(book.Description, DetailTextWrapWidth, "  "))
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// wrapText wraps text to the specified width with indentation on subsequent lines.
func wrapText(text string, width int, indent string) string {
	if len(text) <= width {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if currentLine.Len()+1+len(word) <= width {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n"+indent)
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// formatBytes formats bytes in a human-readable way.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
