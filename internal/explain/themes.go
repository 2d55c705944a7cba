package explain

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// themeTriggerThreshold is how many distinct trigger words must appear
	// before a theme counts as detected. Behavioral contract, not tunable.
	themeTriggerThreshold = 2

	// maxThemes caps how many themes one explanation reports.
	maxThemes = 3
)

// DefaultThemeName is reported when no theme fires.
const DefaultThemeName = "General Fiction"

// Theme maps a display name to the trigger words that signal it.
type Theme struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
}

// DefaultThemes is the shipped theme table. Order matters: detected themes
// are reported in table order, so the table is a slice, never a map. Trigger
// lists are tunable configuration data.
var DefaultThemes = []Theme{
	{Name: "Mystery", Triggers: []string{"detective", "crime", "murder", "investigation", "clue", "suspect", "mystery"}},
	{Name: "Romance", Triggers: []string{"love", "romance", "relationship", "marriage", "heart", "passion", "wedding"}},
	{Name: "Fantasy", Triggers: []string{"magic", "dragon", "wizard", "kingdom", "quest", "sword", "prophecy"}},
	{Name: "Science Fiction", Triggers: []string{"space", "alien", "future", "robot", "technology", "planet", "galaxy"}},
	{Name: "Adventure", Triggers: []string{"journey", "adventure", "expedition", "survival", "wilderness", "treasure", "voyage"}},
	{Name: "Horror", Triggers: []string{"horror", "ghost", "haunted", "terror", "monster", "nightmare", "supernatural"}},
	{Name: "Historical", Triggers: []string{"war", "century", "historical", "empire", "revolution", "ancient", "medieval"}},
	{Name: "Coming of Age", Triggers: []string{"childhood", "growing", "school", "friendship", "teenager", "youth", "innocence"}},
	{Name: "Thriller", Triggers: []string{"thriller", "conspiracy", "chase", "espionage", "assassin", "hostage", "suspense"}},
	{Name: "Philosophy", Triggers: []string{"meaning", "existence", "philosophy", "morality", "consciousness", "truth", "wisdom"}},
}

// DetectThemes scans the concatenation of lowercase query and description for
// each theme's trigger words (substring match). A theme is detected when at
// least themeTriggerThreshold distinct triggers appear. Results follow table
// order, capped at maxThemes; when nothing fires the fallback is a single
// DefaultThemeName entry.
func DetectThemes(query, description string, themes []Theme) []string {
	haystack := strings.ToLower(query) + " " + strings.ToLower(description)

	var detected []string
	for _, theme := range themes {
		if len(detected) == maxThemes {
			break
		}
		hits := 0
		for _, trigger := range theme.Triggers {
			if strings.Contains(haystack, strings.ToLower(trigger)) {
				hits++
				if hits == themeTriggerThreshold {
					break
				}
			}
		}
		if hits >= themeTriggerThreshold {
			detected = append(detected, theme.Name)
		}
	}

	if len(detected) == 0 {
		return []string{DefaultThemeName}
	}
	return detected
}

// Wordlists bundles the tunable vocabulary: the theme table and the stop-word
// list. Both ship with defaults and can be overridden from a YAML file.
type Wordlists struct {
	Themes    []Theme  `yaml:"themes"`
	StopWords []string `yaml:"stop_words"`
}

// DefaultWordlists returns the shipped vocabulary.
func DefaultWordlists() *Wordlists {
	return &Wordlists{
		Themes:    DefaultThemes,
		StopWords: DefaultStopWords,
	}
}

// LoadWordlists reads a YAML override file. A missing file returns the
// defaults; a present file overrides only the sections it defines.
func LoadWordlists(path string) (*Wordlists, error) {
	lists := DefaultWordlists()
	if path == "" {
		return lists, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lists, nil
		}
		return nil, fmt.Errorf("reading wordlists file: %w", err)
	}

	var override Wordlists
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing wordlists file: %w", err)
	}

	if len(override.Themes) > 0 {
		lists.Themes = override.Themes
	}
	if len(override.StopWords) > 0 {
		lists.StopWords = override.StopWords
	}
	return lists, nil
}
