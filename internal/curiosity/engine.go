// Package curiosity predicts which topic areas a reader is likely to find
// stimulating next. It clusters the book embeddings into semantic topic
// areas, maps the reader's interaction history onto those clusters, and
// generates expansion suggestions, multi-step reading journeys and growth
// scores from the cluster geometry.
package curiosity

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
	"github.com/krishna123-lang/semantic-book-recommender/internal/tracker"
	"github.com/krishna123-lang/semantic-book-recommender/internal/vecindex"
)

// DefaultClusters is the target topic-area count; it is clamped so every
// cluster can hold at least three books.
const DefaultClusters = 8

// descriptionLimit truncates step descriptions.
const descriptionLimit = 200

// Novelty presentation constants shared by journey steps.
const (
	noveltyFamiliar     = "Familiar"
	noveltyModerate     = "Moderate"
	noveltyModerateHigh = "Moderate-High"
	noveltyHigh         = "High"

	colorFamiliar     = "#22c55e"
	colorModerate     = "#f59e0b"
	colorModerateHigh = "#f97316"
	colorHigh         = "#ef4444"
)

// themeLabels maps a dominant category keyword to a topic-area display name.
var themeLabels = map[string]string{
	"fiction":         "Literary Fiction",
	"mystery":         "Mystery & Thriller",
	"fantasy":         "Fantasy & Mythology",
	"science fiction": "Science Fiction",
	"romance":         "Romance",
	"horror":          "Horror & Dark Fiction",
	"history":         "Historical",
	"biography":       "Biography & Memoir",
	"self-help":       "Self-Help & Growth",
	"philosophy":      "Philosophy",
	"psychology":      "Psychology",
	"science":         "Science & Technology",
	"adventure":       "Adventure",
	"children":        "Children & Young Adult",
	"poetry":          "Poetry & Literature",
	"religion":        "Religion & Spirituality",
	"education":       "Education & Learning",
	"drama":           "Drama",
	"humor":           "Comedy & Humor",
	"politics":        "Politics & Society",
}

// expansionPathways describes the intellectual bridge between two
// categories. Looked up in both orders.
var expansionPathways = map[[2]string]string{
	{"fantasy", "history"}:            "From magical worlds to the real myths that inspired them",
	{"fantasy", "philosophy"}:         "From epic quests to the philosophical questions they raise",
	{"fantasy", "psychology"}:         "From hero archetypes to understanding the human psyche",
	{"mystery", "psychology"}:         "From solving crimes to understanding criminal minds",
	{"mystery", "philosophy"}:         "From whodunits to questions of justice and morality",
	{"mystery", "history"}:            "From fictional cases to real historical mysteries",
	{"science fiction", "science"}:    "From imagined futures to real scientific frontiers",
	{"science fiction", "philosophy"}: "From dystopian worlds to existential questions",
	{"science fiction", "psychology"}: "From AI characters to understanding consciousness",
	{"romance", "psychology"}:         "From love stories to the psychology of relationships",
	{"romance", "history"}:            "From romantic fiction to great love stories in history",
	{"horror", "psychology"}:          "From fictional fear to understanding what terrifies us",
	{"horror", "philosophy"}:          "From dark tales to existential dread and meaning",
	{"fiction", "philosophy"}:         "From compelling narratives to deeper life questions",
	{"fiction", "psychology"}:         "From character studies to understanding human behavior",
	{"fiction", "history"}:            "From fictional worlds to the eras that shaped them",
	{"adventure", "history"}:          "From fictional expeditions to real explorations",
	{"adventure", "science"}:          "From quests in fiction to scientific discoveries",
}

// ClusterCount is one entry of a reader's per-topic-area distribution,
// ordered most-read first.
type ClusterCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// Profile describes a reader's position in topic space.
type Profile struct {
	DominantInterest    string         `json:"dominant_interest"`
	DominantClusterID   int            `json:"dominant_cluster_id"`
	ClusterDistribution []ClusterCount `json:"cluster_distribution"`
	TotalBooksExplored  int            `json:"total_books_explored"`
	ExplorationBreadth  float64        `json:"exploration_breadth"`
	ComfortZoneBooks    []string       `json:"comfort_zone_books"`
	IsNewUser           bool           `json:"is_new_user"`
}

// Expansion is one suggested topic area to explore next.
type Expansion struct {
	Area             string   `json:"area"`
	ClusterID        int      `json:"cluster_id"`
	DistanceScore    float64  `json:"distance_score"`
	ExplorationScore float64  `json:"exploration_score"`
	Pathway          string   `json:"pathway_description"`
	SampleBooks      []string `json:"sample_books"`
}

// JourneyStep is one book in a reading journey.
type JourneyStep struct {
	Step         int    `json:"step"`
	Title        string `json:"title"`
	Authors      string `json:"authors"`
	Categories   string `json:"categories"`
	Description  string `json:"description"`
	Rationale    string `json:"rationale"`
	NoveltyLevel string `json:"novelty_level"`
	NoveltyColor string `json:"novelty_color"`
}

// Journey is a structured reading path from a reader's comfort zone to an
// expansion area.
type Journey struct {
	Title          string        `json:"title"`
	FromArea       string        `json:"from_area"`
	ToArea         string        `json:"to_area"`
	Pathway        string        `json:"pathway"`
	Steps          []JourneyStep `json:"steps"`
	OverallNovelty float64       `json:"overall_novelty"`
}

// Impact scores a reader's intellectual exploration, each 0-100.
type Impact struct {
	ExplorationLevel      int `json:"exploration_level"`
	IntellectualDiversity int `json:"intellectual_diversity"`
	GrowthIndex           int `json:"growth_index"`
}

// Engine holds the cluster geometry for one corpus. Construction is
// expensive (full clustering pass); the engine itself is immutable and safe
// for concurrent use.
type Engine struct {
	index *vecindex.Flat
	books *catalog.Catalog

	clusters     int
	labels       []int       // book row -> cluster
	centroids    [][]float32 // cluster -> centroid
	clusterNames []string
	clusterCats  []string
	clusterDists [][]float64 // centroid-to-centroid L2
	maxDist      float64
}

// New clusters the indexed embeddings into topic areas. The cluster count is
// clamped so each cluster averages at least three books; corpora smaller
// than three books are rejected.
func New(index *vecindex.Flat, books *catalog.Catalog, clusters int) (*Engine, error) {
	if index.Len() != books.Len() {
		return nil, fmt.Errorf("index has %d vectors but corpus has %d books", index.Len(), books.Len())
	}
	if clusters < 1 {
		clusters = DefaultClusters
	}
	if max := books.Len() / 3; clusters > max {
		clusters = max
	}
	if clusters < 1 {
		return nil, fmt.Errorf("corpus too small to cluster: %d books", books.Len())
	}

	vectors := make([][]float32, index.Len())
	for i := range vectors {
		v, err := index.Reconstruct(i)
		if err != nil {
			return nil, fmt.Errorf("reconstructing vector %d: %w", i, err)
		}
		vectors[i] = v
	}

	result := runKMeans(vectors, clusters)

	e := &Engine{
		index:     index,
		books:     books,
		clusters:  clusters,
		labels:    result.labels,
		centroids: result.centroids,
	}
	e.nameClusters()
	e.computeClusterDistances()
	return e, nil
}

// Clusters reports the number of topic areas.
func (e *Engine) Clusters() int {
	return e.clusters
}

// ClusterName returns the display label of one topic area.
func (e *Engine) ClusterName(c int) string {
	if c < 0 || c >= len(e.clusterNames) {
		return "General"
	}
	return e.clusterNames[c]
}

// nameClusters labels each cluster after its dominant category.
func (e *Engine) nameClusters() {
	e.clusterNames = make([]string, e.clusters)
	e.clusterCats = make([]string, e.clusters)

	for c := 0; c < e.clusters; c++ {
		counts := make(map[string]int)
		var order []string
		for row, label := range e.labels {
			if label != c {
				continue
			}
			book, _ := e.books.Get(row)
			cat := strings.ToLower(book.Categories)
			if counts[cat] == 0 {
				order = append(order, cat)
			}
			counts[cat]++
		}

		if len(order) == 0 {
			e.clusterNames[c] = fmt.Sprintf("Cluster %d", c)
			e.clusterCats[c] = "unknown"
			continue
		}

		dominant := order[0]
		for _, cat := range order {
			if counts[cat] > counts[dominant] {
				dominant = cat
			}
		}
		e.clusterCats[c] = dominant
		if label, ok := themeLabels[dominant]; ok {
			e.clusterNames[c] = label
		} else {
			e.clusterNames[c] = titleCase(dominant)
		}
	}
}

func (e *Engine) computeClusterDistances() {
	e.clusterDists = make([][]float64, e.clusters)
	for i := range e.clusterDists {
		e.clusterDists[i] = make([]float64, e.clusters)
		for j := range e.clusterDists[i] {
			d := math.Sqrt(sqDistance(e.centroids[i], e.centroids[j]))
			e.clusterDists[i][j] = d
			if d > e.maxDist {
				e.maxDist = d
			}
		}
	}
}

// interactedTitles collects every title the reader has touched: viewed
// books and surprise picks.
func interactedTitles(events []tracker.Event) []string {
	seen := make(map[string]bool)
	var titles []string
	for _, event := range events {
		if event.Book == "" {
			continue
		}
		switch event.Type {
		case tracker.EventBookView, tracker.EventSurprise:
			if !seen[event.Book] {
				seen[event.Book] = true
				titles = append(titles, event.Book)
			}
		}
	}
	return titles
}

// bookRows maps titles to corpus rows, dropping titles not in the corpus.
func (e *Engine) bookRows(titles []string) []int {
	var rows []int
	for _, title := range titles {
		if book, ok := e.books.GetByTitle(title); ok {
			rows = append(rows, book.ID)
		}
	}
	return rows
}

// AnalyzeProfile derives the reader's topic-space profile from their
// interaction history.
func (e *Engine) AnalyzeProfile(events []tracker.Event) Profile {
	titles := interactedTitles(events)
	rows := e.bookRows(titles)
	if len(rows) == 0 {
		return Profile{
			DominantInterest:  "New Explorer",
			DominantClusterID: -1,
			IsNewUser:         true,
		}
	}

	counts := make(map[int]int)
	for _, row := range rows {
		counts[e.labels[row]]++
	}

	clusters := make([]int, 0, len(counts))
	for c := range counts {
		clusters = append(clusters, c)
	}
	sort.Slice(clusters, func(i, j int) bool {
		if counts[clusters[i]] != counts[clusters[j]] {
			return counts[clusters[i]] > counts[clusters[j]]
		}
		return clusters[i] < clusters[j]
	})

	distribution := make([]ClusterCount, len(clusters))
	for i, c := range clusters {
		distribution[i] = ClusterCount{Area: e.clusterNames[c], Count: counts[c]}
	}

	dominant := clusters[0]
	var comfort []string
	for row, label := range e.labels {
		if label != dominant || len(comfort) >= 5 {
			continue
		}
		book, _ := e.books.Get(row)
		comfort = append(comfort, book.Title)
	}

	return Profile{
		DominantInterest:    e.clusterNames[dominant],
		DominantClusterID:   dominant,
		ClusterDistribution: distribution,
		TotalBooksExplored:  len(titles),
		ExplorationBreadth:  float64(len(clusters)) / float64(e.clusters),
		ComfortZoneBooks:    comfort,
	}
}

// PredictExpansions suggests up to three topic areas adjacent to the
// reader's dominant interest. Scoring favors the novelty sweet spot: close
// clusters feel familiar, distant ones alien, mid-range distances score
// highest, with a bonus for clusters never visited.
func (e *Engine) PredictExpansions(profile Profile, events []tracker.Event) []Expansion {
	if profile.IsNewUser {
		var expansions []Expansion
		for c := 0; c < e.clusters && c < 3; c++ {
			expansions = append(expansions, Expansion{
				Area:             e.clusterNames[c],
				ClusterID:        c,
				DistanceScore:    0.5,
				ExplorationScore: 0.5,
				Pathway:          "Start your reading journey here!",
				SampleBooks:      e.clusterTitles(c, nil, 3),
			})
		}
		return expansions
	}

	dominant := profile.DominantClusterID
	dominantCat := e.clusterCats[dominant]

	visited := make(map[int]bool)
	for _, row := range e.bookRows(interactedTitles(events)) {
		visited[e.labels[row]] = true
	}

	var candidates []Expansion
	for c := 0; c < e.clusters; c++ {
		if c == dominant {
			continue
		}

		dist := e.clusterDists[dominant][c]
		novelty := 0.5
		if e.maxDist > 0 {
			novelty = dist / e.maxDist
		}

		score := 1.0 - math.Abs(novelty-0.55)*2
		score = math.Max(0.1, math.Min(1.0, score))
		if !visited[c] {
			score = math.Min(1.0, score*1.2)
		}

		candidates = append(candidates, Expansion{
			Area:             e.clusterNames[c],
			ClusterID:        c,
			DistanceScore:    dist,
			ExplorationScore: score,
			Pathway:          pathwayFor(dominantCat, e.clusterCats[c]),
			SampleBooks:      e.clusterTitles(c, nil, 4),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ExplorationScore > candidates[j].ExplorationScore
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates
}

// GenerateJourney builds a reading path of the given length: a familiar
// anchor from the comfort zone, a bridge book near the midpoint between the
// dominant and target centroids, then books from the target area.
func (e *Engine) GenerateJourney(profile Profile, events []tracker.Event, steps int) (Journey, error) {
	if steps < 3 {
		steps = 3
	}
	if steps > 5 {
		steps = 5
	}

	expansions := e.PredictExpansions(profile, events)
	if len(expansions) == 0 {
		return e.defaultJourney(steps), nil
	}
	target := expansions[0]

	if profile.IsNewUser {
		return e.newUserJourney(target), nil
	}

	dominant := profile.DominantClusterID
	used := make(map[string]bool)
	var journeySteps []JourneyStep

	add := func(book catalog.Book, rationale, level, color string) {
		used[book.Title] = true
		journeySteps = append(journeySteps, JourneyStep{
			Step:         len(journeySteps) + 1,
			Title:        book.Title,
			Authors:      book.Authors,
			Categories:   book.Categories,
			Description:  truncate(book.Description, descriptionLimit),
			Rationale:    rationale,
			NoveltyLevel: level,
			NoveltyColor: color,
		})
	}

	// Anchor: an unseen comfort-zone book, falling back to any book in the
	// dominant cluster, then to the first corpus row.
	seen := make(map[string]bool)
	for _, title := range interactedTitles(events) {
		seen[title] = true
	}
	anchor, ok := e.firstClusterBook(dominant, seen)
	if !ok {
		anchor, ok = e.firstClusterBook(dominant, nil)
	}
	if !ok {
		anchor, _ = e.books.Get(0)
	}
	add(anchor, fmt.Sprintf("Starting in your comfort zone — %s", profile.DominantInterest), noveltyFamiliar, colorFamiliar)

	// Bridge: the book nearest the midpoint between the two centroids.
	midpoint := make([]float32, len(e.centroids[dominant]))
	for d := range midpoint {
		midpoint[d] = (e.centroids[dominant][d] + e.centroids[target.ClusterID][d]) / 2
	}
	if ids, _, err := e.index.Search(midpoint, 10); err == nil {
		for _, id := range ids {
			book, ok := e.books.Get(id)
			if !ok || used[book.Title] {
				continue
			}
			add(book, "A bridge book — connecting familiar themes to new territory", noveltyModerate, colorModerate)
			break
		}
	}

	// Target-area books fill the remaining steps.
	targetAdded := 0
	for row, label := range e.labels {
		if len(journeySteps) >= steps {
			break
		}
		if label != target.ClusterID {
			continue
		}
		book, _ := e.books.Get(row)
		if used[book.Title] {
			continue
		}
		level, color := noveltyModerateHigh, colorModerateHigh
		if targetAdded > 0 {
			level, color = noveltyHigh, colorHigh
		}
		add(book, fmt.Sprintf("Exploring new territory — %s", target.Area), level, color)
		targetAdded++
	}

	// Pad from the general pool if the target cluster ran dry.
	for row := 0; row < e.books.Len() && len(journeySteps) < steps; row++ {
		book, _ := e.books.Get(row)
		if used[book.Title] {
			continue
		}
		add(book, "Broadening your intellectual horizons", noveltyModerate, colorModerate)
	}

	return Journey{
		Title:          fmt.Sprintf("%s → %s", profile.DominantInterest, target.Area),
		FromArea:       profile.DominantInterest,
		ToArea:         target.Area,
		Pathway:        target.Pathway,
		Steps:          journeySteps,
		OverallNovelty: target.ExplorationScore,
	}, nil
}

// ImpactScores measures intellectual exploration. Diversity is entropy
// based: an even spread over many clusters scores higher than the same
// volume concentrated in one.
func (e *Engine) ImpactScores(profile Profile) Impact {
	if profile.IsNewUser {
		return Impact{}
	}

	exploration := int(profile.ExplorationBreadth * 100)

	diversity := 0
	if len(profile.ClusterDistribution) > 0 {
		var total float64
		for _, c := range profile.ClusterDistribution {
			total += float64(c.Count)
		}
		var entropy float64
		for _, c := range profile.ClusterDistribution {
			p := float64(c.Count) / total
			if p > 0 {
				entropy -= p * math.Log2(p)
			}
		}
		maxEntropy := 1.0
		if e.clusters > 1 {
			maxEntropy = math.Log2(float64(e.clusters))
		}
		diversity = int(entropy / maxEntropy * 100)
	}

	booksFactor := math.Min(float64(profile.TotalBooksExplored)/20, 1.0)
	growth := int(float64(exploration)*0.4 + float64(diversity)*0.3 + booksFactor*100*0.3)

	return Impact{
		ExplorationLevel:      clampScore(exploration),
		IntellectualDiversity: clampScore(diversity),
		GrowthIndex:           clampScore(growth),
	}
}

func (e *Engine) defaultJourney(steps int) Journey {
	var journeySteps []JourneyStep
	for row := 0; row < e.books.Len() && row < steps; row++ {
		book, _ := e.books.Get(row)
		journeySteps = append(journeySteps, JourneyStep{
			Step:         row + 1,
			Title:        book.Title,
			Authors:      book.Authors,
			Categories:   book.Categories,
			Description:  truncate(book.Description, descriptionLimit),
			Rationale:    "A great starting point for your reading journey",
			NoveltyLevel: noveltyModerate,
			NoveltyColor: colorModerate,
		})
	}
	return Journey{
		Title:          "Start Your Journey",
		FromArea:       "New Explorer",
		ToArea:         e.ClusterName(0),
		Pathway:        "Begin exploring the world of books!",
		Steps:          journeySteps,
		OverallNovelty: 0.5,
	}
}

func (e *Engine) newUserJourney(target Expansion) Journey {
	levels := []string{noveltyFamiliar, noveltyModerate, noveltyHigh}
	colors := []string{colorFamiliar, colorModerate, colorHigh}

	var steps []JourneyStep
	for row, label := range e.labels {
		if len(steps) >= 3 {
			break
		}
		if label != target.ClusterID {
			continue
		}
		book, _ := e.books.Get(row)
		i := len(steps)
		steps = append(steps, JourneyStep{
			Step:         i + 1,
			Title:        book.Title,
			Authors:      book.Authors,
			Categories:   book.Categories,
			Description:  truncate(book.Description, descriptionLimit),
			Rationale:    fmt.Sprintf("Discover %s", target.Area),
			NoveltyLevel: levels[i],
			NoveltyColor: colors[i],
		})
	}
	return Journey{
		Title:          fmt.Sprintf("Discover %s", target.Area),
		FromArea:       "New Explorer",
		ToArea:         target.Area,
		Pathway:        "Start your intellectual journey here!",
		Steps:          steps,
		OverallNovelty: 0.5,
	}
}

// clusterTitles lists up to limit titles in cluster c, skipping excluded
// titles, in corpus order.
func (e *Engine) clusterTitles(c int, exclude map[string]bool, limit int) []string {
	var titles []string
	for row, label := range e.labels {
		if label != c || len(titles) >= limit {
			continue
		}
		book, _ := e.books.Get(row)
		if exclude[book.Title] {
			continue
		}
		titles = append(titles, book.Title)
	}
	return titles
}

func (e *Engine) firstClusterBook(c int, exclude map[string]bool) (catalog.Book, bool) {
	for row, label := range e.labels {
		if label != c {
			continue
		}
		book, _ := e.books.Get(row)
		if exclude[book.Title] {
			continue
		}
		return book, true
	}
	return catalog.Book{}, false
}

func pathwayFor(from, to string) string {
	if p, ok := expansionPathways[[2]string{from, to}]; ok {
		return p
	}
	if p, ok := expansionPathways[[2]string{to, from}]; ok {
		return p
	}
	return fmt.Sprintf("Expand from %s to %s", titleCase(from), titleCase(to))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func clampScore(v int) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
