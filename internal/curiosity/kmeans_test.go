package curiosity

import (
	"testing"

	"github.com/krishna123-lang/semantic-book-recommender/internal/vecindex"
)

func newIndex(t *testing.T, vectors [][]float32) *vecindex.Flat {
	t.Helper()
	idx := vecindex.New("test-model", len(vectors[0]))
	for _, v := range vectors {
		if err := idx.Add(v); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	return idx
}

func TestKMeansSeparatesObviousClusters(t *testing.T) {
	vectors := [][]float32{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{100, 100}, {100.1, 100}, {100, 100.1},
	}

	result := runKMeans(vectors, 2)

	if len(result.labels) != len(vectors) {
		t.Fatalf("labels = %d, want %d", len(result.labels), len(vectors))
	}
	if result.labels[0] != result.labels[1] || result.labels[1] != result.labels[2] {
		t.Errorf("first group split: %v", result.labels)
	}
	if result.labels[3] != result.labels[4] || result.labels[4] != result.labels[5] {
		t.Errorf("second group split: %v", result.labels)
	}
	if result.labels[0] == result.labels[3] {
		t.Errorf("groups merged: %v", result.labels)
	}
	if result.inertia > 1.0 {
		t.Errorf("inertia = %f, want tight clusters", result.inertia)
	}
}

func TestKMeansIsDeterministic(t *testing.T) {
	vectors := [][]float32{
		{0, 0}, {1, 0}, {0, 1}, {5, 5}, {6, 5}, {5, 6}, {10, 0}, {11, 0}, {10, 1},
	}

	first := runKMeans(vectors, 3)
	second := runKMeans(vectors, 3)

	for i := range first.labels {
		if first.labels[i] != second.labels[i] {
			t.Fatalf("labels differ between runs: %v vs %v", first.labels, second.labels)
		}
	}
	if first.inertia != second.inertia {
		t.Errorf("inertia differs between runs: %f vs %f", first.inertia, second.inertia)
	}
}

func TestKMeansSingleCluster(t *testing.T) {
	vectors := [][]float32{{0, 0}, {1, 1}, {2, 2}}

	result := runKMeans(vectors, 1)
	for _, label := range result.labels {
		if label != 0 {
			t.Errorf("labels = %v, want all zero", result.labels)
		}
	}
	// Centroid is the mean of all points.
	if result.centroids[0][0] != 1 || result.centroids[0][1] != 1 {
		t.Errorf("centroid = %v, want [1 1]", result.centroids[0])
	}
}
