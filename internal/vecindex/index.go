// Package vecindex provides a flat exact-search vector index over float32
// vectors with Euclidean distance.
package vecindex

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// Errors returned by index operations.
var (
	ErrIndexNotFound      = errors.New("vector index not found")
	ErrUnsupportedVersion = errors.New("unsupported index version")
	ErrDimensionMismatch  = errors.New("vector dimension mismatch")
)

// CurrentIndexVersion is the format version for compatibility checking.
// Increment this when making breaking changes to the index format.
const CurrentIndexVersion = 1

// Flat is an exact k-nearest-neighbor index storing one vector per corpus
// row. Row i of the corpus owns vector i; the two are built together and
// never reordered independently. The index is read-only after Build and safe
// for concurrent queries.
type Flat struct {
	Version    int
	ModelName  string
	Dimensions int
	CreatedAt  time.Time

	// Fingerprint ties the index to the corpus it was built from, for
	// staleness detection. Opaque to the index itself.
	Fingerprint string

	Vectors [][]float32
}

// New creates an empty flat index for the given embedding model.
func New(modelName string, dimensions int) *Flat {
	return &Flat{
		Version:    CurrentIndexVersion,
		ModelName:  modelName,
		Dimensions: dimensions,
		CreatedAt:  time.Now(),
	}
}

// Add appends a vector; its row id is its position in insertion order.
func (f *Flat) Add(vector []float32) error {
	if len(vector) != f.Dimensions {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vector), f.Dimensions)
	}
	owned := make([]float32, len(vector))
	copy(owned, vector)
	f.Vectors = append(f.Vectors, owned)
	return nil
}

// Len returns the number of stored vectors.
func (f *Flat) Len() int {
	return len(f.Vectors)
}

// Search returns the k nearest stored vectors to the query by Euclidean
// distance, as parallel (row id, distance) slices ordered by ascending
// distance. Ties order by ascending row id, the index's scan order, which is
// stable for a given index state. If k exceeds the number of stored vectors,
// all rows are returned.
func (f *Flat) Search(query []float32, k int) ([]int, []float32, error) {
	if len(query) != f.Dimensions {
		return nil, nil, fmt.Errorf("%w: query has %d, index has %d", ErrDimensionMismatch, len(query), f.Dimensions)
	}
	if k <= 0 || len(f.Vectors) == 0 {
		return nil, nil, nil
	}
	if k > len(f.Vectors) {
		k = len(f.Vectors)
	}

	dists := make([]float32, len(f.Vectors))
	for i, v := range f.Vectors {
		dists[i] = l2Distance(query, v)
	}

	order := make([]int, len(f.Vectors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dists[order[a]] < dists[order[b]]
	})

	ids := make([]int, k)
	outDists := make([]float32, k)
	for i := 0; i < k; i++ {
		ids[i] = order[i]
		outDists[i] = dists[order[i]]
	}
	return ids, outDists, nil
}

// Reconstruct returns a copy of the stored vector for a row id. The primary
// retrieval path never calls this; the clustering layer does.
func (f *Flat) Reconstruct(id int) ([]float32, error) {
	if id < 0 || id >= len(f.Vectors) {
		return nil, fmt.Errorf("row id %d out of range [0,%d)", id, len(f.Vectors))
	}
	out := make([]float32, f.Dimensions)
	copy(out, f.Vectors[id])
	return out, nil
}

// l2Distance computes the Euclidean distance between two equal-length vectors.
func l2Distance(a, b []float32) float32 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}
