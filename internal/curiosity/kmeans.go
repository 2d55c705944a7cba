package curiosity

import (
	"math"
	"math/rand"
)

// kMeans parameters. The seed is fixed so cluster assignments are stable
// across runs over the same index.
const (
	kmeansSeed     = 42
	kmeansRestarts = 10
	kmeansMaxIters = 100
)

type kmeansResult struct {
	labels    []int
	centroids [][]float32
	inertia   float64
}

// runKMeans clusters vectors into k groups with Lloyd's algorithm,
// k-means++ seeding and multiple restarts, keeping the run with the lowest
// within-cluster sum of squared distances.
func runKMeans(vectors [][]float32, k int) kmeansResult {
	rng := rand.New(rand.NewSource(kmeansSeed))

	best := kmeansResult{inertia: math.Inf(1)}
	for restart := 0; restart < kmeansRestarts; restart++ {
		result := lloyd(vectors, k, rng)
		if result.inertia < best.inertia {
			best = result
		}
	}
	return best
}

func lloyd(vectors [][]float32, k int, rng *rand.Rand) kmeansResult {
	centroids := seedPlusPlus(vectors, k, rng)
	labels := make([]int, len(vectors))

	for iter := 0; iter < kmeansMaxIters; iter++ {
		changed := false
		for i, v := range vectors {
			nearest := nearestCentroid(v, centroids)
			if labels[i] != nearest {
				labels[i] = nearest
				changed = true
			}
		}

		recomputeCentroids(vectors, labels, centroids, rng)

		if !changed && iter > 0 {
			break
		}
	}

	var inertia float64
	for i, v := range vectors {
		inertia += sqDistance(v, centroids[labels[i]])
	}
	return kmeansResult{labels: labels, centroids: centroids, inertia: inertia}
}

// seedPlusPlus picks initial centroids with probability proportional to the
// squared distance from the nearest centroid chosen so far.
func seedPlusPlus(vectors [][]float32, k int, rng *rand.Rand) [][]float32 {
	centroids := make([][]float32, 0, k)
	centroids = append(centroids, cloneVector(vectors[rng.Intn(len(vectors))]))

	weights := make([]float64, len(vectors))
	for len(centroids) < k {
		var total float64
		for i, v := range vectors {
			weights[i] = sqDistance(v, centroids[nearestCentroid(v, centroids)])
			total += weights[i]
		}

		if total == 0 {
			// All remaining points coincide with a centroid.
			centroids = append(centroids, cloneVector(vectors[rng.Intn(len(vectors))]))
			continue
		}

		target := rng.Float64() * total
		var cum float64
		pick := len(vectors) - 1
		for i, w := range weights {
			cum += w
			if cum >= target {
				pick = i
				break
			}
		}
		centroids = append(centroids, cloneVector(vectors[pick]))
	}
	return centroids
}

func recomputeCentroids(vectors [][]float32, labels []int, centroids [][]float32, rng *rand.Rand) {
	dim := len(vectors[0])
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for c := range sums {
		sums[c] = make([]float64, dim)
	}

	for i, v := range vectors {
		c := labels[i]
		counts[c]++
		for d, x := range v {
			sums[c][d] += float64(x)
		}
	}

	for c := range centroids {
		if counts[c] == 0 {
			// Re-seed an emptied cluster on a random point.
			copy(centroids[c], vectors[rng.Intn(len(vectors))])
			continue
		}
		for d := range centroids[c] {
			centroids[c][d] = float32(sums[c][d] / float64(counts[c]))
		}
	}
}

func nearestCentroid(v []float32, centroids [][]float32) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := sqDistance(v, centroid); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func sqDistance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

func cloneVector(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
