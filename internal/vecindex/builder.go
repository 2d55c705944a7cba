package vecindex

import (
	"context"
	"fmt"
	"time"
)

// BuildBatchSize is how many descriptions are embedded per provider call.
const BuildBatchSize = 32

// Embedder is the provider surface the builder needs.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	ModelName() string
	Dimensions() int
}

// ProgressReporter receives build progress updates.
type ProgressReporter interface {
	Report(current, total int)
}

// ProgressFunc adapts a function to the ProgressReporter interface.
type ProgressFunc func(current, total int)

// Report implements ProgressReporter.
func (f ProgressFunc) Report(current, total int) {
	f(current, total)
}

// BuildStats reports the outcome of an index build.
type BuildStats struct {
	BooksIndexed int
	Duration     time.Duration
}

// Builder constructs a flat index from book descriptions.
type Builder struct {
	provider Embedder
	progress ProgressReporter
}

// NewBuilder creates an index builder using the given embedding provider.
func NewBuilder(provider Embedder) *Builder {
	return &Builder{provider: provider}
}

// SetProgressReporter sets an optional progress callback.
func (b *Builder) SetProgressReporter(reporter ProgressReporter) {
	b.progress = reporter
}

// Build embeds every text and adds the vectors in order, so row i of the
// index corresponds to text i. The fingerprint is stored for staleness
// checks against the corpus.
func (b *Builder) Build(ctx context.Context, texts []string, fingerprint string) (*Flat, BuildStats, error) {
	start := time.Now()

	idx := New(b.provider.ModelName(), b.provider.Dimensions())
	idx.Fingerprint = fingerprint

	for offset := 0; offset < len(texts); offset += BuildBatchSize {
		if err := ctx.Err(); err != nil {
			return nil, BuildStats{}, err
		}

		end := offset + BuildBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		vectors, err := b.provider.EmbedBatch(ctx, texts[offset:end])
		if err != nil {
			return nil, BuildStats{}, fmt.Errorf("embedding batch at %d: %w", offset, err)
		}

		for i, v := range vectors {
			if err := idx.Add(v); err != nil {
				return nil, BuildStats{}, fmt.Errorf("adding vector %d: %w", offset+i, err)
			}
		}

		if b.progress != nil {
			b.progress.Report(end, len(texts))
		}
	}

	return idx, BuildStats{BooksIndexed: idx.Len(), Duration: time.Since(start)}, nil
}
