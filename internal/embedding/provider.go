// Package embedding provides vector embedding generation for text.
package embedding

import "context"

// Provider maps free text to fixed-dimension dense vectors. The same model
// identity must be used to build the vector index and to embed queries at
// serve time; a mismatch silently degrades results rather than erroring, so
// the index records the model name for offline checking.
type Provider interface {
	// Embed generates an embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts, preserving order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the name of the embedding model.
	ModelName() string

	// Dimensions returns the expected vector dimensions.
	Dimensions() int
}
