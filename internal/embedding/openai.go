package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	// DefaultOpenAIModel is the default hosted embedding model.
	DefaultOpenAIModel = "text-embedding-3-small"

	// DefaultOpenAIDimensions is the output dimension for text-embedding-3-small.
	DefaultOpenAIDimensions = 1536

	// DefaultBatchSize is the number of texts sent per embeddings request.
	DefaultBatchSize = 32

	// requestsPerSecond limits batch embedding calls so large corpus builds
	// stay under the API rate limits.
	requestsPerSecond = 3
)

// OpenAIProvider generates embeddings through the OpenAI API.
type OpenAIProvider struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimensions int
	batchSize  int
	limiter    *rate.Limiter
}

// OpenAIOption configures an OpenAIProvider.
type OpenAIOption func(*OpenAIProvider)

// WithOpenAIModel sets the embedding model name.
func WithOpenAIModel(model string) OpenAIOption {
	return func(p *OpenAIProvider) {
		p.model = openai.EmbeddingModel(model)
	}
}

// WithOpenAIDimensions sets the expected vector dimensions.
func WithOpenAIDimensions(dims int) OpenAIOption {
	return func(p *OpenAIProvider) {
		p.dimensions = dims
	}
}

// WithBatchSize sets the number of texts per embeddings request.
func WithBatchSize(n int) OpenAIOption {
	return func(p *OpenAIProvider) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// NewOpenAIProvider creates an OpenAI embedding provider. The API key is
// required.
func NewOpenAIProvider(apiKey string, opts ...OpenAIOption) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	p := &OpenAIProvider{
		client:     openai.NewClient(apiKey),
		model:      openai.EmbeddingModel(DefaultOpenAIModel),
		dimensions: DefaultOpenAIDimensions,
		batchSize:  DefaultBatchSize,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Embed generates an embedding for a single text.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.embedRequest(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch embeds texts in rate-limited requests of at most batchSize,
// preserving input order.
func (p *OpenAIProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += p.batchSize {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		end := start + p.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch, err := p.embedRequest(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("embedding batch starting at %d: %w", start, err)
		}
		vectors = append(vectors, batch...)
	}
	return vectors, nil
}

func (p *OpenAIProvider) embedRequest(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("got %d embeddings for %d texts", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		if len(d.Embedding) != p.dimensions {
			return nil, fmt.Errorf("unexpected embedding dimensions: got %d, want %d", len(d.Embedding), p.dimensions)
		}
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

// ModelName returns the name of the embedding model.
func (p *OpenAIProvider) ModelName() string {
	return string(p.model)
}

// Dimensions returns the expected vector dimensions.
func (p *OpenAIProvider) Dimensions() int {
	return p.dimensions
}
