package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewOllamaProvider_Defaults(t *testing.T) {
	provider := NewOllamaProvider()

	if provider.baseURL != DefaultOllamaURL {
		t.Errorf("baseURL = %s, want %s", provider.baseURL, DefaultOllamaURL)
	}
	if provider.model != DefaultOllamaModel {
		t.Errorf("model = %s, want %s", provider.model, DefaultOllamaModel)
	}
	if provider.dimensions != DefaultOllamaDimensions {
		t.Errorf("dimensions = %d, want %d", provider.dimensions, DefaultOllamaDimensions)
	}
	if provider.client == nil {
		t.Error("client should not be nil")
	}
}

func TestNewOllamaProvider_WithOptions(t *testing.T) {
	customURL := "http://custom:8080"
	customModel := "custom-model"
	customDimensions := 768
	customTimeout := 60 * time.Second

	provider := NewOllamaProvider(
		WithBaseURL(customURL),
		WithModel(customModel),
		WithDimensions(customDimensions),
		WithTimeout(customTimeout),
	)

	if provider.baseURL != customURL {
		t.Errorf("baseURL = %s, want %s", provider.baseURL, customURL)
	}
	if provider.model != customModel {
		t.Errorf("model = %s, want %s", provider.model, customModel)
	}
	if provider.dimensions != customDimensions {
		t.Errorf("dimensions = %d, want %d", provider.dimensions, customDimensions)
	}
	if provider.client.Timeout != customTimeout {
		t.Errorf("timeout = %v, want %v", provider.client.Timeout, customTimeout)
	}
}

// fakeOllama serves canned embeddings for testing.
func fakeOllama(t *testing.T, dims int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case apiPathEmbeddings:
			var req ollamaEmbedRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			vec := make([]float32, dims)
			// Deterministic per-prompt vector so batch ordering is checkable.
			vec[0] = float32(len(req.Prompt))
			json.NewEncoder(w).Encode(ollamaEmbedResponse{Embedding: vec})
		case apiPathTags:
			json.NewEncoder(w).Encode(ollamaTagsResponse{
				Models: []ollamaModel{{Name: DefaultOllamaModel}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestOllamaProvider_Embed(t *testing.T) {
	srv := fakeOllama(t, 4)
	defer srv.Close()

	provider := NewOllamaProvider(WithBaseURL(srv.URL), WithDimensions(4))
	vec, err := provider.Embed(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vec) != 4 {
		t.Errorf("got %d dims, want 4", len(vec))
	}
	if vec[0] != 2 {
		t.Errorf("vec[0] = %f, want 2", vec[0])
	}
}

func TestOllamaProvider_Embed_DimensionMismatch(t *testing.T) {
	srv := fakeOllama(t, 4)
	defer srv.Close()

	provider := NewOllamaProvider(WithBaseURL(srv.URL), WithDimensions(8))
	if _, err := provider.Embed(context.Background(), "hi"); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestOllamaProvider_EmbedBatch_PreservesOrder(t *testing.T) {
	srv := fakeOllama(t, 4)
	defer srv.Close()

	provider := NewOllamaProvider(WithBaseURL(srv.URL), WithDimensions(4))
	texts := []string{"a", "bb", "ccc"}
	vectors, err := provider.EmbedBatch(context.Background(), texts)
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if len(vectors) != len(texts) {
		t.Fatalf("got %d vectors, want %d", len(vectors), len(texts))
	}
	for i, text := range texts {
		if vectors[i][0] != float32(len(text)) {
			t.Errorf("vectors[%d][0] = %f, want %d", i, vectors[i][0], len(text))
		}
	}
}

func TestOllamaProvider_EmbedBatch_Cancelled(t *testing.T) {
	srv := fakeOllama(t, 4)
	defer srv.Close()

	provider := NewOllamaProvider(WithBaseURL(srv.URL), WithDimensions(4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := provider.EmbedBatch(ctx, []string{"a", "b"}); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestOllamaProvider_IsAvailable_HasModel(t *testing.T) {
	srv := fakeOllama(t, 4)
	defer srv.Close()

	provider := NewOllamaProvider(WithBaseURL(srv.URL))
	if err := provider.IsAvailable(context.Background()); err != nil {
		t.Errorf("IsAvailable: %v", err)
	}

	has, err := provider.HasModel(context.Background())
	if err != nil {
		t.Fatalf("HasModel: %v", err)
	}
	if !has {
		t.Error("expected model to be present")
	}

	missing := NewOllamaProvider(WithBaseURL(srv.URL), WithModel("nope"))
	has, err = missing.HasModel(context.Background())
	if err != nil {
		t.Fatalf("HasModel: %v", err)
	}
	if has {
		t.Error("expected model to be absent")
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(""); err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestNewOpenAIProvider_Defaults(t *testing.T) {
	provider, err := NewOpenAIProvider("test-key")
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	if provider.ModelName() != DefaultOpenAIModel {
		t.Errorf("ModelName = %s, want %s", provider.ModelName(), DefaultOpenAIModel)
	}
	if provider.Dimensions() != DefaultOpenAIDimensions {
		t.Errorf("Dimensions = %d, want %d", provider.Dimensions(), DefaultOpenAIDimensions)
	}
	if provider.batchSize != DefaultBatchSize {
		t.Errorf("batchSize = %d, want %d", provider.batchSize, DefaultBatchSize)
	}
}
