package vecindex

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeEmbedder struct {
	calls int
	err   error
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = []float32{float32(len(text)), 0}
	}
	return vectors, nil
}

func (f *fakeEmbedder) ModelName() string { return "fake-model" }
func (f *fakeEmbedder) Dimensions() int   { return 2 }

func TestBuilderPreservesRowOrder(t *testing.T) {
	texts := make([]string, 70)
	for i := range texts {
		// Distinct lengths so each vector identifies its row.
		texts[i] = fmt.Sprintf("%0*d", i+1, 0)
	}

	embedder := &fakeEmbedder{}
	builder := NewBuilder(embedder)

	idx, stats, err := builder.Build(context.Background(), texts, "fp-1")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if idx.Len() != len(texts) {
		t.Fatalf("index has %d vectors, want %d", idx.Len(), len(texts))
	}
	if stats.BooksIndexed != len(texts) {
		t.Errorf("BooksIndexed = %d, want %d", stats.BooksIndexed, len(texts))
	}
	if idx.ModelName != "fake-model" || idx.Fingerprint != "fp-1" {
		t.Errorf("index metadata = %s/%s", idx.ModelName, idx.Fingerprint)
	}
	// 70 texts at a batch size of 32 is three provider calls.
	if embedder.calls != 3 {
		t.Errorf("provider calls = %d, want 3", embedder.calls)
	}

	for i := range texts {
		v, err := idx.Reconstruct(i)
		if err != nil {
			t.Fatalf("Reconstruct(%d): %v", i, err)
		}
		if v[0] != float32(i+1) {
			t.Errorf("row %d holds vector %v, want first component %d", i, v, i+1)
		}
	}
}

func TestBuilderReportsProgress(t *testing.T) {
	texts := make([]string, 40)
	for i := range texts {
		texts[i] = "x"
	}

	builder := NewBuilder(&fakeEmbedder{})
	var reports [][2]int
	builder.SetProgressReporter(ProgressFunc(func(current, total int) {
		reports = append(reports, [2]int{current, total})
	}))

	if _, _, err := builder.Build(context.Background(), texts, ""); err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := [][2]int{{32, 40}, {40, 40}}
	if len(reports) != len(want) {
		t.Fatalf("reports = %v, want %v", reports, want)
	}
	for i := range want {
		if reports[i] != want[i] {
			t.Errorf("report %d = %v, want %v", i, reports[i], want[i])
		}
	}
}

func TestBuilderPropagatesProviderError(t *testing.T) {
	builder := NewBuilder(&fakeEmbedder{err: errors.New("provider down")})
	if _, _, err := builder.Build(context.Background(), []string{"a"}, ""); err == nil {
		t.Error("expected provider error")
	}
}

func TestBuilderHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	builder := NewBuilder(&fakeEmbedder{})
	if _, _, err := builder.Build(ctx, []string{"a"}, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
