package scorer

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	testutil "github.com/zhassan-dev/resume-screener/internal/testing"
	"github.com/zhassan-dev/resume-screener/services"
)

func newTestScorer() *Scorer {
	return NewWithEmbedder(&testutil.FakeEmbedder{})
}

func TestScoreSymmetry(t *testing.T) {
	s := newTestScorer()
	ctx := context.Background()

	pairs := [][2]string{
		{"senior machine learning engineer", "looking ml engineer production experience"},
		{"go backend developer", "frontend react developer"},
		{"data scientist python", "data scientist python"},
		{"one", "completely different text entirely"},
	}

	for _, pair := range pairs {
		ab, err := s.Score(ctx, pair[0], pair[1])
		if err != nil {
			t.Fatalf("Score(%q, %q) failed: %v", pair[0], pair[1], err)
		}
		ba, err := s.Score(ctx, pair[1], pair[0])
		if err != nil {
			t.Fatalf("Score(%q, %q) failed: %v", pair[1], pair[0], err)
		}
		if math.Abs(ab-ba) > 1e-6 {
			t.Errorf("Score not symmetric for %q / %q: %v vs %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestScoreRange(t *testing.T) {
	s := newTestScorer()
	ctx := context.Background()

	inputs := [][2]string{
		{"", ""},
		{"", "some text"},
		{"some text", ""},
		{"identical text", "identical text"},
		{"alpha beta gamma", "delta epsilon zeta"},
		{"overlap here", "overlap there"},
	}

	for _, pair := range inputs {
		score, err := s.Score(ctx, pair[0], pair[1])
		if err != nil {
			t.Fatalf("Score(%q, %q) failed: %v", pair[0], pair[1], err)
		}
		if math.IsNaN(score) || score < 0 || score > 1 {
			t.Errorf("Score(%q, %q) = %v outside [0, 1]", pair[0], pair[1], score)
		}
	}
}

func TestScoreEmptyInputSkipsEmbedder(t *testing.T) {
	embedder := &testutil.FakeEmbedder{}
	s := NewWithEmbedder(embedder)

	score, err := s.Score(context.Background(), "", "job description text")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0.0 for empty input, got %v", score)
	}
	if embedder.Calls() != 0 {
		t.Errorf("Embedder should not be called for empty input, got %d calls", embedder.Calls())
	}
}

func TestScoreIdenticalTextsScoreOne(t *testing.T) {
	s := newTestScorer()

	score, err := s.Score(context.Background(), "golang backend engineer", "golang backend engineer")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if math.Abs(score-1.0) > 1e-6 {
		t.Errorf("Expected identical texts to score 1.0, got %v", score)
	}
}

func TestFactoryRunsExactlyOnce(t *testing.T) {
	var constructed int64
	s := New(func() (services.Embedder, error) {
		atomic.AddInt64(&constructed, 1)
		return &testutil.FakeEmbedder{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Score(context.Background(), "text a", "text b"); err != nil {
				t.Errorf("Score failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&constructed); got != 1 {
		t.Errorf("Expected embedder factory to run exactly once, ran %d times", got)
	}
}

func TestFactoryErrorSurfacesOnEveryCall(t *testing.T) {
	s := New(func() (services.Embedder, error) {
		return nil, fmt.Errorf("model load failed")
	})

	for i := 0; i < 2; i++ {
		if _, err := s.Score(context.Background(), "a", "b"); err == nil {
			t.Fatal("Expected initialization error to propagate")
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"mismatched dims", []float32{1, 2}, []float32{1, 2, 3}, 0},
		{"empty", []float32{}, []float32{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	if got := clamp01(-0.3); got != 0 {
		t.Errorf("clamp01(-0.3) = %v, want 0", got)
	}
	if got := clamp01(1.5); got != 1 {
		t.Errorf("clamp01(1.5) = %v, want 1", got)
	}
	if got := clamp01(0.5); got != 0.5 {
		t.Errorf("clamp01(0.5) = %v, want 0.5", got)
	}
	if got := clamp01(math.NaN()); got != 0 {
		t.Errorf("clamp01(NaN) = %v, want 0", got)
	}
}
