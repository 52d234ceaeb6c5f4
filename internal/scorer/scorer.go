package scorer

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/zhassan-dev/resume-screener/services"
)

// Scorer computes semantic similarity between two normalized texts as the
// cosine similarity of their embedding vectors, clamped to [0, 1].
//
// Loading the embedding capability is expensive, so it happens at most once
// per process: the factory runs lazily on first use, guarded by sync.Once,
// and the resulting embedder is shared by all callers.
type Scorer struct {
	factory func() (services.Embedder, error)

	once     sync.Once
	embedder services.Embedder
	initErr  error
}

// New creates a Scorer that builds its embedder from factory on first use.
func New(factory func() (services.Embedder, error)) *Scorer {
	return &Scorer{factory: factory}
}

// NewWithEmbedder creates a Scorer around an already-constructed embedder.
func NewWithEmbedder(embedder services.Embedder) *Scorer {
	return New(func() (services.Embedder, error) { return embedder, nil })
}

// Score returns the similarity of two normalized texts in [0.0, 1.0].
// It is symmetric in its arguments. An empty input is maximally dissimilar
// and scores 0.0 without touching the embedding capability.
func (s *Scorer) Score(ctx context.Context, textA, textB string) (float64, error) {
	if textA == "" || textB == "" {
		return 0, nil
	}

	s.once.Do(func() {
		s.embedder, s.initErr = s.factory()
	})
	if s.initErr != nil {
		return 0, fmt.Errorf("embedder initialization failed: %w", s.initErr)
	}

	vecA, err := s.embedder.Embed(ctx, textA)
	if err != nil {
		return 0, fmt.Errorf("embedding first text: %w", err)
	}
	vecB, err := s.embedder.Embed(ctx, textB)
	if err != nil {
		return 0, fmt.Errorf("embedding second text: %w", err)
	}

	return clamp01(cosineSimilarity(vecA, vecB)), nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// A zero vector or mismatched dimensions yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
