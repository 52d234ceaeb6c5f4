package store

import (
	"sync"

	"github.com/zhassan-dev/resume-screener/internal/errors"
	"github.com/zhassan-dev/resume-screener/model"
)

// CandidateStore is the in-memory collection of processed candidates.
// All mutations are serialized behind a single lock so concurrent requests
// can never compute the same next id or lose an update. Records are owned
// exclusively by the store: every accessor returns copies.
type CandidateStore struct {
	mu         sync.RWMutex
	candidates []model.Candidate
	nextID     int
}

// NewCandidateStore creates an empty store. IDs start at 1.
func NewCandidateStore() *CandidateStore {
	return &CandidateStore{nextID: 1}
}

// Add assigns the next sequence id, appends the record, and returns the stored copy.
func (s *CandidateStore) Add(candidate model.Candidate) model.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate.ID = s.nextID
	s.nextID++
	s.candidates = append(s.candidates, candidate)
	return candidate
}

// All returns copies of every record in insertion order.
func (s *CandidateStore) All() []model.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// Get returns a copy of the record with the given id.
func (s *CandidateStore) Get(id int) (model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Candidate{}, errors.NewCandidateNotFoundError(id)
}

// RemoveByID removes at most one record. Removing an absent id is a no-op,
// not an error.
func (s *CandidateStore) RemoveByID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.candidates {
		if c.ID == id {
			s.candidates = append(s.candidates[:i], s.candidates[i+1:]...)
			return
		}
	}
}

// UpdateClassification overwrites only the score and status of the record
// with the given id.
func (s *CandidateStore) UpdateClassification(id int, score float64, status model.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.candidates {
		if s.candidates[i].ID == id {
			s.candidates[i].Score = score
			s.candidates[i].Status = status
			return nil
		}
	}
	return errors.NewCandidateNotFoundError(id)
}

// Len returns the number of stored records.
func (s *CandidateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates)
}
