package memory

import (
	"context"
	"sync"

	"learn-loop/internal/domain/submission"
)

type SubmissionStore struct {
	mu    sync.RWMutex
	byID  map[string]submission.Submission
	order []string
}

func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{byID: make(map[string]submission.Submission)}
}

func (s *SubmissionStore) Get(_ context.Context, id string) (submission.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.byID[id]
	if !ok {
		return submission.Submission{}, submission.ErrNotFound
	}
	return sub, nil
}

func (s *SubmissionStore) Put(_ context.Context, sub submission.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[sub.ID]; !exists {
		s.order = append(s.order, sub.ID)
	}
	s.byID[sub.ID] = sub
	return nil
}

// List returns all submissions in insertion order.
func (s *SubmissionStore) List(_ context.Context) ([]submission.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]submission.Submission, 0, len(s.byID))
	for _, id := range s.order {
		if sub, ok := s.byID[id]; ok {
			out = append(out, sub)
		}
	}
	return out, nil
}

// DeleteByUser removes every submission owned by userID under one write
// lock, so no caller sees a half-finished cascade.
func (s *SubmissionStore) DeleteByUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	for _, id := range s.order {
		sub, ok := s.byID[id]
		if !ok {
			continue
		}
		if sub.UserID == userID {
			delete(s.byID, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return nil
}
