package submission

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("submission not found")

// Repository is the submission store contract. DeleteByUser removes every
// submission owned by userID in one step; callers never observe a partial
// cascade.
type Repository interface {
	Get(ctx context.Context, id string) (Submission, error)
	Put(ctx context.Context, s Submission) error
	List(ctx context.Context) ([]Submission, error)
	DeleteByUser(ctx context.Context, userID string) error
}
