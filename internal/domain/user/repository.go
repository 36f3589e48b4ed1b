package user

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Repository is the user store contract. Put is an idempotent overwrite;
// Delete on an absent key is a no-op.
type Repository interface {
	Get(ctx context.Context, userID string) (User, error)
	Put(ctx context.Context, u User) error
	Delete(ctx context.Context, userID string) error
}
