// Package memory holds the default in-process stores. The original kept bare
// shared maps; these serialize every access through an RWMutex so a
// preference save and a concurrent deferred validation cannot lose updates.
package memory

import (
	"context"
	"sync"

	"learn-loop/internal/domain/user"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]user.User)}
}

func (s *UserStore) Get(_ context.Context, userID string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u.Clone(), nil
}

func (s *UserStore) Put(_ context.Context, u user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[u.UserID] = u.Clone()
	return nil
}

func (s *UserStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, userID)
	return nil
}
