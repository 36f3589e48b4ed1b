// Package career computes recommendations from the static career path
// tables, with an optional cache in front (recomputation is cheap, but the
// result only changes when preferences do).
package career

import (
	"context"
	"errors"
	"time"

	"learn-loop/internal/catalog"
	"learn-loop/internal/domain/user"
)

var (
	ErrPreferencesNotSet = errors.New("user preferences not set")
	ErrInternal          = errors.New("internal error")
)

// Cache is the subset of the Redis wrapper the service needs. A nil Cache
// disables caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Service struct {
	users user.Repository
	cache Cache
	ttl   time.Duration
}

func NewService(users user.Repository, cache Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Service{users: users, cache: cache, ttl: ttl}
}

func cacheKey(userID string) string {
	return "careers:" + userID
}

// Recommendations returns the deduplicated union of career entries for the
// user's interest set and language. An account without saved preferences
// (or a vanished account) cannot be recommended anything.
func (s *Service) Recommendations(ctx context.Context, userID string) ([]catalog.Career, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrPreferencesNotSet
		}
		return nil, ErrInternal
	}
	if len(u.Interests) == 0 || u.Language == "" {
		return nil, ErrPreferencesNotSet
	}

	if s.cache != nil {
		var cached []catalog.Career
		if hit, err := s.cache.GetJSON(ctx, cacheKey(userID), &cached); err == nil && hit {
			return cached, nil
		}
	}

	careers := catalog.Recommend(u.Interests, u.Language)
	if careers == nil {
		careers = []catalog.Career{}
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKey(userID), careers, s.ttl)
	}
	return careers, nil
}

// Invalidate drops the cached result for userID. Called when preferences
// change or the account is deleted.
func (s *Service) Invalidate(ctx context.Context, userID string) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, cacheKey(userID))
	}
}
