// Package submission coordinates the two-phase life of a project
// submission: synchronous creation, asynchronous completion. A submission is
// recorded pending, then a deferred step fires once within a bounded jitter
// window, marks it validated and flips the owning user's skill flag.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"learn-loop/internal/catalog"
	"learn-loop/internal/domain/submission"
	"learn-loop/internal/domain/user"
)

var (
	ErrUnknownSkill = errors.New("unknown skill")
	ErrMissingLink  = errors.New("project link required")
	ErrInternal     = errors.New("internal error")
)

// Notifier receives completion events. Implemented by the websocket hub;
// a nil Notifier drops events.
type Notifier interface {
	SubmissionValidated(userID, skill, submissionID string, at time.Time)
}

type Service struct {
	users    user.Repository
	subs     submission.Repository
	notifier Notifier
	logger   *log.Logger

	minDelay time.Duration
	maxDelay time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer // submission ID -> pending completion
	owners map[string][]string    // user ID -> their pending submission IDs
	closed bool

	now func() time.Time
}

// NewService builds the lifecycle manager. Completions fire uniformly within
// [minDelay, maxDelay) after Submit returns.
func NewService(users user.Repository, subs submission.Repository, notifier Notifier, logger *log.Logger, minDelay, maxDelay time.Duration) *Service {
	if logger == nil {
		logger = log.Default()
	}
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay <= minDelay {
		maxDelay = minDelay + time.Millisecond
	}
	return &Service{
		users:    users,
		subs:     subs,
		notifier: notifier,
		logger:   logger,
		minDelay: minDelay,
		maxDelay: maxDelay,
		timers:   make(map[string]*time.Timer),
		owners:   make(map[string][]string),
		now:      time.Now,
	}
}

// Submit records a pending submission and schedules its deferred completion.
// It returns the new submission ID immediately; completion never happens
// synchronously within this call. Validation failures mutate nothing.
func (s *Service) Submit(ctx context.Context, userID, skill, link, notes string) (string, error) {
	if !catalog.IsSkill(skill) {
		return "", ErrUnknownSkill
	}
	if link == "" {
		return "", ErrMissingLink
	}

	// The userID_skill prefix keeps IDs greppable by owner; the uuid suffix
	// removes the same-millisecond collision window a timestamp would have.
	id := fmt.Sprintf("%s_%s_%s", userID, skill, uuid.NewString())

	sub := submission.Submission{
		ID:          id,
		UserID:      userID,
		Skill:       skill,
		Link:        link,
		Notes:       notes,
		SubmittedAt: s.now().UTC(),
		Status:      submission.StatusPending,
	}
	if err := s.subs.Put(ctx, sub); err != nil {
		return "", ErrInternal
	}

	s.schedule(id, userID)
	return id, nil
}

func (s *Service) schedule(id, userID string) {
	delay := s.minDelay
	if window := s.maxDelay - s.minDelay; window > 0 {
		delay += time.Duration(rand.Int63n(int64(window)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.timers[id] = time.AfterFunc(delay, func() { s.complete(id) })
	s.owners[userID] = append(s.owners[userID], id)
}

// complete is the deferred step. It runs at most once per submission and
// tolerates entities deleted while the timer was pending: a missing
// submission or user is a no-op, never an error and never a resurrection.
func (s *Service) complete(id string) {
	ctx := context.Background()

	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	sub, err := s.subs.Get(ctx, id)
	if err != nil {
		return
	}
	if sub.Status == submission.StatusValidated {
		return
	}

	now := s.now().UTC()
	sub.Status = submission.StatusValidated
	sub.ValidatedAt = &now
	if err := s.subs.Put(ctx, sub); err != nil {
		s.logger.Printf("submission validation | id=%s err=%v", id, err)
		return
	}

	u, err := s.users.Get(ctx, sub.UserID)
	if err == nil {
		u.Submissions[sub.Skill] = true
		if err := s.users.Put(ctx, u); err != nil {
			s.logger.Printf("submission validation | id=%s user=%s err=%v", id, sub.UserID, err)
		}
	}

	s.forgetOwner(sub.UserID, id)
	s.logger.Printf("project validated | user=%s skill=%s id=%s", sub.UserID, sub.Skill, id)

	if s.notifier != nil {
		s.notifier.SubmissionValidated(sub.UserID, sub.Skill, id, now)
	}
}

func (s *Service) forgetOwner(userID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.owners[userID]
	for i, v := range ids {
		if v == id {
			s.owners[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(s.owners[userID]) == 0 {
		delete(s.owners, userID)
	}
}

// StatusFor reports whether the user has a validated submission for skill.
// Unknown skills read as false, matching the flag-set semantics.
func (s *Service) StatusFor(ctx context.Context, userID, skill string) (bool, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return false, user.ErrNotFound
		}
		return false, ErrInternal
	}
	return u.Submissions[skill], nil
}

// ListAll returns every submission in the store.
func (s *Service) ListAll(ctx context.Context) ([]submission.Submission, error) {
	subs, err := s.subs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if subs == nil {
		subs = []submission.Submission{}
	}
	return subs, nil
}

// CancelFor stops outstanding completion timers for userID. A timer that has
// already fired (or is firing) is harmless: complete finds the entities gone
// after the cascade delete and no-ops.
func (s *Service) CancelFor(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.owners[userID] {
		if t, ok := s.timers[id]; ok {
			t.Stop()
			delete(s.timers, id)
		}
	}
	delete(s.owners, userID)
}

// Close stops every outstanding timer. Used on shutdown.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.owners = make(map[string][]string)
}
