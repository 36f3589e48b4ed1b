package submission

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	domain "learn-loop/internal/domain/submission"
	"learn-loop/internal/domain/user"
	"learn-loop/internal/repository/memory"
)

const (
	testMinDelay = 10 * time.Millisecond
	testMaxDelay = 30 * time.Millisecond
)

func newTestService(t *testing.T) (*Service, *memory.UserStore, *memory.SubmissionStore) {
	t.Helper()

	users := memory.NewUserStore()
	subs := memory.NewSubmissionStore()
	svc := NewService(users, subs, nil, log.New(discard{}, "", 0), testMinDelay, testMaxDelay)
	t.Cleanup(svc.Close)
	return svc, users, subs
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func seedUser(t *testing.T, users *memory.UserStore, id string) {
	t.Helper()
	if err := users.Put(context.Background(), user.New(id, "hash", time.Now().UTC())); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", msg)
}

func TestSubmit_UnknownSkillCreatesNothing(t *testing.T) {
	ctx := context.Background()
	svc, users, subs := newTestService(t)
	seedUser(t, users, "alice")

	_, err := svc.Submit(ctx, "alice", "golang", "https://example.com/p", "")
	if !errors.Is(err, ErrUnknownSkill) {
		t.Fatalf("expected ErrUnknownSkill, got %v", err)
	}

	list, _ := subs.List(ctx)
	if len(list) != 0 {
		t.Fatalf("unknown skill created a record: %+v", list)
	}
}

func TestSubmit_EmptyLinkCreatesNothing(t *testing.T) {
	ctx := context.Background()
	svc, users, subs := newTestService(t)
	seedUser(t, users, "alice")

	_, err := svc.Submit(ctx, "alice", "sql", "", "")
	if !errors.Is(err, ErrMissingLink) {
		t.Fatalf("expected ErrMissingLink, got %v", err)
	}
	list, _ := subs.List(ctx)
	if len(list) != 0 {
		t.Fatalf("empty link created a record")
	}
}

func TestSubmit_PendingThenValidatedWithinWindow(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestService(t)
	seedUser(t, users, "alice")

	id, err := svc.Submit(ctx, "alice", "sql", "https://example.com/p", "notes")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.HasPrefix(id, "alice_sql_") {
		t.Fatalf("unexpected submission id: %s", id)
	}

	// Not synchronous: immediately after Submit the flag is still false.
	if done, err := svc.StatusFor(ctx, "alice", "sql"); err != nil || done {
		t.Fatalf("expected submitted=false right after submit, got done=%v err=%v", done, err)
	}

	waitFor(t, time.Second, func() bool {
		done, err := svc.StatusFor(ctx, "alice", "sql")
		return err == nil && done
	}, "deferred validation")

	sub, err := svc.subs.Get(ctx, id)
	if err != nil {
		t.Fatalf("get submission: %v", err)
	}
	if sub.Status != domain.StatusValidated {
		t.Fatalf("expected validated status, got %s", sub.Status)
	}
	if sub.ValidatedAt == nil || sub.ValidatedAt.Before(sub.SubmittedAt) {
		t.Fatalf("validation timestamp not stamped: %+v", sub)
	}
}

func TestSubmit_ConcurrentIDsUnique(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestService(t)
	seedUser(t, users, "alice")

	const n = 32
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := svc.Submit(ctx, "alice", "python", "https://example.com/p", "")
			if err != nil {
				t.Errorf("submit: %v", err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate submission id: %s", id)
		}
		seen[id] = true
	}
}

func TestComplete_ToleratesDeletedSubmission(t *testing.T) {
	ctx := context.Background()
	svc, users, subs := newTestService(t)
	seedUser(t, users, "alice")

	if _, err := svc.Submit(ctx, "alice", "viz", "https://example.com/p", ""); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Simulate the account-deletion cascade racing the timer: the record is
	// gone before completion fires.
	if err := subs.DeleteByUser(ctx, "alice"); err != nil {
		t.Fatalf("cascade: %v", err)
	}

	time.Sleep(testMaxDelay + 20*time.Millisecond)

	list, _ := subs.List(ctx)
	if len(list) != 0 {
		t.Fatalf("completion resurrected a deleted submission: %+v", list)
	}
	if done, err := svc.StatusFor(ctx, "alice", "viz"); err != nil || done {
		t.Fatalf("flag flipped for a deleted submission: done=%v err=%v", done, err)
	}
}

func TestComplete_ToleratesDeletedUser(t *testing.T) {
	ctx := context.Background()
	svc, users, subs := newTestService(t)
	seedUser(t, users, "alice")

	id, err := svc.Submit(ctx, "alice", "stats", "https://example.com/p", "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// User vanishes but the submission record stays: the flip to validated
	// must still happen, with no user-visible effect.
	if err := users.Delete(ctx, "alice"); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	waitFor(t, time.Second, func() bool {
		sub, err := subs.Get(context.Background(), id)
		return err == nil && sub.Status == domain.StatusValidated
	}, "validation of orphaned submission")
}

func TestCancelFor_StopsPendingTimers(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserStore()
	subs := memory.NewSubmissionStore()
	// Long window so the timer cannot fire before we cancel.
	svc := NewService(users, subs, nil, log.New(discard{}, "", 0), time.Hour, 2*time.Hour)
	t.Cleanup(svc.Close)
	seedUser(t, users, "alice")

	if _, err := svc.Submit(ctx, "alice", "sql", "https://example.com/p", ""); err != nil {
		t.Fatalf("submit: %v", err)
	}

	svc.CancelFor("alice")

	svc.mu.Lock()
	pending := len(svc.timers)
	svc.mu.Unlock()
	if pending != 0 {
		t.Fatalf("expected no pending timers after cancel, got %d", pending)
	}
}

func TestNotifier_ReceivesCompletionEvent(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserStore()
	subs := memory.NewSubmissionStore()

	n := &captureNotifier{}
	svc := NewService(users, subs, n, log.New(discard{}, "", 0), testMinDelay, testMaxDelay)
	t.Cleanup(svc.Close)
	seedUser(t, users, "alice")

	id, err := svc.Submit(ctx, "alice", "sql", "https://example.com/p", "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	waitFor(t, time.Second, func() bool { return n.count() == 1 }, "notification")

	got := n.last()
	if got.userID != "alice" || got.skill != "sql" || got.submissionID != id {
		t.Fatalf("unexpected event: %+v", got)
	}
}

type capturedEvent struct {
	userID, skill, submissionID string
}

type captureNotifier struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (n *captureNotifier) SubmissionValidated(userID, skill, submissionID string, _ time.Time) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, capturedEvent{userID, skill, submissionID})
}

func (n *captureNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

func (n *captureNotifier) last() capturedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.events[len(n.events)-1]
}
