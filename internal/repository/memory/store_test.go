package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"learn-loop/internal/domain/submission"
	"learn-loop/internal/domain/user"
)

func TestUserStore_GetAbsent(t *testing.T) {
	s := NewUserStore()
	_, err := s.Get(context.Background(), "nobody")
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStore_PutOverwritesAndIsolates(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	u := user.New("alice", "hash", time.Now().UTC())
	if err := s.Put(ctx, u); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Mutating the caller's copy must not reach the store.
	u.Submissions["sql"] = true
	got, err := s.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Submissions["sql"] {
		t.Fatalf("store shared map state with caller")
	}

	// Mutating a read copy must not reach the store either.
	got.Skills["python"] = true
	again, _ := s.Get(ctx, "alice")
	if again.Skills["python"] {
		t.Fatalf("get returned shared map state")
	}

	// Put is an idempotent overwrite.
	u2 := user.New("alice", "hash2", time.Now().UTC())
	u2.Language = "java"
	if err := s.Put(ctx, u2); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	final, _ := s.Get(ctx, "alice")
	if final.Language != "java" || final.PasswordHash != "hash2" {
		t.Fatalf("overwrite not applied: %+v", final)
	}
}

func TestUserStore_DeleteAbsentIsNoop(t *testing.T) {
	s := NewUserStore()
	if err := s.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestSubmissionStore_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissionStore()

	for _, id := range []string{"a", "b", "c"} {
		err := s.Put(ctx, submission.Submission{ID: id, UserID: "alice", Skill: "sql", Link: "l", Status: submission.StatusPending})
		if err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}

	// Overwriting must not change position.
	if err := s.Put(ctx, submission.Submission{ID: "b", UserID: "alice", Skill: "sql", Link: "l", Status: submission.StatusValidated}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(list))
	}
	for i, want := range []string{"a", "b", "c"} {
		if list[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, list[i].ID)
		}
	}
	if list[1].Status != submission.StatusValidated {
		t.Fatalf("overwrite lost: %+v", list[1])
	}
}

func TestSubmissionStore_DeleteByUserLeavesOthers(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissionStore()

	_ = s.Put(ctx, submission.Submission{ID: "a1", UserID: "alice", Skill: "sql", Link: "l"})
	_ = s.Put(ctx, submission.Submission{ID: "b1", UserID: "bob", Skill: "sql", Link: "l"})
	_ = s.Put(ctx, submission.Submission{ID: "a2", UserID: "alice", Skill: "viz", Link: "l"})

	if err := s.DeleteByUser(ctx, "alice"); err != nil {
		t.Fatalf("delete by user: %v", err)
	}

	list, _ := s.List(ctx)
	if len(list) != 1 || list[0].ID != "b1" {
		t.Fatalf("expected only bob's submission to survive, got %+v", list)
	}
	if _, err := s.Get(ctx, "a1"); !errors.Is(err, submission.ErrNotFound) {
		t.Fatalf("expected a1 gone, got %v", err)
	}
}
