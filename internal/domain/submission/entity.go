// Package submission defines the project submission entity and its store
// contract. A submission's status moves pending -> validated exactly once,
// asynchronously; there is no other transition in the current lifecycle.
package submission

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusValidated Status = "validated"
)

// Submission is a user's claim of completed work for a skill, awaiting
// validation. The link is opaque: it is stored and listed, never fetched.
type Submission struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Skill       string     `json:"skill"`
	Link        string     `json:"link"`
	Notes       string     `json:"notes,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	Status      Status     `json:"status"`
	ValidatedAt *time.Time `json:"validatedAt,omitempty"`
}
