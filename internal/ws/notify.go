package ws

import (
	"encoding/json"
	"time"
)

// SubmissionValidatedEvent is the frame broadcast when a deferred validation
// completes.
type SubmissionValidatedEvent struct {
	Type         string `json:"type"`
	UserID       string `json:"userId"`
	Skill        string `json:"skill"`
	SubmissionID string `json:"submissionId"`
	Timestamp    string `json:"timestamp"`
}

// SubmissionValidated satisfies the lifecycle manager's Notifier interface.
func (h *Hub) SubmissionValidated(userID, skill, submissionID string, at time.Time) {
	if h == nil {
		return
	}

	evt := SubmissionValidatedEvent{
		Type:         "submission_validated",
		UserID:       userID,
		Skill:        skill,
		SubmissionID: submissionID,
		Timestamp:    at.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
