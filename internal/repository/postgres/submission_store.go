package postgres

import (
	"context"

	"learn-loop/internal/database"
	"learn-loop/internal/domain/submission"
)

type SubmissionStore struct {
	db database.DB
}

func NewSubmissionStore(db database.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

func (s *SubmissionStore) Get(ctx context.Context, id string) (submission.Submission, error) {
	row := s.db.QueryRow(ctx, `
SELECT id, user_id, skill, link, notes, submitted_at, status, validated_at
FROM submissions WHERE id = $1`, id)

	sub, err := scanSubmission(row)
	if err != nil {
		if isNoRows(err) {
			return submission.Submission{}, submission.ErrNotFound
		}
		return submission.Submission{}, err
	}
	return sub, nil
}

func (s *SubmissionStore) Put(ctx context.Context, sub submission.Submission) error {
	_, err := s.db.Exec(ctx, `
INSERT INTO submissions (id, user_id, skill, link, notes, submitted_at, status, validated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
	status = EXCLUDED.status,
	validated_at = EXCLUDED.validated_at,
	notes = EXCLUDED.notes,
	link = EXCLUDED.link`,
		sub.ID, sub.UserID, sub.Skill, sub.Link, sub.Notes,
		sub.SubmittedAt, string(sub.Status), sub.ValidatedAt,
	)
	return err
}

func (s *SubmissionStore) List(ctx context.Context) ([]submission.Submission, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, user_id, skill, link, notes, submitted_at, status, validated_at
FROM submissions ORDER BY submitted_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []submission.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// DeleteByUser is a single statement, so other callers never observe a
// partially cascaded state.
func (s *SubmissionStore) DeleteByUser(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM submissions WHERE user_id = $1`, userID)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (submission.Submission, error) {
	var (
		sub    submission.Submission
		status string
	)
	if err := row.Scan(&sub.ID, &sub.UserID, &sub.Skill, &sub.Link, &sub.Notes, &sub.SubmittedAt, &status, &sub.ValidatedAt); err != nil {
		return submission.Submission{}, err
	}
	sub.Status = submission.Status(status)
	return sub, nil
}
