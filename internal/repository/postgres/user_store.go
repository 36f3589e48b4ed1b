// Package postgres backs the store contracts with the pgx pool, for
// deployments that outgrow the in-memory driver.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"learn-loop/internal/catalog"
	"learn-loop/internal/database"
	"learn-loop/internal/domain/user"
)

type UserStore struct {
	db database.DB
}

func NewUserStore(db database.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Get(ctx context.Context, userID string) (user.User, error) {
	row := s.db.QueryRow(ctx, `
SELECT user_id, password_hash, interests::text, language, selected_career::text,
       skills::text, submissions::text, created_at
FROM users WHERE user_id = $1`, userID)

	var (
		u                              user.User
		interests, skills, submissions string
		career                         *string
		createdAt                      time.Time
	)
	if err := row.Scan(&u.UserID, &u.PasswordHash, &interests, &u.Language, &career, &skills, &submissions, &createdAt); err != nil {
		if isNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.CreatedAt = createdAt

	if err := json.Unmarshal([]byte(interests), &u.Interests); err != nil {
		return user.User{}, err
	}
	if err := json.Unmarshal([]byte(skills), &u.Skills); err != nil {
		return user.User{}, err
	}
	if err := json.Unmarshal([]byte(submissions), &u.Submissions); err != nil {
		return user.User{}, err
	}
	if career != nil {
		var c catalog.Career
		if err := json.Unmarshal([]byte(*career), &c); err != nil {
			return user.User{}, err
		}
		u.SelectedCareer = &c
	}

	return u, nil
}

func (s *UserStore) Put(ctx context.Context, u user.User) error {
	interests, err := json.Marshal(u.Interests)
	if err != nil {
		return err
	}
	skills, err := json.Marshal(u.Skills)
	if err != nil {
		return err
	}
	submissions, err := json.Marshal(u.Submissions)
	if err != nil {
		return err
	}
	var career *string
	if u.SelectedCareer != nil {
		b, err := json.Marshal(u.SelectedCareer)
		if err != nil {
			return err
		}
		sc := string(b)
		career = &sc
	}

	_, err = s.db.Exec(ctx, `
INSERT INTO users (user_id, password_hash, interests, language, selected_career, skills, submissions, created_at)
VALUES ($1, $2, $3::jsonb, $4, $5::jsonb, $6::jsonb, $7::jsonb, $8)
ON CONFLICT (user_id) DO UPDATE SET
	password_hash = EXCLUDED.password_hash,
	interests = EXCLUDED.interests,
	language = EXCLUDED.language,
	selected_career = EXCLUDED.selected_career,
	skills = EXCLUDED.skills,
	submissions = EXCLUDED.submissions,
	created_at = EXCLUDED.created_at`,
		u.UserID, u.PasswordHash, string(interests), u.Language, career,
		string(skills), string(submissions), u.CreatedAt,
	)
	return err
}

func (s *UserStore) Delete(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	return err
}

// isNoRows matches the missing-row error from either side of the pool: pgx
// for direct queries, database/sql for anything routed through the bridge.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
