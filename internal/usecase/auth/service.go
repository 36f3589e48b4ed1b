// Package auth implements login. There is no separate signup: the first
// successful login for a never-seen identifier creates the account with that
// password as its initial credential.
package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"learn-loop/internal/domain/user"
	"learn-loop/internal/pkg/jwt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")
)

type LoginInput struct {
	UserID   string
	Password string
}

type Service struct {
	users  user.Repository
	tokens jwt.Service
	admins map[string]struct{}

	now func() time.Time
}

func NewService(users user.Repository, tokens jwt.Service, adminUsers []string) *Service {
	admins := make(map[string]struct{}, len(adminUsers))
	for _, id := range adminUsers {
		admins[id] = struct{}{}
	}
	return &Service{users: users, tokens: tokens, admins: admins, now: time.Now}
}

// Login verifies credentials for an existing account, or creates the account
// when the identifier has never been seen. Returns the sanitized record and
// a bearer token. A wrong password never mutates stored state.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	if in.UserID == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidInput
	}

	u, err := s.users.Get(ctx, in.UserID)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
			return user.User{}, "", ErrInvalidCredentials
		}
	case errors.Is(err, user.ErrNotFound):
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return user.User{}, "", ErrInternal
		}
		u = user.New(in.UserID, string(hash), s.now().UTC())
		if putErr := s.users.Put(ctx, u); putErr != nil {
			return user.User{}, "", ErrInternal
		}
	default:
		return user.User{}, "", ErrInternal
	}

	token, err := s.tokens.Generate(u.UserID, s.roleFor(u.UserID))
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitize(u), token, nil
}

func (s *Service) roleFor(userID string) string {
	if _, ok := s.admins[userID]; ok {
		return jwt.RoleAdmin
	}
	return jwt.RoleUser
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
