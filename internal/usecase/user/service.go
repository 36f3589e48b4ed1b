package user

import (
	"context"
	"errors"
	"time"

	"learn-loop/internal/catalog"
	"learn-loop/internal/domain/submission"
	"learn-loop/internal/domain/user"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrCareerNotSelected = errors.New("career not selected")
	ErrInternal          = errors.New("internal error")
)

// ValidationCanceller stops outstanding deferred validations for a user.
// Implemented by the submission lifecycle service. Cancellation is best
// effort; completion handlers tolerate deleted entities either way.
type ValidationCanceller interface {
	CancelFor(userID string)
}

// RecommendationInvalidator drops cached career recommendations when the
// inputs they were computed from change.
type RecommendationInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

type Service struct {
	users       user.Repository
	submissions submission.Repository
	canceller   ValidationCanceller
	invalidator RecommendationInvalidator
}

func NewService(users user.Repository, subs submission.Repository, canceller ValidationCanceller, invalidator RecommendationInvalidator) *Service {
	return &Service{users: users, submissions: subs, canceller: canceller, invalidator: invalidator}
}

// SavePreferences stores the interest set and language. Fewer than two
// interests is a validation error and mutates nothing. A vanished account is
// a silent no-op, matching the preference-save contract.
func (s *Service) SavePreferences(ctx context.Context, userID string, interests []string, language string) error {
	if len(interests) < 2 {
		return ErrInvalidInput
	}
	if language == "" {
		language = "python"
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil
		}
		return ErrInternal
	}

	u.Interests = append([]string(nil), interests...)
	u.Language = language
	if err := s.users.Put(ctx, u); err != nil {
		return ErrInternal
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, userID)
	}
	return nil
}

// SelectCareer stores a denormalized copy of the chosen catalog entry.
func (s *Service) SelectCareer(ctx context.Context, userID string, career catalog.Career) error {
	if career.Title == "" {
		return ErrInvalidInput
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil
		}
		return ErrInternal
	}

	u.SelectedCareer = &career
	if err := s.users.Put(ctx, u); err != nil {
		return ErrInternal
	}
	return nil
}

// GetProfile returns the record minus the credential hash.
func (s *Service) GetProfile(ctx context.Context, userID string) (user.User, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	u.PasswordHash = ""
	return u, nil
}

// MergeSkills applies a partial merge over the self-assessed skill flags.
// Unknown tags are dropped rather than stored so the flag set keeps the
// fixed catalog key space. Submission flags are never touched here.
func (s *Service) MergeSkills(ctx context.Context, userID string, skills map[string]bool) error {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil
		}
		return ErrInternal
	}

	for tag, v := range skills {
		if catalog.IsSkill(tag) {
			u.Skills[tag] = v
		}
	}
	if err := s.users.Put(ctx, u); err != nil {
		return ErrInternal
	}
	return nil
}

// Roadmap bundles the static content with the user's progress flags.
type Roadmap struct {
	Content     map[string]catalog.Skill `json:"content"`
	Skills      map[string]bool          `json:"skills"`
	Submissions map[string]bool          `json:"submissions"`
	Career      *catalog.Career          `json:"career"`
}

func (s *Service) GetRoadmap(ctx context.Context, userID string) (Roadmap, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Roadmap{}, ErrCareerNotSelected
		}
		return Roadmap{}, ErrInternal
	}
	if u.SelectedCareer == nil {
		return Roadmap{}, ErrCareerNotSelected
	}

	return Roadmap{
		Content:     catalog.Content(),
		Skills:      u.Skills,
		Submissions: u.Submissions,
		Career:      u.SelectedCareer,
	}, nil
}

// Stats is the progress summary: validated submissions over the fixed skill
// set, as a rounded percentage.
type Stats struct {
	CompletedSkills int             `json:"completedSkills"`
	TotalSkills     int             `json:"totalSkills"`
	Progress        int             `json:"progress"`
	Career          *catalog.Career `json:"career"`
	Language        string          `json:"language"`
	InterestsCount  int             `json:"interestsCount"`
	JoinedAt        time.Time       `json:"joinedAt"`
}

func (s *Service) GetStats(ctx context.Context, userID string) (Stats, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Stats{}, user.ErrNotFound
		}
		return Stats{}, ErrInternal
	}

	completed := 0
	for _, done := range u.Submissions {
		if done {
			completed++
		}
	}
	total := len(u.Submissions)
	progress := 0
	if total > 0 {
		progress = int(float64(completed)/float64(total)*100 + 0.5)
	}

	return Stats{
		CompletedSkills: completed,
		TotalSkills:     total,
		Progress:        progress,
		Career:          u.SelectedCareer,
		Language:        u.Language,
		InterestsCount:  len(u.Interests),
		JoinedAt:        u.CreatedAt,
	}, nil
}

// DeleteAccount removes the user record and cascades over the submission
// store. Outstanding validation timers for the user are cancelled first; any
// timer that already fired finds its entities gone and no-ops.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if s.canceller != nil {
		s.canceller.CancelFor(userID)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return ErrInternal
	}
	if err := s.submissions.DeleteByUser(ctx, userID); err != nil {
		return ErrInternal
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, userID)
	}
	return nil
}
