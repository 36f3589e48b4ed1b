package user

import (
	"time"

	"learn-loop/internal/catalog"
)

// User is a learner account. The identifier is chosen by the caller on first
// login and is case-sensitive. Skills and Submissions are flag sets over the
// fixed catalog skill tags; Submissions entries flip to true only through
// deferred validation, never from direct input.
type User struct {
	UserID         string          `json:"userId"`
	PasswordHash   string          `json:"-"`
	Interests      []string        `json:"interests"`
	Language       string          `json:"language"`
	SelectedCareer *catalog.Career `json:"selectedCareer"`
	Skills         map[string]bool `json:"skills"`
	Submissions    map[string]bool `json:"submissions"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// New returns a fresh account with every skill and submission flag false and
// the default language preference.
func New(userID, passwordHash string, now time.Time) User {
	u := User{
		UserID:       userID,
		PasswordHash: passwordHash,
		Interests:    []string{},
		Language:     "python",
		Skills:       make(map[string]bool),
		Submissions:  make(map[string]bool),
		CreatedAt:    now,
	}
	for _, tag := range catalog.SkillTags() {
		u.Skills[tag] = false
		u.Submissions[tag] = false
	}
	return u
}

// Clone returns a deep copy so records can cross goroutine boundaries
// without sharing the flag maps.
func (u User) Clone() User {
	out := u
	out.Interests = append([]string(nil), u.Interests...)
	out.Skills = make(map[string]bool, len(u.Skills))
	for k, v := range u.Skills {
		out.Skills[k] = v
	}
	out.Submissions = make(map[string]bool, len(u.Submissions))
	for k, v := range u.Submissions {
		out.Submissions[k] = v
	}
	if u.SelectedCareer != nil {
		c := *u.SelectedCareer
		out.SelectedCareer = &c
	}
	return out
}
