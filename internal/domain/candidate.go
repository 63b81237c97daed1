package domain

import (
	"context"
	"time"
)

// Candidate is a job-seeker account. PasswordHash is never serialized.
type Candidate struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"`
	Role         Role             `json:"role"`
	Profile      CandidateProfile `json:"profile"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (c *Candidate) AccountID() string { return c.ID }
func (c *Candidate) AccountRole() Role { return RoleCandidate }

type CandidateProfile struct {
	FirstName          string            `json:"firstName"`
	LastName           string            `json:"lastName"`
	Phone              string            `json:"phone"`
	Address            string            `json:"address"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	ZipCode            string            `json:"zipCode"`
	PreviousExperience string            `json:"previousExperience"`
	Bio                string            `json:"bio"`
	Skills             []string          `json:"skills"`
	Experience         []ExperienceEntry `json:"experience"`
	Education          []EducationEntry  `json:"education"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationEntry struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Description  string `json:"description"`
}

// CandidateProfileUpdate carries a partial update. Nil pointers mean the
// field was absent from the payload; non-nil empty values are explicit
// updates. This distinction is what keeps unsubmitted fields untouched.
type CandidateProfileUpdate struct {
	FirstName          *string            `json:"firstName"`
	LastName           *string            `json:"lastName"`
	Phone              *string            `json:"phone"`
	Address            *string            `json:"address"`
	City               *string            `json:"city"`
	State              *string            `json:"state"`
	ZipCode            *string            `json:"zipCode"`
	PreviousExperience *string            `json:"previousExperience"`
	Bio                *string            `json:"bio"`
	Skills             *[]string          `json:"skills"`
	Experience         *[]ExperienceEntry `json:"experience"`
	Education          *[]EducationEntry  `json:"education"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	// GetByID loads a candidate without the password hash. Returns
	// (nil, nil) when the id does not exist.
	GetByID(ctx context.Context, id string) (*Candidate, error)
	// GetByEmail loads a candidate including the password hash for
	// credential verification. Returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	// UpdateProfile applies the staged column set atomically and returns
	// the post-update row without the password hash.
	UpdateProfile(ctx context.Context, id string, set map[string]any) (*Candidate, error)
}
