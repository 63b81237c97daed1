package domain

import (
	"context"
	"time"
)

// Employer is a hiring account. PasswordHash is never serialized.
type Employer struct {
	ID                         string    `json:"id"`
	Email                      string    `json:"email"`
	PasswordHash               string    `json:"-"`
	Role                       Role      `json:"role"`
	CompanyName                string    `json:"companyName"`
	HiringManagerFirstName     string    `json:"hiringManagerFirstName"`
	HiringManagerLastName      string    `json:"hiringManagerLastName"`
	HiringManagerPhone         string    `json:"hiringManagerPhone"`
	CompanyWebsite             string    `json:"companyWebsite"`
	CompanyPhone               string    `json:"companyPhone"`
	CompanyAddress             string    `json:"companyAddress"`
	CompanyLocation            string    `json:"companyLocation"`
	Organization               string    `json:"organization"`
	CostCenter                 string    `json:"costCenter"`
	Department                 string    `json:"department"`
	PreferredCommunicationMode string    `json:"preferredCommunicationMode"`
	ProjectSponsors            []string  `json:"projectSponsors"`
	Projects                   []Project `json:"projects"`
	CreatedAt                  time.Time `json:"created_at"`
}

func (e *Employer) AccountID() string { return e.ID }
func (e *Employer) AccountRole() Role { return RoleEmployer }

type Project struct {
	ProjectName string       `json:"projectName"`
	TeamSize    int          `json:"teamSize"` // advisory, not checked against len(TeamMembers)
	TeamMembers []TeamMember `json:"teamMembers"`
}

type TeamMember struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// EmployerProfileUpdate carries a partial update with the same nil-means-
// absent convention as CandidateProfileUpdate.
type EmployerProfileUpdate struct {
	CompanyName                *string    `json:"companyName"`
	HiringManagerFirstName     *string    `json:"hiringManagerFirstName"`
	HiringManagerLastName      *string    `json:"hiringManagerLastName"`
	HiringManagerPhone         *string    `json:"hiringManagerPhone"`
	CompanyWebsite             *string    `json:"companyWebsite"`
	CompanyPhone               *string    `json:"companyPhone"`
	CompanyAddress             *string    `json:"companyAddress"`
	CompanyLocation            *string    `json:"companyLocation"`
	Organization               *string    `json:"organization"`
	CostCenter                 *string    `json:"costCenter"`
	Department                 *string    `json:"department"`
	PreferredCommunicationMode *string    `json:"preferredCommunicationMode"`
	ProjectSponsors            *[]string  `json:"projectSponsors"`
	Projects                   *[]Project `json:"projects"`
}

type EmployerRepository interface {
	Create(ctx context.Context, employer *Employer) error
	// GetByID loads an employer without the password hash. Returns
	// (nil, nil) when the id does not exist.
	GetByID(ctx context.Context, id string) (*Employer, error)
	// GetByEmail loads an employer including the password hash. Returns
	// (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*Employer, error)
	// UpdateProfile applies the staged column set atomically and returns
	// the post-update row without the password hash.
	UpdateProfile(ctx context.Context, id string, set map[string]any) (*Employer, error)
}
