package domain

import "context"

// RegisterEmployerInput is the employer registration payload after
// transport-level binding.
type RegisterEmployerInput struct {
	CompanyName            string
	HiringManagerFirstName string
	HiringManagerLastName  string
	HiringManagerPhone     string // optional
	Email                  string
	Password               string
}

type AuthUsecase interface {
	// RegisterCandidate creates a candidate with an empty profile and
	// returns an issued token plus the sanitized account.
	RegisterCandidate(ctx context.Context, email, password string) (string, *Candidate, error)
	// RegisterEmployer creates an employer and returns an issued token
	// plus the sanitized account.
	RegisterEmployer(ctx context.Context, input RegisterEmployerInput) (string, *Employer, error)
	// Login resolves the credentials against both variants (candidate
	// first) and returns a token bound to whichever matched.
	Login(ctx context.Context, email, password string) (string, Account, error)
	// GetAccount loads the sanitized account for the given id in the
	// collection selected by role. Returns (nil, nil) when absent.
	GetAccount(ctx context.Context, id string, role Role) (Account, error)
}

type ProfileUsecase interface {
	// UpdateCandidateProfile merges the whitelisted submitted fields into
	// the candidate's profile. The bool result is false when no
	// whitelisted field was present (the no-changes outcome).
	UpdateCandidateProfile(ctx context.Context, id string, upd CandidateProfileUpdate) (*Candidate, bool, error)
	// UpdateEmployerProfile merges the whitelisted submitted fields into
	// the employer document after the mandatory-field gate.
	UpdateEmployerProfile(ctx context.Context, id string, upd EmployerProfileUpdate) (*Employer, bool, error)
}
