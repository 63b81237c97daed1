package usecase

import (
	"context"
	"strings"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/hash"
	"job-portal-backend/pkg/token"

	"github.com/google/uuid"
)

type authUsecase struct {
	candidates domain.CandidateRepository
	employers  domain.EmployerRepository
	tokens     *token.Service
}

func NewAuthUsecase(candidates domain.CandidateRepository, employers domain.EmployerRepository, tokens *token.Service) domain.AuthUsecase {
	return &authUsecase{
		candidates: candidates,
		employers:  employers,
		tokens:     tokens,
	}
}

func (u *authUsecase) RegisterCandidate(ctx context.Context, email, password string) (string, *domain.Candidate, error) {
	email = normalizeEmail(email)

	if err := u.checkEmailAvailable(ctx, email); err != nil {
		return "", nil, err
	}

	passwordHash, err := hash.Password(password)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	candidate := &domain.Candidate{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         domain.RoleCandidate,
		Profile: domain.CandidateProfile{
			Skills:     []string{},
			Experience: []domain.ExperienceEntry{},
			Education:  []domain.EducationEntry{},
		},
		CreatedAt: time.Now(),
	}

	if err := u.candidates.Create(ctx, candidate); err != nil {
		return "", nil, err
	}

	signed, err := u.tokens.Issue(candidate.ID, string(domain.RoleCandidate))
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	candidate.PasswordHash = ""
	return signed, candidate, nil
}

func (u *authUsecase) RegisterEmployer(ctx context.Context, input domain.RegisterEmployerInput) (string, *domain.Employer, error) {
	email := normalizeEmail(input.Email)

	if err := u.checkEmailAvailable(ctx, email); err != nil {
		return "", nil, err
	}

	passwordHash, err := hash.Password(input.Password)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	employer := &domain.Employer{
		ID:                         uuid.NewString(),
		Email:                      email,
		PasswordHash:               passwordHash,
		Role:                       domain.RoleEmployer,
		CompanyName:                input.CompanyName,
		HiringManagerFirstName:     input.HiringManagerFirstName,
		HiringManagerLastName:      input.HiringManagerLastName,
		HiringManagerPhone:         input.HiringManagerPhone,
		PreferredCommunicationMode: "Email",
		ProjectSponsors:            []string{},
		Projects:                   []domain.Project{},
		CreatedAt:                  time.Now(),
	}

	if err := u.employers.Create(ctx, employer); err != nil {
		return "", nil, err
	}

	signed, err := u.tokens.Issue(employer.ID, string(domain.RoleEmployer))
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	employer.PasswordHash = ""
	return signed, employer, nil
}

// Login resolves credentials against the candidate table first, then the
// employer table. Unknown email and wrong password return the identical
// generic error so callers cannot probe which accounts exist.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, domain.Account, error) {
	email = normalizeEmail(email)

	candidate, err := u.candidates.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	if candidate != nil {
		if !hash.Verify(password, candidate.PasswordHash) {
			return "", nil, apperror.BadRequest("Invalid credentials")
		}
		signed, err := u.tokens.Issue(candidate.ID, string(domain.RoleCandidate))
		if err != nil {
			return "", nil, apperror.Internal(err)
		}
		candidate.PasswordHash = ""
		return signed, candidate, nil
	}

	employer, err := u.employers.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	if employer == nil {
		return "", nil, apperror.BadRequest("Invalid credentials")
	}
	if !hash.Verify(password, employer.PasswordHash) {
		return "", nil, apperror.BadRequest("Invalid credentials")
	}

	signed, err := u.tokens.Issue(employer.ID, string(domain.RoleEmployer))
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	employer.PasswordHash = ""
	return signed, employer, nil
}

func (u *authUsecase) GetAccount(ctx context.Context, id string, role domain.Role) (domain.Account, error) {
	switch role {
	case domain.RoleCandidate:
		candidate, err := u.candidates.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			return nil, nil
		}
		return candidate, nil
	case domain.RoleEmployer:
		employer, err := u.employers.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if employer == nil {
			return nil, nil
		}
		return employer, nil
	default:
		return nil, apperror.Unauthorized("Token contains invalid user type")
	}
}

// checkEmailAvailable enforces the cross-collection uniqueness invariant.
// The per-table unique index remains as a backstop against concurrent
// registrations racing this check.
func (u *authUsecase) checkEmailAvailable(ctx context.Context, email string) error {
	candidate, err := u.candidates.GetByEmail(ctx, email)
	if err != nil {
		return apperror.Internal(err)
	}
	employer, err := u.employers.GetByEmail(ctx, email)
	if err != nil {
		return apperror.Internal(err)
	}
	if candidate != nil || employer != nil {
		return apperror.Conflict("Email already registered")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
