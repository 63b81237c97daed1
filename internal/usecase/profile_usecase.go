package usecase

import (
	"context"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

// employerMandatoryField pairs a payload key with its pointer accessor so
// the completeness gate can report every missing field, not just the first.
type employerMandatoryField struct {
	name  string
	value func(domain.EmployerProfileUpdate) *string
}

// The employer completeness contract applies at update time only: a
// freshly registered employer may hold an incomplete profile until its
// first update.
var employerMandatoryFields = []employerMandatoryField{
	{"companyName", func(u domain.EmployerProfileUpdate) *string { return u.CompanyName }},
	{"hiringManagerFirstName", func(u domain.EmployerProfileUpdate) *string { return u.HiringManagerFirstName }},
	{"hiringManagerLastName", func(u domain.EmployerProfileUpdate) *string { return u.HiringManagerLastName }},
	{"hiringManagerPhone", func(u domain.EmployerProfileUpdate) *string { return u.HiringManagerPhone }},
	{"companyWebsite", func(u domain.EmployerProfileUpdate) *string { return u.CompanyWebsite }},
	{"companyPhone", func(u domain.EmployerProfileUpdate) *string { return u.CompanyPhone }},
	{"companyAddress", func(u domain.EmployerProfileUpdate) *string { return u.CompanyAddress }},
	{"companyLocation", func(u domain.EmployerProfileUpdate) *string { return u.CompanyLocation }},
	{"organization", func(u domain.EmployerProfileUpdate) *string { return u.Organization }},
	{"department", func(u domain.EmployerProfileUpdate) *string { return u.Department }},
}

type profileUsecase struct {
	candidates domain.CandidateRepository
	employers  domain.EmployerRepository
}

func NewProfileUsecase(candidates domain.CandidateRepository, employers domain.EmployerRepository) domain.ProfileUsecase {
	return &profileUsecase{
		candidates: candidates,
		employers:  employers,
	}
}

// UpdateCandidateProfile merges the submitted whitelisted fields into the
// candidate's profile subdocument. Presence, not truthiness, decides what
// gets staged: a non-nil empty value is an explicit update while an absent
// key leaves the stored value untouched.
func (u *profileUsecase) UpdateCandidateProfile(ctx context.Context, id string, upd domain.CandidateProfileUpdate) (*domain.Candidate, bool, error) {
	if err := requireIdentity(ctx, id, domain.RoleCandidate, "Access denied: User is not a candidate"); err != nil {
		return nil, false, err
	}

	set := map[string]any{}
	stageString(set, "first_name", upd.FirstName)
	stageString(set, "last_name", upd.LastName)
	stageString(set, "phone", upd.Phone)
	stageString(set, "address", upd.Address)
	stageString(set, "city", upd.City)
	stageString(set, "state", upd.State)
	stageString(set, "zip_code", upd.ZipCode)
	stageString(set, "previous_experience", upd.PreviousExperience)
	stageString(set, "bio", upd.Bio)
	if upd.Skills != nil {
		set["skills"] = *upd.Skills
	}
	if upd.Experience != nil {
		set["experience"] = *upd.Experience
	}
	if upd.Education != nil {
		set["education"] = *upd.Education
	}

	if len(set) == 0 {
		candidate, err := u.candidates.GetByID(ctx, id)
		if err != nil {
			return nil, false, apperror.Internal(err)
		}
		if candidate == nil {
			return nil, false, apperror.NotFound("User not found")
		}
		return candidate, false, nil
	}

	candidate, err := u.candidates.UpdateProfile(ctx, id, set)
	if err != nil {
		return nil, false, err
	}
	if candidate == nil {
		return nil, false, apperror.NotFound("User not found")
	}
	return candidate, true, nil
}

// UpdateEmployerProfile merges the submitted whitelisted fields into the
// employer document. The mandatory-field gate runs against the submitted
// payload before anything is persisted.
func (u *profileUsecase) UpdateEmployerProfile(ctx context.Context, id string, upd domain.EmployerProfileUpdate) (*domain.Employer, bool, error) {
	if err := requireIdentity(ctx, id, domain.RoleEmployer, "Access denied: User is not an employer"); err != nil {
		return nil, false, err
	}

	var missing []string
	for _, f := range employerMandatoryFields {
		v := f.value(upd)
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, false, apperror.Unprocessable("Profile is missing required fields").WithDetails(missing)
	}

	set := map[string]any{}
	stageString(set, "company_name", upd.CompanyName)
	stageString(set, "hiring_manager_first_name", upd.HiringManagerFirstName)
	stageString(set, "hiring_manager_last_name", upd.HiringManagerLastName)
	stageString(set, "hiring_manager_phone", upd.HiringManagerPhone)
	stageString(set, "company_website", upd.CompanyWebsite)
	stageString(set, "company_phone", upd.CompanyPhone)
	stageString(set, "company_address", upd.CompanyAddress)
	stageString(set, "company_location", upd.CompanyLocation)
	stageString(set, "organization", upd.Organization)
	stageString(set, "cost_center", upd.CostCenter)
	stageString(set, "department", upd.Department)
	stageString(set, "preferred_communication_mode", upd.PreferredCommunicationMode)
	if upd.ProjectSponsors != nil {
		set["project_sponsors"] = *upd.ProjectSponsors
	}
	if upd.Projects != nil {
		set["projects"] = *upd.Projects
	}

	if len(set) == 0 {
		employer, err := u.employers.GetByID(ctx, id)
		if err != nil {
			return nil, false, apperror.Internal(err)
		}
		if employer == nil {
			return nil, false, apperror.NotFound("Employer record not found")
		}
		return employer, false, nil
	}

	employer, err := u.employers.UpdateProfile(ctx, id, set)
	if err != nil {
		return nil, false, err
	}
	if employer == nil {
		return nil, false, apperror.NotFound("Employer record not found for update")
	}
	return employer, true, nil
}

// requireIdentity enforces the role gate and ownership from the request
// context set by the auth middleware.
func requireIdentity(ctx context.Context, id string, role domain.Role, forbiddenMsg string) error {
	ctxID, ok := ctx.Value(domain.KeyAccountID).(string)
	if !ok || ctxID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	ctxRole, _ := ctx.Value(domain.KeyAccountRole).(domain.Role)
	if ctxRole != role {
		return apperror.Forbidden(forbiddenMsg)
	}
	if ctxID != id {
		return apperror.Forbidden("You can only update your own profile")
	}
	return nil
}

func stageString(set map[string]any, column string, v *string) {
	if v != nil {
		set[column] = *v
	}
}
