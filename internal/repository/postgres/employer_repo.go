package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// employerColumns excludes password_hash so reads never load it.
const employerColumns = `id, email, company_name, hiring_manager_first_name, hiring_manager_last_name,
	hiring_manager_phone, company_website, company_phone, company_address, company_location,
	organization, cost_center, department, preferred_communication_mode, project_sponsors,
	projects, created_at`

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Create(ctx context.Context, e *domain.Employer) error {
	projectsJSON, err := json.Marshal(e.Projects)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO employers
		(id, email, password_hash, company_name, hiring_manager_first_name, hiring_manager_last_name,
		 hiring_manager_phone, company_website, company_phone, company_address, company_location,
		 organization, cost_center, department, preferred_communication_mode, project_sponsors,
		 projects, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.db.Exec(ctx, query,
		e.ID, e.Email, e.PasswordHash,
		e.CompanyName, e.HiringManagerFirstName, e.HiringManagerLastName, e.HiringManagerPhone,
		e.CompanyWebsite, e.CompanyPhone, e.CompanyAddress, e.CompanyLocation,
		e.Organization, e.CostCenter, e.Department, e.PreferredCommunicationMode,
		pq.Array(e.ProjectSponsors), projectsJSON, e.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Email already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *employerRepo) GetByID(ctx context.Context, id string) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *employerRepo) GetByEmail(ctx context.Context, email string) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + `, password_hash FROM employers WHERE email = $1`

	var e domain.Employer
	var projectsJSON []byte
	var sponsors []string
	err := r.db.QueryRow(ctx, query, email).Scan(
		&e.ID, &e.Email,
		&e.CompanyName, &e.HiringManagerFirstName, &e.HiringManagerLastName, &e.HiringManagerPhone,
		&e.CompanyWebsite, &e.CompanyPhone, &e.CompanyAddress, &e.CompanyLocation,
		&e.Organization, &e.CostCenter, &e.Department, &e.PreferredCommunicationMode,
		pq.Array(&sponsors), &projectsJSON, &e.CreatedAt,
		&e.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := finishEmployer(&e, sponsors, projectsJSON); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employerRepo) UpdateProfile(ctx context.Context, id string, set map[string]any) (*domain.Employer, error) {
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	cols := make([]string, 0, len(set))
	for col := range set {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	assignments := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
		val, err := bindEmployerValue(col, set[col])
		if err != nil {
			return nil, apperror.Internal(err)
		}
		args = append(args, val)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE employers SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(assignments, ", "), len(args), employerColumns)

	e, err := r.scanOne(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgIntegrityClass) {
			return nil, apperror.BadRequest("Profile update violates a data constraint")
		}
		return nil, err
	}
	return e, nil
}

func bindEmployerValue(col string, v any) (any, error) {
	switch col {
	case "project_sponsors":
		s, ok := v.([]string)
		if !ok {
			return nil, fmt.Errorf("employers.%s: expected []string, got %T", col, v)
		}
		return pq.Array(s), nil
	case "projects":
		return json.Marshal(v)
	default:
		return v, nil
	}
}

func (r *employerRepo) scanOne(row pgx.Row) (*domain.Employer, error) {
	var e domain.Employer
	var projectsJSON []byte
	var sponsors []string
	err := row.Scan(
		&e.ID, &e.Email,
		&e.CompanyName, &e.HiringManagerFirstName, &e.HiringManagerLastName, &e.HiringManagerPhone,
		&e.CompanyWebsite, &e.CompanyPhone, &e.CompanyAddress, &e.CompanyLocation,
		&e.Organization, &e.CostCenter, &e.Department, &e.PreferredCommunicationMode,
		pq.Array(&sponsors), &projectsJSON, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := finishEmployer(&e, sponsors, projectsJSON); err != nil {
		return nil, err
	}
	return &e, nil
}

func finishEmployer(e *domain.Employer, sponsors []string, projectsJSON []byte) error {
	e.Role = domain.RoleEmployer
	e.ProjectSponsors = sponsors
	if e.ProjectSponsors == nil {
		e.ProjectSponsors = []string{}
	}
	if len(projectsJSON) > 0 {
		if err := json.Unmarshal(projectsJSON, &e.Projects); err != nil {
			return err
		}
	}
	if e.Projects == nil {
		e.Projects = []domain.Project{}
	}
	return nil
}
