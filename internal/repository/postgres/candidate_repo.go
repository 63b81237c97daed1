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

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
	pgIntegrityClass  = "23"
)

// candidateColumns excludes password_hash so reads never load it.
const candidateColumns = `id, email, first_name, last_name, phone, address, city, state, zip_code,
	previous_experience, bio, skills, experience, education, created_at`

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	expJSON, err := json.Marshal(c.Profile.Experience)
	if err != nil {
		return apperror.Internal(err)
	}
	eduJSON, err := json.Marshal(c.Profile.Education)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO candidates
		(id, email, password_hash, first_name, last_name, phone, address, city, state, zip_code,
		 previous_experience, bio, skills, experience, education, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.db.Exec(ctx, query,
		c.ID, c.Email, c.PasswordHash,
		c.Profile.FirstName, c.Profile.LastName, c.Profile.Phone,
		c.Profile.Address, c.Profile.City, c.Profile.State, c.Profile.ZipCode,
		c.Profile.PreviousExperience, c.Profile.Bio,
		pq.Array(c.Profile.Skills), expJSON, eduJSON, c.CreatedAt,
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

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + `, password_hash FROM candidates WHERE email = $1`

	var c domain.Candidate
	var expJSON, eduJSON []byte
	var skills []string
	err := r.db.QueryRow(ctx, query, email).Scan(
		&c.ID, &c.Email,
		&c.Profile.FirstName, &c.Profile.LastName, &c.Profile.Phone,
		&c.Profile.Address, &c.Profile.City, &c.Profile.State, &c.Profile.ZipCode,
		&c.Profile.PreviousExperience, &c.Profile.Bio,
		pq.Array(&skills), &expJSON, &eduJSON, &c.CreatedAt,
		&c.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := finishCandidate(&c, skills, expJSON, eduJSON); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) UpdateProfile(ctx context.Context, id string, set map[string]any) (*domain.Candidate, error) {
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	// Deterministic column order so the statement is stable across calls
	cols := make([]string, 0, len(set))
	for col := range set {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	assignments := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
		val, err := bindCandidateValue(col, set[col])
		if err != nil {
			return nil, apperror.Internal(err)
		}
		args = append(args, val)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(assignments, ", "), len(args), candidateColumns)

	c, err := r.scanOne(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgIntegrityClass) {
			return nil, apperror.BadRequest("Profile update violates a data constraint")
		}
		return nil, err
	}
	return c, nil
}

func bindCandidateValue(col string, v any) (any, error) {
	switch col {
	case "skills":
		s, ok := v.([]string)
		if !ok {
			return nil, fmt.Errorf("candidates.%s: expected []string, got %T", col, v)
		}
		return pq.Array(s), nil
	case "experience", "education":
		return json.Marshal(v)
	default:
		return v, nil
	}
}

func (r *candidateRepo) scanOne(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var expJSON, eduJSON []byte
	var skills []string
	err := row.Scan(
		&c.ID, &c.Email,
		&c.Profile.FirstName, &c.Profile.LastName, &c.Profile.Phone,
		&c.Profile.Address, &c.Profile.City, &c.Profile.State, &c.Profile.ZipCode,
		&c.Profile.PreviousExperience, &c.Profile.Bio,
		pq.Array(&skills), &expJSON, &eduJSON, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := finishCandidate(&c, skills, expJSON, eduJSON); err != nil {
		return nil, err
	}
	return &c, nil
}

func finishCandidate(c *domain.Candidate, skills []string, expJSON, eduJSON []byte) error {
	c.Role = domain.RoleCandidate
	c.Profile.Skills = skills
	if c.Profile.Skills == nil {
		c.Profile.Skills = []string{}
	}
	if len(expJSON) > 0 {
		if err := json.Unmarshal(expJSON, &c.Profile.Experience); err != nil {
			return err
		}
	}
	if c.Profile.Experience == nil {
		c.Profile.Experience = []domain.ExperienceEntry{}
	}
	if len(eduJSON) > 0 {
		if err := json.Unmarshal(eduJSON, &c.Profile.Education); err != nil {
			return err
		}
	}
	if c.Profile.Education == nil {
		c.Profile.Education = []domain.EducationEntry{}
	}
	return nil
}
