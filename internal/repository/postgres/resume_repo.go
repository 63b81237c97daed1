package postgres

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	// First resume for a candidate becomes the active one
	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM resumes WHERE candidate_id = $1`, resume.CandidateID,
	).Scan(&count)
	if err != nil {
		return apperror.Internal(err)
	}
	resume.IsActive = count == 0

	_, err = tx.Exec(ctx,
		`INSERT INTO resumes (id, candidate_id, title, file_name, file_size, storage_key, is_active, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		resume.ID, resume.CandidateID, resume.Title, resume.FileName,
		resume.FileSize, resume.StorageKey, resume.IsActive, resume.UploadedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *resumeRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Resume, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, candidate_id, title, file_name, file_size, storage_key, is_active, uploaded_at
		 FROM resumes WHERE candidate_id = $1 ORDER BY uploaded_at DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumes := []domain.Resume{}
	for rows.Next() {
		var res domain.Resume
		if err := rows.Scan(&res.ID, &res.CandidateID, &res.Title, &res.FileName,
			&res.FileSize, &res.StorageKey, &res.IsActive, &res.UploadedAt); err != nil {
			return nil, err
		}
		resumes = append(resumes, res)
	}
	return resumes, rows.Err()
}

func (r *resumeRepo) GetByID(ctx context.Context, id, candidateID string) (*domain.Resume, error) {
	var res domain.Resume
	err := r.db.QueryRow(ctx,
		`SELECT id, candidate_id, title, file_name, file_size, storage_key, is_active, uploaded_at
		 FROM resumes WHERE id = $1 AND candidate_id = $2`, id, candidateID,
	).Scan(&res.ID, &res.CandidateID, &res.Title, &res.FileName,
		&res.FileSize, &res.StorageKey, &res.IsActive, &res.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *resumeRepo) SetActive(ctx context.Context, id, candidateID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE resumes SET is_active = FALSE WHERE candidate_id = $1 AND is_active`, candidateID)
	if err != nil {
		return apperror.Internal(err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE resumes SET is_active = TRUE WHERE id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Resume not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *resumeRepo) Delete(ctx context.Context, id, candidateID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Resume not found")
	}
	return nil
}
