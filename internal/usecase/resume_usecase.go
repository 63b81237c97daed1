package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/blob"
	"job-portal-backend/pkg/logger"

	"github.com/google/uuid"
)

var allowedResumeExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type resumeUsecase struct {
	repo    domain.ResumeRepository
	store   blob.Store
	maxSize int64
}

func NewResumeUsecase(repo domain.ResumeRepository, store blob.Store, maxSize int64) domain.ResumeUsecase {
	return &resumeUsecase{
		repo:    repo,
		store:   store,
		maxSize: maxSize,
	}
}

func (u *resumeUsecase) Upload(ctx context.Context, candidateID, title, fileName string, size int64, contentType string, file io.Reader) (*domain.Resume, error) {
	if size <= 0 {
		return nil, apperror.BadRequest("Resume file is empty")
	}
	if size > u.maxSize {
		return nil, apperror.BadRequest(fmt.Sprintf("Resume file exceeds the %d MB limit", u.maxSize/(1024*1024)))
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	blobContentType, ok := allowedResumeExtensions[ext]
	if !ok {
		return nil, apperror.BadRequest("Only PDF and Word documents are accepted")
	}
	if contentType != "" {
		blobContentType = contentType
	}

	if strings.TrimSpace(title) == "" {
		title = "My Resume"
	}

	id := uuid.NewString()
	key := fmt.Sprintf("resumes/%s/%s%s", candidateID, id, ext)

	if err := u.store.Put(ctx, key, file, size, blobContentType); err != nil {
		return nil, apperror.Internal(err)
	}

	resume := &domain.Resume{
		ID:          id,
		CandidateID: candidateID,
		Title:       title,
		FileName:    fileName,
		FileSize:    size,
		StorageKey:  key,
		UploadedAt:  time.Now(),
	}
	if err := u.repo.Create(ctx, resume); err != nil {
		// Metadata insert failed; don't leave the orphaned blob behind
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			logger.Log.Warn("orphaned resume blob left in store", "key", key, "error", delErr)
		}
		return nil, err
	}

	return resume, nil
}

func (u *resumeUsecase) List(ctx context.Context, candidateID string) ([]domain.Resume, error) {
	return u.repo.ListByCandidate(ctx, candidateID)
}

func (u *resumeUsecase) SetActive(ctx context.Context, candidateID, resumeID string) error {
	return u.repo.SetActive(ctx, resumeID, candidateID)
}

func (u *resumeUsecase) Delete(ctx context.Context, candidateID, resumeID string) error {
	resume, err := u.repo.GetByID(ctx, resumeID, candidateID)
	if err != nil {
		return apperror.Internal(err)
	}
	if resume == nil {
		return apperror.NotFound("Resume not found")
	}

	if err := u.store.Delete(ctx, resume.StorageKey); err != nil {
		// The metadata row is the source of truth; log and keep going
		logger.Log.Warn("failed to delete resume blob", "key", resume.StorageKey, "error", err)
	}

	return u.repo.Delete(ctx, resumeID, candidateID)
}
