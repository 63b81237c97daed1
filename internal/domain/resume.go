package domain

import (
	"context"
	"io"
	"time"
)

// Resume is the metadata record for an uploaded resume file. The file
// itself lives in the blob store under StorageKey.
type Resume struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"-"`
	Title       string    `json:"title"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	StorageKey  string    `json:"-"`
	IsActive    bool      `json:"isActive"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type ResumeRepository interface {
	// Create inserts the record. When the candidate has no other resumes
	// the new one is marked active.
	Create(ctx context.Context, resume *Resume) error
	ListByCandidate(ctx context.Context, candidateID string) ([]Resume, error)
	// GetByID loads a resume owned by the candidate. Returns (nil, nil)
	// when absent or owned by someone else.
	GetByID(ctx context.Context, id, candidateID string) (*Resume, error)
	// SetActive marks the given resume active and clears the flag on the
	// candidate's others in a single transaction.
	SetActive(ctx context.Context, id, candidateID string) error
	Delete(ctx context.Context, id, candidateID string) error
}

type ResumeUsecase interface {
	Upload(ctx context.Context, candidateID, title, fileName string, size int64, contentType string, file io.Reader) (*Resume, error)
	List(ctx context.Context, candidateID string) ([]Resume, error)
	SetActive(ctx context.Context, candidateID, resumeID string) error
	Delete(ctx context.Context, candidateID, resumeID string) error
}
