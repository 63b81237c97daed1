package usecase_test

import (
	"context"
	"strings"
	"testing"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

const maxResumeSize = 5 * 1024 * 1024

func TestResumeUpload(t *testing.T) {
	t.Run("Stores blob and metadata, defaults the title", func(t *testing.T) {
		repo := new(MockResumeRepo)
		store := new(MockBlobStore)
		uc := usecase.NewResumeUsecase(repo, store, maxResumeSize)

		store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "resumes/cand-1/") && strings.HasSuffix(key, ".pdf")
		}), mock.Anything, int64(1024), "application/pdf").Return(nil).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Resume")).Return(nil).Once()

		resume, err := uc.Upload(context.Background(), "cand-1", "  ", "cv.pdf", 1024, "", strings.NewReader("x"))
		require.NoError(t, err)
		assert.Equal(t, "My Resume", resume.Title)
		assert.Equal(t, "cv.pdf", resume.FileName)
		store.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Rejects unsupported file types before touching storage", func(t *testing.T) {
		repo := new(MockResumeRepo)
		store := new(MockBlobStore)
		uc := usecase.NewResumeUsecase(repo, store, maxResumeSize)

		_, err := uc.Upload(context.Background(), "cand-1", "CV", "cv.exe", 1024, "", strings.NewReader("x"))
		require.Error(t, err)
		appErr := err.(*apperror.AppError)
		assert.Equal(t, 400, appErr.Code)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects oversized files", func(t *testing.T) {
		uc := usecase.NewResumeUsecase(new(MockResumeRepo), new(MockBlobStore), maxResumeSize)

		_, err := uc.Upload(context.Background(), "cand-1", "CV", "cv.pdf", maxResumeSize+1, "", strings.NewReader("x"))
		require.Error(t, err)
		appErr := err.(*apperror.AppError)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Removes the blob when the metadata insert fails", func(t *testing.T) {
		repo := new(MockResumeRepo)
		store := new(MockBlobStore)
		uc := usecase.NewResumeUsecase(repo, store, maxResumeSize)

		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(apperror.Internal(assert.AnError)).Once()
		store.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := uc.Upload(context.Background(), "cand-1", "CV", "cv.pdf", 1024, "", strings.NewReader("x"))
		require.Error(t, err)
		store.AssertExpectations(t)
	})
}

func TestResumeDelete(t *testing.T) {
	t.Run("Removes the blob and the record", func(t *testing.T) {
		repo := new(MockResumeRepo)
		store := new(MockBlobStore)
		uc := usecase.NewResumeUsecase(repo, store, maxResumeSize)

		repo.On("GetByID", mock.Anything, "res-1", "cand-1").
			Return(&domain.Resume{ID: "res-1", CandidateID: "cand-1", StorageKey: "resumes/cand-1/res-1.pdf"}, nil).Once()
		store.On("Delete", mock.Anything, "resumes/cand-1/res-1.pdf").Return(nil).Once()
		repo.On("Delete", mock.Anything, "res-1", "cand-1").Return(nil).Once()

		require.NoError(t, uc.Delete(context.Background(), "cand-1", "res-1"))
		store.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Unowned resume is not found", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo, new(MockBlobStore), maxResumeSize)

		repo.On("GetByID", mock.Anything, "res-9", "cand-1").Return(nil, nil).Once()

		err := uc.Delete(context.Background(), "cand-1", "res-9")
		require.Error(t, err)
		appErr := err.(*apperror.AppError)
		assert.Equal(t, 404, appErr.Code)
	})
}
