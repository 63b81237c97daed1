package usecase_test

import (
	"context"
	"testing"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/hash"
	"job-portal-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTokens() *token.Service {
	return token.NewService("test-secret", time.Hour)
}

func TestRegisterCandidate(t *testing.T) {
	candidates := new(MockCandidateRepo)
	employers := new(MockEmployerRepo)
	tokens := newTokens()
	uc := usecase.NewAuthUsecase(candidates, employers, tokens)

	t.Run("Issued token carries the candidate role", func(t *testing.T) {
		candidates.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil).Once()
		employers.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil).Once()
		candidates.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).Once()

		signed, candidate, err := uc.RegisterCandidate(context.Background(), "new@example.com", "secret123")
		require.NoError(t, err)

		claims, err := tokens.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleCandidate), claims.Role)
		assert.Equal(t, candidate.ID, claims.AccountID)
		assert.Equal(t, domain.RoleCandidate, candidate.Role)
		assert.Empty(t, candidate.PasswordHash, "sanitized account must not expose the hash")
	})

	t.Run("Email is normalized before the duplicate check", func(t *testing.T) {
		candidates.On("GetByEmail", mock.Anything, "mixed@example.com").Return(nil, nil).Once()
		employers.On("GetByEmail", mock.Anything, "mixed@example.com").Return(nil, nil).Once()
		candidates.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).Once()

		_, candidate, err := uc.RegisterCandidate(context.Background(), "  Mixed@Example.COM ", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "mixed@example.com", candidate.Email)
	})

	t.Run("Duplicate email in the employer table is rejected", func(t *testing.T) {
		candidates.On("GetByEmail", mock.Anything, "taken@example.com").Return(nil, nil).Once()
		employers.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.Employer{ID: "emp-1", Email: "taken@example.com"}, nil).Once()

		_, _, err := uc.RegisterCandidate(context.Background(), "taken@example.com", "secret123")
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
		assert.Equal(t, "Email already registered", appErr.Message)
	})
}

func TestRegisterEmployer(t *testing.T) {
	candidates := new(MockCandidateRepo)
	employers := new(MockEmployerRepo)
	tokens := newTokens()
	uc := usecase.NewAuthUsecase(candidates, employers, tokens)

	t.Run("Issued token carries the employer role", func(t *testing.T) {
		candidates.On("GetByEmail", mock.Anything, "hr@acme.test").Return(nil, nil).Once()
		employers.On("GetByEmail", mock.Anything, "hr@acme.test").Return(nil, nil).Once()
		employers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Employer")).Return(nil).Once()

		signed, employer, err := uc.RegisterEmployer(context.Background(), domain.RegisterEmployerInput{
			CompanyName:            "Acme",
			HiringManagerFirstName: "Ada",
			HiringManagerLastName:  "Lovelace",
			Email:                  "hr@acme.test",
			Password:               "secret123",
		})
		require.NoError(t, err)

		claims, err := tokens.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleEmployer), claims.Role)
		assert.Equal(t, employer.ID, claims.AccountID)
		assert.Equal(t, "Email", employer.PreferredCommunicationMode)
		assert.Empty(t, employer.PasswordHash)
	})

	t.Run("Duplicate email in the candidate table is rejected", func(t *testing.T) {
		candidates.On("GetByEmail", mock.Anything, "dev@example.com").
			Return(&domain.Candidate{ID: "cand-1", Email: "dev@example.com"}, nil).Once()
		employers.On("GetByEmail", mock.Anything, "dev@example.com").Return(nil, nil).Once()

		_, _, err := uc.RegisterEmployer(context.Background(), domain.RegisterEmployerInput{
			CompanyName:            "Acme",
			HiringManagerFirstName: "Ada",
			HiringManagerLastName:  "Lovelace",
			Email:                  "dev@example.com",
			Password:               "secret123",
		})
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	passwordHash, err := hash.Password("correct-horse")
	require.NoError(t, err)

	t.Run("Candidate match wins and binds candidate role", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		employers := new(MockEmployerRepo)
		tokens := newTokens()
		uc := usecase.NewAuthUsecase(candidates, employers, tokens)

		candidates.On("GetByEmail", mock.Anything, "cand@example.com").
			Return(&domain.Candidate{ID: "cand-1", Email: "cand@example.com", PasswordHash: passwordHash}, nil).Once()

		signed, account, err := uc.Login(context.Background(), "cand@example.com", "correct-horse")
		require.NoError(t, err)

		claims, err := tokens.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleCandidate), claims.Role)
		assert.Equal(t, domain.RoleCandidate, account.AccountRole())
		employers.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Employer fallback binds employer role", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		employers := new(MockEmployerRepo)
		tokens := newTokens()
		uc := usecase.NewAuthUsecase(candidates, employers, tokens)

		candidates.On("GetByEmail", mock.Anything, "emp@example.com").Return(nil, nil).Once()
		employers.On("GetByEmail", mock.Anything, "emp@example.com").
			Return(&domain.Employer{ID: "emp-1", Email: "emp@example.com", PasswordHash: passwordHash}, nil).Once()

		signed, account, err := uc.Login(context.Background(), "emp@example.com", "correct-horse")
		require.NoError(t, err)

		claims, err := tokens.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleEmployer), claims.Role)
		assert.Equal(t, domain.RoleEmployer, account.AccountRole())
	})

	t.Run("Wrong password and unknown email are indistinguishable", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		employers := new(MockEmployerRepo)
		uc := usecase.NewAuthUsecase(candidates, employers, newTokens())

		candidates.On("GetByEmail", mock.Anything, "cand@example.com").
			Return(&domain.Candidate{ID: "cand-1", PasswordHash: passwordHash}, nil).Once()
		_, _, errWrongPass := uc.Login(context.Background(), "cand@example.com", "not-the-password")

		candidates.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil).Once()
		employers.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil).Once()
		_, _, errNoAccount := uc.Login(context.Background(), "ghost@example.com", "whatever")

		require.Error(t, errWrongPass)
		require.Error(t, errNoAccount)
		assert.Equal(t, errWrongPass.Error(), errNoAccount.Error())

		wrongPassErr := errWrongPass.(*apperror.AppError)
		noAccountErr := errNoAccount.(*apperror.AppError)
		assert.Equal(t, wrongPassErr.Code, noAccountErr.Code)
	})
}

func TestGetAccount(t *testing.T) {
	candidates := new(MockCandidateRepo)
	employers := new(MockEmployerRepo)
	uc := usecase.NewAuthUsecase(candidates, employers, newTokens())

	t.Run("Unknown role is rejected", func(t *testing.T) {
		_, err := uc.GetAccount(context.Background(), "id-1", domain.Role("admin"))
		require.Error(t, err)
	})

	t.Run("Deleted account resolves to nil, not an error", func(t *testing.T) {
		candidates.On("GetByID", mock.Anything, "gone").Return(nil, nil).Once()
		account, err := uc.GetAccount(context.Background(), "gone", domain.RoleCandidate)
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}
