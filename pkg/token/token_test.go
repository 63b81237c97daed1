package token_test

import (
	"testing"
	"time"

	"job-portal-backend/pkg/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestIssueAndVerify(t *testing.T) {
	svc := token.NewService(testSecret, time.Hour)

	signed, err := svc.Issue("account-1", "candidate")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "account-1", claims.AccountID)
	assert.Equal(t, "candidate", claims.Role)
}

func TestVerifyExpired(t *testing.T) {
	// Negative TTL produces a token already past its expiry but with a
	// perfectly valid signature
	svc := token.NewService(testSecret, -time.Hour)

	signed, err := svc.Issue("account-1", "employer")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := token.NewService("other-secret", time.Hour)
	verifier := token.NewService(testSecret, time.Hour)

	signed, err := issuer.Issue("account-1", "candidate")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	svc := token.NewService(testSecret, time.Hour)

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestVerifyMissingClaims(t *testing.T) {
	svc := token.NewService(testSecret, time.Hour)

	// Signed with the right secret but lacking account_id and role
	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := bare.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, token.ErrTokenMalformed)
}

func TestVerifyMissingRoleOnly(t *testing.T) {
	svc := token.NewService(testSecret, time.Hour)

	partial := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": "account-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := partial.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, token.ErrTokenMalformed)
}
