// Package token issues and verifies the signed bearer credentials that
// prove account identity and role. Tokens are stateless JWTs: there is no
// server-side session store and no refresh mechanism, so expiry forces
// re-authentication.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid signals a signature or parse failure.
	ErrTokenInvalid = errors.New("token: invalid token")
	// ErrTokenExpired signals a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("token: token has expired")
	// ErrTokenMalformed signals a verified token whose payload is missing
	// the account id or role claim.
	ErrTokenMalformed = errors.New("token: token payload missing account data")
)

// Claims is the identity a verified token proves.
type Claims struct {
	AccountID string
	Role      string
}

// Service signs and verifies tokens with a single process-wide HMAC secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token embedding the account id and role with an
// absolute expiry of now+ttl.
func (s *Service) Issue(accountID string, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"account_id": accountID,
		"role":       role,
		"iat":        now.Unix(),
		"exp":        now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and extracts the embedded identity.
func (s *Service) Verify(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !parsed.Valid {
		return Claims{}, ErrTokenInvalid
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}

	accountID, _ := mapClaims["account_id"].(string)
	role, _ := mapClaims["role"].(string)
	if accountID == "" || role == "" {
		return Claims{}, ErrTokenMalformed
	}

	return Claims{AccountID: accountID, Role: role}, nil
}
