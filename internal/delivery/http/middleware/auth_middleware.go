package middleware

import (
	"context"
	"net/http"
	"strings"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a live account. The token
// only proves {accountId, role}; the account itself is always re-loaded
// from the collection the role selects, without the password hash. Every
// failure mode collapses to 401 so handlers below never see a
// half-authenticated request.
func AuthMiddleware(tokens *token.Service, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "No authentication token, access denied", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			switch err {
			case token.ErrTokenExpired:
				response.Error(c, http.StatusUnauthorized, "Token has expired", nil)
			case token.ErrTokenMalformed:
				response.Error(c, http.StatusUnauthorized, "Token is invalid (missing data)", nil)
			default:
				response.Error(c, http.StatusUnauthorized, "Token is not valid", nil)
			}
			c.Abort()
			return
		}

		// Closed set of two variants; anything else in the token is an
		// attack or a stale client, never a dispatch fall-through.
		role := domain.Role(claims.Role)
		if !role.Valid() {
			response.Error(c, http.StatusUnauthorized, "Token contains invalid user type", nil)
			c.Abort()
			return
		}

		account, err := authUC.GetAccount(c.Request.Context(), claims.AccountID, role)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found or token invalid", nil)
			c.Abort()
			return
		}
		if account == nil {
			// Account deleted after issuance, or a stale token
			response.Error(c, http.StatusUnauthorized, "User not found or token invalid", nil)
			c.Abort()
			return
		}

		// Attach identity both to gin keys (handlers) and the request
		// context (usecases reached through context.Context).
		c.Set(string(domain.KeyAccountID), claims.AccountID)
		c.Set(string(domain.KeyAccountRole), string(role))
		c.Set(string(domain.KeyAccount), account)

		ctx := context.WithValue(c.Request.Context(), domain.KeyAccountID, claims.AccountID)
		ctx = context.WithValue(ctx, domain.KeyAccountRole, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
