package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const principalKey = "auth.principal"

// Require is gin middleware that verifies the Authorization bearer
// token and enforces that it carries the claim for the given kind.
// The principal is stored on the request context for handlers.
func Require(kind Kind, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			reject(c, http.StatusUnauthorized, "No token provided")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		p, err := VerifyToken(secret, token)
		if err != nil {
			switch {
			case errors.Is(err, ErrExpired):
				reject(c, http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, ErrWrongKind):
				reject(c, http.StatusUnauthorized, "Invalid token format")
			default:
				reject(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}
		if p.Kind != kind {
			reject(c, http.StatusUnauthorized, "Invalid token format")
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RoleChecker reports the stored role for a user id. The stored record
// is consulted rather than any role claim in the token.
type RoleChecker interface {
	Role(ctx context.Context, id string) (string, error)
}

// RequireAdminRole is gin middleware that re-fetches the authenticated
// user and rejects callers whose stored role is not "admin". It must
// run after Require(KindUser, ...).
func RequireAdminRole(users RoleChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := FromContext(c)
		if !ok {
			reject(c, http.StatusUnauthorized, "No token provided")
			return
		}

		role, err := users.Role(c.Request.Context(), p.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error checking admin status",
				"error":   err.Error(),
			})
			return
		}
		if role != "admin" {
			reject(c, http.StatusForbidden, "Access denied. Admin only.")
			return
		}

		c.Next()
	}
}

// FromContext returns the principal stored by Require.
func FromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func reject(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "message": msg})
}
