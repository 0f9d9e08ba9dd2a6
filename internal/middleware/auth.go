package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/pkg/jwt"
)

// AuthService defines the interface for token validation
type AuthService interface {
	ValidateAccessToken(ctx context.Context, token string) (*jwt.Claims, error)
}

// Auth returns a middleware that validates JWT bearer tokens
func Auth(authService AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, model.NewUnauthorizedError("missing authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abort(c, model.NewUnauthorizedError("invalid authorization header format"))
			return
		}

		claims, err := authService.ValidateAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abort(c, model.NewUnauthorizedError("token expired"))
				return
			}
			abort(c, model.NewUnauthorizedError("invalid token"))
			return
		}

		c.Set(string(ClaimsKey), claims)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ClaimsKey, claims))
		c.Next()
	}
}

// AdminOnly rejects members without the admin role. It must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c.Request.Context())
		if claims == nil {
			abort(c, model.NewUnauthorizedError("authentication required"))
			return
		}
		if !claims.IsAdmin() {
			abort(c, model.NewNotAdminError())
			return
		}
		c.Next()
	}
}

// GetClaims extracts the JWT claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}

// GetMemberID returns the authenticated member's id, or 0
func GetMemberID(ctx context.Context) uint {
	if claims := GetClaims(ctx); claims != nil {
		return claims.MemberID
	}
	return 0
}
