package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// IdentityResolver loads the user a validated token refers to.
type IdentityResolver interface {
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// AuthMiddleware authenticates requests with a bearer token
type AuthMiddleware struct {
	jwtService *auth.JWTService
	identities IdentityResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, identities IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		identities: identities,
	}
}

// JWTAuth validates the bearer token and re-reads the user from the store on
// every request, so a deleted account is rejected even with a live token.
// Any failure aborts with 401 before the handler runs.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortWithError(c, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			abortWithError(c, err)
			return
		}

		user, err := m.identities.CurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextRoleKey, user.Role)
		c.Next()
	}
}

// CurrentUser returns the user stored by JWTAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

func abortWithError(c *gin.Context, err error) {
	HandleAPIError(c, err)
	c.Abort()
}
