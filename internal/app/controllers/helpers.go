// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appAuth "github.com/interconnect/backend/internal/app/auth"
	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/middleware"
	"github.com/interconnect/backend/internal/pkg/apperrors"
)

// authorize is the first call of every role-scoped handler. It returns the
// authenticated user when their role is one of roles, otherwise it writes the
// error response and returns false.
func authorize(ctx *gin.Context, roles ...models.Role) (*models.User, bool) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUserGone)
		return nil, false
	}
	if err := appAuth.RequireRole(user, roles...); err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return user, true
}

// pathID parses a positive integer path parameter
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid "+name, map[string]interface{}{
			name: name + " must be a positive integer",
		}))
		return 0, false
	}
	return id, true
}
