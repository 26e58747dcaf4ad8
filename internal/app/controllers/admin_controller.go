package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/app/services"
	"github.com/interconnect/backend/internal/middleware"
	"github.com/interconnect/backend/internal/pkg/helpers"
)

// AdminController serves the admin portal
type AdminController struct {
	dashboard *services.DashboardService
	users     *services.UserService
	logger    zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(dashboard *services.DashboardService, users *services.UserService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		dashboard: dashboard,
		users:     users,
		logger:    logger,
	}
}

// Dashboard returns platform-wide counts
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminDashboardResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	if _, ok := authorize(ctx, models.RoleAdmin); !ok {
		return
	}

	resp, err := c.dashboard.Admin(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Analytics returns counts grouped by role and status
// @Summary Platform analytics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/analytics [get]
func (c *AdminController) Analytics(ctx *gin.Context) {
	if _, ok := authorize(ctx, models.RoleAdmin); !ok {
		return
	}

	resp, err := c.dashboard.Analytics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListUsers returns one page of users
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role" Enums(student, employer, admin)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.UserListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	if _, ok := authorize(ctx, models.RoleAdmin); !ok {
		return
	}

	var query dto.UserListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	var role *models.Role
	if query.Role != "" {
		r := models.Role(query.Role)
		role = &r
	}
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.users.List(ctx.Request.Context(), role, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteUser removes a student or employer and everything they own
// @Summary Delete user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse "Admins cannot be deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	admin, ok := authorize(ctx, models.RoleAdmin)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.users.Delete(ctx.Request.Context(), admin.ID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User deleted successfully"})
}
