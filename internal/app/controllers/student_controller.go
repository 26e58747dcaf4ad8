package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/app/services"
	"github.com/interconnect/backend/internal/middleware"
)

// StudentController serves the student portal
type StudentController struct {
	internships  *services.InternshipService
	applications *services.ApplicationService
	dashboard    *services.DashboardService
	users        *services.UserService
	logger       zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	internships *services.InternshipService,
	applications *services.ApplicationService,
	dashboard *services.DashboardService,
	users *services.UserService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		internships:  internships,
		applications: applications,
		dashboard:    dashboard,
		users:        users,
		logger:       logger,
	}
}

// Dashboard returns the student's application counts
// @Summary Student dashboard
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentDashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /student/dashboard [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleStudent)
	if !ok {
		return
	}

	resp, err := c.dashboard.Student(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// BrowseInternships lists active internships, newest first
// @Summary Browse internships
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Internship
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /student/internships [get]
func (c *StudentController) BrowseInternships(ctx *gin.Context) {
	if _, ok := authorize(ctx, models.RoleStudent); !ok {
		return
	}

	internships, err := c.internships.BrowseActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, internships)
}

// GetInternship returns one active internship
// @Summary Get internship
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} models.Internship
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/internships/{id} [get]
func (c *StudentController) GetInternship(ctx *gin.Context) {
	if _, ok := authorize(ctx, models.RoleStudent); !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.internships.GetActive(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, internship)
}

// Apply submits an application to an active internship
// @Summary Apply to an internship
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyRequest true "Application"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or already applied"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /student/applications [post]
func (c *StudentController) Apply(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleStudent)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	application, err := c.applications.Apply(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ApplicationResponse{
		Message:     "Application submitted successfully",
		Application: application,
	})
}

// ListApplications lists the student's own applications
// @Summary My applications
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ApplicationView
// @Router /student/applications [get]
func (c *StudentController) ListApplications(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleStudent)
	if !ok {
		return
	}

	applications, err := c.applications.ListMine(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, applications)
}

// GetProfile returns the student's profile
// @Summary Get profile
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Router /student/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleStudent)
	if !ok {
		return
	}

	profile, err := c.users.GetProfile(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile edits the student's profile
// @Summary Update profile
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /student/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleStudent)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	profile, err := c.users.UpdateProfile(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
