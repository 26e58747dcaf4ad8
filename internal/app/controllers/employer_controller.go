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

// EmployerController serves the employer portal
type EmployerController struct {
	internships  *services.InternshipService
	applications *services.ApplicationService
	dashboard    *services.DashboardService
	logger       zerolog.Logger
}

// NewEmployerController creates a new EmployerController
func NewEmployerController(
	internships *services.InternshipService,
	applications *services.ApplicationService,
	dashboard *services.DashboardService,
	logger zerolog.Logger,
) *EmployerController {
	return &EmployerController{
		internships:  internships,
		applications: applications,
		dashboard:    dashboard,
		logger:       logger,
	}
}

// Dashboard returns counts over the employer's listings
// @Summary Employer dashboard
// @Tags employer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.EmployerDashboardResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /employer/dashboard [get]
func (c *EmployerController) Dashboard(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleEmployer)
	if !ok {
		return
	}

	resp, err := c.dashboard.Employer(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateInternship posts a new listing
// @Summary Create internship
// @Tags employer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInternshipRequest true "Listing"
// @Success 201 {object} dto.InternshipResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /employer/internships [post]
func (c *EmployerController) CreateInternship(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleEmployer)
	if !ok {
		return
	}

	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	internship, err := c.internships.Create(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InternshipResponse{
		Message:    "Internship created successfully",
		Internship: internship,
	})
}

// ListInternships lists the employer's listings in any status
// @Summary My internships
// @Tags employer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Internship
// @Router /employer/internships [get]
func (c *EmployerController) ListInternships(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleEmployer)
	if !ok {
		return
	}

	internships, err := c.internships.ListOwn(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, internships)
}

// GetInternship returns one of the employer's listings
// @Summary Get own internship
// @Tags employer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.InternshipResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employer/internships/{id} [get]
func (c *EmployerController) GetInternship(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleEmployer)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.internships.GetOwn(ctx.Request.Context(), user.ID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.InternshipResponse{Internship: internship})
}

// UpdateInternship edits a listing the employer owns
// @Summary Update internship
// @Tags employer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param request body dto.UpdateInternshipRequest true "Fields to change"
// @Success 200 {object} dto.InternshipResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employer/internships/{id} [put]
func (c *EmployerController) UpdateInternship(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleEmployer)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	internship, err := c.internships.Update(ctx.Request.Context(), user.ID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.InternshipResponse{
		Message:    "Internship updated successfully",
		Internship: internship,
	})
}

// UpdateInternshipStatus opens, pauses or closes a listing
// @Summary Change internship status
// @Tags employer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param request body dto.UpdateInternshipStatusRequest true "New status"
// @Success 200 {object} dto.InternshipResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employer/internships/{id}/status [patch]
func (c *EmployerController) UpdateInternshipStatus(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleEmployer)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	internship, err := c.internships.SetStatus(ctx.Request.Context(), user.ID, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.InternshipResponse{
		Message:    "Internship status updated",
		Internship: internship,
	})
}

// ListApplications lists applications received on the employer's listings
// @Summary Received applications
// @Tags employer
// @Produce json
// @Security BearerAuth
// @Param internshipId query int false "Only applications to this internship"
// @Success 200 {array} models.ApplicationView
// @Failure 403 {object} dto.ErrorResponse
// @Router /employer/applications [get]
func (c *EmployerController) ListApplications(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleEmployer)
	if !ok {
		return
	}

	var query dto.ApplicationListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	applications, err := c.applications.ListReceived(ctx.Request.Context(), user.ID, query.InternshipID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, applications)
}

// UpdateApplicationStatus moves an application to a new status
// @Summary Update application status
// @Tags employer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner of the listing"
// @Failure 404 {object} dto.ErrorResponse
// @Router /employer/applications/{id}/status [patch]
func (c *EmployerController) UpdateApplicationStatus(ctx *gin.Context) {
	user, ok := authorize(ctx, models.RoleEmployer)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	application, err := c.applications.UpdateStatus(ctx.Request.Context(), user.ID, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ApplicationResponse{
		Message:     "Application status updated",
		Application: application,
	})
}
