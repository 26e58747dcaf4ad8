package dto

import "github.com/interconnect/backend/internal/app/models"

// ApplyRequest represents a student's application
type ApplyRequest struct {
	InternshipID int64  `json:"internshipId" binding:"required,gt=0" example:"1"`
	CoverLetter  string `json:"coverLetter" binding:"max=5000"`
}

// UpdateApplicationStatusRequest moves an application to a new status
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,application_status" example:"interview"`
}

// ApplicationResponse wraps a single application
type ApplicationResponse struct {
	Message     string              `json:"message" example:"Application submitted successfully"`
	Application *models.Application `json:"application"`
}

// ApplicationListQuery filters the employer's received applications
type ApplicationListQuery struct {
	InternshipID *int64 `form:"internshipId" binding:"omitempty,gt=0"`
}
