package dto

import "github.com/interconnect/backend/internal/app/models"

// CreateInternshipRequest represents a new listing
type CreateInternshipRequest struct {
	Title        string   `json:"title" binding:"required,max=200" example:"Backend Intern"`
	Company      string   `json:"company" binding:"required,max=200" example:"Acme"`
	Description  string   `json:"description" binding:"required,max=10000"`
	Requirements []string `json:"requirements" binding:"omitempty,max=50,dive,required,max=500"`
	Location     string   `json:"location" binding:"max=200" example:"Remote"`
	Duration     string   `json:"duration" binding:"max=100" example:"3 months"`
	Stipend      float64  `json:"stipend" binding:"gte=0" example:"1000"`
}

// UpdateInternshipRequest is a partial edit; nil fields are left unchanged
type UpdateInternshipRequest struct {
	Title        *string                  `json:"title" binding:"omitempty,min=1,max=200"`
	Company      *string                  `json:"company" binding:"omitempty,min=1,max=200"`
	Description  *string                  `json:"description" binding:"omitempty,min=1,max=10000"`
	Requirements *[]string                `json:"requirements" binding:"omitempty,max=50,dive,required,max=500"`
	Location     *string                  `json:"location" binding:"omitempty,max=200"`
	Duration     *string                  `json:"duration" binding:"omitempty,max=100"`
	Stipend      *float64                 `json:"stipend" binding:"omitempty,gte=0"`
	Status       *models.InternshipStatus `json:"status" binding:"omitempty,internship_status"`
}

// UpdateInternshipStatusRequest changes only the lifecycle status
type UpdateInternshipStatusRequest struct {
	Status models.InternshipStatus `json:"status" binding:"required,internship_status" example:"closed"`
}

// InternshipResponse wraps a single listing
type InternshipResponse struct {
	Message    string             `json:"message,omitempty" example:"Internship created successfully"`
	Internship *models.Internship `json:"internship"`
}
