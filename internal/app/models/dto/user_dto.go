package dto

import (
	"time"

	"github.com/interconnect/backend/internal/app/models"
)

// UserListQuery filters the admin user listing
type UserListQuery struct {
	Role string `form:"role" binding:"omitempty,oneof=student employer admin"`
}

// UserListResponse represents a page of users
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}

// ProfileResponse is the student's account plus profile fields
type ProfileResponse struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	Phone      string      `json:"phone"`
	Skills     []string    `json:"skills"`
	Bio        string      `json:"bio"`
	Education  string      `json:"education"`
	Experience string      `json:"experience"`
	Portfolio  string      `json:"portfolio"`
	LinkedIn   string      `json:"linkedin"`
	GitHub     string      `json:"github"`
	UpdatedAt  *time.Time  `json:"updatedAt,omitempty"`
}

// NewProfileResponse merges a user with their profile
func NewProfileResponse(u *models.User, p *models.StudentProfile) ProfileResponse {
	resp := ProfileResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Phone:      p.Phone,
		Skills:     p.Skills,
		Bio:        p.Bio,
		Education:  p.Education,
		Experience: p.Experience,
		Portfolio:  p.Portfolio,
		LinkedIn:   p.LinkedIn,
		GitHub:     p.GitHub,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

// UpdateProfileRequest is a partial profile edit; nil fields are left unchanged
type UpdateProfileRequest struct {
	Name       *string   `json:"name" binding:"omitempty,min=2,max=100"`
	Phone      *string   `json:"phone" binding:"omitempty,max=50"`
	Skills     *[]string `json:"skills" binding:"omitempty,max=100,dive,required,max=100"`
	Bio        *string   `json:"bio" binding:"omitempty,max=2000"`
	Education  *string   `json:"education" binding:"omitempty,max=2000"`
	Experience *string   `json:"experience" binding:"omitempty,max=5000"`
	Portfolio  *string   `json:"portfolio" binding:"omitempty,url"`
	LinkedIn   *string   `json:"linkedin" binding:"omitempty,url"`
	GitHub     *string   `json:"github" binding:"omitempty,url"`
}
