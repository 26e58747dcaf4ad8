package dto

import (
	"time"

	"github.com/interconnect/backend/internal/app/models"
)

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Name     string      `json:"name" binding:"required,max=100" example:"Ada Lovelace"`
	Email    string      `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string      `json:"password" binding:"required,min=6,max=72" example:"secret123"`
	Role     models.Role `json:"role" binding:"required,user_role" example:"student" enums:"student,employer,admin"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserResponse is the public form of a user
type UserResponse struct {
	ID          int64       `json:"id" example:"1"`
	Name        string      `json:"name" example:"Ada Lovelace"`
	Email       string      `json:"email" example:"ada@example.com"`
	Role        models.Role `json:"role" example:"student"`
	CreatedAt   time.Time   `json:"createdAt"`
	LastLoginAt *time.Time  `json:"lastLoginAt,omitempty"`
}

// NewUserResponse builds the public form of u
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// NewUserResponses maps a user slice to its public form
func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Message   string       `json:"message" example:"Login successful"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn" example:"3600"`
	User      UserResponse `json:"user"`
}

// MeResponse wraps the authenticated user
type MeResponse struct {
	User UserResponse `json:"user"`
}
