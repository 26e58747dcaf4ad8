package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Name        string     `json:"name" db:"name" example:"Acme"`
	Email       string     `json:"email" db:"email" example:"acme@x.com"`
	Password    string     `json:"-" db:"password"`
	Role        Role       `json:"role" db:"role" example:"employer"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// Summary returns the public projection embedded in other resources.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserSummary is the short form of a user joined into listings and applications.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// StudentProfile holds optional self-description fields of a student.
type StudentProfile struct {
	UserID     int64     `json:"userId" db:"user_id"`
	Phone      string    `json:"phone" db:"phone"`
	Skills     []string  `json:"skills" db:"skills"`
	Bio        string    `json:"bio" db:"bio"`
	Education  string    `json:"education" db:"education"`
	Experience string    `json:"experience" db:"experience"`
	Portfolio  string    `json:"portfolio" db:"portfolio"`
	LinkedIn   string    `json:"linkedin" db:"linkedin"`
	GitHub     string    `json:"github" db:"github"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
