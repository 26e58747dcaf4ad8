package models

import "time"

// Application is a student's submission against one internship.
type Application struct {
	ID           int64             `json:"id" db:"id"`
	StudentID    int64             `json:"studentId" db:"student_id"`
	InternshipID int64             `json:"internshipId" db:"internship_id"`
	CoverLetter  string            `json:"coverLetter" db:"cover_letter"`
	Status       ApplicationStatus `json:"status" db:"status"`
	CreatedAt    time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time         `json:"updatedAt" db:"updated_at"`
}

// ApplicationView is an application joined with its listing and applicant.
type ApplicationView struct {
	Application
	Internship InternshipSummary `json:"internship"`
	Student    UserSummary       `json:"student"`
}
