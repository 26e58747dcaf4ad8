package models

import "time"

// Internship is a listing posted by an employer.
type Internship struct {
	ID               int64            `json:"id" db:"id"`
	EmployerID       int64            `json:"employerId" db:"employer_id"`
	Title            string           `json:"title" db:"title"`
	Company          string           `json:"company" db:"company"`
	Description      string           `json:"description" db:"description"`
	Requirements     []string         `json:"requirements" db:"requirements"`
	Location         string           `json:"location" db:"location"`
	Duration         string           `json:"duration" db:"duration"`
	Stipend          float64          `json:"stipend" db:"stipend"`
	Status           InternshipStatus `json:"status" db:"status"`
	ApplicationCount int64            `json:"applicationCount" db:"application_count"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at"`
	Employer         *UserSummary     `json:"employer,omitempty"`
}

// IsActive reports whether students may see the listing.
func (i *Internship) IsActive() bool {
	return i.Status == InternshipActive
}

// Summary returns the short form joined into applications.
func (i *Internship) Summary() InternshipSummary {
	return InternshipSummary{
		ID:       i.ID,
		Title:    i.Title,
		Company:  i.Company,
		Location: i.Location,
		Status:   i.Status,
	}
}

// InternshipSummary is the listing data shown next to an application.
type InternshipSummary struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Company  string           `json:"company"`
	Location string           `json:"location"`
	Status   InternshipStatus `json:"status"`
}
