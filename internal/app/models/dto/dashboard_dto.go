package dto

import (
	"time"

	"github.com/interconnect/backend/internal/app/models"
)

// Activity types shown in dashboard feeds
const (
	ActivityApplication         = "application"
	ActivityApplicationReceived = "application_received"
	ActivityUserRegistration    = "user_registration"
)

// ActivityItem is one entry of a dashboard's recent activity feed
type ActivityItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" example:"Application pending"`
	Company     string    `json:"company,omitempty"`
	Role        string    `json:"role,omitempty"`
	Student     string    `json:"student,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status,omitempty"`
	Time        time.Time `json:"time"`
	Type        string    `json:"type" example:"application"`
}

// StudentDashboardStats counts the student's own applications
type StudentDashboardStats struct {
	Applications int64 `json:"applications"`
	Interviews   int64 `json:"interviews"`
	Offers       int64 `json:"offers"`
	Pending      int64 `json:"pending"`
	Rejected     int64 `json:"rejected"`
}

// StudentDashboardResponse is the student landing page payload
type StudentDashboardResponse struct {
	Stats          StudentDashboardStats `json:"stats"`
	RecentActivity []ActivityItem        `json:"recentActivity"`
}

// EmployerDashboardStats counts the employer's listings and the applications
// they received
type EmployerDashboardStats struct {
	Internships         int64                              `json:"internships"`
	ActiveInternships   int64                              `json:"activeInternships"`
	Applications        int64                              `json:"applications"`
	PendingApplications int64                              `json:"pendingApplications"`
	ByStatus            map[models.ApplicationStatus]int64 `json:"byStatus"`
}

// EmployerDashboardResponse is the employer landing page payload
type EmployerDashboardResponse struct {
	Stats          EmployerDashboardStats `json:"stats"`
	RecentActivity []ActivityItem         `json:"recentActivity"`
	Internships    []*models.Internship   `json:"internships"`
}

// AdminDashboardStats are platform-wide counts
type AdminDashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	Students     int64 `json:"students"`
	Employers    int64 `json:"employers"`
	Admins       int64 `json:"admins"`
	Internships  int64 `json:"internships"`
	Applications int64 `json:"applications"`
}

// AdminDashboardResponse is the admin landing page payload
type AdminDashboardResponse struct {
	Stats          AdminDashboardStats `json:"stats"`
	RecentUsers    []UserResponse      `json:"recentUsers"`
	RecentActivity []ActivityItem      `json:"recentActivity"`
}

// AnalyticsResponse breaks platform counts down by role and status
type AnalyticsResponse struct {
	TotalUsers           int64                              `json:"totalUsers"`
	TotalInternships     int64                              `json:"totalInternships"`
	TotalApplications    int64                              `json:"totalApplications"`
	UsersByRole          map[models.Role]int64              `json:"usersByRole"`
	InternshipsByStatus  map[models.InternshipStatus]int64  `json:"internshipsByStatus"`
	ApplicationsByStatus map[models.ApplicationStatus]int64 `json:"applicationsByStatus"`
}
