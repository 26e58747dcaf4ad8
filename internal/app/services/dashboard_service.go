package services

import (
	"context"
	"fmt"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/app/repositories"
)

// recentActivityLimit caps every dashboard feed
const recentActivityLimit = 10

// DashboardService computes the per-role aggregate views. Nothing is cached;
// every call counts the store afresh.
type DashboardService struct {
	stats       repositories.StatsStore
	internships repositories.InternshipStore
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(stats repositories.StatsStore, internships repositories.InternshipStore) *DashboardService {
	return &DashboardService{stats: stats, internships: internships}
}

func sum[K comparable](m map[K]int64) int64 {
	var total int64
	for _, n := range m {
		total += n
	}
	return total
}

// Student returns the counts of the student's own applications
func (s *DashboardService) Student(ctx context.Context, studentID int64) (*dto.StudentDashboardResponse, error) {
	scope := repositories.ApplicationScope{StudentID: &studentID}

	byStatus, err := s.stats.CountApplicationsByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}
	recent, err := s.stats.RecentApplications(ctx, scope, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	activity := make([]dto.ActivityItem, 0, len(recent))
	for _, a := range recent {
		activity = append(activity, dto.ActivityItem{
			ID:      a.ID,
			Title:   fmt.Sprintf("Application %s", a.Status),
			Company: a.Internship.Company,
			Role:    a.Internship.Title,
			Status:  string(a.Status),
			Time:    a.CreatedAt,
			Type:    dto.ActivityApplication,
		})
	}

	return &dto.StudentDashboardResponse{
		Stats: dto.StudentDashboardStats{
			Applications: sum(byStatus),
			Interviews:   byStatus[models.ApplicationInterview],
			Offers:       byStatus[models.ApplicationAccepted],
			Pending:      byStatus[models.ApplicationPending],
			Rejected:     byStatus[models.ApplicationRejected],
		},
		RecentActivity: activity,
	}, nil
}

// Employer returns counts over the employer's listings and the applications
// they received
func (s *DashboardService) Employer(ctx context.Context, employerID int64) (*dto.EmployerDashboardResponse, error) {
	scope := repositories.ApplicationScope{EmployerID: &employerID}

	listingsByStatus, err := s.stats.CountInternshipsByStatus(ctx, &employerID)
	if err != nil {
		return nil, err
	}
	appsByStatus, err := s.stats.CountApplicationsByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}
	recent, err := s.stats.RecentApplications(ctx, scope, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	listings, err := s.internships.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}

	activity := make([]dto.ActivityItem, 0, len(recent))
	for _, a := range recent {
		activity = append(activity, dto.ActivityItem{
			ID:      a.ID,
			Title:   "New Application",
			Student: a.Student.Name,
			Role:    a.Internship.Title,
			Status:  string(a.Status),
			Time:    a.CreatedAt,
			Type:    dto.ActivityApplicationReceived,
		})
	}

	return &dto.EmployerDashboardResponse{
		Stats: dto.EmployerDashboardStats{
			Internships:         sum(listingsByStatus),
			ActiveInternships:   listingsByStatus[models.InternshipActive],
			Applications:        sum(appsByStatus),
			PendingApplications: appsByStatus[models.ApplicationPending],
			ByStatus:            appsByStatus,
		},
		RecentActivity: activity,
		Internships:    listings,
	}, nil
}

// Admin returns platform-wide counts and the newest registrations
func (s *DashboardService) Admin(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	usersByRole, err := s.stats.CountUsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	listingsByStatus, err := s.stats.CountInternshipsByStatus(ctx, nil)
	if err != nil {
		return nil, err
	}
	appsByStatus, err := s.stats.CountApplicationsByStatus(ctx, repositories.ApplicationScope{})
	if err != nil {
		return nil, err
	}
	recentUsers, err := s.stats.RecentUsers(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	activity := make([]dto.ActivityItem, 0, len(recentUsers))
	for _, u := range recentUsers {
		activity = append(activity, dto.ActivityItem{
			ID:          u.ID,
			Title:       "New User Registration",
			Description: fmt.Sprintf("%s joined as %s", u.Name, u.Role),
			Time:        u.CreatedAt,
			Type:        dto.ActivityUserRegistration,
		})
	}

	return &dto.AdminDashboardResponse{
		Stats: dto.AdminDashboardStats{
			TotalUsers:   sum(usersByRole),
			Students:     usersByRole[models.RoleStudent],
			Employers:    usersByRole[models.RoleEmployer],
			Admins:       usersByRole[models.RoleAdmin],
			Internships:  sum(listingsByStatus),
			Applications: sum(appsByStatus),
		},
		RecentUsers:    dto.NewUserResponses(recentUsers),
		RecentActivity: activity,
	}, nil
}

// Analytics returns the global counts grouped by role and status
func (s *DashboardService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	usersByRole, err := s.stats.CountUsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	listingsByStatus, err := s.stats.CountInternshipsByStatus(ctx, nil)
	if err != nil {
		return nil, err
	}
	appsByStatus, err := s.stats.CountApplicationsByStatus(ctx, repositories.ApplicationScope{})
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		TotalUsers:           sum(usersByRole),
		TotalInternships:     sum(listingsByStatus),
		TotalApplications:    sum(appsByStatus),
		UsersByRole:          usersByRole,
		InternshipsByStatus:  listingsByStatus,
		ApplicationsByStatus: appsByStatus,
	}, nil
}
