package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	appAuth "github.com/interconnect/backend/internal/app/auth"
	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/app/repositories"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/metrics"
)

// ApplicationService handles applying and the employer's review of applications
type ApplicationService struct {
	applications repositories.ApplicationStore
	internships  repositories.InternshipStore
	authz        *appAuth.AuthorizationService
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applications repositories.ApplicationStore,
	internships repositories.InternshipStore,
	authz *appAuth.AuthorizationService,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		internships:  internships,
		authz:        authz,
		metrics:      m,
		logger:       logger,
	}
}

// Apply creates a pending application of the student to an active listing.
// The store's unique (student, internship) constraint is authoritative; the
// Exists lookup only short-circuits the common case.
func (s *ApplicationService) Apply(ctx context.Context, studentID int64, req *dto.ApplyRequest) (*models.Application, error) {
	if req.InternshipID <= 0 {
		return nil, apperrors.NewValidationError("Validation failed", map[string]interface{}{
			"internshipId": "internshipId is required",
		})
	}

	internship, err := s.internships.GetByID(ctx, req.InternshipID)
	if err != nil {
		return nil, err
	}
	if !internship.IsActive() {
		return nil, apperrors.ErrInternshipNotFound
	}

	exists, err := s.applications.Exists(ctx, studentID, internship.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		s.metrics.DuplicateApplication()
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.Application{
		StudentID:    studentID,
		InternshipID: internship.ID,
		CoverLetter:  strings.TrimSpace(req.CoverLetter),
		Status:       models.ApplicationPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateApplication) {
			s.metrics.DuplicateApplication()
		}
		return nil, err
	}

	s.metrics.ApplicationSubmitted()
	s.logger.Info().
		Int64("applicationID", application.ID).
		Int64("studentID", studentID).
		Int64("internshipID", internship.ID).
		Msg("Application submitted")
	return application, nil
}

// ListMine returns the student's own applications
func (s *ApplicationService) ListMine(ctx context.Context, studentID int64) ([]*models.ApplicationView, error) {
	return s.applications.ListByStudent(ctx, studentID)
}

// ListReceived returns applications on the employer's listings. Filtering by
// a listing the employer does not own is forbidden.
func (s *ApplicationService) ListReceived(ctx context.Context, employerID int64, internshipID *int64) ([]*models.ApplicationView, error) {
	if internshipID != nil {
		if _, err := s.authz.OwnedInternship(ctx, employerID, *internshipID); err != nil {
			return nil, err
		}
	}
	return s.applications.ListByEmployer(ctx, employerID, internshipID)
}

// UpdateStatus moves an application to any valid status, provided the
// employer owns the listing it was submitted to.
func (s *ApplicationService) UpdateStatus(ctx context.Context, employerID, applicationID int64, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("Validation failed", map[string]interface{}{
			"status": "status must be one of: pending, interview, accepted, rejected",
		})
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.ValidateApplicationOwnership(ctx, employerID, application); err != nil {
		return nil, err
	}

	updated, err := s.applications.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, err
	}

	s.metrics.StatusChanged(string(status))
	s.logger.Info().
		Int64("applicationID", applicationID).
		Str("from", string(application.Status)).
		Str("to", string(status)).
		Msg("Application status updated")
	return updated, nil
}
