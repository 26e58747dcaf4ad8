package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	appAuth "github.com/interconnect/backend/internal/app/auth"
	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/app/repositories"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/metrics"
)

// InternshipService manages listings
type InternshipService struct {
	internships repositories.InternshipStore
	authz       *appAuth.AuthorizationService
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(internships repositories.InternshipStore, authz *appAuth.AuthorizationService, m *metrics.Metrics, logger zerolog.Logger) *InternshipService {
	return &InternshipService{
		internships: internships,
		authz:       authz,
		metrics:     m,
		logger:      logger,
	}
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// Create stores a new active listing owned by the employer
func (s *InternshipService) Create(ctx context.Context, employerID int64, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	internship := &models.Internship{
		EmployerID:   employerID,
		Title:        strings.TrimSpace(req.Title),
		Company:      strings.TrimSpace(req.Company),
		Description:  strings.TrimSpace(req.Description),
		Requirements: cleanList(req.Requirements),
		Location:     strings.TrimSpace(req.Location),
		Duration:     strings.TrimSpace(req.Duration),
		Stipend:      req.Stipend,
		Status:       models.InternshipActive,
	}

	problems := map[string]interface{}{}
	if internship.Title == "" {
		problems["title"] = "title is required"
	}
	if internship.Company == "" {
		problems["company"] = "company is required"
	}
	if internship.Description == "" {
		problems["description"] = "description is required"
	}
	if internship.Stipend < 0 {
		problems["stipend"] = "stipend must not be negative"
	}
	if len(problems) > 0 {
		return nil, apperrors.NewValidationError("Validation failed", problems)
	}

	if err := s.internships.Create(ctx, internship); err != nil {
		return nil, err
	}

	s.metrics.InternshipCreated()
	s.logger.Info().Int64("internshipID", internship.ID).Int64("employerID", employerID).Msg("Internship created")
	return internship, nil
}

// Update applies a partial edit to a listing the employer owns
func (s *InternshipService) Update(ctx context.Context, employerID, internshipID int64, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	internship, err := s.authz.OwnedInternship(ctx, employerID, internshipID)
	if err != nil {
		return nil, err
	}

	problems := map[string]interface{}{}
	setText := func(field string, dst *string, src *string) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		if v == "" && (field == "title" || field == "company" || field == "description") {
			problems[field] = field + " must not be empty"
			return
		}
		*dst = v
	}
	setText("title", &internship.Title, req.Title)
	setText("company", &internship.Company, req.Company)
	setText("description", &internship.Description, req.Description)
	setText("location", &internship.Location, req.Location)
	setText("duration", &internship.Duration, req.Duration)

	if req.Requirements != nil {
		internship.Requirements = cleanList(*req.Requirements)
	}
	if req.Stipend != nil {
		if *req.Stipend < 0 {
			problems["stipend"] = "stipend must not be negative"
		} else {
			internship.Stipend = *req.Stipend
		}
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			problems["status"] = "status must be one of: active, inactive, closed"
		} else {
			internship.Status = *req.Status
		}
	}
	if len(problems) > 0 {
		return nil, apperrors.NewValidationError("Validation failed", problems)
	}

	if err := s.internships.Update(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// SetStatus changes the lifecycle status of a listing the employer owns
func (s *InternshipService) SetStatus(ctx context.Context, employerID, internshipID int64, status models.InternshipStatus) (*models.Internship, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("Validation failed", map[string]interface{}{
			"status": "status must be one of: active, inactive, closed",
		})
	}
	return s.Update(ctx, employerID, internshipID, &dto.UpdateInternshipRequest{Status: &status})
}

// GetOwn returns a listing the employer owns, in any status
func (s *InternshipService) GetOwn(ctx context.Context, employerID, internshipID int64) (*models.Internship, error) {
	return s.authz.OwnedInternship(ctx, employerID, internshipID)
}

// ListOwn returns every listing of the employer, in any status
func (s *InternshipService) ListOwn(ctx context.Context, employerID int64) ([]*models.Internship, error) {
	return s.internships.ListByEmployer(ctx, employerID)
}

// BrowseActive returns the listings students may see
func (s *InternshipService) BrowseActive(ctx context.Context) ([]*models.Internship, error) {
	return s.internships.ListActive(ctx)
}

// GetActive returns one listing if students may see it. Non-active listings
// are reported as missing.
func (s *InternshipService) GetActive(ctx context.Context, internshipID int64) (*models.Internship, error) {
	internship, err := s.internships.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if !internship.IsActive() {
		return nil, apperrors.ErrInternshipNotFound
	}
	return internship, nil
}
