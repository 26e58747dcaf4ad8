package auth

import (
	"context"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/repositories"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/logger"
)

// RequireRole returns ErrWrongRole unless the user holds one of the roles.
func RequireRole(user *models.User, roles ...models.Role) error {
	if user == nil {
		return apperrors.ErrUserGone
	}
	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}
	return apperrors.ErrWrongRole
}

// AuthorizationService answers ownership questions about listings and
// applications.
type AuthorizationService struct {
	internships repositories.InternshipStore
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(internships repositories.InternshipStore) *AuthorizationService {
	return &AuthorizationService{internships: internships}
}

// ValidateInternshipOwnership checks that the employer owns the listing
func (s *AuthorizationService) ValidateInternshipOwnership(employerID int64, internship *models.Internship) error {
	if internship.EmployerID != employerID {
		logger.Debug().
			Int64("employerID", employerID).
			Int64("internshipID", internship.ID).
			Int64("ownerID", internship.EmployerID).
			Msg("Listing ownership check failed")
		return apperrors.ErrNotOwner
	}
	return nil
}

// OwnedInternship loads the listing and checks that the employer owns it
func (s *AuthorizationService) OwnedInternship(ctx context.Context, employerID, internshipID int64) (*models.Internship, error) {
	internship, err := s.internships.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if err := s.ValidateInternshipOwnership(employerID, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// ValidateApplicationOwnership checks that the application was submitted to a
// listing the employer owns. The owner is resolved through the listing at
// check time.
func (s *AuthorizationService) ValidateApplicationOwnership(ctx context.Context, employerID int64, application *models.Application) error {
	_, err := s.OwnedInternship(ctx, employerID, application.InternshipID)
	return err
}
