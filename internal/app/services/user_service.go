package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/app/repositories"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/helpers"
)

// UserService covers admin user management and the student profile
type UserService struct {
	users    repositories.UserStore
	profiles repositories.ProfileStore
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserStore, profiles repositories.ProfileStore, logger zerolog.Logger) *UserService {
	return &UserService{users: users, profiles: profiles, logger: logger}
}

// List returns one page of users, optionally filtered by role
func (s *UserService) List(ctx context.Context, role *models.Role, page, size int) (*dto.UserListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, total, err := s.users.List(ctx, repositories.UserFilter{Role: role, Offset: offset, Limit: limit})
	if err != nil {
		return nil, err
	}

	return &dto.UserListResponse{
		Users:      dto.NewUserResponses(users),
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Delete removes a non-admin user along with everything they own
func (s *UserService) Delete(ctx context.Context, actorID, userID int64) error {
	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if target.Role == models.RoleAdmin {
		return apperrors.ErrAdminUndeletable
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("actorID", actorID).Int64("userID", userID).Str("role", string(target.Role)).Msg("User deleted")
	return nil
}

// GetProfile returns the student's account merged with the profile fields
func (s *UserService) GetProfile(ctx context.Context, user *models.User) (*dto.ProfileResponse, error) {
	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProfileResponse(user, profile)
	return &resp, nil
}

// UpdateProfile applies a partial edit. Name lives on the user record, the
// rest on the profile.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len([]rune(name)) < 2 {
			return nil, apperrors.NewValidationError("Validation failed", map[string]interface{}{
				"name": "name must be between 2 and 100 characters",
			})
		}
		if err := s.users.UpdateName(ctx, user.ID, name); err != nil {
			return nil, err
		}
		user.Name = name
	}

	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	assign(&profile.Phone, req.Phone)
	assign(&profile.Bio, req.Bio)
	assign(&profile.Education, req.Education)
	assign(&profile.Experience, req.Experience)
	assign(&profile.Portfolio, req.Portfolio)
	assign(&profile.LinkedIn, req.LinkedIn)
	assign(&profile.GitHub, req.GitHub)
	if req.Skills != nil {
		profile.Skills = cleanList(*req.Skills)
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	resp := dto.NewProfileResponse(user, profile)
	return &resp, nil
}
