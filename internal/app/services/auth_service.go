package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/app/repositories"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/auth"
	"github.com/interconnect/backend/internal/pkg/metrics"
	"github.com/interconnect/backend/internal/pkg/validation"
)

// AuthService handles registration, login and identity lookups
type AuthService struct {
	users      repositories.UserStore
	jwtService *auth.JWTService
	metrics    *metrics.Metrics
	logger     zerolog.Logger

	allowAdminRegistration bool
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserStore, jwtService *auth.JWTService, m *metrics.Metrics, logger zerolog.Logger, allowAdminRegistration bool) *AuthService {
	return &AuthService{
		users:                  users,
		jwtService:             jwtService,
		metrics:                m,
		logger:                 logger,
		allowAdminRegistration: allowAdminRegistration,
	}
}

// Register creates an account and signs a token for it. The admin role is
// accepted only while admin registration is enabled.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := validation.NormalizeEmail(req.Email)

	if problems := validation.ValidateRegistration(name, email, req.Password); len(problems) > 0 {
		return nil, apperrors.NewValidationError("Validation failed", problems)
	}
	if !req.Role.Valid() {
		return nil, apperrors.NewValidationError("Validation failed", map[string]interface{}{
			"role": "role must be one of: student, employer, admin",
		})
	}
	if req.Role == models.RoleAdmin && !s.allowAdminRegistration {
		s.logger.Warn().Str("email", email).Msg("Rejected admin self-registration")
		return nil, apperrors.NewValidationError("Validation failed", map[string]interface{}{
			"role": "admin accounts cannot be self-registered",
		})
	}

	// The unique index decides races; this check only avoids hashing for
	// an obviously taken email.
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationError("Validation failed", map[string]interface{}{
				"password": "password must not exceed 72 bytes",
			})
		}
		return nil, apperrors.NewStoreError("error hashing password", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.metrics.Registered(string(user.Role))
	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.issue(user, "User created successfully")
}

// Login checks the credentials and signs a new token. Unknown email and
// wrong password are reported identically.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := validation.NormalizeEmail(req.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.metrics.LoginAttempt(false)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.metrics.LoginAttempt(false)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}
	s.metrics.LoginAttempt(true)

	return s.issue(user, "Login successful")
}

// CurrentUser loads the identity referenced by a validated token. A deleted
// user yields ErrUserGone.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrUserGone
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issue(user *models.User, message string) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, apperrors.NewStoreError("error signing token", err)
	}
	return &dto.AuthResponse{
		Message:   message,
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.NewUserResponse(user),
	}, nil
}
