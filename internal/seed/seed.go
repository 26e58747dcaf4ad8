package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/interconnect/backend/internal/app/models"
	appRepos "github.com/interconnect/backend/internal/app/repositories"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/auth"
	"github.com/interconnect/backend/internal/pkg/validation"
)

// AdminAccount describes the administrator created at startup
type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// CreateDefaultAdmin creates the administrator account if no user with its
// email exists yet. Admins cannot self-register, so this is the only way one
// comes into being. An empty email or password skips seeding.
func CreateDefaultAdmin(ctx context.Context, users appRepos.UserStore, account AdminAccount, lgr zerolog.Logger) error {
	email := validation.NormalizeEmail(account.Email)
	if email == "" || account.Password == "" {
		lgr.Warn().Msg("Admin email or password not configured, skipping admin creation")
		return nil
	}

	exists, err := users.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking if admin user exists: %w", err)
	}
	if exists {
		lgr.Info().Str("email", email).Msg("Admin user already exists, skipping creation")
		return nil
	}

	hashed, err := auth.HashPassword(account.Password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	name := account.Name
	if name == "" {
		name = "Administrator"
	}
	admin := &appModels.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		// another instance seeded concurrently
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating admin user: %w", err)
	}

	lgr.Info().Int64("adminID", admin.ID).Str("email", email).Msg("Default admin user created successfully")
	return nil
}
