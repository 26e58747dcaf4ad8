package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/repositories/memory"
	"github.com/interconnect/backend/internal/pkg/apperrors"
)

func TestRequireRole(t *testing.T) {
	student := &models.User{ID: 1, Role: models.RoleStudent}

	assert.NoError(t, RequireRole(student, models.RoleStudent))
	assert.NoError(t, RequireRole(student, models.RoleEmployer, models.RoleStudent))
	assert.ErrorIs(t, RequireRole(student, models.RoleAdmin), apperrors.ErrWrongRole)
	assert.ErrorIs(t, RequireRole(student), apperrors.ErrWrongRole)
	assert.ErrorIs(t, RequireRole(nil, models.RoleStudent), apperrors.ErrUserGone)
}

func TestAuthorizationService_Ownership(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	owner := &models.User{Name: "Owner", Email: "owner@acme.io", Role: models.RoleEmployer}
	other := &models.User{Name: "Other", Email: "other@acme.io", Role: models.RoleEmployer}
	require.NoError(t, repos.Users.Create(ctx, owner))
	require.NoError(t, repos.Users.Create(ctx, other))

	listing := &models.Internship{EmployerID: owner.ID, Title: "T", Company: "C", Description: "D", Status: models.InternshipInactive}
	require.NoError(t, repos.Internships.Create(ctx, listing))

	authz := NewAuthorizationService(repos.Internships)

	got, err := authz.OwnedInternship(ctx, owner.ID, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, got.ID)

	_, err = authz.OwnedInternship(ctx, other.ID, listing.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	_, err = authz.OwnedInternship(ctx, owner.ID, listing.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)

	app := &models.Application{InternshipID: listing.ID}
	assert.NoError(t, authz.ValidateApplicationOwnership(ctx, owner.ID, app))
	assert.ErrorIs(t, authz.ValidateApplicationOwnership(ctx, other.ID, app), apperrors.ErrPermissionDenied)
}
