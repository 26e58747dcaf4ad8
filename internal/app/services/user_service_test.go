package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/auth"
)

func TestUserService_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "Ada", "ada@example.com", models.RoleStudent)
	f.register(t, "Bob", "bob@example.com", models.RoleStudent)
	f.register(t, "Acme", "hr@acme.io", models.RoleEmployer)

	all, err := f.users.List(ctx, nil, 1, 10)
	require.NoError(t, err)
	assert.Len(t, all.Users, 3)
	assert.Equal(t, int64(3), all.Pagination.TotalItems)

	role := models.RoleStudent
	page, err := f.users.List(ctx, &role, 2, 1)
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.Equal(t, int64(2), page.Pagination.TotalItems)
	assert.Equal(t, models.RoleStudent, page.Users[0].Role)
}

func TestUserService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hashed, err := auth.HashPassword("admin-pass")
	require.NoError(t, err)
	admin := &models.User{Name: "Admin", Email: "admin@example.com", Password: hashed, Role: models.RoleAdmin}
	require.NoError(t, f.repos.Users.Create(ctx, admin))

	employer := f.register(t, "Acme", "hr@acme.io", models.RoleEmployer)
	student := f.register(t, "Ada", "ada@example.com", models.RoleStudent)
	listing := f.listing(t, employer.ID, "Backend Intern")
	app, err := f.applications.Apply(ctx, student.ID, &dto.ApplyRequest{InternshipID: listing.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, f.users.Delete(ctx, admin.ID, admin.ID), apperrors.ErrAdminUndeletable)
	assert.ErrorIs(t, f.users.Delete(ctx, admin.ID, 999), apperrors.ErrUserNotFound)

	require.NoError(t, f.users.Delete(ctx, admin.ID, employer.ID))

	_, err = f.repos.Internships.GetByID(ctx, listing.ID)
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
	_, err = f.repos.Applications.GetByID(ctx, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)

	_, err = f.auth.CurrentUser(ctx, employer.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserGone)
}

func TestUserService_Profile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.register(t, "Ada", "ada@example.com", models.RoleStudent)

	empty, err := f.users.GetProfile(ctx, student)
	require.NoError(t, err)
	assert.Equal(t, "Ada", empty.Name)
	assert.Equal(t, []string{}, empty.Skills)
	assert.Nil(t, empty.UpdatedAt)

	name := "Ada King"
	bio := "  Mathematician  "
	skills := []string{"go", "", "sql"}
	updated, err := f.users.UpdateProfile(ctx, student, &dto.UpdateProfileRequest{Name: &name, Bio: &bio, Skills: &skills})
	require.NoError(t, err)
	assert.Equal(t, "Ada King", updated.Name)
	assert.Equal(t, "Mathematician", updated.Bio)
	assert.Equal(t, []string{"go", "sql"}, updated.Skills)
	assert.NotNil(t, updated.UpdatedAt)

	phone := "+1 555 0100"
	updated, err = f.users.UpdateProfile(ctx, student, &dto.UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Mathematician", updated.Bio, "untouched fields are kept")
	assert.Equal(t, phone, updated.Phone)

	stored, err := f.repos.Users.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada King", stored.Name)

	short := "A"
	_, err = f.users.UpdateProfile(ctx, student, &dto.UpdateProfileRequest{Name: &short})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
