package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/pkg/apperrors"
)

func TestInternshipService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	employer := f.register(t, "Acme Corp", "hr@acme.io", models.RoleEmployer)

	got, err := f.internships.Create(ctx, employer.ID, &dto.CreateInternshipRequest{
		Title:        " Backend Intern ",
		Company:      "Acme",
		Description:  "Write Go",
		Requirements: []string{"Go", " ", " SQL "},
		Stipend:      1200,
	})
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, "Backend Intern", got.Title)
	assert.Equal(t, models.InternshipActive, got.Status)
	assert.Equal(t, []string{"Go", "SQL"}, got.Requirements)
	assert.Zero(t, got.ApplicationCount)
	assert.Equal(t, employer.ID, got.EmployerID)

	_, err = f.internships.Create(ctx, employer.ID, &dto.CreateInternshipRequest{Title: "  ", Company: "Acme", Description: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.internships.Create(ctx, employer.ID, &dto.CreateInternshipRequest{Title: "T", Company: "Acme", Description: "x", Stipend: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestInternshipService_OwnershipIsEnforced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "Owner", "owner@acme.io", models.RoleEmployer)
	intruder := f.register(t, "Intruder", "intruder@evil.io", models.RoleEmployer)
	listing := f.listing(t, owner.ID, "Backend Intern")

	title := "Hijacked"
	_, err := f.internships.Update(ctx, intruder.ID, listing.ID, &dto.UpdateInternshipRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	_, err = f.internships.SetStatus(ctx, intruder.ID, listing.ID, models.InternshipClosed)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	_, err = f.internships.GetOwn(ctx, intruder.ID, listing.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	stored, err := f.repos.Internships.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Intern", stored.Title)
	assert.Equal(t, models.InternshipActive, stored.Status)

	_, err = f.internships.Update(ctx, owner.ID, 9999, &dto.UpdateInternshipRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
}

func TestInternshipService_PartialUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "Owner", "owner@acme.io", models.RoleEmployer)
	listing := f.listing(t, owner.ID, "Backend Intern")

	stipend := 900.0
	reqs := []string{"Docker"}
	updated, err := f.internships.Update(ctx, owner.ID, listing.ID, &dto.UpdateInternshipRequest{
		Stipend:      &stipend,
		Requirements: &reqs,
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend Intern", updated.Title)
	assert.Equal(t, 900.0, updated.Stipend)
	assert.Equal(t, []string{"Docker"}, updated.Requirements)

	empty := ""
	_, err = f.internships.Update(ctx, owner.ID, listing.ID, &dto.UpdateInternshipRequest{Company: &empty})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.internships.SetStatus(ctx, owner.ID, listing.ID, models.InternshipStatus("paused"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestInternshipService_StudentVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "Owner", "owner@acme.io", models.RoleEmployer)
	open := f.listing(t, owner.ID, "Open")
	hidden := f.listing(t, owner.ID, "Hidden")
	closed := f.listing(t, owner.ID, "Closed")

	_, err := f.internships.SetStatus(ctx, owner.ID, hidden.ID, models.InternshipInactive)
	require.NoError(t, err)
	_, err = f.internships.SetStatus(ctx, owner.ID, closed.ID, models.InternshipClosed)
	require.NoError(t, err)

	browse, err := f.internships.BrowseActive(ctx)
	require.NoError(t, err)
	require.Len(t, browse, 1)
	assert.Equal(t, open.ID, browse[0].ID)
	require.NotNil(t, browse[0].Employer)
	assert.Equal(t, "Owner", browse[0].Employer.Name)

	_, err = f.internships.GetActive(ctx, hidden.ID)
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
	_, err = f.internships.GetActive(ctx, closed.ID)
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)

	own, err := f.internships.ListOwn(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, own, 3)

	got, err := f.internships.GetOwn(ctx, owner.ID, closed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InternshipClosed, got.Status)
}
