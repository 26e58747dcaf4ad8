package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/pkg/apperrors"
)

func TestApplicationService_Apply(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	employer := f.register(t, "Acme", "hr@acme.io", models.RoleEmployer)
	student := f.register(t, "Ada", "ada@example.com", models.RoleStudent)
	listing := f.listing(t, employer.ID, "Backend Intern")

	app, err := f.applications.Apply(ctx, student.ID, &dto.ApplyRequest{InternshipID: listing.ID, CoverLetter: "  Hire me  "})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Equal(t, "Hire me", app.CoverLetter)
	assert.Equal(t, student.ID, app.StudentID)

	_, err = f.applications.Apply(ctx, student.ID, &dto.ApplyRequest{InternshipID: listing.ID})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	stored, err := f.repos.Internships.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ApplicationCount)

	mine, err := f.applications.ListMine(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Backend Intern", mine[0].Internship.Title)
}

func TestApplicationService_ApplyRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	employer := f.register(t, "Acme", "hr@acme.io", models.RoleEmployer)
	student := f.register(t, "Ada", "ada@example.com", models.RoleStudent)
	closed := f.listing(t, employer.ID, "Closed")
	_, err := f.internships.SetStatus(ctx, employer.ID, closed.ID, models.InternshipClosed)
	require.NoError(t, err)

	_, err = f.applications.Apply(ctx, student.ID, &dto.ApplyRequest{InternshipID: closed.ID})
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)

	_, err = f.applications.Apply(ctx, student.ID, &dto.ApplyRequest{InternshipID: 4242})
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)

	_, err = f.applications.Apply(ctx, student.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestApplicationService_ConcurrentApplyHasOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	employer := f.register(t, "Acme", "hr@acme.io", models.RoleEmployer)
	student := f.register(t, "Ada", "ada@example.com", models.RoleStudent)
	listing := f.listing(t, employer.ID, "Backend Intern")

	const attempts = 20
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for n := 0; n < attempts; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = f.applications.Apply(ctx, student.ID, &dto.ApplyRequest{InternshipID: listing.ID})
		}(n)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
	}
	assert.Equal(t, 1, succeeded)

	stored, err := f.repos.Internships.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ApplicationCount)
}

func TestApplicationService_EmployerReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "Acme", "hr@acme.io", models.RoleEmployer)
	other := f.register(t, "Globex", "hr@globex.io", models.RoleEmployer)
	student := f.register(t, "Ada", "ada@example.com", models.RoleStudent)
	listing := f.listing(t, owner.ID, "Backend Intern")
	foreign := f.listing(t, other.ID, "Globex Intern")

	app, err := f.applications.Apply(ctx, student.ID, &dto.ApplyRequest{InternshipID: listing.ID})
	require.NoError(t, err)
	_, err = f.applications.Apply(ctx, student.ID, &dto.ApplyRequest{InternshipID: foreign.ID})
	require.NoError(t, err)

	received, err := f.applications.ListReceived(ctx, owner.ID, nil)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "Ada", received[0].Student.Name)

	_, err = f.applications.ListReceived(ctx, owner.ID, &foreign.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	updated, err := f.applications.UpdateStatus(ctx, owner.ID, app.ID, models.ApplicationInterview)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationInterview, updated.Status)

	// any valid status may follow any other
	updated, err = f.applications.UpdateStatus(ctx, owner.ID, app.ID, models.ApplicationPending)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, updated.Status)

	_, err = f.applications.UpdateStatus(ctx, other.ID, app.ID, models.ApplicationAccepted)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	_, err = f.applications.UpdateStatus(ctx, owner.ID, app.ID, models.ApplicationStatus("withdrawn"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.applications.UpdateStatus(ctx, owner.ID, 777, models.ApplicationAccepted)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
