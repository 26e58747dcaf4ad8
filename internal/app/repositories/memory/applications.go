package memory

import (
	"context"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/repositories"
	"github.com/interconnect/backend/internal/pkg/apperrors"
)

// ApplicationStore keeps applications in memory
type ApplicationStore struct{ s *state }

// Create checks the (student, internship) pair and inserts under one lock,
// so concurrent duplicates see exactly one winner.
func (r *ApplicationStore) Create(ctx context.Context, a *models.Application) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStoreError("error creating application", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	listing, ok := r.s.internships[a.InternshipID]
	if !ok {
		return apperrors.ErrInternshipNotFound
	}
	key := pair{a.StudentID, a.InternshipID}
	if _, taken := r.s.pairs[key]; taken {
		return apperrors.ErrDuplicateApplication
	}

	r.s.nextAppID++
	now := r.s.now()
	a.ID = r.s.nextAppID
	a.CreatedAt = now
	a.UpdatedAt = now

	c := *a
	r.s.apps[c.ID] = &c
	r.s.pairs[key] = c.ID
	listing.ApplicationCount++
	return nil
}

func (r *ApplicationStore) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	c := *a
	return &c, nil
}

func (r *ApplicationStore) Exists(ctx context.Context, studentID, internshipID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.pairs[pair{studentID, internshipID}]
	return ok, nil
}

func (r *ApplicationStore) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	a.Status = status
	a.UpdatedAt = r.s.now()
	c := *a
	return &c, nil
}

func (r *ApplicationStore) ListByStudent(ctx context.Context, studentID int64) ([]*models.ApplicationView, error) {
	return r.s.views(repositories.ApplicationScope{StudentID: &studentID}, nil, 0), nil
}

func (r *ApplicationStore) ListByEmployer(ctx context.Context, employerID int64, internshipID *int64) ([]*models.ApplicationView, error) {
	return r.s.views(repositories.ApplicationScope{EmployerID: &employerID}, internshipID, 0), nil
}

// views returns joined applications in scope, newest first. A positive limit
// truncates the result.
func (s *state) views(scope repositories.ApplicationScope, internshipID *int64, limit int) []*models.ApplicationView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.ApplicationView, 0)
	for _, a := range s.apps {
		if !inScope(s, a, scope) {
			continue
		}
		if internshipID != nil && a.InternshipID != *internshipID {
			continue
		}
		out = append(out, s.view(a))
	}
	sortViews(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
