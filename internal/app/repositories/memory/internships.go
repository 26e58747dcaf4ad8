package memory

import (
	"context"
	"time"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/pkg/apperrors"
)

// InternshipStore keeps listings in memory
type InternshipStore struct{ s *state }

func (r *InternshipStore) Create(ctx context.Context, i *models.Internship) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	owner, ok := r.s.users[i.EmployerID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	r.s.nextInternshipID++
	now := r.s.now()
	i.ID = r.s.nextInternshipID
	i.ApplicationCount = 0
	i.CreatedAt = now
	i.UpdatedAt = now
	if i.Requirements == nil {
		i.Requirements = []string{}
	}
	i.Employer = &models.UserSummary{ID: owner.ID, Name: owner.Name}

	c := *i
	c.Requirements = cloneStrings(i.Requirements)
	c.Employer = nil
	r.s.internships[c.ID] = &c
	return nil
}

func (r *InternshipStore) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.internships[id]
	if !ok {
		return nil, apperrors.ErrInternshipNotFound
	}
	return r.s.internshipCopy(i), nil
}

func (r *InternshipStore) Update(ctx context.Context, i *models.Internship) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.internships[i.ID]
	if !ok {
		return apperrors.ErrInternshipNotFound
	}
	stored.Title = i.Title
	stored.Company = i.Company
	stored.Description = i.Description
	stored.Requirements = cloneStrings(i.Requirements)
	stored.Location = i.Location
	stored.Duration = i.Duration
	stored.Stipend = i.Stipend
	stored.Status = i.Status
	stored.UpdatedAt = r.s.now()
	i.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *InternshipStore) ListActive(ctx context.Context) ([]*models.Internship, error) {
	return r.list(func(i *models.Internship) bool { return i.IsActive() }), nil
}

func (r *InternshipStore) ListByEmployer(ctx context.Context, employerID int64) ([]*models.Internship, error) {
	return r.list(func(i *models.Internship) bool { return i.EmployerID == employerID }), nil
}

func (r *InternshipStore) list(keep func(*models.Internship) bool) []*models.Internship {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Internship, 0)
	for _, i := range r.s.internships {
		if keep(i) {
			out = append(out, r.s.internshipCopy(i))
		}
	}
	newestFirst(out,
		func(i *models.Internship) time.Time { return i.CreatedAt },
		func(i *models.Internship) int64 { return i.ID })
	return out
}
