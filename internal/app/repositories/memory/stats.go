package memory

import (
	"context"
	"time"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/repositories"
)

// StatsStore computes dashboard aggregates over the in-memory data
type StatsStore struct{ s *state }

func (r *StatsStore) CountUsersByRole(ctx context.Context) (map[models.Role]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[models.Role]int64, len(models.Roles))
	for _, role := range models.Roles {
		counts[role] = 0
	}
	for _, u := range r.s.users {
		counts[u.Role]++
	}
	return counts, nil
}

func (r *StatsStore) CountInternshipsByStatus(ctx context.Context, employerID *int64) (map[models.InternshipStatus]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[models.InternshipStatus]int64, len(models.InternshipStatuses))
	for _, st := range models.InternshipStatuses {
		counts[st] = 0
	}
	for _, i := range r.s.internships {
		if employerID != nil && i.EmployerID != *employerID {
			continue
		}
		counts[i.Status]++
	}
	return counts, nil
}

func (r *StatsStore) CountApplicationsByStatus(ctx context.Context, scope repositories.ApplicationScope) (map[models.ApplicationStatus]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[models.ApplicationStatus]int64, len(models.ApplicationStatuses))
	for _, st := range models.ApplicationStatuses {
		counts[st] = 0
	}
	for _, a := range r.s.apps {
		if inScope(r.s, a, scope) {
			counts[a.Status]++
		}
	}
	return counts, nil
}

func (r *StatsStore) RecentUsers(ctx context.Context, limit int) ([]*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		c := *u
		users = append(users, &c)
	}
	newestFirst(users,
		func(u *models.User) time.Time { return u.CreatedAt },
		func(u *models.User) int64 { return u.ID })
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *StatsStore) RecentApplications(ctx context.Context, scope repositories.ApplicationScope, limit int) ([]*models.ApplicationView, error) {
	return r.s.views(scope, nil, limit), nil
}
