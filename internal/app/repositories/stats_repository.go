package repositories

import (
	"context"

	"github.com/interconnect/backend/internal/app/models"
)

// StatsRepository runs the aggregate queries behind the dashboards
type StatsRepository struct {
	pgBase
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(base pgBase) *StatsRepository {
	return &StatsRepository{pgBase: base}
}

// CountUsersByRole returns the number of users per role. Roles without users
// are present with zero.
func (r *StatsRepository) CountUsersByRole(ctx context.Context) (map[models.Role]int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, storeErr("error counting users", err)
	}
	defer rows.Close()

	counts := make(map[models.Role]int64, len(models.Roles))
	for _, role := range models.Roles {
		counts[role] = 0
	}
	for rows.Next() {
		var role models.Role
		var n int64
		if err := rows.Scan(&role, &n); err != nil {
			return nil, storeErr("error scanning user counts", err)
		}
		counts[role] = n
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("error counting users", err)
	}
	return counts, nil
}

// CountInternshipsByStatus counts listings per status, globally or for one
// employer.
func (r *StatsRepository) CountInternshipsByStatus(ctx context.Context, employerID *int64) (map[models.InternshipStatus]int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*)
		FROM internships
		WHERE ($1::bigint IS NULL OR employer_id = $1)
		GROUP BY status`, employerID)
	if err != nil {
		return nil, storeErr("error counting internships", err)
	}
	defer rows.Close()

	counts := make(map[models.InternshipStatus]int64, len(models.InternshipStatuses))
	for _, s := range models.InternshipStatuses {
		counts[s] = 0
	}
	for rows.Next() {
		var s models.InternshipStatus
		var n int64
		if err := rows.Scan(&s, &n); err != nil {
			return nil, storeErr("error scanning internship counts", err)
		}
		counts[s] = n
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("error counting internships", err)
	}
	return counts, nil
}

// CountApplicationsByStatus counts applications per status within the scope.
func (r *StatsRepository) CountApplicationsByStatus(ctx context.Context, scope ApplicationScope) (map[models.ApplicationStatus]int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT a.status, COUNT(*)
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		WHERE ($1::bigint IS NULL OR a.student_id = $1)
		  AND ($2::bigint IS NULL OR i.employer_id = $2)
		GROUP BY a.status`, scope.StudentID, scope.EmployerID)
	if err != nil {
		return nil, storeErr("error counting applications", err)
	}
	defer rows.Close()

	counts := make(map[models.ApplicationStatus]int64, len(models.ApplicationStatuses))
	for _, s := range models.ApplicationStatuses {
		counts[s] = 0
	}
	for rows.Next() {
		var s models.ApplicationStatus
		var n int64
		if err := rows.Scan(&s, &n); err != nil {
			return nil, storeErr("error scanning application counts", err)
		}
		counts[s] = n
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("error counting applications", err)
	}
	return counts, nil
}

// RecentUsers returns the newest registrations
func (r *StatsRepository) RecentUsers(ctx context.Context, limit int) ([]*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, storeErr("error listing recent users", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, storeErr("error scanning user", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("error listing recent users", err)
	}
	return users, nil
}

// RecentApplications returns the newest applications within the scope
func (r *StatsRepository) RecentApplications(ctx context.Context, scope ApplicationScope, limit int) ([]*models.ApplicationView, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, applicationViewSelect+`
		WHERE ($1::bigint IS NULL OR a.student_id = $1)
		  AND ($2::bigint IS NULL OR i.employer_id = $2)
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $3`, scope.StudentID, scope.EmployerID, limit)
	if err != nil {
		return nil, storeErr("error listing recent applications", err)
	}
	views, err := collectApplicationViews(rows)
	if err != nil {
		return nil, storeErr("error scanning applications", err)
	}
	return views, nil
}
