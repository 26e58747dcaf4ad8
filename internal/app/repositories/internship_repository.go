package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/dberrors"
)

const internshipSelect = `
	SELECT i.id, i.employer_id, i.title, i.company, i.description, i.requirements,
	       i.location, i.duration, i.stipend, i.status, i.application_count,
	       i.created_at, i.updated_at, u.name
	FROM internships i
	JOIN users u ON u.id = i.employer_id`

// InternshipRepository handles database operations for internships
type InternshipRepository struct {
	pgBase
}

// NewInternshipRepository creates a new internship repository
func NewInternshipRepository(base pgBase) *InternshipRepository {
	return &InternshipRepository{pgBase: base}
}

func scanInternship(row pgx.Row) (*models.Internship, error) {
	var i models.Internship
	var employerName string
	err := row.Scan(
		&i.ID, &i.EmployerID, &i.Title, &i.Company, &i.Description, &i.Requirements,
		&i.Location, &i.Duration, &i.Stipend, &i.Status, &i.ApplicationCount,
		&i.CreatedAt, &i.UpdatedAt, &employerName)
	if err != nil {
		return nil, err
	}
	if i.Requirements == nil {
		i.Requirements = []string{}
	}
	i.Employer = &models.UserSummary{ID: i.EmployerID, Name: employerName}
	return &i, nil
}

func collectInternships(rows pgx.Rows) ([]*models.Internship, error) {
	defer rows.Close()

	internships := make([]*models.Internship, 0)
	for rows.Next() {
		i, err := scanInternship(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, i)
	}
	return internships, rows.Err()
}

// Create creates a new internship
func (r *InternshipRepository) Create(ctx context.Context, i *models.Internship) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	requirements := i.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO internships (employer_id, title, company, description, requirements, location, duration, stipend, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, application_count, created_at, updated_at`,
		i.EmployerID, i.Title, i.Company, i.Description, requirements, i.Location, i.Duration, i.Stipend, i.Status,
	).Scan(&i.ID, &i.ApplicationCount, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyError(err, dberrors.ConstraintInternshipEmployer) {
			return apperrors.ErrUserNotFound
		}
		return storeErr("error creating internship", err)
	}
	i.Requirements = requirements
	return nil
}

// GetByID retrieves an internship by ID regardless of status
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	i, err := scanInternship(r.pool.QueryRow(ctx, internshipSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, storeErr("error retrieving internship", err)
	}
	return i, nil
}

// Update writes the editable fields and status of an internship
func (r *InternshipRepository) Update(ctx context.Context, i *models.Internship) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		UPDATE internships
		SET title = $1, company = $2, description = $3, requirements = $4, location = $5,
		    duration = $6, stipend = $7, status = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`,
		i.Title, i.Company, i.Description, i.Requirements, i.Location, i.Duration, i.Stipend, i.Status, i.ID,
	).Scan(&i.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return apperrors.ErrInternshipNotFound
		}
		return storeErr("error updating internship", err)
	}
	return nil
}

// ListActive returns every active internship, newest first
func (r *InternshipRepository) ListActive(ctx context.Context) ([]*models.Internship, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, internshipSelect+` WHERE i.status = $1 ORDER BY i.created_at DESC, i.id DESC`, models.InternshipActive)
	if err != nil {
		return nil, storeErr("error listing internships", err)
	}
	internships, err := collectInternships(rows)
	if err != nil {
		return nil, storeErr("error scanning internships", err)
	}
	return internships, nil
}

// ListByEmployer returns all internships owned by the employer in any status
func (r *InternshipRepository) ListByEmployer(ctx context.Context, employerID int64) ([]*models.Internship, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, internshipSelect+` WHERE i.employer_id = $1 ORDER BY i.created_at DESC, i.id DESC`, employerID)
	if err != nil {
		return nil, storeErr("error listing employer internships", err)
	}
	internships, err := collectInternships(rows)
	if err != nil {
		return nil, storeErr("error scanning internships", err)
	}
	return internships, nil
}
