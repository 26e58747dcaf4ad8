package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/dberrors"
)

const applicationColumns = `id, student_id, internship_id, cover_letter, status, created_at, updated_at`

const applicationViewSelect = `
	SELECT a.id, a.student_id, a.internship_id, a.cover_letter, a.status, a.created_at, a.updated_at,
	       i.title, i.company, i.location, i.status,
	       s.name, s.email
	FROM applications a
	JOIN internships i ON i.id = a.internship_id
	JOIN users s ON s.id = a.student_id`

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	pgBase
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(base pgBase) *ApplicationRepository {
	return &ApplicationRepository{pgBase: base}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(&a.ID, &a.StudentID, &a.InternshipID, &a.CoverLetter, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanApplicationView(row pgx.Row) (*models.ApplicationView, error) {
	var v models.ApplicationView
	err := row.Scan(
		&v.ID, &v.StudentID, &v.InternshipID, &v.CoverLetter, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		&v.Internship.Title, &v.Internship.Company, &v.Internship.Location, &v.Internship.Status,
		&v.Student.Name, &v.Student.Email)
	if err != nil {
		return nil, err
	}
	v.Internship.ID = v.InternshipID
	v.Student.ID = v.StudentID
	return &v, nil
}

func collectApplicationViews(rows pgx.Rows) ([]*models.ApplicationView, error) {
	defer rows.Close()

	views := make([]*models.ApplicationView, 0)
	for rows.Next() {
		v, err := scanApplicationView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// Create inserts the application and bumps the listing's application count
// in one transaction. The unique (student_id, internship_id) constraint
// decides concurrent duplicates.
func (r *ApplicationRepository) Create(ctx context.Context, a *models.Application) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO applications (student_id, internship_id, cover_letter, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at`,
			a.StudentID, a.InternshipID, a.CoverLetter, a.Status,
		).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			switch {
			case dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintApplicationPerPair):
				return apperrors.ErrDuplicateApplication
			case dberrors.IsForeignKeyError(err, dberrors.ConstraintApplicationListing):
				return apperrors.ErrInternshipNotFound
			}
			return storeErr("error creating application", err)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE internships SET application_count = application_count + 1 WHERE id = $1`,
			a.InternshipID); err != nil {
			return storeErr("error updating application count", err)
		}
		return nil
	})
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	a, err := scanApplication(r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, storeErr("error retrieving application", err)
	}
	return a, nil
}

// Exists checks whether the student already applied to the internship
func (r *ApplicationRepository) Exists(ctx context.Context, studentID, internshipID int64) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applications WHERE student_id = $1 AND internship_id = $2)`,
		studentID, internshipID).Scan(&exists)
	if err != nil {
		return false, storeErr("error checking application", err)
	}
	return exists, nil
}

// UpdateStatus sets the status and returns the updated row
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	a, err := scanApplication(r.pool.QueryRow(ctx, `
		UPDATE applications SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+applicationColumns, status, id))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, storeErr("error updating application status", err)
	}
	return a, nil
}

// ListByStudent returns the student's applications, newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.ApplicationView, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, applicationViewSelect+`
		WHERE a.student_id = $1
		ORDER BY a.created_at DESC, a.id DESC`, studentID)
	if err != nil {
		return nil, storeErr("error listing applications", err)
	}
	views, err := collectApplicationViews(rows)
	if err != nil {
		return nil, storeErr("error scanning applications", err)
	}
	return views, nil
}

// ListByEmployer returns applications received on the employer's listings,
// optionally narrowed to one listing.
func (r *ApplicationRepository) ListByEmployer(ctx context.Context, employerID int64, internshipID *int64) ([]*models.ApplicationView, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, applicationViewSelect+`
		WHERE i.employer_id = $1 AND ($2::bigint IS NULL OR a.internship_id = $2)
		ORDER BY a.created_at DESC, a.id DESC`, employerID, internshipID)
	if err != nil {
		return nil, storeErr("error listing received applications", err)
	}
	views, err := collectApplicationViews(rows)
	if err != nil {
		return nil, storeErr("error scanning applications", err)
	}
	return views, nil
}
