package repositories

import (
	"context"
	"time"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/db"
)

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Role   *models.Role
	Offset uint64
	Limit  int
}

// ApplicationScope restricts application queries to one student's or one
// employer's data. An empty scope means global.
type ApplicationScope struct {
	StudentID  *int64
	EmployerID *int64
}

// UserStore persists identities.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter UserFilter) ([]*models.User, int64, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateLastLogin(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// ProfileStore persists student profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	Upsert(ctx context.Context, profile *models.StudentProfile) error
}

// InternshipStore persists listings.
type InternshipStore interface {
	Create(ctx context.Context, internship *models.Internship) error
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	Update(ctx context.Context, internship *models.Internship) error
	ListActive(ctx context.Context) ([]*models.Internship, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]*models.Internship, error)
}

// ApplicationStore persists applications. Create must reject a second
// application for the same (student, internship) pair atomically.
type ApplicationStore interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	Exists(ctx context.Context, studentID, internshipID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.ApplicationView, error)
	ListByEmployer(ctx context.Context, employerID int64, internshipID *int64) ([]*models.ApplicationView, error)
}

// StatsStore answers the read-only aggregate queries behind the dashboards.
type StatsStore interface {
	CountUsersByRole(ctx context.Context) (map[models.Role]int64, error)
	CountInternshipsByStatus(ctx context.Context, employerID *int64) (map[models.InternshipStatus]int64, error)
	CountApplicationsByStatus(ctx context.Context, scope ApplicationScope) (map[models.ApplicationStatus]int64, error)
	RecentUsers(ctx context.Context, limit int) ([]*models.User, error)
	RecentApplications(ctx context.Context, scope ApplicationScope, limit int) ([]*models.ApplicationView, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Users        UserStore
	Profiles     ProfileStore
	Internships  InternshipStore
	Applications ApplicationStore
	Stats        StatsStore
}

// NewRepositories initializes the Postgres-backed repositories. Every store
// call is bounded by queryTimeout.
func NewRepositories(database *db.PostgresDB, queryTimeout time.Duration) *Repositories {
	base := pgBase{pool: database.Pool, database: database, timeout: queryTimeout}
	return &Repositories{
		Users:        NewUserRepository(base),
		Profiles:     NewProfileRepository(base),
		Internships:  NewInternshipRepository(base),
		Applications: NewApplicationRepository(base),
		Stats:        NewStatsRepository(base),
	}
}
