// Package memory is an in-process implementation of the repository
// interfaces. It enforces the same uniqueness and cascade rules as the
// Postgres schema and is selected with database.driver "memory".
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/repositories"
)

type pair struct {
	studentID    int64
	internshipID int64
}

type state struct {
	mu sync.RWMutex

	now func() time.Time

	users       map[int64]*models.User
	emails      map[string]int64
	profiles    map[int64]*models.StudentProfile
	internships map[int64]*models.Internship
	apps        map[int64]*models.Application
	pairs       map[pair]int64

	nextUserID       int64
	nextInternshipID int64
	nextAppID        int64
}

// NewRepositories returns a fresh, empty store wired behind every repository
// interface.
func NewRepositories() *repositories.Repositories {
	s := &state{
		now:         func() time.Time { return time.Now().UTC() },
		users:       make(map[int64]*models.User),
		emails:      make(map[string]int64),
		profiles:    make(map[int64]*models.StudentProfile),
		internships: make(map[int64]*models.Internship),
		apps:        make(map[int64]*models.Application),
		pairs:       make(map[pair]int64),
	}
	return &repositories.Repositories{
		Users:        &UserStore{s},
		Profiles:     &ProfileStore{s},
		Internships:  &InternshipStore{s},
		Applications: &ApplicationStore{s},
		Stats:        &StatsStore{s},
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// internshipCopy returns a detached copy with the employer summary filled in.
// Caller holds the lock.
func (s *state) internshipCopy(i *models.Internship) *models.Internship {
	c := *i
	c.Requirements = cloneStrings(i.Requirements)
	if u, ok := s.users[i.EmployerID]; ok {
		c.Employer = &models.UserSummary{ID: u.ID, Name: u.Name}
	}
	return &c
}

// view joins an application with its listing and applicant. Caller holds the lock.
func (s *state) view(a *models.Application) *models.ApplicationView {
	v := &models.ApplicationView{Application: *a}
	if i, ok := s.internships[a.InternshipID]; ok {
		v.Internship = i.Summary()
	}
	if u, ok := s.users[a.StudentID]; ok {
		v.Student = u.Summary()
	}
	return v
}

func inScope(s *state, a *models.Application, scope repositories.ApplicationScope) bool {
	if scope.StudentID != nil && a.StudentID != *scope.StudentID {
		return false
	}
	if scope.EmployerID != nil {
		i, ok := s.internships[a.InternshipID]
		if !ok || i.EmployerID != *scope.EmployerID {
			return false
		}
	}
	return true
}

func newestFirst[T any](items []T, created func(T) time.Time, id func(T) int64) {
	sort.SliceStable(items, func(a, b int) bool {
		ca, cb := created(items[a]), created(items[b])
		if !ca.Equal(cb) {
			return ca.After(cb)
		}
		return id(items[a]) > id(items[b])
	})
}

func sortViews(views []*models.ApplicationView) {
	newestFirst(views,
		func(v *models.ApplicationView) time.Time { return v.CreatedAt },
		func(v *models.ApplicationView) int64 { return v.ID })
}
