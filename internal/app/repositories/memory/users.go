package memory

import (
	"context"
	"time"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/app/repositories"
	"github.com/interconnect/backend/internal/pkg/apperrors"
)

// UserStore keeps identities in memory
type UserStore struct{ s *state }

func (r *UserStore) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStoreError("error creating user", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[user.Email]; taken {
		return apperrors.ErrEmailAlreadyExists
	}
	r.s.nextUserID++
	now := r.s.now()
	user.ID = r.s.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now

	c := *user
	r.s.users[c.ID] = &c
	r.s.emails[c.Email] = c.ID
	return nil
}

func (r *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	c := *r.s.users[id]
	return &c, nil
}

func (r *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.emails[email]
	return ok, nil
}

func (r *UserStore) List(ctx context.Context, filter repositories.UserFilter) ([]*models.User, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]*models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		c := *u
		matched = append(matched, &c)
	}
	newestFirst(matched,
		func(u *models.User) time.Time { return u.CreatedAt },
		func(u *models.User) int64 { return u.ID })

	total := int64(len(matched))
	start := int(filter.Offset)
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	return matched[start:end], total, nil
}

func (r *UserStore) UpdateName(ctx context.Context, id int64, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Name = name
	u.UpdatedAt = r.s.now()
	return nil
}

func (r *UserStore) UpdateLastLogin(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if u, ok := r.s.users[id]; ok {
		now := r.s.now()
		u.LastLoginAt = &now
	}
	return nil
}

// Delete removes the user together with the profile, owned listings, the
// applications on those listings and the user's own applications.
func (r *UserStore) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}

	for iid, i := range r.s.internships {
		if i.EmployerID == id {
			delete(r.s.internships, iid)
		}
	}
	for aid, a := range r.s.apps {
		_, listingAlive := r.s.internships[a.InternshipID]
		if a.StudentID == id || !listingAlive {
			delete(r.s.apps, aid)
			delete(r.s.pairs, pair{a.StudentID, a.InternshipID})
		}
	}
	delete(r.s.profiles, id)
	delete(r.s.emails, u.Email)
	delete(r.s.users, id)
	return nil
}
