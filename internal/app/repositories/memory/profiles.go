package memory

import (
	"context"

	"github.com/interconnect/backend/internal/app/models"
)

// ProfileStore keeps student profiles in memory
type ProfileStore struct{ s *state }

func (r *ProfileStore) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.profiles[userID]
	if !ok {
		return &models.StudentProfile{UserID: userID, Skills: []string{}}, nil
	}
	c := *p
	c.Skills = cloneStrings(p.Skills)
	return &c, nil
}

func (r *ProfileStore) Upsert(ctx context.Context, p *models.StudentProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.UpdatedAt = r.s.now()
	if p.Skills == nil {
		p.Skills = []string{}
	}
	c := *p
	c.Skills = cloneStrings(p.Skills)
	r.s.profiles[p.UserID] = &c
	return nil
}
