package repositories

import (
	"context"

	"github.com/interconnect/backend/internal/app/models"
	"github.com/interconnect/backend/internal/pkg/dberrors"
)

// ProfileRepository handles student profile rows
type ProfileRepository struct {
	pgBase
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(base pgBase) *ProfileRepository {
	return &ProfileRepository{pgBase: base}
}

// GetByUserID returns the stored profile, or an empty one when the student
// never saved it.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	p := &models.StudentProfile{UserID: userID}
	err := r.pool.QueryRow(ctx, `
		SELECT phone, skills, bio, education, experience, portfolio, linkedin, github, updated_at
		FROM student_profiles
		WHERE user_id = $1`, userID).Scan(
		&p.Phone, &p.Skills, &p.Bio, &p.Education, &p.Experience,
		&p.Portfolio, &p.LinkedIn, &p.GitHub, &p.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			p.Skills = []string{}
			return p, nil
		}
		return nil, storeErr("error loading profile", err)
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

// Upsert writes the whole profile
func (r *ProfileRepository) Upsert(ctx context.Context, p *models.StudentProfile) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO student_profiles (user_id, phone, skills, bio, education, experience, portfolio, linkedin, github, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			phone = EXCLUDED.phone,
			skills = EXCLUDED.skills,
			bio = EXCLUDED.bio,
			education = EXCLUDED.education,
			experience = EXCLUDED.experience,
			portfolio = EXCLUDED.portfolio,
			linkedin = EXCLUDED.linkedin,
			github = EXCLUDED.github,
			updated_at = NOW()
		RETURNING updated_at`,
		p.UserID, p.Phone, skills, p.Bio, p.Education, p.Experience, p.Portfolio, p.LinkedIn, p.GitHub,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return storeErr("error saving profile", err)
	}
	return nil
}
