package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Employer ")
	require.NoError(t, err)
	assert.Equal(t, RoleEmployer, r)

	_, err = ParseRole("teacher")
	assert.Error(t, err)
}

func TestStatuses(t *testing.T) {
	assert.True(t, InternshipInactive.Valid())
	assert.False(t, InternshipStatus("paused").Valid())

	assert.True(t, ApplicationInterview.Valid())
	assert.False(t, ApplicationStatus("withdrawn").Valid())
	assert.Len(t, ApplicationStatuses, 4)
}

func TestInternshipSummary(t *testing.T) {
	i := &Internship{ID: 3, Title: "Backend Intern", Company: "Acme", Location: "Remote", Status: InternshipClosed}

	assert.False(t, i.IsActive())
	assert.Equal(t, InternshipSummary{ID: 3, Title: "Backend Intern", Company: "Acme", Location: "Remote", Status: InternshipClosed}, i.Summary())
}

func TestUserSummaryHidesPassword(t *testing.T) {
	u := &User{ID: 1, Name: "Ada", Email: "ada@example.com", Password: "hash"}
	assert.Equal(t, UserSummary{ID: 1, Name: "Ada", Email: "ada@example.com"}, u.Summary())
}
