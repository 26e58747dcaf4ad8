package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		email    string
		password string
		fields   []string
	}{
		{name: "valid", user: "Ada", email: "ada@example.com", password: "secret123"},
		{name: "short name", user: "A", email: "ada@example.com", password: "secret123", fields: []string{"name"}},
		{name: "bad email", user: "Ada", email: "ada-at-example", password: "secret123", fields: []string{"email"}},
		{name: "short password", user: "Ada", email: "ada@example.com", password: "12345", fields: []string{"password"}},
		{name: "long password", user: "Ada", email: "ada@example.com", password: strings.Repeat("x", 73), fields: []string{"password"}},
		{name: "everything wrong", user: "", email: "", password: "", fields: []string{"name", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := ValidateRegistration(tt.user, tt.email, tt.password)
			assert.Len(t, problems, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, problems, f)
			}
		})
	}
}

func TestStringValidation_Optional(t *testing.T) {
	assert.True(t, NewStringValidation("").WithRequired(false).WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("ab").WithRequired(false).WithMinLength(3).Validate())
}
