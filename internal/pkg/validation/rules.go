package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	PasswordMinLength = 6
	PasswordMaxLength = 72 // bcrypt ignores anything beyond 72 bytes

	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StringValidation checks one string value against a set of rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}
	if !v.Required && v.Value == "" {
		return true
	}
	if v.MinLen > 0 && len([]rune(v.Value)) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len([]rune(v.Value)) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// ValidateRegistration checks the registration fields and returns a message
// per offending field. An empty map means the input is acceptable.
func ValidateRegistration(name, email, password string) map[string]interface{} {
	problems := make(map[string]interface{})

	if !NewStringValidation(strings.TrimSpace(name)).WithMinLength(NameMinLength).WithMaxLength(NameMaxLength).Validate() {
		problems["name"] = "name must be between 2 and 100 characters"
	}
	if !NewStringValidation(email).WithPattern(CompiledPatterns.Email).Validate() {
		problems["email"] = "email must be a valid email address"
	}
	if !NewStringValidation(password).WithMinLength(PasswordMinLength).WithMaxLength(PasswordMaxLength).Validate() {
		problems["password"] = "password must be between 6 and 72 characters"
	}
	return problems
}
