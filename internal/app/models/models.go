package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account kinds. It is fixed when the user is created.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// Roles lists every valid role.
var Roles = []Role{RoleStudent, RoleEmployer, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// ParseRole normalizes s and returns the matching Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// InternshipStatus is the lifecycle state of a listing.
type InternshipStatus string

const (
	InternshipActive   InternshipStatus = "active"
	InternshipInactive InternshipStatus = "inactive"
	InternshipClosed   InternshipStatus = "closed"
)

// InternshipStatuses lists every listing status.
var InternshipStatuses = []InternshipStatus{InternshipActive, InternshipInactive, InternshipClosed}

// Valid reports whether s is a known listing status.
func (s InternshipStatus) Valid() bool {
	switch s {
	case InternshipActive, InternshipInactive, InternshipClosed:
		return true
	}
	return false
}

// ApplicationStatus is the state of an application. Any status may follow any
// other; there is no terminal state.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every application status.
var ApplicationStatuses = []ApplicationStatus{ApplicationPending, ApplicationInterview, ApplicationAccepted, ApplicationRejected}

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationInterview, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}
