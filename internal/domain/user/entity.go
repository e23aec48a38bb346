package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeEmail is the canonical form used for uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
