package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. Any value outside this set is
// rejected at the boundary so the policy engine can match exhaustively.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleClient     Role = "CLIENT"
	RoleFreelancer Role = "FREELANCER"
)

// ParseRole normalizes and validates a role string from client input.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleClient, RoleFreelancer:
		return r, nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleFreelancer:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
