package models

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus is the closed set of application lifecycle states.
// PENDING is the initial state; APPROVED and REJECTED are terminal.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusApproved ApplicationStatus = "APPROVED"
	StatusRejected ApplicationStatus = "REJECTED"
)

// ParseApplicationStatus normalizes and validates a status string.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("invalid application status: %q", s)
	}
}

// Terminal reports whether no further transition is permitted from s.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s ApplicationStatus) String() string { return string(s) }

// Application links a freelancer to a project they applied for. The composite
// unique index enforces at most one application per (freelancer, project)
// pair at the storage layer, so concurrent submissions cannot race past a
// read-then-write check.
type Application struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	FreelancerID uint              `gorm:"uniqueIndex:idx_freelancer_project;not null" json:"freelancer_id"`
	Freelancer   *User             `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
	ProjectID    uint              `gorm:"uniqueIndex:idx_freelancer_project;not null" json:"project_id"`
	Project      *Project          `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Status       ApplicationStatus `gorm:"size:20;default:PENDING" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func (Application) TableName() string { return "applications" }
