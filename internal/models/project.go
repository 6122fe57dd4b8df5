package models

import (
	"time"
)

// ProjectStatusOpen is the initial status of a freshly posted project. The
// field is free-form beyond that; clients use it to mark progress.
const ProjectStatusOpen = "OPEN"

// Project represents a client's posted job. A project is owned exclusively
// by its creator.
type Project struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Title        string        `gorm:"size:200;not null" json:"title"`
	Description  string        `gorm:"type:text;not null" json:"description"`
	Budget       float64       `gorm:"not null" json:"budget"`
	Deadline     time.Time     `gorm:"not null" json:"deadline"`
	Status       string        `gorm:"size:50;default:OPEN" json:"status"`
	CreatorID    uint          `gorm:"index;not null" json:"creator_id"`
	Creator      *User         `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Skills       []Skill       `gorm:"foreignKey:ProjectID" json:"skills"`
	Applications []Application `gorm:"foreignKey:ProjectID" json:"applications,omitempty"`
	CreatedAt    time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// Skill is a normalized (trimmed, lowercased) tag attached to a project.
// The composite unique index keeps a project's tag set free of duplicates.
type Skill struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"uniqueIndex:idx_project_skill;size:100;not null" json:"name"`
	ProjectID uint   `gorm:"uniqueIndex:idx_project_skill;not null" json:"project_id"`
}

func (Skill) TableName() string { return "skills" }
