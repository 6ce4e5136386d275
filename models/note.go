package models

import "time"

// ProjectNote is free-text markdown attached to a project
type ProjectNote struct {
	ID        string `gorm:"primaryKey" json:"id"`
	ProjectID string `gorm:"not null;index" json:"project_id"`

	Title string `gorm:"not null" json:"title"`
	Body  string `gorm:"type:text" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MilestoneNote is free-text markdown attached to a milestone
type MilestoneNote struct {
	ID          string `gorm:"primaryKey" json:"id"`
	MilestoneID string `gorm:"not null;index" json:"milestone_id"`

	Title string `gorm:"not null" json:"title"`
	Body  string `gorm:"type:text" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StakeholderNote is attached to a (project, stakeholder) pair and is
// removed together with the stakeholder link
type StakeholderNote struct {
	ID               string `gorm:"primaryKey" json:"id"`
	ProjectID        string `gorm:"not null;index:idx_stakeholder_notes_pair" json:"project_id"`
	StakeholderEmail string `gorm:"not null;index:idx_stakeholder_notes_pair" json:"stakeholder_email"`

	Title string `gorm:"not null" json:"title"`
	Body  string `gorm:"type:text" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
