package models

import "time"

// Milestone is a numbered chunk of work within a project. Numbers are
// unique per project and are never reassigned after deletion.
type Milestone struct {
	ID        string `gorm:"primaryKey" json:"id"`
	ProjectID string `gorm:"not null;uniqueIndex:idx_milestones_project_number" json:"project_id"`
	Number    int    `gorm:"not null;uniqueIndex:idx_milestones_project_number" json:"number"`

	Name          string  `gorm:"not null" json:"name"`
	Description   *string `gorm:"type:text" json:"description,omitempty"`
	TechnicalLead *string `json:"technical_lead,omitempty"`
	Team          *string `json:"team,omitempty"`
	DesignDocURL  *string `json:"design_doc_url,omitempty"`

	// Schedule
	StartDate *time.Time `json:"start_date,omitempty"`
	DueDate   *time.Time `gorm:"index" json:"due_date,omitempty"`

	// External ticket id, rendered via the configured base URL
	JiraEpic *string `json:"jira_epic,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Resources []MilestoneResource `gorm:"foreignKey:MilestoneID;constraint:OnDelete:CASCADE" json:"resources,omitempty"`
	Notes     []MilestoneNote     `gorm:"foreignKey:MilestoneID;constraint:OnDelete:CASCADE" json:"notes,omitempty"`
}

// MilestoneResource links a person assigned to work on a milestone
type MilestoneResource struct {
	MilestoneID string `gorm:"primaryKey" json:"milestone_id"`
	PersonEmail string `gorm:"primaryKey" json:"person_email"`

	Role *string `json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
