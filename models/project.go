package models

import "time"

// Project is the top-level unit of tracked work
type Project struct {
	ID string `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"not null;index" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	ProjectType string  `gorm:"not null;default:'Personal'" json:"project_type"` // display-time enum, never enforced

	// People involved (person emails; may dangle after person deletion)
	RequirementsOwner *string `json:"requirements_owner,omitempty"`
	TechnicalLead     *string `json:"technical_lead,omitempty"`
	Manager           *string `json:"manager,omitempty"`
	Team              *string `json:"team,omitempty"`

	// Schedule
	StartDate *time.Time `json:"start_date,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`

	// External ticket id, rendered via the configured base URL
	JiraInitiative *string `json:"jira_initiative,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Milestones       []Milestone          `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"milestones,omitempty"`
	Stakeholders     []ProjectStakeholder `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"stakeholders,omitempty"`
	Resources        []ProjectResource    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"resources,omitempty"`
	Notes            []ProjectNote        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"notes,omitempty"`
	StakeholderNotes []StakeholderNote    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProjectStakeholder links a person with an interest in a project.
// At most one row per (project, person); re-adding updates the role.
type ProjectStakeholder struct {
	ProjectID        string `gorm:"primaryKey" json:"project_id"`
	StakeholderEmail string `gorm:"primaryKey" json:"stakeholder_email"`

	Role *string `json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ProjectResource links a person assigned to work on a project.
// These rows feed the timeline occupancy grid.
type ProjectResource struct {
	ProjectID   string `gorm:"primaryKey" json:"project_id"`
	PersonEmail string `gorm:"primaryKey" json:"person_email"`

	Role *string `json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
