package models

import "time"

// Team represents a named group of people
type Team struct {
	Name        string  `gorm:"primaryKey" json:"name"`
	Description *string `json:"description,omitempty"`
	Manager     *string `json:"manager,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Members []TeamMember `gorm:"foreignKey:TeamName;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// TeamMember is an explicit membership row, separate from the free-form
// Person.Team field used for filtering
type TeamMember struct {
	TeamName    string `gorm:"primaryKey" json:"team_name"`
	PersonEmail string `gorm:"primaryKey" json:"person_email"`

	CreatedAt time.Time `json:"created_at"`
}
