package models

import "time"

// Person represents someone who can be assigned to projects and milestones.
// Email is the natural key and is matched case-sensitively.
type Person struct {
	Email string `gorm:"primaryKey" json:"email"`
	Name  string `gorm:"not null;index" json:"name"`

	// Optional references. Team and Manager may dangle after the
	// referenced team/person is deleted; deletes never cascade here.
	Team    *string `json:"team,omitempty"`
	Manager *string `json:"manager,omitempty"`
	Notes   *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Person) TableName() string {
	return "people"
}
