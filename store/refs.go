package store

import (
	"github.com/vaelen/project-tracker/models"
)

// Reference checks run before any mutation that sets a reference field.
// A nil or empty reference is always fine; the fields are optional.

func (s *Store) checkPersonRef(field string, email *string) error {
	if email == nil || *email == "" {
		return nil
	}
	var count int64
	if err := s.DB.Model(&models.Person{}).Where("email = ?", *email).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &DanglingReferenceError{Field: field, Value: *email}
	}
	return nil
}

func (s *Store) checkTeamRef(field string, name *string) error {
	if name == nil || *name == "" {
		return nil
	}
	var count int64
	if err := s.DB.Model(&models.Team{}).Where("name = ?", *name).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &DanglingReferenceError{Field: field, Value: *name}
	}
	return nil
}

func (s *Store) checkProjectRef(field, id string) error {
	var count int64
	if err := s.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &DanglingReferenceError{Field: field, Value: id}
	}
	return nil
}

func (s *Store) checkMilestoneRef(field, id string) error {
	var count int64
	if err := s.DB.Model(&models.Milestone{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &DanglingReferenceError{Field: field, Value: id}
	}
	return nil
}

// checkStakeholderRef verifies the (project, stakeholder) pair exists so
// stakeholder notes always attach to a live link
func (s *Store) checkStakeholderRef(projectID, email string) error {
	var count int64
	if err := s.DB.Model(&models.ProjectStakeholder{}).
		Where("project_id = ? AND stakeholder_email = ?", projectID, email).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &DanglingReferenceError{Field: "stakeholder_email", Value: email}
	}
	return nil
}
