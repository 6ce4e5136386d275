package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vaelen/project-tracker/models"
)

// Notes follow one lifecycle for all three kinds: create against a live
// owner, full-overwrite update, delete by id. They are listed newest first.

func (s *Store) CreateProjectNote(projectID, title, body string) (*models.ProjectNote, error) {
	if err := s.checkProjectRef("project_id", projectID); err != nil {
		return nil, err
	}

	note := models.ProjectNote{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Title:     title,
		Body:      body,
	}
	if err := s.DB.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *Store) GetProjectNotes(projectID string) ([]models.ProjectNote, error) {
	var notes []models.ProjectNote
	if err := s.DB.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *Store) UpdateProjectNote(id, title, body string) (*models.ProjectNote, error) {
	var note models.ProjectNote
	if err := s.DB.First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project note %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	note.Title = title
	note.Body = body
	if err := s.DB.Save(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *Store) DeleteProjectNote(id string) error {
	res := s.DB.Delete(&models.ProjectNote{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("project note %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) CreateMilestoneNote(milestoneID, title, body string) (*models.MilestoneNote, error) {
	if err := s.checkMilestoneRef("milestone_id", milestoneID); err != nil {
		return nil, err
	}

	note := models.MilestoneNote{
		ID:          uuid.NewString(),
		MilestoneID: milestoneID,
		Title:       title,
		Body:        body,
	}
	if err := s.DB.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *Store) GetMilestoneNotes(milestoneID string) ([]models.MilestoneNote, error) {
	var notes []models.MilestoneNote
	if err := s.DB.Where("milestone_id = ?", milestoneID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *Store) UpdateMilestoneNote(id, title, body string) (*models.MilestoneNote, error) {
	var note models.MilestoneNote
	if err := s.DB.First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("milestone note %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	note.Title = title
	note.Body = body
	if err := s.DB.Save(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *Store) DeleteMilestoneNote(id string) error {
	res := s.DB.Delete(&models.MilestoneNote{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("milestone note %s: %w", id, ErrNotFound)
	}
	return nil
}

// CreateStakeholderNote attaches a note to a (project, stakeholder) pair,
// which must exist as a live stakeholder link
func (s *Store) CreateStakeholderNote(projectID, stakeholderEmail, title, body string) (*models.StakeholderNote, error) {
	if err := s.checkProjectRef("project_id", projectID); err != nil {
		return nil, err
	}
	if err := s.checkStakeholderRef(projectID, stakeholderEmail); err != nil {
		return nil, err
	}

	note := models.StakeholderNote{
		ID:               uuid.NewString(),
		ProjectID:        projectID,
		StakeholderEmail: stakeholderEmail,
		Title:            title,
		Body:             body,
	}
	if err := s.DB.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *Store) GetStakeholderNotes(projectID, stakeholderEmail string) ([]models.StakeholderNote, error) {
	var notes []models.StakeholderNote
	if err := s.DB.Where("project_id = ? AND stakeholder_email = ?", projectID, stakeholderEmail).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *Store) UpdateStakeholderNote(id, title, body string) (*models.StakeholderNote, error) {
	var note models.StakeholderNote
	if err := s.DB.First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stakeholder note %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	note.Title = title
	note.Body = body
	if err := s.DB.Save(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *Store) DeleteStakeholderNote(id string) error {
	res := s.DB.Delete(&models.StakeholderNote{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stakeholder note %s: %w", id, ErrNotFound)
	}
	return nil
}
