package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vaelen/project-tracker/models"
)

func (s *Store) checkMilestonePeople(m *models.Milestone) error {
	if err := s.checkPersonRef("technical_lead", m.TechnicalLead); err != nil {
		return err
	}
	return s.checkTeamRef("team", m.Team)
}

// milestoneNumberTaken reports whether another milestone of the project
// already uses the number. excludeID skips the milestone being updated.
func (s *Store) milestoneNumberTaken(projectID string, number int, excludeID string) (bool, error) {
	q := s.DB.Model(&models.Milestone{}).
		Where("project_id = ? AND number = ?", projectID, number)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateMilestone inserts a milestone with a generated id. Numbers are
// caller-chosen, unique within the project, and left gapped after deletes.
func (s *Store) CreateMilestone(m *models.Milestone) error {
	if err := s.checkProjectRef("project_id", m.ProjectID); err != nil {
		return err
	}
	if err := s.checkMilestonePeople(m); err != nil {
		return err
	}

	taken, err := s.milestoneNumberTaken(m.ProjectID, m.Number, "")
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("milestone %d of project %s: %w", m.Number, m.ProjectID, ErrAlreadyExists)
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	if err := s.DB.Create(m).Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"milestone_id": m.ID,
		"project_id":   m.ProjectID,
		"number":       m.Number,
	}).Debug("Created milestone")
	return nil
}

func (s *Store) GetMilestone(id string) (*models.Milestone, error) {
	var m models.Milestone
	if err := s.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("milestone %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &m, nil
}

// GetProjectMilestones returns the project's milestones in number order
func (s *Store) GetProjectMilestones(projectID string) ([]models.Milestone, error) {
	var milestones []models.Milestone
	if err := s.DB.Where("project_id = ?", projectID).
		Order("number").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

// UpdateMilestone overwrites the milestone's mutable fields. The number may
// move as long as it stays unique within the project; the owning project
// never changes.
func (s *Store) UpdateMilestone(id string, in *models.Milestone) (*models.Milestone, error) {
	if err := s.checkMilestonePeople(in); err != nil {
		return nil, err
	}

	m, err := s.GetMilestone(id)
	if err != nil {
		return nil, err
	}

	if in.Number != m.Number {
		taken, err := s.milestoneNumberTaken(m.ProjectID, in.Number, m.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("milestone %d of project %s: %w", in.Number, m.ProjectID, ErrAlreadyExists)
		}
	}

	m.Number = in.Number
	m.Name = in.Name
	m.Description = in.Description
	m.TechnicalLead = in.TechnicalLead
	m.Team = in.Team
	m.DesignDocURL = in.DesignDocURL
	m.StartDate = in.StartDate
	m.DueDate = in.DueDate
	m.JiraEpic = in.JiraEpic

	if err := s.DB.Save(m).Error; err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"milestone_id": id}).Debug("Updated milestone")
	return m, nil
}

// DeleteMilestone removes the milestone with its resources and notes in
// one atomic unit
func (s *Store) DeleteMilestone(id string) error {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("milestone_id = ?", id).Delete(&models.MilestoneResource{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("milestone_id = ?", id).Delete(&models.MilestoneNote{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	res := tx.Delete(&models.Milestone{}, "id = ?", id)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("milestone %s: %w", id, ErrNotFound)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"milestone_id": id}).Debug("Deleted milestone")
	return nil
}

// AddMilestoneResource assigns a person to work on a milestone, with the
// same upsert behavior as project resources.
func (s *Store) AddMilestoneResource(milestoneID, email string, role *string) (*models.MilestoneResource, error) {
	if err := s.checkMilestoneRef("milestone_id", milestoneID); err != nil {
		return nil, err
	}
	if err := s.checkPersonRef("person_email", &email); err != nil {
		return nil, err
	}

	var existing models.MilestoneResource
	err := s.DB.Where("milestone_id = ? AND person_email = ?", milestoneID, email).
		First(&existing).Error
	if err == nil {
		existing.Role = role
		if err := s.DB.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	link := models.MilestoneResource{MilestoneID: milestoneID, PersonEmail: email, Role: role}
	if err := s.DB.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *Store) GetMilestoneResources(milestoneID string) ([]models.MilestoneResource, error) {
	var links []models.MilestoneResource
	if err := s.DB.Where("milestone_id = ?", milestoneID).
		Order("person_email").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *Store) RemoveMilestoneResource(milestoneID, email string) error {
	res := s.DB.Where("milestone_id = ? AND person_email = ?", milestoneID, email).
		Delete(&models.MilestoneResource{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("resource %q of milestone %s: %w", email, milestoneID, ErrNotFound)
	}
	return nil
}
