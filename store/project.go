package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vaelen/project-tracker/models"
)

func (s *Store) checkProjectPeople(p *models.Project) error {
	if err := s.checkPersonRef("requirements_owner", p.RequirementsOwner); err != nil {
		return err
	}
	if err := s.checkPersonRef("technical_lead", p.TechnicalLead); err != nil {
		return err
	}
	if err := s.checkPersonRef("manager", p.Manager); err != nil {
		return err
	}
	return s.checkTeamRef("team", p.Team)
}

// CreateProject inserts a project with a generated id. The project type is
// stored as given; the configured type list is a display concern only.
func (s *Store) CreateProject(p *models.Project) error {
	if err := s.checkProjectPeople(p); err != nil {
		return err
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.ProjectType == "" {
		p.ProjectType = "Personal"
	}

	if err := s.DB.Create(p).Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"project_id": p.ID, "name": p.Name}).Debug("Created project")
	return nil
}

func (s *Store) GetProject(id string) (*models.Project, error) {
	var p models.Project
	if err := s.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

// ListProjects returns projects ordered by name, optionally restricted to
// one team. The ordering also fixes each project's color position on the
// timeline, so it must stay stable between calls.
func (s *Store) ListProjects(team string) ([]models.Project, error) {
	var projects []models.Project
	q := s.DB.Order("name, id")
	if team != "" {
		q = q.Where("team = ?", team)
	}
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject overwrites the project's mutable fields wholesale; nil
// optional fields clear the stored values.
func (s *Store) UpdateProject(id string, in *models.Project) (*models.Project, error) {
	if err := s.checkProjectPeople(in); err != nil {
		return nil, err
	}

	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Description = in.Description
	if in.ProjectType != "" {
		p.ProjectType = in.ProjectType
	}
	p.RequirementsOwner = in.RequirementsOwner
	p.TechnicalLead = in.TechnicalLead
	p.Manager = in.Manager
	p.Team = in.Team
	p.StartDate = in.StartDate
	p.DueDate = in.DueDate
	p.JiraInitiative = in.JiraInitiative

	if err := s.DB.Save(p).Error; err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"project_id": id}).Debug("Updated project")
	return p, nil
}

// DeleteProject removes the project and everything it owns: milestones and
// their resources/notes, stakeholder links and their notes, project
// resources, and project notes. The whole cascade commits or none of it
// does, so concurrent readers never see a half-deleted project.
func (s *Store) DeleteProject(id string) error {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var milestoneIDs []string
	if err := tx.Model(&models.Milestone{}).Where("project_id = ?", id).
		Pluck("id", &milestoneIDs).Error; err != nil {
		tx.Rollback()
		return err
	}

	if len(milestoneIDs) > 0 {
		if err := tx.Where("milestone_id IN ?", milestoneIDs).
			Delete(&models.MilestoneResource{}).Error; err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Where("milestone_id IN ?", milestoneIDs).
			Delete(&models.MilestoneNote{}).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Where("project_id = ?", id).Delete(&models.Milestone{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("project_id = ?", id).Delete(&models.StakeholderNote{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("project_id = ?", id).Delete(&models.ProjectStakeholder{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("project_id = ?", id).Delete(&models.ProjectResource{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("project_id = ?", id).Delete(&models.ProjectNote{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	res := tx.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"project_id": id}).Debug("Deleted project")
	return nil
}

// AddProjectStakeholder links a person to a project as a stakeholder. If
// the pair already exists the role is overwritten and the original created
// timestamp is kept.
func (s *Store) AddProjectStakeholder(projectID, email string, role *string) (*models.ProjectStakeholder, error) {
	if err := s.checkProjectRef("project_id", projectID); err != nil {
		return nil, err
	}
	if err := s.checkPersonRef("stakeholder_email", &email); err != nil {
		return nil, err
	}

	var existing models.ProjectStakeholder
	err := s.DB.Where("project_id = ? AND stakeholder_email = ?", projectID, email).
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

	link := models.ProjectStakeholder{ProjectID: projectID, StakeholderEmail: email, Role: role}
	if err := s.DB.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *Store) GetProjectStakeholders(projectID string) ([]models.ProjectStakeholder, error) {
	var links []models.ProjectStakeholder
	if err := s.DB.Where("project_id = ?", projectID).
		Order("stakeholder_email").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// RemoveProjectStakeholder drops the link and its notes in one unit,
// mirroring the pair-level cascade in the schema.
func (s *Store) RemoveProjectStakeholder(projectID, email string) error {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("project_id = ? AND stakeholder_email = ?", projectID, email).
		Delete(&models.StakeholderNote{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	res := tx.Where("project_id = ? AND stakeholder_email = ?", projectID, email).
		Delete(&models.ProjectStakeholder{})
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("stakeholder %q of project %s: %w", email, projectID, ErrNotFound)
	}

	return tx.Commit().Error
}

// AddProjectResource assigns a person to work on a project. Re-adding the
// pair updates the role and keeps the original created timestamp.
func (s *Store) AddProjectResource(projectID, email string, role *string) (*models.ProjectResource, error) {
	if err := s.checkProjectRef("project_id", projectID); err != nil {
		return nil, err
	}
	if err := s.checkPersonRef("person_email", &email); err != nil {
		return nil, err
	}

	var existing models.ProjectResource
	err := s.DB.Where("project_id = ? AND person_email = ?", projectID, email).
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

	link := models.ProjectResource{ProjectID: projectID, PersonEmail: email, Role: role}
	if err := s.DB.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *Store) GetProjectResources(projectID string) ([]models.ProjectResource, error) {
	var links []models.ProjectResource
	if err := s.DB.Where("project_id = ?", projectID).
		Order("person_email").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *Store) RemoveProjectResource(projectID, email string) error {
	res := s.DB.Where("project_id = ? AND person_email = ?", projectID, email).
		Delete(&models.ProjectResource{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("resource %q of project %s: %w", email, projectID, ErrNotFound)
	}
	return nil
}
