package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vaelen/project-tracker/models"
)

func (s *Store) CreateTeam(t *models.Team) error {
	if err := s.checkPersonRef("manager", t.Manager); err != nil {
		return err
	}

	var existing models.Team
	if err := s.DB.Where("name = ?", t.Name).First(&existing).Error; err == nil {
		return fmt.Errorf("team %q: %w", t.Name, ErrAlreadyExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.DB.Create(t).Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"team": t.Name}).Debug("Created team")
	return nil
}

func (s *Store) GetTeam(name string) (*models.Team, error) {
	var t models.Team
	if err := s.DB.First(&t, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("team %q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := s.DB.Order("name").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// SearchTeams mirrors SearchPeople for team-name autocomplete
func (s *Store) SearchTeams(query string) ([]models.Team, error) {
	var teams []models.Team
	pattern := "%" + strings.ToLower(query) + "%"
	if err := s.DB.Where("lower(name) LIKE ?", pattern).
		Order("name").
		Limit(searchLimit).
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// UpdateTeam overwrites description and manager. The name is the key and
// cannot change through this path.
func (s *Store) UpdateTeam(name string, in *models.Team) (*models.Team, error) {
	if err := s.checkPersonRef("manager", in.Manager); err != nil {
		return nil, err
	}

	t, err := s.GetTeam(name)
	if err != nil {
		return nil, err
	}

	t.Description = in.Description
	t.Manager = in.Manager

	if err := s.DB.Save(t).Error; err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"team": name}).Debug("Updated team")
	return t, nil
}

// DeleteTeam removes the team and its membership rows in one unit. People
// whose team field names the deleted team keep that value and dangle.
func (s *Store) DeleteTeam(name string) error {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("team_name = ?", name).Delete(&models.TeamMember{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	res := tx.Delete(&models.Team{}, "name = ?", name)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("team %q: %w", name, ErrNotFound)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"team": name}).Debug("Deleted team")
	return nil
}

// AddTeamMember records an explicit membership row. Both sides must exist
// and the pair must be new.
func (s *Store) AddTeamMember(teamName, personEmail string) error {
	if err := s.checkTeamRef("team_name", &teamName); err != nil {
		return err
	}
	if err := s.checkPersonRef("person_email", &personEmail); err != nil {
		return err
	}

	var existing models.TeamMember
	err := s.DB.Where("team_name = ? AND person_email = ?", teamName, personEmail).
		First(&existing).Error
	if err == nil {
		return fmt.Errorf("member %q of team %q: %w", personEmail, teamName, ErrAlreadyExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	member := models.TeamMember{TeamName: teamName, PersonEmail: personEmail}
	if err := s.DB.Create(&member).Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"team": teamName, "email": personEmail}).Debug("Added team member")
	return nil
}

func (s *Store) RemoveTeamMember(teamName, personEmail string) error {
	res := s.DB.Where("team_name = ? AND person_email = ?", teamName, personEmail).
		Delete(&models.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("member %q of team %q: %w", personEmail, teamName, ErrNotFound)
	}
	return nil
}

// GetTeamMembers returns the people behind the membership rows, ordered by
// name. Membership rows whose person was deleted drop out of the join.
func (s *Store) GetTeamMembers(teamName string) ([]models.Person, error) {
	var people []models.Person
	err := s.DB.
		Joins("INNER JOIN team_members ON team_members.person_email = people.email").
		Where("team_members.team_name = ?", teamName).
		Order("people.name, people.email").
		Find(&people).Error
	if err != nil {
		return nil, err
	}
	return people, nil
}
