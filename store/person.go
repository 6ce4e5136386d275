package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vaelen/project-tracker/models"
)

// CreatePerson inserts a new person keyed by email. The email is an opaque
// identifier here; format checking is left to the adapter layer.
func (s *Store) CreatePerson(p *models.Person) error {
	if p.Manager != nil && *p.Manager == p.Email {
		return &ConflictError{Reason: "a person cannot be their own manager"}
	}
	if err := s.checkPersonRef("manager", p.Manager); err != nil {
		return err
	}
	if err := s.checkTeamRef("team", p.Team); err != nil {
		return err
	}

	var existing models.Person
	if err := s.DB.Where("email = ?", p.Email).First(&existing).Error; err == nil {
		return fmt.Errorf("person %q: %w", p.Email, ErrAlreadyExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.DB.Create(p).Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"email": p.Email}).Debug("Created person")
	return nil
}

func (s *Store) GetPerson(email string) (*models.Person, error) {
	var p models.Person
	if err := s.DB.First(&p, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("person %q: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

// ListPeople returns all people ordered by name, optionally restricted to
// those whose team field matches. The match is on the stored string, so
// people referencing a deleted team still show up under its name.
func (s *Store) ListPeople(team string) ([]models.Person, error) {
	var people []models.Person
	q := s.DB.Order("name, email")
	if team != "" {
		q = q.Where("team = ?", team)
	}
	if err := q.Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

// SearchPeople does a case-insensitive substring match on name for
// autocomplete, served by the name index.
func (s *Store) SearchPeople(query string) ([]models.Person, error) {
	var people []models.Person
	pattern := "%" + strings.ToLower(query) + "%"
	if err := s.DB.Where("lower(name) LIKE ?", pattern).
		Order("name, email").
		Limit(searchLimit).
		Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

// UpdatePerson overwrites the person's mutable fields. Optional fields are
// replaced wholesale: passing nil clears the stored value. The created
// timestamp is immutable.
func (s *Store) UpdatePerson(email string, in *models.Person) (*models.Person, error) {
	if in.Manager != nil && *in.Manager == email {
		return nil, &ConflictError{Reason: "a person cannot be their own manager"}
	}
	if err := s.checkPersonRef("manager", in.Manager); err != nil {
		return nil, err
	}
	if err := s.checkTeamRef("team", in.Team); err != nil {
		return nil, err
	}

	p, err := s.GetPerson(email)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Team = in.Team
	p.Manager = in.Manager
	p.Notes = in.Notes

	if err := s.DB.Save(p).Error; err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"email": email}).Debug("Updated person")
	return p, nil
}

// DeletePerson removes only the person row. Records that reference the
// email (manager fields, stakeholder and resource links, team membership)
// are left in place and dangle; read paths render them as unknown.
func (s *Store) DeletePerson(email string) error {
	res := s.DB.Delete(&models.Person{}, "email = ?", email)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("person %q: %w", email, ErrNotFound)
	}
	logrus.WithFields(logrus.Fields{"email": email}).Debug("Deleted person")
	return nil
}

// ResolvePersonName returns the display name for a referenced email,
// substituting the sentinel when the person no longer exists.
func (s *Store) ResolvePersonName(email string) string {
	var p models.Person
	if err := s.DB.Select("name").First(&p, "email = ?", email).Error; err != nil {
		return "unknown"
	}
	return p.Name
}
