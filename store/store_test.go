package store

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vaelen/project-tracker/models"
	"github.com/vaelen/project-tracker/utils"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}
	// A second connection to :memory: would see its own empty database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func mustCreatePerson(t *testing.T, s *Store, email, name string) *models.Person {
	t.Helper()
	p := &models.Person{Email: email, Name: name}
	if err := s.CreatePerson(p); err != nil {
		t.Fatalf("create person %s: %v", email, err)
	}
	return p
}

func mustCreateTeam(t *testing.T, s *Store, name string) *models.Team {
	t.Helper()
	team := &models.Team{Name: name}
	if err := s.CreateTeam(team); err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	return team
}

func mustCreateProject(t *testing.T, s *Store, name string) *models.Project {
	t.Helper()
	p := &models.Project{Name: name}
	if err := s.CreateProject(p); err != nil {
		t.Fatalf("create project %s: %v", name, err)
	}
	return p
}

func mustCreateMilestone(t *testing.T, s *Store, projectID string, number int, name string) *models.Milestone {
	t.Helper()
	m := &models.Milestone{ProjectID: projectID, Number: number, Name: name}
	if err := s.CreateMilestone(m); err != nil {
		t.Fatalf("create milestone %s: %v", name, err)
	}
	return m
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strptr(s string) *string {
	return utils.Pointer(s)
}
