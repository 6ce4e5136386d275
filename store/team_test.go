package store

import (
	"errors"
	"testing"

	"github.com/vaelen/project-tracker/models"
)

func TestCreateTeamDuplicate(t *testing.T) {
	s := newTestStore(t)
	mustCreateTeam(t, s, "Platform")

	err := s.CreateTeam(&models.Team{Name: "Platform"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateTeamDanglingManager(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateTeam(&models.Team{Name: "Platform", Manager: strptr("ghost@x.com")})
	var dangling *DanglingReferenceError
	if !errors.As(err, &dangling) {
		t.Fatalf("expected DanglingReferenceError, got %v", err)
	}
}

func TestUpdateTeam(t *testing.T) {
	s := newTestStore(t)
	mustCreatePerson(t, s, "alice@x.com", "Alice")
	created := mustCreateTeam(t, s, "Platform")

	updated, err := s.UpdateTeam("Platform", &models.Team{
		Description: strptr("Infra and tooling"),
		Manager:     strptr("alice@x.com"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description == nil || *updated.Description != "Infra and tooling" {
		t.Errorf("description = %v", updated.Description)
	}
	if updated.Manager == nil || *updated.Manager != "alice@x.com" {
		t.Errorf("manager = %v", updated.Manager)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created changed")
	}

	if _, err := s.UpdateTeam("No Such Team", &models.Team{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamMembers(t *testing.T) {
	s := newTestStore(t)
	mustCreateTeam(t, s, "Platform")
	mustCreatePerson(t, s, "zoe@x.com", "Zoe")
	mustCreatePerson(t, s, "adam@x.com", "Adam")

	if err := s.AddTeamMember("Platform", "zoe@x.com"); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if err := s.AddTeamMember("Platform", "adam@x.com"); err != nil {
		t.Fatalf("add member: %v", err)
	}

	// Duplicate membership is rejected
	if err := s.AddTeamMember("Platform", "zoe@x.com"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// Both sides must exist
	var dangling *DanglingReferenceError
	if err := s.AddTeamMember("Platform", "ghost@x.com"); !errors.As(err, &dangling) {
		t.Fatalf("expected DanglingReferenceError for person, got %v", err)
	}
	if err := s.AddTeamMember("No Such Team", "zoe@x.com"); !errors.As(err, &dangling) {
		t.Fatalf("expected DanglingReferenceError for team, got %v", err)
	}

	members, err := s.GetTeamMembers("Platform")
	if err != nil {
		t.Fatalf("get members: %v", err)
	}
	if len(members) != 2 || members[0].Name != "Adam" || members[1].Name != "Zoe" {
		t.Fatalf("members = %v", members)
	}

	if err := s.RemoveTeamMember("Platform", "adam@x.com"); err != nil {
		t.Fatalf("remove member: %v", err)
	}
	if err := s.RemoveTeamMember("Platform", "adam@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}

	members, err = s.GetTeamMembers("Platform")
	if err != nil {
		t.Fatalf("get members: %v", err)
	}
	if len(members) != 1 || members[0].Name != "Zoe" {
		t.Fatalf("members after remove = %v", members)
	}
}

// A membership row whose person was deleted drops out of the member list;
// the join resolves only existing people.
func TestTeamMembersAfterPersonDelete(t *testing.T) {
	s := newTestStore(t)
	mustCreateTeam(t, s, "Platform")
	mustCreatePerson(t, s, "zoe@x.com", "Zoe")
	if err := s.AddTeamMember("Platform", "zoe@x.com"); err != nil {
		t.Fatalf("add member: %v", err)
	}

	if err := s.DeletePerson("zoe@x.com"); err != nil {
		t.Fatalf("delete person: %v", err)
	}

	members, err := s.GetTeamMembers("Platform")
	if err != nil {
		t.Fatalf("get members: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("members = %v, want none", members)
	}
}

func TestDeleteTeamRemovesMemberships(t *testing.T) {
	s := newTestStore(t)
	mustCreateTeam(t, s, "Platform")
	mustCreatePerson(t, s, "zoe@x.com", "Zoe")
	if err := s.AddTeamMember("Platform", "zoe@x.com"); err != nil {
		t.Fatalf("add member: %v", err)
	}

	if err := s.DeleteTeam("Platform"); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	var count int64
	if err := s.DB.Model(&models.TeamMember{}).Count(&count).Error; err != nil {
		t.Fatalf("count memberships: %v", err)
	}
	if count != 0 {
		t.Fatalf("memberships left behind: %d", count)
	}

	// The person itself survives
	if _, err := s.GetPerson("zoe@x.com"); err != nil {
		t.Fatalf("person should survive team delete: %v", err)
	}

	if err := s.DeleteTeam("Platform"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSearchTeams(t *testing.T) {
	s := newTestStore(t)
	mustCreateTeam(t, s, "Platform")
	mustCreateTeam(t, s, "Performance")
	mustCreateTeam(t, s, "Design")

	got, err := s.SearchTeams("p")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Performance" || got[1].Name != "Platform" {
		t.Fatalf("results = %v", got)
	}
}
