package store

import (
	"testing"
	"time"

	"github.com/vaelen/project-tracker/models"
	"github.com/vaelen/project-tracker/utils"
)

// facadeFixture seeds two projects with assignments on both project and
// milestone level. Returns the projects in list order (by name).
func facadeFixture(t *testing.T, s *Store) (alpha, zeta *models.Project, m1 *models.Milestone) {
	t.Helper()
	mustCreateTeam(t, s, "Platform")

	alice := &models.Person{Email: "alice@x.com", Name: "Alice", Team: strptr("Platform")}
	if err := s.CreatePerson(alice); err != nil {
		t.Fatalf("create alice: %v", err)
	}
	mustCreatePerson(t, s, "bob@x.com", "Bob")

	zeta = &models.Project{
		Name:      "Zeta",
		StartDate: utils.Pointer(day(2025, time.February, 1)),
		DueDate:   utils.Pointer(day(2025, time.April, 30)),
	}
	if err := s.CreateProject(zeta); err != nil {
		t.Fatalf("create zeta: %v", err)
	}
	alpha = mustCreateProject(t, s, "Alpha")

	due := day(2025, time.June, 15)
	m1 = &models.Milestone{ProjectID: alpha.ID, Number: 1, Name: "M1", DueDate: &due}
	if err := s.CreateMilestone(m1); err != nil {
		t.Fatalf("create m1: %v", err)
	}

	if _, err := s.AddProjectResource(zeta.ID, "alice@x.com", nil); err != nil {
		t.Fatalf("assign alice: %v", err)
	}
	if _, err := s.AddMilestoneResource(m1.ID, "bob@x.com", nil); err != nil {
		t.Fatalf("assign bob: %v", err)
	}
	return alpha, zeta, m1
}

func TestTimelineInput(t *testing.T) {
	s := newTestStore(t)
	alpha, zeta, m1 := facadeFixture(t, s)

	in, err := s.TimelineInput("", "")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	// Projects arrive in list order so colors stay stable
	if len(in.Projects) != 2 || in.Projects[0].ID != alpha.ID || in.Projects[1].ID != zeta.ID {
		t.Fatalf("projects = %v", in.Projects)
	}
	if len(in.People) != 2 {
		t.Fatalf("people = %v", in.People)
	}
	if !in.IncludeUnknown {
		t.Error("unfiltered input should include unknown people")
	}

	if len(in.Assignments) != 2 {
		t.Fatalf("assignments = %v", in.Assignments)
	}
	for _, a := range in.Assignments {
		switch a.PersonEmail {
		case "alice@x.com":
			if a.ProjectID != zeta.ID || a.ProjectName != "Zeta" || a.MilestoneID != "" {
				t.Errorf("alice assignment = %+v", a)
			}
			if a.Start == nil || !a.Start.Equal(day(2025, time.February, 1)) {
				t.Errorf("alice start = %v", a.Start)
			}
			if a.End == nil || !a.End.Equal(day(2025, time.April, 30)) {
				t.Errorf("alice end = %v", a.End)
			}
		case "bob@x.com":
			if a.ProjectID != alpha.ID || a.MilestoneID != m1.ID || a.MilestoneName != "M1" {
				t.Errorf("bob assignment = %+v", a)
			}
			if a.Start != nil {
				t.Errorf("bob start = %v, want nil for defaulting", a.Start)
			}
			if a.End == nil || !a.End.Equal(day(2025, time.June, 15)) {
				t.Errorf("bob end = %v", a.End)
			}
		default:
			t.Errorf("unexpected assignment %+v", a)
		}
	}
}

func TestTimelineInputTeamFilter(t *testing.T) {
	s := newTestStore(t)
	facadeFixture(t, s)

	in, err := s.TimelineInput("Platform", "")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(in.People) != 1 || in.People[0].Email != "alice@x.com" {
		t.Fatalf("people = %v", in.People)
	}
	if in.IncludeUnknown {
		t.Error("team filter must suppress unknown rows")
	}
	// Assignments are not narrowed by the team filter
	if len(in.Assignments) != 2 {
		t.Fatalf("assignments = %d, want 2", len(in.Assignments))
	}
}

func TestTimelineInputProjectFilter(t *testing.T) {
	s := newTestStore(t)
	_, zeta, _ := facadeFixture(t, s)

	in, err := s.TimelineInput("", zeta.ID)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(in.Projects) != 1 || in.Projects[0].ID != zeta.ID {
		t.Fatalf("projects = %v", in.Projects)
	}
	if len(in.Assignments) != 1 || in.Assignments[0].PersonEmail != "alice@x.com" {
		t.Fatalf("assignments = %v", in.Assignments)
	}

	// A filter that matches nothing yields empty inputs, not an error
	in, err = s.TimelineInput("", "no-such-project")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(in.Projects) != 0 || len(in.Assignments) != 0 {
		t.Fatalf("want empty, got %d projects %d assignments", len(in.Projects), len(in.Assignments))
	}
}

func TestGetSummary(t *testing.T) {
	s := newTestStore(t)
	alpha, _, _ := facadeFixture(t, s)
	if _, err := s.CreateProjectNote(alpha.ID, "t", "b"); err != nil {
		t.Fatalf("note: %v", err)
	}

	sum, err := s.GetSummary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.People != 2 || sum.Teams != 1 || sum.Projects != 2 || sum.Milestones != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Assignments != 2 {
		t.Errorf("assignments = %d, want 2", sum.Assignments)
	}
	if sum.Notes != 1 {
		t.Errorf("notes = %d, want 1", sum.Notes)
	}
}
