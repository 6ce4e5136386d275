package store

import (
	"fmt"

	"github.com/vaelen/project-tracker/models"
	"github.com/vaelen/project-tracker/timeline"
)

// TimelineInput gathers everything the timeline engine needs in a fixed
// number of queries: one each for projects, milestones, the two resource
// tables, and people. Filters never error; a team or project nobody
// matches just produces an empty grid.
//
// The team filter narrows which people become rows. The project filter
// narrows which assignments are considered. Rows for unrecorded emails
// are only synthesized when no team filter is active, since a missing
// person record can never match a team.
func (s *Store) TimelineInput(teamFilter, projectFilter string) (*timeline.Input, error) {
	projects, err := s.ListProjects("")
	if err != nil {
		return nil, err
	}
	if projectFilter != "" {
		kept := projects[:0]
		for _, p := range projects {
			if p.ID == projectFilter {
				kept = append(kept, p)
			}
		}
		projects = kept
	}

	projectIDs := make([]string, 0, len(projects))
	projByID := make(map[string]models.Project, len(projects))
	refs := make([]timeline.ProjectRef, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
		projByID[p.ID] = p
		refs = append(refs, timeline.ProjectRef{ID: p.ID, Name: p.Name})
	}

	var milestones []models.Milestone
	var projectResources []models.ProjectResource
	var milestoneResources []models.MilestoneResource
	if len(projectIDs) > 0 {
		if err := s.DB.Where("project_id IN ?", projectIDs).Find(&milestones).Error; err != nil {
			return nil, fmt.Errorf("load milestones: %w", err)
		}
		if err := s.DB.Where("project_id IN ?", projectIDs).Find(&projectResources).Error; err != nil {
			return nil, fmt.Errorf("load project resources: %w", err)
		}
	}
	msByID := make(map[string]models.Milestone, len(milestones))
	milestoneIDs := make([]string, 0, len(milestones))
	for _, m := range milestones {
		msByID[m.ID] = m
		milestoneIDs = append(milestoneIDs, m.ID)
	}
	if len(milestoneIDs) > 0 {
		if err := s.DB.Where("milestone_id IN ?", milestoneIDs).Find(&milestoneResources).Error; err != nil {
			return nil, fmt.Errorf("load milestone resources: %w", err)
		}
	}

	assignments := make([]timeline.Assignment, 0, len(projectResources)+len(milestoneResources))
	for _, r := range projectResources {
		p := projByID[r.ProjectID]
		assignments = append(assignments, timeline.Assignment{
			PersonEmail: r.PersonEmail,
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Start:       p.StartDate,
			End:         p.DueDate,
		})
	}
	for _, r := range milestoneResources {
		m, ok := msByID[r.MilestoneID]
		if !ok {
			continue
		}
		p := projByID[m.ProjectID]
		assignments = append(assignments, timeline.Assignment{
			PersonEmail:   r.PersonEmail,
			ProjectID:     p.ID,
			ProjectName:   p.Name,
			MilestoneID:   m.ID,
			MilestoneName: m.Name,
			Start:         m.StartDate,
			End:           m.DueDate,
		})
	}

	people, err := s.ListPeople(teamFilter)
	if err != nil {
		return nil, err
	}
	rows := make([]timeline.Person, 0, len(people))
	for _, p := range people {
		tp := timeline.Person{Email: p.Email, Name: p.Name}
		if p.Team != nil {
			tp.Team = *p.Team
		}
		rows = append(rows, tp)
	}

	return &timeline.Input{
		People:         rows,
		Projects:       refs,
		Assignments:    assignments,
		IncludeUnknown: teamFilter == "",
	}, nil
}

// Summary holds workspace-wide entity counts
type Summary struct {
	People      int64 `json:"people"`
	Teams       int64 `json:"teams"`
	Projects    int64 `json:"projects"`
	Milestones  int64 `json:"milestones"`
	Assignments int64 `json:"assignments"`
	Notes       int64 `json:"notes"`
}

// GetSummary counts every entity kind for the workspace overview
func (s *Store) GetSummary() (*Summary, error) {
	var out Summary
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Person{}, &out.People},
		{&models.Team{}, &out.Teams},
		{&models.Project{}, &out.Projects},
		{&models.Milestone{}, &out.Milestones},
	}
	for _, c := range counts {
		if err := s.DB.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("count entities: %w", err)
		}
	}

	var n int64
	if err := s.DB.Model(&models.ProjectResource{}).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("count assignments: %w", err)
	}
	out.Assignments = n
	if err := s.DB.Model(&models.MilestoneResource{}).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("count assignments: %w", err)
	}
	out.Assignments += n

	for _, m := range []interface{}{&models.ProjectNote{}, &models.MilestoneNote{}, &models.StakeholderNote{}} {
		if err := s.DB.Model(m).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count notes: %w", err)
		}
		out.Notes += n
	}
	return &out, nil
}
