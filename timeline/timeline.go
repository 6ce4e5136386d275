// Package timeline turns date-bounded resource assignments into a bucketed
// per-person occupancy grid. The computation is pure: the reference time is
// an explicit argument, so the same inputs always produce the same grid.
package timeline

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Granularity is the bucket size used to bin assignments
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(s) {
	case "day":
		return Day, nil
	case "week", "":
		return Week, nil
	case "month":
		return Month, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// The grid always spans six months from the first of the current month.
// Assignments without dates occupy that whole window, so unscheduled work
// still shows as in flight.
const windowMonths = 6

// Assignment is one person's planned work on a project or milestone.
// Start and End may be nil; missing dates are defaulted, never rejected.
type Assignment struct {
	PersonEmail   string
	ProjectID     string
	ProjectName   string
	MilestoneID   string // empty for project-scoped assignments
	MilestoneName string
	Start         *time.Time
	End           *time.Time
}

// Person is a grid row candidate
type Person struct {
	Email string
	Name  string
	Team  string
}

// ProjectRef fixes each project's position for stable coloring
type ProjectRef struct {
	ID   string
	Name string
}

// Input carries everything Compute needs. Projects must already be in list
// order; colors are assigned by position, cycling the palette.
type Input struct {
	People      []Person
	Projects    []ProjectRef
	Assignments []Assignment

	// IncludeUnknown adds rows for assignment emails that have no person
	// record. A team filter can never match such a person, so the façade
	// only sets this when no filter is active.
	IncludeUnknown bool
}

// Period is one time bucket. End is a display value: the same day for Day
// granularity, start+6d for Week, the last day of the month for Month.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Entry is one active assignment within a cell
type Entry struct {
	ProjectID     string `json:"project_id"`
	ProjectName   string `json:"project_name"`
	MilestoneID   string `json:"milestone_id,omitempty"`
	MilestoneName string `json:"milestone_name,omitempty"`
	Label         string `json:"label"`
	Color         string `json:"color"`
}

// Row is one person's occupancy across all periods. Cells is indexed
// parallel to the grid's Periods; a cell may hold any number of concurrent
// entries, including zero.
type Row struct {
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Team  string    `json:"team,omitempty"`
	Cells [][]Entry `json:"cells"`
}

// Grid is the person-by-period occupancy table
type Grid struct {
	Granularity Granularity `json:"granularity"`
	Periods     []Period    `json:"periods"`
	Rows        []Row       `json:"rows"`
}

type window struct {
	a          Assignment
	start, end time.Time
}

// Compute bins the assignments into an occupancy grid anchored at the
// first day of now's month. Rows are ordered by person name then email and
// cell entries by project position, so recomputing with the same inputs
// and the same now yields an identical grid.
func Compute(in Input, g Granularity, now time.Time) *Grid {
	first := firstOfMonth(now)
	periods := buildPeriods(g, first)

	colorIdx := make(map[string]int, len(in.Projects))
	for i, p := range in.Projects {
		colorIdx[p.ID] = i
	}

	byPerson := make(map[string][]window)
	for _, a := range in.Assignments {
		start := first
		if a.Start != nil {
			start = *a.Start
		}
		end := start.AddDate(0, windowMonths, 0)
		if a.End != nil {
			end = *a.End
		}
		byPerson[a.PersonEmail] = append(byPerson[a.PersonEmail], window{a: a, start: start, end: end})
	}

	people := append([]Person(nil), in.People...)
	if in.IncludeUnknown {
		known := make(map[string]bool, len(people))
		for _, p := range people {
			known[p.Email] = true
		}
		var extra []string
		for email := range byPerson {
			if !known[email] {
				extra = append(extra, email)
			}
		}
		sort.Strings(extra)
		for _, email := range extra {
			people = append(people, Person{Email: email, Name: "unknown"})
		}
	}
	sort.SliceStable(people, func(i, j int) bool {
		if people[i].Name != people[j].Name {
			return people[i].Name < people[j].Name
		}
		return people[i].Email < people[j].Email
	})

	rows := make([]Row, 0, len(people))
	for _, p := range people {
		wins := byPerson[p.Email]
		sort.SliceStable(wins, func(i, j int) bool {
			wi, wj := wins[i].a, wins[j].a
			if colorIdx[wi.ProjectID] != colorIdx[wj.ProjectID] {
				return colorIdx[wi.ProjectID] < colorIdx[wj.ProjectID]
			}
			if wi.MilestoneName != wj.MilestoneName {
				return wi.MilestoneName < wj.MilestoneName
			}
			return wi.MilestoneID < wj.MilestoneID
		})

		row := Row{Email: p.Email, Name: p.Name, Team: p.Team, Cells: make([][]Entry, len(periods))}
		for i, period := range periods {
			spanEnd := nextPeriodStart(g, period.Start)
			for _, w := range wins {
				if active(w, period.Start, spanEnd) {
					row.Cells[i] = append(row.Cells[i], makeEntry(w.a, colorIdx))
				}
			}
		}
		rows = append(rows, row)
	}

	return &Grid{Granularity: g, Periods: periods, Rows: rows}
}

// active reports closed-interval overlap: an assignment ending exactly on
// the period start still counts, as does one starting exactly at its end.
func active(w window, periodStart, spanEnd time.Time) bool {
	return !w.start.After(spanEnd) && !w.end.Before(periodStart)
}

func makeEntry(a Assignment, colorIdx map[string]int) Entry {
	label := a.ProjectName
	if a.MilestoneID != "" && a.MilestoneName != "" {
		label = a.MilestoneName
	}
	return Entry{
		ProjectID:     a.ProjectID,
		ProjectName:   a.ProjectName,
		MilestoneID:   a.MilestoneID,
		MilestoneName: a.MilestoneName,
		Label:         label,
		Color:         palette[colorIdx[a.ProjectID]%len(palette)],
	}
}

func firstOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func buildPeriods(g Granularity, first time.Time) []Period {
	limit := first.AddDate(0, windowMonths, 0)
	var periods []Period
	for p := first; p.Before(limit); p = nextPeriodStart(g, p) {
		periods = append(periods, Period{Start: p, End: displayEnd(g, p)})
	}
	return periods
}

func nextPeriodStart(g Granularity, p time.Time) time.Time {
	switch g {
	case Day:
		return p.AddDate(0, 0, 1)
	case Week:
		return p.AddDate(0, 0, 7)
	default:
		return p.AddDate(0, 1, 0)
	}
}

func displayEnd(g Granularity, p time.Time) time.Time {
	switch g {
	case Day:
		return p
	case Week:
		return p.AddDate(0, 0, 6)
	default:
		return p.AddDate(0, 1, 0).AddDate(0, 0, -1)
	}
}
