package timeline

import (
	"reflect"
	"testing"
	"time"

	"github.com/vaelen/project-tracker/utils"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func findRow(t *testing.T, g *Grid, email string) *Row {
	t.Helper()
	for i := range g.Rows {
		if g.Rows[i].Email == email {
			return &g.Rows[i]
		}
	}
	t.Fatalf("no row for %s", email)
	return nil
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		in      string
		want    Granularity
		wantErr bool
	}{
		{"", Week, false},
		{"week", Week, false},
		{"Day", Day, false},
		{"MONTH", Month, false},
		{"fortnight", "", true},
	}
	for _, tt := range tests {
		got, err := ParseGranularity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGranularity(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGranularity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPeriodCounts(t *testing.T) {
	tests := []struct {
		g    Granularity
		now  time.Time
		want int
	}{
		{Week, day(2025, time.January, 1), 26},
		{Week, day(2025, time.January, 31), 26},
		{Month, day(2025, time.January, 15), 6},
		{Day, day(2025, time.January, 1), 181},
	}
	for _, tt := range tests {
		grid := Compute(Input{}, tt.g, tt.now)
		if len(grid.Periods) != tt.want {
			t.Errorf("%s periods from %s = %d, want %d", tt.g, tt.now.Format("2006-01-02"), len(grid.Periods), tt.want)
		}
		if grid.Granularity != tt.g {
			t.Errorf("granularity = %q, want %q", grid.Granularity, tt.g)
		}
	}
}

func TestPeriodBounds(t *testing.T) {
	grid := Compute(Input{}, Month, day(2025, time.January, 15))
	first := grid.Periods[0]
	if !first.Start.Equal(day(2025, time.January, 1)) {
		t.Errorf("first period start = %v", first.Start)
	}
	if !first.End.Equal(day(2025, time.January, 31)) {
		t.Errorf("first period end = %v", first.End)
	}
	last := grid.Periods[len(grid.Periods)-1]
	if !last.Start.Equal(day(2025, time.June, 1)) || !last.End.Equal(day(2025, time.June, 30)) {
		t.Errorf("last period = %v..%v", last.Start, last.End)
	}

	grid = Compute(Input{}, Week, day(2025, time.January, 1))
	if !grid.Periods[1].Start.Equal(day(2025, time.January, 8)) {
		t.Errorf("second week start = %v", grid.Periods[1].Start)
	}
	if !grid.Periods[0].End.Equal(day(2025, time.January, 7)) {
		t.Errorf("week display end = %v", grid.Periods[0].End)
	}

	grid = Compute(Input{}, Day, day(2025, time.January, 1))
	if !grid.Periods[0].End.Equal(grid.Periods[0].Start) {
		t.Errorf("day display end = %v", grid.Periods[0].End)
	}
}

// A milestone due mid June and never started occupies the grid from the
// window start up to the week containing the due date.
func TestMilestoneOccupancy(t *testing.T) {
	in := Input{
		People:   []Person{{Email: "alice@x.com", Name: "Alice", Team: "Platform"}},
		Projects: []ProjectRef{{ID: "p1", Name: "Apollo"}},
		Assignments: []Assignment{{
			PersonEmail:   "alice@x.com",
			ProjectID:     "p1",
			ProjectName:   "Apollo",
			MilestoneID:   "m1",
			MilestoneName: "Launch",
			End:           utils.Pointer(day(2025, time.June, 15)),
		}},
	}
	grid := Compute(in, Week, day(2025, time.January, 1))
	row := findRow(t, grid, "alice@x.com")
	if row.Team != "Platform" {
		t.Errorf("team = %q", row.Team)
	}
	if len(row.Cells) != 26 {
		t.Fatalf("cells = %d", len(row.Cells))
	}
	for i, cell := range row.Cells {
		occupied := i <= 23 // week of Jun 11 is the last containing Jun 15
		if occupied && len(cell) != 1 {
			t.Errorf("cell %d (%s): %d entries, want 1", i, grid.Periods[i].Start.Format("2006-01-02"), len(cell))
		}
		if !occupied && len(cell) != 0 {
			t.Errorf("cell %d (%s): %d entries, want 0", i, grid.Periods[i].Start.Format("2006-01-02"), len(cell))
		}
	}
	e := row.Cells[0][0]
	if e.Label != "Launch" || e.MilestoneID != "m1" || e.ProjectName != "Apollo" {
		t.Errorf("entry = %+v", e)
	}
}

func TestOverlapBoundaries(t *testing.T) {
	now := day(2025, time.January, 1)
	mk := func(start, end *time.Time) Input {
		return Input{
			People:   []Person{{Email: "a@x.com", Name: "A"}},
			Projects: []ProjectRef{{ID: "p1", Name: "P"}},
			Assignments: []Assignment{{
				PersonEmail: "a@x.com", ProjectID: "p1", ProjectName: "P",
				Start: start, End: end,
			}},
		}
	}

	// Ending exactly on a period start still occupies that period
	grid := Compute(mk(nil, utils.Pointer(day(2025, time.February, 5))), Week, now)
	row := findRow(t, grid, "a@x.com")
	if len(row.Cells[5]) != 1 { // week of Feb 5
		t.Errorf("end-on-boundary: cell 5 has %d entries", len(row.Cells[5]))
	}
	if len(row.Cells[6]) != 0 {
		t.Errorf("end-on-boundary: cell 6 has %d entries", len(row.Cells[6]))
	}

	// Starting exactly at the next period boundary counts for the
	// current period too, since both interval ends are inclusive
	grid = Compute(mk(utils.Pointer(day(2025, time.January, 8)), nil), Week, now)
	row = findRow(t, grid, "a@x.com")
	if len(row.Cells[0]) != 1 {
		t.Errorf("start-on-boundary: cell 0 has %d entries", len(row.Cells[0]))
	}

	// Entirely after the window shows nowhere
	grid = Compute(mk(utils.Pointer(day(2025, time.August, 1)), utils.Pointer(day(2025, time.September, 1))), Week, now)
	row = findRow(t, grid, "a@x.com")
	for i, cell := range row.Cells {
		if len(cell) != 0 {
			t.Errorf("out-of-window: cell %d has %d entries", i, len(cell))
		}
	}
}

// An assignment with no dates at all spans the entire window
func TestUndatedAssignmentFillsWindow(t *testing.T) {
	in := Input{
		People:      []Person{{Email: "a@x.com", Name: "A"}},
		Projects:    []ProjectRef{{ID: "p1", Name: "P"}},
		Assignments: []Assignment{{PersonEmail: "a@x.com", ProjectID: "p1", ProjectName: "P"}},
	}
	grid := Compute(in, Month, day(2025, time.March, 10))
	row := findRow(t, grid, "a@x.com")
	for i, cell := range row.Cells {
		if len(cell) != 1 {
			t.Errorf("cell %d has %d entries", i, len(cell))
		}
	}
}

func TestConcurrentAssignmentsShareCell(t *testing.T) {
	in := Input{
		People: []Person{{Email: "a@x.com", Name: "A"}},
		Projects: []ProjectRef{
			{ID: "p1", Name: "Apollo"},
			{ID: "p2", Name: "Borealis"},
		},
		Assignments: []Assignment{
			{PersonEmail: "a@x.com", ProjectID: "p2", ProjectName: "Borealis"},
			{PersonEmail: "a@x.com", ProjectID: "p1", ProjectName: "Apollo"},
		},
	}
	grid := Compute(in, Week, day(2025, time.January, 1))
	cell := findRow(t, grid, "a@x.com").Cells[0]
	if len(cell) != 2 {
		t.Fatalf("cell has %d entries, want 2", len(cell))
	}
	// Entries follow project list order regardless of assignment order
	if cell[0].ProjectName != "Apollo" || cell[1].ProjectName != "Borealis" {
		t.Errorf("entry order = %s, %s", cell[0].ProjectName, cell[1].ProjectName)
	}
	if cell[0].Color != palette[0] || cell[1].Color != palette[1] {
		t.Errorf("colors = %s, %s", cell[0].Color, cell[1].Color)
	}
}

func TestColorsCyclePalette(t *testing.T) {
	n := len(palette) + 2
	in := Input{People: []Person{{Email: "a@x.com", Name: "A"}}}
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		in.Projects = append(in.Projects, ProjectRef{ID: id, Name: id})
	}
	in.Assignments = []Assignment{{PersonEmail: "a@x.com", ProjectID: in.Projects[n-1].ID, ProjectName: "last"}}

	grid := Compute(in, Month, day(2025, time.January, 1))
	got := findRow(t, grid, "a@x.com").Cells[0][0].Color
	if got != palette[(n-1)%len(palette)] {
		t.Errorf("color = %s, want %s", got, palette[(n-1)%len(palette)])
	}
}

func TestUnknownPeopleRows(t *testing.T) {
	in := Input{
		People:   []Person{{Email: "alice@x.com", Name: "Alice"}},
		Projects: []ProjectRef{{ID: "p1", Name: "P"}},
		Assignments: []Assignment{
			{PersonEmail: "ghost@x.com", ProjectID: "p1", ProjectName: "P"},
		},
		IncludeUnknown: true,
	}
	grid := Compute(in, Week, day(2025, time.January, 1))
	if len(grid.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(grid.Rows))
	}
	// "Alice" sorts before "unknown"
	if grid.Rows[0].Email != "alice@x.com" || grid.Rows[1].Email != "ghost@x.com" {
		t.Errorf("row order = %s, %s", grid.Rows[0].Email, grid.Rows[1].Email)
	}
	if grid.Rows[1].Name != "unknown" {
		t.Errorf("synthesized name = %q", grid.Rows[1].Name)
	}

	in.IncludeUnknown = false
	grid = Compute(in, Week, day(2025, time.January, 1))
	if len(grid.Rows) != 1 || grid.Rows[0].Email != "alice@x.com" {
		t.Errorf("rows with unknown suppressed = %v", grid.Rows)
	}
}

// People without assignments still get a row of empty cells, so free
// capacity is visible on the grid.
func TestIdlePersonKeepsRow(t *testing.T) {
	in := Input{People: []Person{{Email: "idle@x.com", Name: "Idle"}}}
	grid := Compute(in, Week, day(2025, time.January, 1))
	row := findRow(t, grid, "idle@x.com")
	for i, cell := range row.Cells {
		if len(cell) != 0 {
			t.Errorf("cell %d not empty", i)
		}
	}
}

func TestLabelFallsBackToProject(t *testing.T) {
	in := Input{
		People:   []Person{{Email: "a@x.com", Name: "A"}},
		Projects: []ProjectRef{{ID: "p1", Name: "Apollo"}},
		Assignments: []Assignment{
			{PersonEmail: "a@x.com", ProjectID: "p1", ProjectName: "Apollo", MilestoneID: "m1"},
		},
	}
	grid := Compute(in, Month, day(2025, time.January, 1))
	e := findRow(t, grid, "a@x.com").Cells[0][0]
	if e.Label != "Apollo" {
		t.Errorf("label = %q, want project name when the milestone is unnamed", e.Label)
	}
}

func TestComputeDeterministic(t *testing.T) {
	in := Input{
		People: []Person{
			{Email: "b@x.com", Name: "Bea"},
			{Email: "a@x.com", Name: "Al"},
		},
		Projects: []ProjectRef{{ID: "p1", Name: "P"}, {ID: "p2", Name: "Q"}},
		Assignments: []Assignment{
			{PersonEmail: "a@x.com", ProjectID: "p2", ProjectName: "Q"},
			{PersonEmail: "a@x.com", ProjectID: "p1", ProjectName: "P"},
			{PersonEmail: "b@x.com", ProjectID: "p1", ProjectName: "P"},
		},
		IncludeUnknown: true,
	}
	now := day(2025, time.April, 9)
	first := Compute(in, Week, now)
	second := Compute(in, Week, now)
	if !reflect.DeepEqual(first, second) {
		t.Error("same inputs produced different grids")
	}
	if first.Rows[0].Name != "Al" || first.Rows[1].Name != "Bea" {
		t.Errorf("row order = %s, %s", first.Rows[0].Name, first.Rows[1].Name)
	}
}
