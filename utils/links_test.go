package utils

import "testing"

func TestFullURL(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		ticket string
		want   string
	}{
		{"plain", "https://jira.company.com/browse/", "PROJ-123", "https://jira.company.com/browse/PROJ-123"},
		{"no trailing slash", "https://jira.company.com/browse", "PROJ-123", "https://jira.company.com/browsePROJ-123"},
		{"empty ticket", "https://jira.company.com/browse/", "", "https://jira.company.com/browse/"},
		{"empty base", "", "PROJ-123", "PROJ-123"},
		{"ticket with slash", "https://jira.company.com/browse/", "PROJ/7", "https://jira.company.com/browse/PROJ/7"},
		{"ticket with spaces", "https://jira.company.com/browse/", "PROJ 123", "https://jira.company.com/browse/PROJ 123"},
	}
	for _, tt := range tests {
		if got := FullURL(tt.base, tt.ticket); got != tt.want {
			t.Errorf("%s: FullURL = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTicketURL(t *testing.T) {
	if got := TicketURL("https://x/", nil); got != nil {
		t.Errorf("nil ticket produced %q", *got)
	}
	got := TicketURL("https://x/", Pointer("T-1"))
	if got == nil || *got != "https://x/T-1" {
		t.Errorf("TicketURL = %v", got)
	}
}
