package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-15", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{" 2025-06-15 ", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"2025-06-15T08:30:00Z", time.Date(2025, time.June, 15, 8, 30, 0, 0, time.UTC)},
		{"2025-06-15 08:30:00", time.Date(2025, time.June, 15, 8, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "15/06/2025", "June 15"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted", bad)
		}
	}
}

func TestParseDatePtr(t *testing.T) {
	if got, err := ParseDatePtr(nil); err != nil || got != nil {
		t.Errorf("nil input: %v, %v", got, err)
	}
	if got, err := ParseDatePtr(Pointer("  ")); err != nil || got != nil {
		t.Errorf("blank input: %v, %v", got, err)
	}
	got, err := ParseDatePtr(Pointer("2025-01-02"))
	if err != nil || got == nil || !got.Equal(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDatePtr = %v, %v", got, err)
	}
	if _, err := ParseDatePtr(Pointer("bogus")); err == nil {
		t.Error("bogus date accepted")
	}
}
