package utils

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func TestDayFraction(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"00:00", 0},
		{"06:00", 0.25},
		{"12:00", 0.5},
		{"18:00", 0.75},
		{"23:59", 1439.0 / 1440.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := DayFraction(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DayFraction(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got < 0 || got >= 1 {
				t.Errorf("DayFraction(%q) = %v, out of [0,1)", tt.input, got)
			}
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "same day", start: "09:00", end: "10:30", want: 90},
		{name: "equal times are zero", start: "09:00", end: "09:00", want: 0},
		{name: "midnight equal", start: "00:00", end: "00:00", want: 0},
		{name: "crosses midnight", start: "23:00", end: "07:00", want: 480},
		{name: "one minute before start", start: "10:00", end: "09:59", want: 1439},
		{name: "full span", start: "00:00", end: "23:59", want: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DurationMinutes(tt.start, tt.end)
			if got != tt.want {
				t.Errorf("DurationMinutes(%q, %q) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDurationMinutesRange(t *testing.T) {
	// Every pair of quarter-hour times must land in [0,1440) and match the wraparound rule
	for s := 0; s < 1440; s += 15 {
		for e := 0; e < 1440; e += 15 {
			start := formatMinutes(s)
			end := formatMinutes(e)
			got := DurationMinutes(start, end)
			want := ((e-s)%1440 + 1440) % 1440
			if got != want {
				t.Fatalf("DurationMinutes(%s, %s) = %d, want %d", start, end, got, want)
			}
			if got < 0 || got >= 1440 {
				t.Fatalf("DurationMinutes(%s, %s) = %d out of range", start, end, got)
			}
		}
	}
}

func TestDurationHours(t *testing.T) {
	if got := DurationHours("22:30", "06:00"); got != 7.5 {
		t.Errorf("DurationHours() = %v, want 7.5", got)
	}
}

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "12:60", "noon", "", "9:00", "09:5", " 9:00"}

	for _, s := range valid {
		if !ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = true, want false", s)
		}
	}
}

func TestShiftDate(t *testing.T) {
	tests := []struct {
		date string
		days int
		want string
	}{
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-06-15", 0, "2024-06-15"},
	}

	for _, tt := range tests {
		got, err := ShiftDate(tt.date, tt.days)
		if err != nil {
			t.Fatalf("ShiftDate(%q, %d) error: %v", tt.date, tt.days, err)
		}
		if got != tt.want {
			t.Errorf("ShiftDate(%q, %d) = %q, want %q", tt.date, tt.days, got, tt.want)
		}
	}

	if _, err := ShiftDate("not-a-date", 1); err == nil {
		t.Error("ShiftDate with invalid date should fail")
	}
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func TestLoadLocation(t *testing.T) {
	for _, name := range []string{"", "Local"} {
		loc, err := LoadLocation(name)
		if err != nil || loc != time.Local {
			t.Errorf("LoadLocation(%q) = %v, %v; want Local", name, loc, err)
		}
	}

	loc, err := LoadLocation("UTC")
	if err != nil || loc.String() != "UTC" {
		t.Errorf("LoadLocation(UTC) = %v, %v", loc, err)
	}

	if _, err := LoadLocation("Mars/Olympus_Mons"); err == nil {
		t.Error("expected error for unknown zone")
	}
}
