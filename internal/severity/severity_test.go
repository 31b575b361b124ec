// ABOUTME: Unit tests for the severity scale and threshold logic.
// ABOUTME: Covers rank ordering, case-insensitivity, and running-maximum rules.

package severity

import (
	"testing"
)

func TestRank(t *testing.T) {
	tests := []struct {
		severity Severity
		rank     int
	}{
		{Critical, 4},
		{High, 3},
		{Moderate, 2},
		{Low, 1},
		{Unknown, 0},
		{Severity(""), 0},
		{Severity("informational"), 0},
	}

	for _, tt := range tests {
		if got := tt.severity.Rank(); got != tt.rank {
			t.Errorf("Rank(%q) = %d, want %d", tt.severity, got, tt.rank)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		label    string
		expected Severity
	}{
		{"critical", Critical},
		{"CRITICAL", Critical},
		{"High", High},
		{" moderate ", Moderate},
		{"low", Low},
		{"", Unknown},
		{"medium", Unknown},
		{"nonsense", Unknown},
	}

	for _, tt := range tests {
		if got := Normalize(tt.label); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.label, got, tt.expected)
		}
	}
}

func TestMeetsIsMonotonic(t *testing.T) {
	scale := []Severity{Unknown, Low, Moderate, High, Critical}

	for _, v := range scale {
		for _, min := range scale {
			expected := v.Rank() >= min.Rank()
			if got := v.Meets(min); got != expected {
				t.Errorf("%q.Meets(%q) = %v, want %v", v, min, got, expected)
			}
		}
	}
}

func TestMeetsCaseInsensitiveThroughNormalize(t *testing.T) {
	if !Normalize("HIGH").Meets(Normalize("high")) {
		t.Error("expected HIGH to meet threshold high")
	}
	if Normalize("LOW").Meets(Normalize("High")) {
		t.Error("expected LOW not to meet threshold High")
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("moderate"); err != nil {
		t.Errorf("Parse(moderate) unexpected error: %v", err)
	}
	if _, err := Parse("severe"); err == nil {
		t.Error("Parse(severe) expected error, got none")
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected Severity
	}{
		{"empty sequence seeds at low", nil, Low},
		{"single high", []string{"high"}, High},
		{"highest wins", []string{"low", "critical", "high"}, Critical},
		{"mixed case", []string{"LOW", "Moderate"}, Moderate},
		{"unknown labels ignored", []string{"bogus", "moderate"}, Moderate},
		{"all unknown reports low", []string{"bogus", ""}, Low},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Max(tt.labels); got != tt.expected {
				t.Errorf("Max(%v) = %q, want %q", tt.labels, got, tt.expected)
			}
		})
	}
}
