// ABOUTME: Severity scale used to gate policy violations.
// ABOUTME: Maps advisory severity labels to ranks and computes threshold membership.

package severity

import (
	"fmt"
	"strings"
)

// Severity is a canonical lowercase advisory severity label.
type Severity string

const (
	Unknown  Severity = "unknown"
	Low      Severity = "low"
	Moderate Severity = "moderate"
	High     Severity = "high"
	Critical Severity = "critical"
)

// Rank returns an integer rank for comparison (low=1, critical=4).
// Unrecognized or absent labels rank 0, below every real severity.
func (s Severity) Rank() int {
	switch s {
	case Low:
		return 1
	case Moderate:
		return 2
	case High:
		return 3
	case Critical:
		return 4
	default:
		return 0
	}
}

func (s Severity) String() string {
	return string(s)
}

// Meets reports whether s qualifies against the minimum severity threshold.
func (s Severity) Meets(min Severity) bool {
	return s.Rank() >= min.Rank()
}

// Normalize maps a raw severity label to its canonical form,
// case-insensitively. Anything off the scale becomes Unknown.
func Normalize(label string) Severity {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "low":
		return Low
	case "moderate":
		return Moderate
	case "high":
		return High
	case "critical":
		return Critical
	default:
		return Unknown
	}
}

// Parse is Normalize with validation, for configuration input.
func Parse(label string) (Severity, error) {
	s := Normalize(label)
	if s == Unknown {
		return Unknown, fmt.Errorf("invalid severity: %s", label)
	}
	return s, nil
}

// Max returns the highest-ranked severity among labels, ties broken by first
// occurrence. The running maximum seeds at Low, so an empty or all-unknown
// sequence reports Low.
func Max(labels []string) Severity {
	max := Low
	for _, label := range labels {
		if s := Normalize(label); s.Rank() > max.Rank() {
			max = s
		}
	}
	return max
}
