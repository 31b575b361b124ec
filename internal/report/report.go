// ABOUTME: Input decoding and report output for the policy gate.
// ABOUTME: Reads the scan result JSON and writes the filtered report to stdout.

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gh-action-pr-demo/policygate/internal/types"
)

// Summary carries the run totals included in every report.
type Summary struct {
	TotalVulnerabilities int    `json:"total_vulnerabilities"` // number of input changes
	PolicyViolations     int    `json:"policy_violations"`     // number of filtered changes
	MinSeverity          string `json:"min_severity"`
}

// Report is the single JSON object written to stdout.
type Report struct {
	FilteredVulnerabilities []types.FilteredChange        `json:"filtered_vulnerabilities"`
	Metrics                 map[string]types.MetricsEntry `json:"metrics"`
	Summary                 Summary                       `json:"summary"`
}

// New assembles a report. Nil slices and maps are replaced with empty ones so
// the output always carries all three keys with well-formed values.
func New(filtered []types.FilteredChange, entries map[string]types.MetricsEntry, totalChanges int, minSeverity string) Report {
	if filtered == nil {
		filtered = []types.FilteredChange{}
	}
	if entries == nil {
		entries = map[string]types.MetricsEntry{}
	}
	return Report{
		FilteredVulnerabilities: filtered,
		Metrics:                 entries,
		Summary: Summary{
			TotalVulnerabilities: totalChanges,
			PolicyViolations:     len(filtered),
			MinSeverity:          minSeverity,
		},
	}
}

// Write encodes the report as JSON.
func (r Report) Write(w io.Writer, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// ReadChanges decodes the raw vulnerability report, a JSON array of change
// objects. Malformed input is the one fatal error class of the run.
func ReadChanges(r io.Reader) ([]types.VulnerableChange, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read vulnerability input: %w", err)
	}

	var changes []types.VulnerableChange
	if err := json.Unmarshal(data, &changes); err != nil {
		return nil, fmt.Errorf("failed to parse vulnerability input: %w", err)
	}
	return changes, nil
}
