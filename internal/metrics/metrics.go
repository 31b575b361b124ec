// ABOUTME: Per-package metrics aggregation over filtered policy violations.
// ABOUTME: Builds the package-keyed summary entries reported alongside the filtered list.

package metrics

import (
	"strings"

	"github.com/gh-action-pr-demo/policygate/internal/severity"
	"github.com/gh-action-pr-demo/policygate/internal/types"
)

// Aggregate builds one MetricsEntry per distinct package name across the
// filtered changes. Counts and the maximum severity are taken over the
// already-narrowed vulnerability list of each change. When the same package
// name appears in multiple changes, the first occurrence wins and later ones
// leave the entry unmodified.
func Aggregate(filtered []types.FilteredChange) map[string]types.MetricsEntry {
	entries := make(map[string]types.MetricsEntry, len(filtered))

	for _, change := range filtered {
		if _, exists := entries[change.Name]; exists {
			continue
		}

		labels := make([]string, 0, len(change.Vulnerabilities))
		for _, vuln := range change.Vulnerabilities {
			labels = append(labels, vuln.Severity)
		}

		entries[change.Name] = types.MetricsEntry{
			Ecosystem:          strings.ToLower(change.Ecosystem),
			Status:             types.StatusUnfixed,
			CurrentVersion:     change.Version,
			VulnerabilityCount: len(change.Vulnerabilities),
			MaxSeverity:        severity.Max(labels).String(),
		}
	}

	return entries
}
