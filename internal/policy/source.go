// ABOUTME: Source interfaces and shared parsing for per-ecosystem policy lists.
// ABOUTME: Defines the never-fails retrieval contract shared by all source variants.

package policy

import (
	"context"
	"strings"
)

// List is an ordered sequence of package identities for one ecosystem.
// Duplicates are harmless since matching is existential.
type List []string

// Source abstracts retrieval of policy lists from a local directory or a
// remote repository. Retrieval never fails the caller: on any error a source
// logs a diagnostic and returns empty data, so a run continues with degraded
// rather than absent policy coverage.
type Source interface {
	Name() string

	// Discover returns the ecosystem names that have a policy list available.
	Discover(ctx context.Context) []string

	// Fetch returns the policy list for an ecosystem, empty if unavailable.
	Fetch(ctx context.Context, ecosystem string) List
}

// ParseList splits raw policy file content into entries. Lines are trimmed;
// blank lines and lines starting with '#' are dropped.
func ParseList(content string) List {
	var list List
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	return list
}
