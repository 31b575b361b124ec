// ABOUTME: Violation filter engine reducing scan results to policy violations.
// ABOUTME: Combines loaded policies, identity matching, and the severity threshold.

package filter

import (
	"strings"

	"github.com/gh-action-pr-demo/policygate/internal/metrics"
	"github.com/gh-action-pr-demo/policygate/internal/policy"
	"github.com/gh-action-pr-demo/policygate/internal/severity"
	"github.com/gh-action-pr-demo/policygate/internal/types"
	"github.com/sirupsen/logrus"
)

// Config holds the process-wide configuration, populated once at startup and
// read-only for the remainder of the run.
type Config struct {
	PolicySource string // "local" or "github"
	PolicyRepo   string // policy repository for the github source
	PolicyPath   string // path prefix inside the policy repository
	PolicyRef    string // revision reference in the policy repository
	PolicyDir    string // local policy directory
	MinSeverity  string // minimum severity threshold
	Pretty       bool   // indent the output JSON
	MockMode     bool   // serve built-in sample policies
}

// Engine applies an organization's policy to a vulnerability report.
type Engine struct {
	policies    policy.Store
	minSeverity severity.Severity
	logger      *logrus.Logger
}

func NewEngine(policies policy.Store, minSeverity severity.Severity, logger *logrus.Logger) *Engine {
	return &Engine{
		policies:    policies,
		minSeverity: minSeverity,
		logger:      logger,
	}
}

// Apply reduces the raw changes to policy violations. A change survives when
// its ecosystem has a loaded policy, its package identity matches an entry,
// and at least one vulnerability meets the severity threshold; the surviving
// change carries only the qualifying vulnerabilities. Input order is
// preserved. Per-package metrics are aggregated over the result.
func (e *Engine) Apply(changes []types.VulnerableChange) ([]types.FilteredChange, map[string]types.MetricsEntry) {
	logger := e.logger.WithField("operation", "filter_violations")

	var filtered []types.FilteredChange
	for _, change := range changes {
		ecosystem := strings.ToLower(change.Ecosystem)
		if ecosystem == "" || !e.policies.Has(ecosystem) {
			logger.WithFields(logrus.Fields{
				"ecosystem": change.Ecosystem,
				"package":   change.Name,
			}).Debug("No policy for ecosystem, skipping change")
			continue
		}

		if !policy.Matches(change.Name, e.policies[ecosystem]) {
			continue
		}

		narrowed := e.narrow(change.Vulnerabilities)
		if len(narrowed) == 0 {
			continue
		}

		violation := change
		violation.Vulnerabilities = narrowed
		filtered = append(filtered, violation)

		logger.WithFields(logrus.Fields{
			"ecosystem":       ecosystem,
			"package":         change.Name,
			"vulnerabilities": len(narrowed),
		}).Info("Policy violation found")
	}

	logger.WithFields(logrus.Fields{
		"changes_in":   len(changes),
		"violations":   len(filtered),
		"min_severity": e.minSeverity.String(),
	}).Info("Violation filtering completed")

	return filtered, metrics.Aggregate(filtered)
}

func (e *Engine) narrow(vulns []types.Vulnerability) []types.Vulnerability {
	var kept []types.Vulnerability
	for _, vuln := range vulns {
		if severity.Normalize(vuln.Severity).Meets(e.minSeverity) {
			kept = append(kept, vuln)
		}
	}
	return kept
}
