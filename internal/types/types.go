// ABOUTME: Common types shared across the policygate system.
// ABOUTME: Defines data structures for vulnerable changes, vulnerabilities, and metrics.

package types

import (
	"encoding/json"
)

// Vulnerability represents a single reported vulnerability on a package.
// Fields beyond the severity label are carried through untouched so the
// filtered output never loses scanner-specific detail.
type Vulnerability struct {
	Severity string `json:"severity"`

	// Extra holds any JSON fields the scanner emitted that we do not model.
	Extra map[string]json.RawMessage `json:"-"`
}

// VulnerableChange represents one reported package with its vulnerabilities,
// as produced by an upstream dependency scan.
type VulnerableChange struct {
	Ecosystem       string          `json:"ecosystem"` // e.g. "npm", "maven"
	Name            string          `json:"name"`      // may embed a namespace, e.g. "org.example:lib"
	Version         string          `json:"version"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`

	// Extra holds any JSON fields we do not model, passed through unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// FilteredChange is a VulnerableChange whose vulnerability list has been
// narrowed to the entries meeting the severity threshold. It is never emitted
// with an empty vulnerability list.
type FilteredChange = VulnerableChange

// MetricsEntry is the per-package aggregate reported alongside the filtered
// changes. Only the first change seen for a package name populates its entry.
type MetricsEntry struct {
	Ecosystem          string `json:"ecosystem"`
	Status             string `json:"status"` // always "unfixed" in current scope
	CurrentVersion     string `json:"current_version"`
	VulnerabilityCount int    `json:"vulnerability_count"`
	MaxSeverity        string `json:"max_severity"`
}

// StatusUnfixed is the fix status recorded for every metrics entry.
const StatusUnfixed = "unfixed"

func (v *Vulnerability) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if sev, ok := raw["severity"]; ok {
		if err := json.Unmarshal(sev, &v.Severity); err != nil {
			return err
		}
		delete(raw, "severity")
	}
	if len(raw) > 0 {
		v.Extra = raw
	}
	return nil
}

func (v Vulnerability) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(v.Extra)+1)
	for k, val := range v.Extra {
		out[k] = val
	}
	if v.Severity != "" {
		out["severity"] = v.Severity
	}
	return json.Marshal(out)
}

func (c *VulnerableChange) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	known := []struct {
		key string
		dst interface{}
	}{
		{"ecosystem", &c.Ecosystem},
		{"name", &c.Name},
		{"version", &c.Version},
		{"vulnerabilities", &c.Vulnerabilities},
	}
	for _, field := range known {
		if val, ok := raw[field.key]; ok {
			if err := json.Unmarshal(val, field.dst); err != nil {
				return err
			}
			delete(raw, field.key)
		}
	}
	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

func (c VulnerableChange) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Extra)+4)
	for k, val := range c.Extra {
		out[k] = val
	}
	out["ecosystem"] = c.Ecosystem
	out["name"] = c.Name
	out["version"] = c.Version
	vulns := c.Vulnerabilities
	if vulns == nil {
		vulns = []Vulnerability{}
	}
	out["vulnerabilities"] = vulns
	return json.Marshal(out)
}
