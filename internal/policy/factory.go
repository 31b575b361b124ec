// ABOUTME: Factory for creating policy sources from configuration.
// ABOUTME: Centralizes source instantiation and validation logic.

package policy

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SourceConfig holds configuration for creating a policy source.
type SourceConfig struct {
	Kind     string // "local" or "github"
	Repo     string // policy repository, "owner/name" (github)
	Ref      string // revision reference (github)
	Path     string // path prefix inside the repository (github)
	Dir      string // policy directory (local)
	MockMode bool   // serve built-in sample policies instead
}

// NewSource creates a policy source based on configuration.
func NewSource(config *SourceConfig, logger *logrus.Logger) (Source, error) {
	if config.MockMode {
		logger.Info("Using mock policy source for testing")
		return NewMockSource(logger), nil
	}

	switch config.Kind {
	case "local":
		return NewLocalSource(config.Dir, logger), nil
	case "github":
		if config.Repo == "" {
			return nil, fmt.Errorf("policy repository is required for github source")
		}
		return NewGitHubSource(config.Repo, config.Ref, config.Path, logger), nil
	default:
		return nil, fmt.Errorf("unsupported policy source: %s", config.Kind)
	}
}
