// ABOUTME: Local directory-based policy source for repository-checked-in policies.
// ABOUTME: Reads <ecosystem>.txt files from a configured policy directory.

package policy

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// policyFileExt is the extension shared by all policy list files.
const policyFileExt = ".txt"

// reservedConfigFile is the gate configuration file living alongside the
// policy lists. It is parsed by an upstream stage, never as a policy list.
const reservedConfigFile = "config.txt"

// LocalSource implements Source over a directory of <ecosystem>.txt files.
type LocalSource struct {
	dir    string
	logger *logrus.Logger
}

func NewLocalSource(dir string, logger *logrus.Logger) *LocalSource {
	return &LocalSource{
		dir:    dir,
		logger: logger,
	}
}

func (l *LocalSource) Name() string {
	return "local"
}

// Discover lists the ecosystems with a policy file in the directory. An
// absent or unreadable directory yields no ecosystems.
func (l *LocalSource) Discover(ctx context.Context) []string {
	logger := l.logger.WithField("operation", "discover_policies_local")

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		logger.WithError(err).WithField("dir", l.dir).Warn("Policy directory not readable, no policies apply")
		return nil
	}

	var ecosystems []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, policyFileExt) || name == reservedConfigFile {
			continue
		}
		ecosystems = append(ecosystems, strings.ToLower(strings.TrimSuffix(name, policyFileExt)))
	}
	sort.Strings(ecosystems)

	logger.WithField("ecosystem_count", len(ecosystems)).Info("Discovered local policy files")
	return ecosystems
}

// Fetch reads and parses one ecosystem's policy file. A missing file is
// treated as an empty list, not an error.
func (l *LocalSource) Fetch(ctx context.Context, ecosystem string) List {
	logger := l.logger.WithFields(logrus.Fields{
		"operation": "fetch_policy_local",
		"ecosystem": ecosystem,
	})

	path := filepath.Join(l.dir, ecosystem+policyFileExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).WithField("path", path).Warn("Failed to read policy file")
		}
		return nil
	}

	return ParseList(string(data))
}
