// ABOUTME: Static in-memory policy source for mock mode and tests.
// ABOUTME: Serves a fixed mapping without filesystem or network access.

package policy

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
)

// StaticSource implements Source over a fixed in-memory mapping.
type StaticSource struct {
	policies map[string]List
	logger   *logrus.Logger
}

func NewStaticSource(policies map[string]List, logger *logrus.Logger) *StaticSource {
	return &StaticSource{
		policies: policies,
		logger:   logger,
	}
}

// NewMockSource returns a static source with sample policies, for exercising
// the gate end to end without a policy repository.
func NewMockSource(logger *logrus.Logger) *StaticSource {
	return NewStaticSource(map[string]List{
		"npm":   {"lodash", "minimist", "left-pad"},
		"maven": {"org.apache.logging.log4j:log4j-core", "com.fasterxml.jackson.core:jackson-databind"},
		"pip":   {"requests", "urllib3"},
	}, logger)
}

func (s *StaticSource) Name() string {
	return "static"
}

func (s *StaticSource) Discover(ctx context.Context) []string {
	ecosystems := make([]string, 0, len(s.policies))
	for ecosystem := range s.policies {
		ecosystems = append(ecosystems, ecosystem)
	}
	sort.Strings(ecosystems)
	return ecosystems
}

func (s *StaticSource) Fetch(ctx context.Context, ecosystem string) List {
	return s.policies[ecosystem]
}
