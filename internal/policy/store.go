// ABOUTME: Policy store loading orchestration across discovered ecosystems.
// ABOUTME: Builds the immutable ecosystem-to-policy-list mapping once per run.

package policy

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Store maps an ecosystem name to its policy list. Absence of a key means no
// policy exists for that ecosystem, which is distinct from an empty list.
// A Store is built once per run and read-only thereafter.
type Store map[string]List

// Has reports whether a policy list exists for the ecosystem.
func (s Store) Has(ecosystem string) bool {
	_, ok := s[ecosystem]
	return ok
}

// Loader builds a Store from a Source.
type Loader struct {
	source Source
	logger *logrus.Logger
}

func NewLoader(source Source, logger *logrus.Logger) *Loader {
	return &Loader{
		source: source,
		logger: logger,
	}
}

// LoadAll discovers the available ecosystems and fetches each policy list.
// Ecosystems that discovery did not find are absent from the mapping and are
// later skipped entirely by the filter.
func (l *Loader) LoadAll(ctx context.Context) Store {
	logger := l.logger.WithFields(logrus.Fields{
		"operation": "load_policies",
		"source":    l.source.Name(),
	})

	store := make(Store)
	for _, ecosystem := range l.source.Discover(ctx) {
		list := l.source.Fetch(ctx, ecosystem)
		store[ecosystem] = list

		logger.WithFields(logrus.Fields{
			"ecosystem": ecosystem,
			"entries":   len(list),
		}).Info("Loaded policy list")
	}

	logger.WithField("ecosystem_count", len(store)).Info("Policy loading completed")
	return store
}
