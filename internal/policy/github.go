// ABOUTME: Remote policy source reading raw policy files from a GitHub repository.
// ABOUTME: Probes a fixed candidate set of ecosystems and fetches lists over HTTPS.

package policy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gh-action-pr-demo/policygate/internal/cache"
	"github.com/sirupsen/logrus"
)

// defaultRawContentBase is the raw-content host serving repository files.
const defaultRawContentBase = "https://raw.githubusercontent.com"

// discoveryCandidates is the fixed set of well-known ecosystems probed during
// remote discovery. A policy file for an ecosystem outside this set is never
// discovered in remote mode.
var discoveryCandidates = []string{
	"maven",
	"npm",
	"pip",
	"go",
	"gradle",
	"cargo",
	"composer",
	"nuget",
	"rubygems",
}

// discoveryConcurrency bounds parallel probe requests during discovery.
const discoveryConcurrency = 4

// GitHubSource implements Source against raw repository content.
type GitHubSource struct {
	baseURL string
	repo    string // "owner/name"
	ref     string // branch, tag, or commit
	path    string // path prefix inside the repository
	client  *http.Client
	cache   *cache.ListCache
	logger  *logrus.Logger
}

func NewGitHubSource(repo, ref, path string, logger *logrus.Logger) *GitHubSource {
	return &GitHubSource{
		baseURL: defaultRawContentBase,
		repo:    repo,
		ref:     ref,
		path:    path,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache.NewListCache(logger),
		logger:  logger,
	}
}

func (g *GitHubSource) Name() string {
	return "github"
}

func (g *GitHubSource) policyURL(ecosystem string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s%s", g.baseURL, g.repo, g.ref, g.path, ecosystem, policyFileExt)
}

// Discover probes each candidate ecosystem's policy URL. Probes run
// concurrently but independently: a failed probe only removes its own
// ecosystem from the result. Successful probe bodies are cached so the
// subsequent Fetch does not repeat the request.
func (g *GitHubSource) Discover(ctx context.Context) []string {
	logger := g.logger.WithField("operation", "discover_policies_github")

	semaphore := make(chan struct{}, discoveryConcurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var ecosystems []string

	for _, candidate := range discoveryCandidates {
		wg.Add(1)
		go func(ecosystem string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			list, ok := g.retrieve(ctx, ecosystem)
			if !ok {
				return
			}
			g.cache.Set(g.policyURL(ecosystem), list)

			mu.Lock()
			ecosystems = append(ecosystems, ecosystem)
			mu.Unlock()
		}(candidate)
	}

	wg.Wait()
	sort.Strings(ecosystems)

	logger.WithFields(logrus.Fields{
		"candidates":      len(discoveryCandidates),
		"ecosystem_count": len(ecosystems),
	}).Info("Remote policy discovery completed")

	return ecosystems
}

// Fetch returns one ecosystem's policy list, from the cache when discovery
// already retrieved it. Any retrieval failure degrades to an empty list.
func (g *GitHubSource) Fetch(ctx context.Context, ecosystem string) List {
	if list, ok := g.cache.Get(g.policyURL(ecosystem)); ok {
		return list
	}

	list, ok := g.retrieve(ctx, ecosystem)
	if !ok {
		return nil
	}
	g.cache.Set(g.policyURL(ecosystem), list)
	return list
}

// retrieve performs the HTTP GET for one ecosystem. The second return value
// reports whether the policy file exists; a non-200 status or transport error
// both count as absence.
func (g *GitHubSource) retrieve(ctx context.Context, ecosystem string) (List, bool) {
	logger := g.logger.WithFields(logrus.Fields{
		"operation": "fetch_policy_github",
		"ecosystem": ecosystem,
	})

	url := g.policyURL(ecosystem)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.WithError(err).Warn("Failed to build policy request")
		return nil, false
	}

	resp, err := g.client.Do(req)
	if err != nil {
		logger.WithError(err).WithField("url", url).Warn("Policy fetch failed, treating as absent")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.WithFields(logrus.Fields{
			"url":    url,
			"status": resp.StatusCode,
		}).Debug("No policy file at URL")
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).WithField("url", url).Warn("Failed to read policy response")
		return nil, false
	}

	return ParseList(string(body)), true
}
