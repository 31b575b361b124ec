// ABOUTME: In-memory caching of fetched policy lists to avoid duplicate HTTP requests.
// ABOUTME: Remote discovery probes and subsequent fetches share one retrieval per URL.

package cache

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// ListCache stores parsed policy lists keyed by the URL they were fetched
// from. Entries live for the duration of the run; the process is one-shot so
// no expiration is needed.
type ListCache struct {
	cache  map[string][]string
	mutex  sync.RWMutex
	logger *logrus.Logger
}

func NewListCache(logger *logrus.Logger) *ListCache {
	return &ListCache{
		cache:  make(map[string][]string),
		logger: logger,
	}
}

// Get returns the cached list for url and whether it was present. A cached
// empty list is distinct from a miss.
func (c *ListCache) Get(url string) ([]string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	list, exists := c.cache[url]
	if !exists {
		return nil, false
	}

	c.logger.WithField("url", url).Debug("Policy cache hit")
	return list, true
}

func (c *ListCache) Set(url string, list []string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache[url] = list

	c.logger.WithFields(logrus.Fields{
		"url":     url,
		"entries": len(list),
	}).Debug("Cached policy list")
}

// Len returns the number of cached lists.
func (c *ListCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}
