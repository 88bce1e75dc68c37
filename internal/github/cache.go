package github

import (
	"sync"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/git"
)

// apiCache holds GitHub API responses for the lifetime of one Repository.
// All fields are protected by a read-write mutex for concurrent safety.
type apiCache struct {
	mu sync.RWMutex

	branches        []git.Branch
	branchesFetched bool

	defaultBranch string
}

func newCache() *apiCache {
	return &apiCache{}
}

func (c *apiCache) getBranches() ([]git.Branch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.branches, c.branchesFetched
}

func (c *apiCache) putBranches(branches []git.Branch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.branches = branches
	c.branchesFetched = true
}

func (c *apiCache) getDefaultBranch() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaultBranch, c.defaultBranch != ""
}

func (c *apiCache) putDefaultBranch(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultBranch = name
}
