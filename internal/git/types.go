// Package git provides the version-control layer of the linter: a small
// Repository interface, a go-git backend, a git-binary backend, and a mock.
package git

import "strings"

const localBranchPrefix = "refs/heads/"

// DetachedHead is the name reported for a HEAD that points at a commit.
const DetachedHead = "HEAD"

// Commit is the tip of a branch.
type Commit struct {
	Sha string
}

// ShortSha returns the first 7 characters of the SHA.
func (c Commit) ShortSha() string {
	if len(c.Sha) >= 7 {
		return c.Sha[:7]
	}
	return c.Sha
}

// ReferenceName represents a git reference with canonical and friendly forms.
type ReferenceName struct {
	Canonical string // e.g., "refs/heads/feature/x"
	Friendly  string // e.g., "feature/x"
}

// NewReferenceName creates a ReferenceName from a canonical ref path.
func NewReferenceName(canonical string) ReferenceName {
	return ReferenceName{Canonical: canonical, Friendly: strings.TrimPrefix(canonical, localBranchPrefix)}
}

// NewBranchReferenceName creates a ReferenceName for a local branch.
func NewBranchReferenceName(name string) ReferenceName {
	return NewReferenceName(localBranchPrefix + name)
}

// Branch is a local branch.
type Branch struct {
	Name ReferenceName
	// Tip is nil when the tip commit could not be read.
	Tip *Commit
	// IsHead is true for the checked-out branch.
	IsHead bool
}

// FriendlyName returns the friendly name of the branch.
func (b Branch) FriendlyName() string {
	return b.Name.Friendly
}

// ShortSha returns the abbreviated tip SHA, or "" when the tip is unknown.
func (b Branch) ShortSha() string {
	if b.Tip == nil {
		return ""
	}
	return b.Tip.ShortSha()
}
