package output

import (
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/git"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/lint"
)

// Entry is the outcome for one branch together with what version control
// knows about that branch.
type Entry struct {
	lint.Outcome
	// Head marks the checked-out branch, or a remote's default branch.
	Head bool `json:"head,omitempty"`
	// Tip is the abbreviated tip SHA. Empty when unknown.
	Tip string `json:"tip,omitempty"`
}

// LintBranches validates every branch with one policy.
func LintBranches(policy *lint.Policy, branches []git.Branch) []Entry {
	entries := make([]Entry, len(branches))
	for i, b := range branches {
		entries[i] = Entry{
			Outcome: policy.Validate(b.FriendlyName()),
			Head:    b.IsHead,
			Tip:     b.ShortSha(),
		}
	}
	return entries
}
