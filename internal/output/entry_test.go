package output

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/config"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/git"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/lint"
)

func defaultPolicy(t *testing.T) *lint.Policy {
	t.Helper()
	cfg, err := config.NewBuilder().Build()
	require.NoError(t, err)
	policy, err := lint.NewPolicy(config.NewEffective(cfg))
	require.NoError(t, err)
	return policy
}

func TestLintBranches(t *testing.T) {
	policy := defaultPolicy(t)

	entries := LintBranches(policy, []git.Branch{
		{Name: git.NewBranchReferenceName("feature/a"), Tip: &git.Commit{Sha: "0123456789"}, IsHead: true},
		{Name: git.NewBranchReferenceName("wip")},
	})
	require.Len(t, entries, 2)

	require.Equal(t, "feature/a", entries[0].Branch)
	require.True(t, entries[0].Passed())
	require.True(t, entries[0].Head)
	require.Equal(t, "0123456", entries[0].Tip)

	require.Equal(t, lint.RuleBanned, entries[1].Rule)
	require.False(t, entries[1].Head)
	require.Empty(t, entries[1].Tip)
}

func TestLintBranches_Empty(t *testing.T) {
	require.Empty(t, LintBranches(defaultPolicy(t), nil))
}
