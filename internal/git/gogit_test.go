package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/testutil"
)

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotRepository)
	require.Contains(t, err.Error(), "opening git repository")
}

func TestOpen_FindsRootFromSubdirectory(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("initial")
	tr.WriteFile("sub/dir/file.txt", "x")

	repo, err := Open(tr.Path() + "/sub/dir")
	require.NoError(t, err)

	name, err := repo.CurrentBranch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "master", name)
}

func TestGoGit_CurrentBranch(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	sha := tr.AddCommit("initial")
	tr.CreateBranch("feature/login", sha)
	tr.Checkout("feature/login")

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	name, err := repo.CurrentBranch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "feature/login", name)
}

func TestGoGit_CurrentBranchUnborn(t *testing.T) {
	tr := testutil.NewTestRepo(t)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	name, err := repo.CurrentBranch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "master", name)
}

func TestGoGit_CurrentBranchDetached(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	sha := tr.AddCommit("initial")
	tr.AddCommit("second")
	tr.Detach(sha)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	name, err := repo.CurrentBranch(context.Background())
	require.NoError(t, err)
	require.Equal(t, DetachedHead, name)
}

func TestGoGit_Branches(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	sha := tr.AddCommit("initial")
	tr.CreateBranch("release/1.0", sha)
	tr.CreateBranch("feature/a", sha)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	branches, err := repo.Branches(context.Background())
	require.NoError(t, err)

	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.FriendlyName()
	}
	require.Equal(t, []string{"feature/a", "master", "release/1.0"}, names)

	for _, b := range branches {
		require.NotNil(t, b.Tip)
		require.Equal(t, sha, b.Tip.Sha)
		require.Equal(t, b.FriendlyName() == "master", b.IsHead)
		require.Equal(t, sha[:7], b.ShortSha())
	}
}

func TestGoGit_BranchesUnborn(t *testing.T) {
	tr := testutil.NewTestRepo(t)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	branches, err := repo.Branches(context.Background())
	require.NoError(t, err)
	require.Empty(t, branches)
}
