package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindConfigFile_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, ".branch-name-lint.yml")
	writeFile(t, want, "banned: [tmp]\n")

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	require.Equal(t, want, FindConfigFile(nested))
}

func TestFindConfigFile_NearestWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".branch-name-lint.yml"), "")
	nearer := filepath.Join(root, "sub", ".branch-name-lint.json")
	writeFile(t, nearer, "{}")

	require.Equal(t, nearer, FindConfigFile(filepath.Join(root, "sub")))
}

func TestFindConfigFile_DedicatedFileBeforeManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"branchNameLinter": {}}`)
	want := filepath.Join(root, ".branch-name-lint.star")
	writeFile(t, want, `config = {}`)

	require.Equal(t, want, FindConfigFile(root))
}

func TestFindConfigFile_ManifestNeedsSection(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "package.json")
	writeFile(t, outer, `{"name": "outer", "branchNameLinter": {"skip": ["ci"]}}`)
	writeFile(t, filepath.Join(root, "pkg", "package.json"), `{"name": "inner"}`)

	require.Equal(t, outer, FindConfigFile(filepath.Join(root, "pkg")))
}

func TestFindConfigFile_InvalidManifestIgnored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{not json`)

	got := FindConfigFile(root)
	require.NotEqual(t, filepath.Join(root, "package.json"), got)
}

func TestFindConfigFile_DirectoryNamedLikeConfigIgnored(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".branch-name-lint.json"), 0o755))
	want := filepath.Join(root, ".branch-name-lint.yml")
	writeFile(t, want, "")

	require.Equal(t, want, FindConfigFile(root))
}
