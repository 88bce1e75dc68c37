package github

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func notFoundContents(mux *http.ServeMux) {
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/contents/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})
}

func TestConfigFileNames(t *testing.T) {
	names := ConfigFileNames()
	require.Equal(t, ".branch-name-lint.json", names[0])
	require.Equal(t, "package.json", names[len(names)-1])

	names[0] = "changed"
	require.Equal(t, ".branch-name-lint.json", ConfigFileNames()[0])
}

func TestLoadConfig_LocalPathSkipsRemote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yml")
	require.NoError(t, os.WriteFile(path, []byte("banned: [tmp]\n"), 0o644))

	// A nil client would panic if the repository were read.
	repo := NewRepository(nil, "testowner", "testrepo")
	cfg, err := repo.LoadConfig(context.Background(), nil, path, "ignored.json")
	require.NoError(t, err)
	require.Equal(t, []string{"tmp"}, *cfg.Banned)
}

func TestLoadConfig_RemotePath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/contents/ci/lint.star", contentHandler(`config = {"prefixes": ["ci"]}`))
	repo := newTestRepo(t, mux)

	cfg, err := repo.LoadConfig(context.Background(), nil, "", "ci/lint.star")
	require.NoError(t, err)
	require.Equal(t, []string{"ci"}, cfg.Prefixes.Value)
}

func TestLoadConfig_RemotePathMissing(t *testing.T) {
	mux := http.NewServeMux()
	notFoundContents(mux)
	repo := newTestRepo(t, mux)

	_, err := repo.LoadConfig(context.Background(), nil, "", "missing.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "fetching remote config missing.json")
}

func TestLoadConfig_FirstDiscoveredFile(t *testing.T) {
	mux := http.NewServeMux()
	notFoundContents(mux)
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/contents/.branch-name-lint.yaml", contentHandler("skip: [main]\n"))
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/contents/package.json", contentHandler(`{"branchNameLinter": {"skip": ["other"]}}`))
	repo := newTestRepo(t, mux)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg, err := repo.LoadConfig(context.Background(), logger, "", "")
	require.NoError(t, err)
	require.Equal(t, []string{"main"}, *cfg.Skip)
	require.Contains(t, logs.String(), "file=.branch-name-lint.yaml")
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	mux := http.NewServeMux()
	notFoundContents(mux)
	repo := newTestRepo(t, mux)

	cfg, err := repo.LoadConfig(context.Background(), nil, "", "")
	require.NoError(t, err)
	require.Equal(t, []string{"feature", "hotfix", "release"}, cfg.Prefixes.Value)
}

func TestLoadConfig_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/contents/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})
	repo := newTestRepo(t, mux)

	_, err := repo.LoadConfig(context.Background(), nil, "", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "fetching remote config")
}

func TestLoadConfig_InvalidRemoteFile(t *testing.T) {
	mux := http.NewServeMux()
	notFoundContents(mux)
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/contents/.branch-name-lint.json", contentHandler(`{"regex": "("}`))
	repo := newTestRepo(t, mux)

	_, err := repo.LoadConfig(context.Background(), nil, "", "")
	require.Error(t, err)
}
