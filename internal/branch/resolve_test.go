package branch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/config"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/git"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func repoOn(name string) *git.MockRepository {
	return &git.MockRepository{
		CurrentBranchFunc: func(context.Context) (string, error) { return name, nil },
	}
}

func effective(override *config.Config) config.Effective {
	cfg, err := config.NewBuilder().Add(override).Build()
	if err != nil {
		panic(err)
	}
	return config.NewEffective(cfg)
}

func TestResolve_Priority(t *testing.T) {
	ctx := context.Background()
	vars := env(map[string]string{"GITHUB_REF": "refs/heads/feature/from-env"})

	tests := []struct {
		name   string
		cfg    *config.Config
		src    Sources
		want   string
		source Source
	}{
		{
			name:   "option beats everything",
			cfg:    &config.Config{Branch: config.On("feature/option")},
			src:    Sources{Flag: "feature/flag", LookupEnv: vars, Repo: repoOn("feature/vcs")},
			want:   "feature/option",
			source: SourceOption,
		},
		{
			name:   "flag beats env",
			src:    Sources{Flag: "feature/flag", LookupEnv: vars, Repo: repoOn("feature/vcs")},
			want:   "feature/flag",
			source: SourceFlag,
		},
		{
			name:   "env beats vcs",
			src:    Sources{LookupEnv: vars, Repo: repoOn("feature/vcs")},
			want:   "feature/from-env",
			source: SourceEnv,
		},
		{
			name:   "vcs last",
			src:    Sources{LookupEnv: env(nil), Repo: repoOn("feature/vcs\n")},
			want:   "feature/vcs",
			source: SourceVCS,
		},
		{
			name:   "disabled option falls through",
			cfg:    &config.Config{Branch: config.Off[string]()},
			src:    Sources{LookupEnv: env(nil), Repo: repoOn("feature/vcs")},
			want:   "feature/vcs",
			source: SourceVCS,
		},
		{
			name:   "empty option falls through",
			cfg:    &config.Config{Branch: config.On("")},
			src:    Sources{Flag: "feature/flag"},
			want:   "feature/flag",
			source: SourceFlag,
		},
		{
			name:   "whitespace flag ignored",
			src:    Sources{Flag: "  ", LookupEnv: vars},
			want:   "feature/from-env",
			source: SourceEnv,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(ctx, effective(tt.cfg), tt.src)
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Name)
			require.Equal(t, tt.source, res.Source)
		})
	}
}

func TestResolve_OptionVerbatim(t *testing.T) {
	res, err := Resolve(context.Background(), effective(&config.Config{Branch: config.On(" feature/x ")}), Sources{})
	require.NoError(t, err)
	require.Equal(t, " feature/x ", res.Name)
}

func TestResolve_GithubRefStripped(t *testing.T) {
	res, err := Resolve(context.Background(), effective(nil), Sources{
		LookupEnv: env(map[string]string{"GITHUB_REF": "refs/heads/feature/x"}),
	})
	require.NoError(t, err)
	require.Equal(t, "feature/x", res.Name)
	require.Equal(t, "GITHUB_REF", res.EnvVariable)
}

func TestResolve_GithubRefWithoutPrefix(t *testing.T) {
	res, err := Resolve(context.Background(), effective(nil), Sources{
		LookupEnv: env(map[string]string{"GITHUB_REF": "refs/tags/v1.0.0"}),
	})
	require.NoError(t, err)
	require.Equal(t, "refs/tags/v1.0.0", res.Name)
}

func TestResolve_CustomVariableUsedRaw(t *testing.T) {
	eff := effective(&config.Config{BranchNameEnvVariable: config.On("CI_BRANCH")})
	res, err := Resolve(context.Background(), eff, Sources{
		LookupEnv: env(map[string]string{
			"CI_BRANCH":  "refs/heads/feature/raw",
			"GITHUB_REF": "refs/heads/feature/ignored",
		}),
	})
	require.NoError(t, err)
	require.Equal(t, "refs/heads/feature/raw", res.Name)
	require.Equal(t, "CI_BRANCH", res.EnvVariable)
}

func TestResolve_LegacyVariableName(t *testing.T) {
	eff := effective(&config.Config{BranchEnvVariable: config.On("BRANCH")})
	res, err := Resolve(context.Background(), eff, Sources{
		LookupEnv: env(map[string]string{"BRANCH": " feature/legacy\n"}),
	})
	require.NoError(t, err)
	require.Equal(t, "feature/legacy", res.Name)
}

func TestResolve_EmptyEnvFallsThrough(t *testing.T) {
	res, err := Resolve(context.Background(), effective(nil), Sources{
		LookupEnv: env(map[string]string{"GITHUB_REF": ""}),
		Repo:      repoOn("feature/vcs"),
	})
	require.NoError(t, err)
	require.Equal(t, SourceVCS, res.Source)
}

func TestResolve_EnvDisabled(t *testing.T) {
	eff := effective(&config.Config{BranchEnvVariable: config.Off[string]()})
	res, err := Resolve(context.Background(), eff, Sources{
		LookupEnv: env(map[string]string{"GITHUB_REF": "refs/heads/feature/x"}),
		Repo:      repoOn("feature/vcs"),
	})
	require.NoError(t, err)
	require.Equal(t, "feature/vcs", res.Name)
}

func TestResolve_VCSNotQueriedWhenEarlierSourceWins(t *testing.T) {
	repo := &git.MockRepository{
		CurrentBranchFunc: func(context.Context) (string, error) {
			t.Fatal("repository must not be queried")
			return "", nil
		},
	}
	_, err := Resolve(context.Background(), effective(nil), Sources{Flag: "feature/x", Repo: repo})
	require.NoError(t, err)
}

func TestResolve_VCSError(t *testing.T) {
	repo := &git.MockRepository{
		CurrentBranchFunc: func(context.Context) (string, error) {
			return "", git.ErrNotRepository
		},
	}
	_, err := Resolve(context.Background(), effective(nil), Sources{LookupEnv: env(nil), Repo: repo})
	require.Error(t, err)
	require.ErrorIs(t, err, git.ErrNotRepository)
	require.Contains(t, err.Error(), "reading current branch")
}

func TestResolve_NoSource(t *testing.T) {
	_, err := Resolve(context.Background(), effective(nil), Sources{LookupEnv: env(nil)})
	require.True(t, errors.Is(err, ErrNoSource))
}
