package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateDefaultConfiguration(t *testing.T) {
	cfg := CreateDefaultConfiguration()

	require.Equal(t, []string{"feature", "hotfix", "release"}, cfg.Prefixes.Value)
	require.Equal(t, map[string]string{
		"features": "feature",
		"feat":     "feature",
		"fix":      "hotfix",
		"releases": "release",
	}, cfg.Suggestions)
	require.Equal(t, []string{"wip"}, *cfg.Banned)
	require.Empty(t, *cfg.Skip)
	require.Equal(t, []string{"master", "develop", "staging"}, *cfg.Disallowed)
	require.Equal(t, "/", cfg.Separator.Value)
	require.Nil(t, cfg.Regex)

	require.False(t, cfg.Branch.Enabled())
	require.False(t, cfg.BranchNameEnvVariable.Enabled())
	require.Equal(t, "GITHUB_REF", cfg.BranchEnvVariable.Value)
}

func TestCreateDefaultConfiguration_FreshInstances(t *testing.T) {
	a := CreateDefaultConfiguration()
	b := CreateDefaultConfiguration()

	a.Prefixes.Value[0] = "changed"
	a.Suggestions["feat"] = "changed"

	require.Equal(t, "feature", b.Prefixes.Value[0])
	require.Equal(t, "feature", b.Suggestions["feat"])
}

func TestCreateDefaultConfiguration_Messages(t *testing.T) {
	cfg := CreateDefaultConfiguration()
	require.Equal(t, `Branches with the name "%s" are not allowed.`, *cfg.MsgBranchBanned)
	require.Equal(t, `Pushing to "%s" is not allowed, use git-flow.`, *cfg.MsgBranchDisallowed)
	require.Equal(t, `Branch "%s" must contain a separator "%s".`, *cfg.MsgSeparatorRequired)
	require.Equal(t, `Branch prefix "%s" is not allowed.`, *cfg.MsgPrefixNotAllowed)
	require.Equal(t, `Instead of "%s" try "%s".`, *cfg.MsgPrefixSuggestion)
	require.NotEmpty(t, *cfg.MsgDoesNotMatchRegex)
}
