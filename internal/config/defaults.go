package config

// DefaultBranchEnvVariable is the CI-provided ref variable consulted for the
// branch name when no other environment variable is configured.
const DefaultBranchEnvVariable = "GITHUB_REF"

// DefaultSeparator splits a branch prefix from the rest of the name.
const DefaultSeparator = "/"

// Default message templates.
const (
	DefaultMsgBranchBanned      = `Branches with the name "%s" are not allowed.`
	DefaultMsgBranchDisallowed  = `Pushing to "%s" is not allowed, use git-flow.`
	DefaultMsgSeparatorRequired = `Branch "%s" must contain a separator "%s".`
	DefaultMsgDoesNotMatchRegex = `Branch "%s" does not match the allowed pattern: "%s"`
	DefaultMsgPrefixNotAllowed  = `Branch prefix "%s" is not allowed.`
	DefaultMsgPrefixSuggestion  = `Instead of "%s" try "%s".`
)

// CreateDefaultConfiguration returns a Config with every field populated
// with its built-in default. Regex is the only field without a default.
func CreateDefaultConfiguration() *Config {
	return &Config{
		Prefixes: On([]string{"feature", "hotfix", "release"}),
		Suggestions: map[string]string{
			"features": "feature",
			"feat":     "feature",
			"fix":      "hotfix",
			"releases": "release",
		},
		Banned:     strSlicePtr([]string{"wip"}),
		Skip:       strSlicePtr([]string{}),
		Disallowed: strSlicePtr([]string{"master", "develop", "staging"}),
		Separator:  On(DefaultSeparator),

		MsgBranchBanned:      stringPtr(DefaultMsgBranchBanned),
		MsgBranchDisallowed:  stringPtr(DefaultMsgBranchDisallowed),
		MsgSeparatorRequired: stringPtr(DefaultMsgSeparatorRequired),
		MsgDoesNotMatchRegex: stringPtr(DefaultMsgDoesNotMatchRegex),
		MsgPrefixNotAllowed:  stringPtr(DefaultMsgPrefixNotAllowed),
		MsgPrefixSuggestion:  stringPtr(DefaultMsgPrefixSuggestion),

		Branch:                Off[string](),
		BranchNameEnvVariable: Off[string](),
		BranchEnvVariable:     On(DefaultBranchEnvVariable),
	}
}
