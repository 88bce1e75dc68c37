// Package config provides branch-name policy configuration: the optional-field
// Config read from files, built-in defaults, layered overrides, and the fully
// resolved Effective configuration consumed by the rule pipeline.
package config

// Config is the branch-name policy as supplied by a user. Every field is
// optional: nil means "not provided, use the default". Fields that can be
// turned off are Switches, so an explicit false is distinguishable from an
// absent key.
type Config struct {
	Prefixes    *Switch[[]string] `yaml:"prefixes,omitempty" json:"prefixes,omitempty"`
	Suggestions map[string]string `yaml:"suggestions,omitempty" json:"suggestions,omitempty"`
	Banned      *[]string         `yaml:"banned,omitempty" json:"banned,omitempty"`
	Skip        *[]string         `yaml:"skip,omitempty" json:"skip,omitempty"`
	Disallowed  *[]string         `yaml:"disallowed,omitempty" json:"disallowed,omitempty"`
	Separator   *Switch[string]   `yaml:"separator,omitempty" json:"separator,omitempty"`

	Regex        *string `yaml:"regex,omitempty" json:"regex,omitempty"`
	RegexOptions *string `yaml:"regexOptions,omitempty" json:"regexOptions,omitempty"`

	MsgBranchBanned      *string `yaml:"msgBranchBanned,omitempty" json:"msgBranchBanned,omitempty"`
	MsgBranchDisallowed  *string `yaml:"msgBranchDisallowed,omitempty" json:"msgBranchDisallowed,omitempty"`
	MsgSeparatorRequired *string `yaml:"msgSeparatorRequired,omitempty" json:"msgSeparatorRequired,omitempty"`
	MsgDoesNotMatchRegex *string `yaml:"msgDoesNotMatchRegex,omitempty" json:"msgDoesNotMatchRegex,omitempty"`
	MsgPrefixNotAllowed  *string `yaml:"msgPrefixNotAllowed,omitempty" json:"msgPrefixNotAllowed,omitempty"`
	MsgPrefixSuggestion  *string `yaml:"msgPrefixSuggestion,omitempty" json:"msgPrefixSuggestion,omitempty"`

	// Branch pins the branch name under test, skipping all other sources.
	Branch *Switch[string] `yaml:"branch,omitempty" json:"branch,omitempty"`
	// BranchNameEnvVariable names an environment variable holding the branch.
	BranchNameEnvVariable *Switch[string] `yaml:"branchNameEnvVariable,omitempty" json:"branchNameEnvVariable,omitempty"`
	// BranchEnvVariable is the older spelling of BranchNameEnvVariable. It is
	// consulted only when BranchNameEnvVariable is unset or disabled.
	BranchEnvVariable *Switch[string] `yaml:"branchEnvVariable,omitempty" json:"branchEnvVariable,omitempty"`

	// Misspelled keys accepted from older configuration files. They apply only
	// when the correctly spelled key is absent.
	LegacySeparator            *Switch[string] `yaml:"seperator,omitempty" json:"seperator,omitempty"`
	LegacyMsgSeparatorRequired *string         `yaml:"msgSeperatorRequired,omitempty" json:"msgSeperatorRequired,omitempty"`
}

// Messages holds one message template per failure kind. Templates use %s
// placeholders filled positionally.
type Messages struct {
	Banned            string `json:"banned"`
	Disallowed        string `json:"disallowed"`
	SeparatorRequired string `json:"separatorRequired"`
	RegexMismatch     string `json:"regexMismatch"`
	PrefixNotAllowed  string `json:"prefixNotAllowed"`
	PrefixSuggestion  string `json:"prefixSuggestion"`
}
