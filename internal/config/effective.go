package config

// Effective is a fully resolved configuration with every field guaranteed to
// have a value. Disabled switches resolve to their zero value with the
// matching *Enabled flag cleared. Effective values own their slices and maps;
// callers must treat them as read-only.
type Effective struct {
	Prefixes        []string `json:"prefixes"`
	PrefixesEnabled bool     `json:"prefixesEnabled"`

	Suggestions map[string]string `json:"suggestions"`
	Banned      []string          `json:"banned"`
	Skip        []string          `json:"skip"`
	Disallowed  []string          `json:"disallowed"`

	Separator        string `json:"separator"`
	SeparatorEnabled bool   `json:"separatorEnabled"`

	// Regex is empty when no pattern is configured.
	Regex        string `json:"regex"`
	RegexOptions string `json:"regexOptions"`

	Messages Messages `json:"messages"`

	// Branch is the pinned branch name, empty when disabled.
	Branch string `json:"branch"`
	// BranchNameEnvVariable and BranchEnvVariable are empty when disabled.
	BranchNameEnvVariable string `json:"branchNameEnvVariable"`
	BranchEnvVariable     string `json:"branchEnvVariable"`
}

// NewEffective resolves all optional fields of cfg to concrete values,
// falling back to the built-in defaults for anything cfg leaves unset.
func NewEffective(cfg *Config) Effective {
	if cfg == nil {
		cfg = &Config{}
	}

	defaults := CreateDefaultConfiguration()

	ec := Effective{
		Suggestions: cloneMap(derefMap(cfg.Suggestions, defaults.Suggestions)),
		Banned:      cloneSlice(derefSlice(cfg.Banned, *defaults.Banned)),
		Skip:        cloneSlice(derefSlice(cfg.Skip, *defaults.Skip)),
		Disallowed:  cloneSlice(derefSlice(cfg.Disallowed, *defaults.Disallowed)),

		Regex:        derefString(cfg.Regex, ""),
		RegexOptions: derefString(cfg.RegexOptions, ""),

		Messages: Messages{
			Banned:            derefString(cfg.MsgBranchBanned, DefaultMsgBranchBanned),
			Disallowed:        derefString(cfg.MsgBranchDisallowed, DefaultMsgBranchDisallowed),
			SeparatorRequired: derefString(firstString(cfg.MsgSeparatorRequired, cfg.LegacyMsgSeparatorRequired), DefaultMsgSeparatorRequired),
			RegexMismatch:     derefString(cfg.MsgDoesNotMatchRegex, DefaultMsgDoesNotMatchRegex),
			PrefixNotAllowed:  derefString(cfg.MsgPrefixNotAllowed, DefaultMsgPrefixNotAllowed),
			PrefixSuggestion:  derefString(cfg.MsgPrefixSuggestion, DefaultMsgPrefixSuggestion),
		},
	}

	prefixes := derefSwitch(cfg.Prefixes, defaults.Prefixes)
	ec.PrefixesEnabled = prefixes.Enabled()
	if ec.PrefixesEnabled {
		ec.Prefixes = cloneSlice(prefixes.Value)
	}

	separator := derefSwitch(firstSwitch(cfg.Separator, cfg.LegacySeparator), defaults.Separator)
	ec.SeparatorEnabled = separator.Enabled()
	if ec.SeparatorEnabled {
		ec.Separator = separator.Value
	}

	ec.Branch = switchValue(derefSwitch(cfg.Branch, defaults.Branch))
	ec.BranchNameEnvVariable = switchValue(derefSwitch(cfg.BranchNameEnvVariable, defaults.BranchNameEnvVariable))
	ec.BranchEnvVariable = switchValue(derefSwitch(cfg.BranchEnvVariable, defaults.BranchEnvVariable))

	return ec
}

// EnvVariable returns the name of the environment variable the branch is read
// from: BranchNameEnvVariable when set, otherwise BranchEnvVariable. It is
// empty when both are disabled.
func (ec Effective) EnvVariable() string {
	if ec.BranchNameEnvVariable != "" {
		return ec.BranchNameEnvVariable
	}
	return ec.BranchEnvVariable
}

func derefString(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func derefSlice(p *[]string, fallback []string) []string {
	if p != nil {
		return *p
	}
	return fallback
}

func derefMap(m, fallback map[string]string) map[string]string {
	if m != nil {
		return m
	}
	return fallback
}

func derefSwitch[T any](p, fallback *Switch[T]) *Switch[T] {
	if p != nil {
		return p
	}
	return fallback
}

func firstString(ps ...*string) *string {
	for _, p := range ps {
		if p != nil {
			return p
		}
	}
	return nil
}

func firstSwitch[T any](ps ...*Switch[T]) *Switch[T] {
	for _, p := range ps {
		if p != nil {
			return p
		}
	}
	return nil
}

func switchValue(s *Switch[string]) string {
	if !s.Enabled() {
		return ""
	}
	return s.Value
}

func cloneSlice(ss []string) []string {
	return append([]string{}, ss...)
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
