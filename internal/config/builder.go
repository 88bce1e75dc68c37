package config

import (
	"errors"
	"fmt"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/pattern"
)

// Builder constructs a Config by layering overrides on top of defaults.
type Builder struct {
	overrides []*Config
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a configuration override. Overrides are applied in order:
// later overrides take precedence over earlier ones.
func (b *Builder) Add(override *Config) *Builder {
	if override != nil {
		b.overrides = append(b.overrides, override)
	}
	return b
}

// Build constructs the final configuration by starting with defaults,
// applying all overrides, and validating the result. The returned Config
// shares no mutable state with the overrides.
func (b *Builder) Build() (*Config, error) {
	cfg := CreateDefaultConfiguration()

	for _, override := range b.overrides {
		mergeConfig(cfg, override)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return clone(cfg), nil
}

// mergeConfig applies non-nil fields from src to dst. The overlay is shallow:
// a supplied list or map replaces the destination value whole.
func mergeConfig(dst, src *Config) {
	if src.Prefixes != nil {
		dst.Prefixes = src.Prefixes
	}
	if src.Suggestions != nil {
		dst.Suggestions = src.Suggestions
	}
	if src.Banned != nil {
		dst.Banned = src.Banned
	}
	if src.Skip != nil {
		dst.Skip = src.Skip
	}
	if src.Disallowed != nil {
		dst.Disallowed = src.Disallowed
	}

	switch {
	case src.Separator != nil:
		dst.Separator = src.Separator
	case src.LegacySeparator != nil:
		dst.Separator = src.LegacySeparator
	}

	if src.Regex != nil {
		dst.Regex = src.Regex
	}
	if src.RegexOptions != nil {
		dst.RegexOptions = src.RegexOptions
	}

	if src.MsgBranchBanned != nil {
		dst.MsgBranchBanned = src.MsgBranchBanned
	}
	if src.MsgBranchDisallowed != nil {
		dst.MsgBranchDisallowed = src.MsgBranchDisallowed
	}
	switch {
	case src.MsgSeparatorRequired != nil:
		dst.MsgSeparatorRequired = src.MsgSeparatorRequired
	case src.LegacyMsgSeparatorRequired != nil:
		dst.MsgSeparatorRequired = src.LegacyMsgSeparatorRequired
	}
	if src.MsgDoesNotMatchRegex != nil {
		dst.MsgDoesNotMatchRegex = src.MsgDoesNotMatchRegex
	}
	if src.MsgPrefixNotAllowed != nil {
		dst.MsgPrefixNotAllowed = src.MsgPrefixNotAllowed
	}
	if src.MsgPrefixSuggestion != nil {
		dst.MsgPrefixSuggestion = src.MsgPrefixSuggestion
	}

	if src.Branch != nil {
		dst.Branch = src.Branch
	}
	if src.BranchNameEnvVariable != nil {
		dst.BranchNameEnvVariable = src.BranchNameEnvVariable
	}
	if src.BranchEnvVariable != nil {
		dst.BranchEnvVariable = src.BranchEnvVariable
	}
}

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if cfg.Separator.Enabled() && cfg.Separator.Value == "" {
		return errors.New("separator must not be empty; use false to disable the separator check")
	}

	if cfg.Regex != nil {
		flags := ""
		if cfg.RegexOptions != nil {
			flags = *cfg.RegexOptions
		}
		if _, err := pattern.Compile(*cfg.Regex, flags); err != nil {
			return fmt.Errorf("invalid regex configuration: %w", err)
		}
	}

	return nil
}

// clone returns a deep copy of cfg so later mutation of an override cannot
// leak into a built configuration.
func clone(cfg *Config) *Config {
	out := *cfg
	if cfg.Prefixes != nil {
		p := *cfg.Prefixes
		p.Value = append([]string(nil), p.Value...)
		out.Prefixes = &p
	}
	if cfg.Suggestions != nil {
		out.Suggestions = make(map[string]string, len(cfg.Suggestions))
		for k, v := range cfg.Suggestions {
			out.Suggestions[k] = v
		}
	}
	out.Separator = cloneSwitch(cfg.Separator)
	out.Branch = cloneSwitch(cfg.Branch)
	out.BranchNameEnvVariable = cloneSwitch(cfg.BranchNameEnvVariable)
	out.BranchEnvVariable = cloneSwitch(cfg.BranchEnvVariable)
	out.Banned = cloneSlicePtr(cfg.Banned)
	out.Skip = cloneSlicePtr(cfg.Skip)
	out.Disallowed = cloneSlicePtr(cfg.Disallowed)
	out.LegacySeparator = nil
	out.LegacyMsgSeparatorRequired = nil
	return &out
}

func cloneSlicePtr(p *[]string) *[]string {
	if p == nil {
		return nil
	}
	return strSlicePtr(append([]string{}, (*p)...))
}

func cloneSwitch(s *Switch[string]) *Switch[string] {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
