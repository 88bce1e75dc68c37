package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/config"
	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/pattern"
)

// suggestionSeparator joins a suggested branch name when no separator is
// configured.
const suggestionSeparator = "/"

// Policy is a compiled, immutable set of checks. It is safe for concurrent
// use.
type Policy struct {
	skip       map[string]struct{}
	banned     map[string]struct{}
	disallowed map[string]struct{}

	separator        string
	separatorEnabled bool

	regex  *regexp.Regexp
	source string

	prefixesEnabled bool
	prefixes        map[string]struct{}
	suggestions     map[string]string

	messages Messages
}

// NewPolicy compiles eff. It fails only when the configured regex or its
// flags are invalid.
func NewPolicy(eff config.Effective) (*Policy, error) {
	p := &Policy{
		skip:             toSet(eff.Skip, false),
		banned:           toSet(eff.Banned, false),
		disallowed:       toSet(eff.Disallowed, false),
		separator:        eff.Separator,
		separatorEnabled: eff.SeparatorEnabled,
		prefixesEnabled:  eff.PrefixesEnabled,
		prefixes:         toSet(eff.Prefixes, true),
		suggestions:      make(map[string]string, len(eff.Suggestions)),
		messages:         NewMessages(eff.Messages),
	}

	for from, to := range eff.Suggestions {
		p.suggestions[strings.ToLower(from)] = to
	}

	if eff.Regex != "" {
		re, err := pattern.Compile(eff.Regex, eff.RegexOptions)
		if err != nil {
			return nil, fmt.Errorf("compiling policy: %w", err)
		}
		p.regex = re
		p.source = eff.Regex
	}

	return p, nil
}

// Validate compiles eff and validates branch against it.
func Validate(branch string, eff config.Effective) (Outcome, error) {
	p, err := NewPolicy(eff)
	if err != nil {
		return Outcome{}, err
	}
	return p.Validate(branch), nil
}

// Validate runs the checks against branch in order and returns the outcome
// of the first one that decides it.
func (p *Policy) Validate(branch string) Outcome {
	if _, ok := p.skip[branch]; ok {
		return pass(branch, RuleSkip)
	}

	if _, ok := p.banned[branch]; ok {
		return fail(branch, RuleBanned, p.messages.Banned(branch))
	}

	if _, ok := p.disallowed[branch]; ok {
		return fail(branch, RuleDisallowed, p.messages.Disallowed(branch))
	}

	if p.separatorEnabled && !strings.Contains(branch, p.separator) {
		return fail(branch, RuleSeparator, p.messages.SeparatorRequired(branch, p.separator))
	}

	if p.regex != nil && !p.regex.MatchString(branch) {
		return fail(branch, RuleRegex, p.messages.RegexMismatch(branch, p.source))
	}

	if p.separatorEnabled && p.prefixesEnabled {
		if d, ok := p.checkPrefix(branch); !ok {
			return fail(branch, RulePrefix, d)
		}
	}

	return pass(branch, RuleNone)
}

// checkPrefix compares the part of branch before the first separator with
// the allowed prefixes, ignoring case. A rejected prefix yields a single
// diagnostic: the suggestion when one is known, otherwise the rejection.
func (p *Policy) checkPrefix(branch string) (Diagnostic, bool) {
	prefix, rest, _ := strings.Cut(branch, p.separator)
	key := strings.ToLower(prefix)
	if _, ok := p.prefixes[key]; ok {
		return Diagnostic{}, true
	}

	suggested, ok := p.suggestions[key]
	if !ok {
		return p.messages.PrefixNotAllowed(prefix), false
	}

	sep := p.separator
	if sep == "" {
		sep = suggestionSeparator
	}
	return p.messages.PrefixSuggestion(prefix+sep+rest, suggested+sep+rest), false
}

func toSet(items []string, fold bool) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if fold {
			item = strings.ToLower(item)
		}
		set[item] = struct{}{}
	}
	return set
}
