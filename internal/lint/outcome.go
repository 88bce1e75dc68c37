// Package lint checks branch names against a resolved configuration.
//
// A Policy is compiled once from a config.Effective and may validate any
// number of branches. Checks run in a fixed order and the first failing
// check decides the Outcome:
//
//	skip → banned → disallowed → separator → regex → prefix
//
// A failed validation is reported as data in the Outcome. Errors are
// reserved for configurations that cannot be compiled.
package lint

// Status is the result of validating one branch.
type Status int

const (
	Success Status = iota
	Failure
)

func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ExitCode maps the status to a process exit code.
func (s Status) ExitCode() int {
	if s == Success {
		return 0
	}
	return 1
}

// Rule names the check that decided an Outcome.
type Rule string

const (
	// RuleNone is set when every check ran and passed.
	RuleNone       Rule = ""
	RuleSkip       Rule = "skip"
	RuleBanned     Rule = "banned"
	RuleDisallowed Rule = "disallowed"
	RuleSeparator  Rule = "separator"
	RuleRegex      Rule = "regex"
	RulePrefix     Rule = "prefix"
)

// Kind classifies a diagnostic.
type Kind string

const (
	KindBanned            Kind = "banned"
	KindDisallowed        Kind = "disallowed"
	KindSeparatorRequired Kind = "separator-required"
	KindRegexMismatch     Kind = "regex-mismatch"
	KindPrefixNotAllowed  Kind = "prefix-not-allowed"
	KindPrefixSuggestion  Kind = "prefix-suggestion"
)

// Diagnostic is one formatted failure message.
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Outcome is the result of validating a branch.
type Outcome struct {
	Branch      string       `json:"branch"`
	Status      Status       `json:"status"`
	Rule        Rule         `json:"rule,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Passed reports whether the branch satisfied the policy.
func (o Outcome) Passed() bool {
	return o.Status == Success
}

func pass(branch string, rule Rule) Outcome {
	return Outcome{Branch: branch, Status: Success, Rule: rule}
}

func fail(branch string, rule Rule, diags ...Diagnostic) Outcome {
	return Outcome{Branch: branch, Status: Failure, Rule: rule, Diagnostics: diags}
}
