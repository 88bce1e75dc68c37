package lint

import "github.com/MyCarrier-DevOps/go-branch-name-lint/internal/config"

// Messages formats diagnostics from the configured templates.
type Messages struct {
	templates config.Messages
}

// NewMessages returns a formatter for the given templates.
func NewMessages(templates config.Messages) Messages {
	return Messages{templates: templates}
}

func (m Messages) Banned(branch string) Diagnostic {
	return Diagnostic{Kind: KindBanned, Message: Format(m.templates.Banned, branch)}
}

func (m Messages) Disallowed(branch string) Diagnostic {
	return Diagnostic{Kind: KindDisallowed, Message: Format(m.templates.Disallowed, branch)}
}

func (m Messages) SeparatorRequired(branch, separator string) Diagnostic {
	return Diagnostic{
		Kind:    KindSeparatorRequired,
		Message: Format(m.templates.SeparatorRequired, branch, separator),
	}
}

func (m Messages) RegexMismatch(branch, pattern string) Diagnostic {
	return Diagnostic{
		Kind:    KindRegexMismatch,
		Message: Format(m.templates.RegexMismatch, branch, pattern),
	}
}

func (m Messages) PrefixNotAllowed(prefix string) Diagnostic {
	return Diagnostic{
		Kind:    KindPrefixNotAllowed,
		Message: Format(m.templates.PrefixNotAllowed, prefix),
	}
}

// PrefixSuggestion proposes replacing the current branch name with one that
// uses the suggested prefix.
func (m Messages) PrefixSuggestion(current, suggested string) Diagnostic {
	return Diagnostic{
		Kind:    KindPrefixSuggestion,
		Message: Format(m.templates.PrefixSuggestion, current, suggested),
	}
}
