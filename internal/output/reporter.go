package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/internal/lint"
)

// Banner prefixes every failure message.
const Banner = "Branch name lint fail!"

// Reporter writes human-readable diagnostics.
type Reporter struct {
	out      io.Writer
	theme    Theme
	useColor bool
}

// NewReporter returns a Reporter writing to out, styled when useColor is set.
func NewReporter(out io.Writer, useColor bool) *Reporter {
	return &Reporter{out: out, theme: DefaultTheme(), useColor: useColor}
}

// Outcome writes one banner-prefixed line per diagnostic. A passing outcome
// writes nothing.
func (r *Reporter) Outcome(o lint.Outcome) error {
	for _, d := range o.Diagnostics {
		if _, err := fmt.Fprintf(r.out, "%s %s\n", r.style(r.theme.Banner, Banner), r.style(r.theme.Message, d.Message)); err != nil {
			return err
		}
	}
	return nil
}

// Error writes a fatal error.
func (r *Reporter) Error(err error) {
	fmt.Fprintln(r.out, r.style(r.theme.Error, "error: "+err.Error()))
}

func (r *Reporter) style(s lipgloss.Style, text string) string {
	if !r.useColor {
		return text
	}
	return s.Render(text)
}
