package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

// headMarker flags the head branch in the first table column.
const headMarker = "*"

// WriteTable renders entries as a table followed by a summary line. Status
// and tip cells are styled when useColor is set.
func WriteTable(w io.Writer, entries []Entry, useColor bool) error {
	theme := DefaultTheme()
	style := func(s lipgloss.Style, text string) string {
		if !useColor || text == "" {
			return text
		}
		return s.Render(text)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Branch", "Tip", "Status", "Rule", "Message"})

	for _, e := range entries {
		head := ""
		if e.Head {
			head = headMarker
		}

		status := style(theme.Success, e.Status.String())
		if !e.Passed() {
			status = style(theme.Error, e.Status.String())
		}

		messages := make([]string, len(e.Diagnostics))
		for i, d := range e.Diagnostics {
			messages[i] = d.Message
		}
		t.AppendRow(table.Row{
			head,
			e.Branch,
			style(theme.Muted, e.Tip),
			status,
			string(e.Rule),
			strings.Join(messages, "\n"),
		})
	}
	t.Render()

	r := NewReport(entries)
	_, err := fmt.Fprintf(w, "%d branches checked, %d passed, %d failed\n", len(entries), r.Passed, r.Failed)
	return err
}
