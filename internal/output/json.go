package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report is the machine-readable result of a lint run.
type Report struct {
	Outcomes []Entry `json:"outcomes"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
}

// NewReport tallies entries.
func NewReport(entries []Entry) Report {
	r := Report{Outcomes: entries}
	for _, e := range entries {
		if e.Passed() {
			r.Passed++
		} else {
			r.Failed++
		}
	}
	if r.Outcomes == nil {
		r.Outcomes = []Entry{}
	}
	return r
}

// WriteJSON writes v as pretty-printed JSON to the writer.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON output: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
