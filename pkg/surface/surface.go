// Package surface renders ranking results for people and tools.
// Implementations handle different output targets: terminal, Markdown, JSON.
package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/narrative"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/workbook"
)

// ValueDigits is the number of decimals shown for every number.
const ValueDigits = 3

// Renderer produces formatted output from a Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, report *Report) error
}

// Report bundles everything one render needs.
type Report struct {
	Title     string            `json:"title,omitempty"`
	Criteria  []saw.Criterion   `json:"criteria"`
	Result    *saw.Result       `json:"result"`
	Narrative *narrative.Report `json:"narrative"`
	Issues    []workbook.Issue  `json:"issues,omitempty"`
}

// NewReport pairs a workbook with its computed result, interprets the
// ranking and collects validation issues.
func NewReport(wb *workbook.Workbook, result *saw.Result) *Report {
	lead := ""
	if len(wb.Criteria) > 0 {
		lead = wb.Criteria[0].Name
	}
	return &Report{
		Title:     wb.Title,
		Criteria:  wb.Criteria,
		Result:    result,
		Narrative: narrative.Interpret(result.Ranking, lead),
		Issues:    wb.Validate(),
	}
}

// New returns the renderer for an output format name.
func New(format string, noColor bool) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", "text", "terminal":
		return &TerminalRenderer{NoColor: noColor}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
	}
}

func formatValue(v float64) string {
	return saw.FormatFixed(v, ValueDigits)
}

// columns returns the criterion ids of a matrix in cell order.
func columns(rows []saw.MatrixRow) []string {
	if len(rows) == 0 {
		return nil
	}
	return rows[0].Values.Keys()
}

func (r *Report) criterionName(id string) string {
	for _, c := range r.Criteria {
		if c.ID == id {
			if c.Name != "" {
				return c.Name
			}
			break
		}
	}
	return id
}
