package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
)

// MarkdownRenderer writes a Report as Markdown tables followed by the
// interpretation.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, report *Report) error {
	_, err := io.WriteString(w, BuildMarkdown(report))
	return err
}

// BuildMarkdown returns the Markdown document for a Report.
func BuildMarkdown(report *Report) string {
	res := report.Result
	var sb strings.Builder

	title := "Fuzzy SAW ranking"
	if report.Title != "" {
		title += ": " + report.Title
	}
	sb.WriteString(fmt.Sprintf("## %s\n\n", escapeCell(title)))

	if len(report.Issues) > 0 {
		sb.WriteString("### Warnings\n\n")
		for _, issue := range report.Issues {
			sb.WriteString(fmt.Sprintf("- `%s` %s\n", issue.Path, issue.Message))
		}
		sb.WriteString("\n")
	}

	// Weights
	sb.WriteString("### Weights\n\n")
	sb.WriteString("| ID | Criterion | Type | Raw | Normalized |\n|----|-----------|------|-----|------------|\n")
	for _, ws := range res.WeightSummary {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			escapeCell(ws.ID), escapeCell(ws.Name), ws.Type, formatValue(ws.RawWeight), formatValue(ws.NormalizedWeight)))
	}
	sb.WriteString("\n")

	if refs := res.ReferenceOrder(); len(refs) > 0 {
		sb.WriteString("### Normalization references\n\n")
		sb.WriteString("| Criterion | Type | Max | Min |\n|-----------|------|-----|-----|\n")
		for _, ref := range refs {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				escapeCell(report.criterionName(ref.CriterionID)), ref.Type, formatValue(ref.Max), formatValue(ref.Min)))
		}
		sb.WriteString("\n")
	}

	writeMatrix(&sb, "Decision matrix", res.DecisionMatrix)
	writeMatrix(&sb, "Normalized matrix", res.NormalizedMatrix)
	writeMatrix(&sb, "Weighted matrix", res.WeightedMatrix)

	// Ranking
	sb.WriteString("### Ranking\n\n")
	if len(res.Ranking) == 0 {
		sb.WriteString("_No alternatives to rank._\n\n")
	} else {
		sb.WriteString("| Rank | Alternative | Score |\n|------|-------------|-------|\n")
		for i, s := range res.Ranking {
			name := escapeCell(s.AlternativeName)
			if i == 0 {
				name = "**" + name + "**"
			}
			sb.WriteString(fmt.Sprintf("| %d | %s | %s |\n", i+1, name, formatValue(s.Score)))
		}
		sb.WriteString("\n")
	}

	if n := report.Narrative; n != nil && !n.Empty() {
		sb.WriteString("### Interpretation\n\n")
		for _, line := range n.Lines() {
			sb.WriteString(line + "\n\n")
		}
		for _, e := range n.Entries {
			sb.WriteString(fmt.Sprintf("- **#%d %s** (%s): %s\n", e.Rank, e.Score.AlternativeName, e.Remark, e.Text))
		}
	}

	return sb.String()
}

func writeMatrix(sb *strings.Builder, name string, rows []saw.MatrixRow) {
	if len(rows) == 0 {
		return
	}
	cols := columns(rows)

	sb.WriteString(fmt.Sprintf("### %s\n\n", name))
	sb.WriteString("| Alternative | " + strings.Join(cols, " | ") + " |\n")
	sb.WriteString("|---" + strings.Repeat("|---", len(cols)) + "|\n")
	for _, row := range rows {
		cells := make([]string, len(row.Values))
		for i, c := range row.Values {
			cells[i] = formatValue(c.Value)
		}
		sb.WriteString("| " + escapeCell(row.AlternativeName) + " | " + strings.Join(cells, " | ") + " |\n")
	}
	sb.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
