package surface

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
)

// TerminalRenderer renders a Report as colored terminal output. Colors are
// off when NoColor is set or the NO_COLOR environment variable exists.
type TerminalRenderer struct {
	NoColor bool
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func (r *TerminalRenderer) noColor() bool {
	if r.NoColor {
		return true
	}
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func (r *TerminalRenderer) bold(s string) string {
	return r.colored(s, colorBold)
}

func (r *TerminalRenderer) dim(s string) string {
	return r.colored(s, colorDim)
}

func (r *TerminalRenderer) colored(s, color string) string {
	if r.noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func rankColor(rank, n int) string {
	switch {
	case rank == 1:
		return colorGreen
	case rank == n && n > 1:
		return colorRed
	default:
		return colorYellow
	}
}

func (r *TerminalRenderer) Render(w io.Writer, report *Report) error {
	res := report.Result

	// Header
	title := "Fuzzy SAW ranking"
	if report.Title != "" {
		title += ": " + report.Title
	}
	fmt.Fprintf(w, "%s\n\n", r.bold(title))

	fmt.Fprintf(w, "Analyzed: %d criteria / %d alternatives\n\n",
		len(res.WeightSummary), len(res.AggregatedScores))

	for _, issue := range report.Issues {
		fmt.Fprintf(w, "%s\n", r.colored(issue.String(), colorYellow))
	}
	if len(report.Issues) > 0 {
		fmt.Fprintln(w)
	}

	// Weights
	fmt.Fprintln(w, r.bold("Weights:"))
	tw := newTable(w)
	fmt.Fprintln(tw, "  ID\tCriterion\tType\tRaw\tNormalized")
	for _, ws := range res.WeightSummary {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
			ws.ID, ws.Name, ws.Type, formatValue(ws.RawWeight), formatValue(ws.NormalizedWeight))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	// References
	if refs := res.ReferenceOrder(); len(refs) > 0 {
		fmt.Fprintln(w, r.bold("Normalization references:"))
		tw = newTable(w)
		fmt.Fprintln(tw, "  Criterion\tType\tMax\tMin")
		for _, ref := range refs {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
				report.criterionName(ref.CriterionID), ref.Type, formatValue(ref.Max), formatValue(ref.Min))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	for _, m := range []struct {
		name string
		rows []saw.MatrixRow
	}{
		{"Decision matrix:", res.DecisionMatrix},
		{"Normalized matrix:", res.NormalizedMatrix},
		{"Weighted matrix:", res.WeightedMatrix},
	} {
		if err := r.renderMatrix(w, m.name, m.rows); err != nil {
			return err
		}
	}

	// Ranking
	if len(res.Ranking) == 0 {
		fmt.Fprintln(w, "No alternatives to rank.")
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, r.bold("Ranking:"))
		tw = newTable(w)
		for i, s := range res.Ranking {
			fmt.Fprintf(tw, "  %d.\t%s\t%s\n",
				i+1, s.AlternativeName, r.colored(formatValue(s.Score), rankColor(i+1, len(res.Ranking))))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	// Interpretation
	if n := report.Narrative; n != nil && !n.Empty() {
		fmt.Fprintln(w, r.bold("Interpretation:"))
		for _, line := range n.Lines() {
			for _, l := range wrapText(line, 70) {
				fmt.Fprintf(w, "  %s\n", l)
			}
		}
		fmt.Fprintln(w)
		for _, e := range n.Entries {
			fmt.Fprintf(w, "  #%d %s (%s)\n", e.Rank, r.bold(e.Score.AlternativeName), e.Remark)
			for _, l := range wrapText(e.Text, 66) {
				fmt.Fprintf(w, "     %s\n", r.dim(l))
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}

func (r *TerminalRenderer) renderMatrix(w io.Writer, name string, rows []saw.MatrixRow) error {
	if len(rows) == 0 {
		return nil
	}
	cols := columns(rows)

	fmt.Fprintln(w, r.bold(name))
	tw := newTable(w)
	fmt.Fprintf(tw, "  Alternative\t%s\n", strings.Join(cols, "\t"))
	for _, row := range rows {
		cells := make([]string, len(row.Values))
		for i, c := range row.Values {
			cells[i] = formatValue(c.Value)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", row.AlternativeName, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
