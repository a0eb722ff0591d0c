package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/narrative"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/workbook"
)

func newInterpretCmd(g *globalOpts) *cobra.Command {
	var (
		share     string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "interpret [WORKBOOK]",
		Short: "Explain a ranking in plain language",
		Long: `Prints the narrative for a workbook's ranking. With --share and no
WORKBOOK, the ranking carried by a share link or query string is explained
instead. A computed ranking always takes precedence over a shared one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.setup(cmd)
			if err != nil {
				return err
			}
			return runInterpret(cmd.Context(), a, interpretOpts{
				location:  argOrEmpty(args),
				share:     share,
				outputFmt: outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&share, "share", "", "Share link or query string (data=...) to interpret")
	cmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text or json")

	return cmd
}

type interpretOpts struct {
	location  string
	share     string
	outputFmt string
}

func runInterpret(ctx context.Context, a *app, opts interpretOpts) error {
	var (
		computed []saw.AggregatedScore
		lead     string
	)
	if opts.location != "" || opts.share == "" {
		wb, err := a.loadWorkbook(ctx, opts.location)
		if err != nil {
			return err
		}
		computed = saw.NewEngine(a.logger).Compute(wb.Criteria, wb.Alternatives).Ranking
		lead = leadCriterion(wb)
	}

	shared := narrative.ParseQuery(opts.share)
	if opts.share != "" && len(shared) == 0 {
		fmt.Fprintf(a.stderr, "Warning: share data is empty or malformed\n")
	}

	report := narrative.Interpret(narrative.Choose(computed, shared), lead)

	switch strings.ToLower(opts.outputFmt) {
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "", "text":
		writeNarrative(a.stdout, report)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", opts.outputFmt)
	}
}

func writeNarrative(w io.Writer, report *narrative.Report) {
	for _, line := range report.Lines() {
		fmt.Fprintln(w, line)
	}
	if len(report.Entries) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, e := range report.Entries {
		fmt.Fprintf(w, "Rank %d  %s  score %s  [%s]\n",
			e.Rank, e.Score.AlternativeName, narrative.FormatScore(e.Score.Score), e.Remark)
		fmt.Fprintf(w, "  %s\n", e.Text)
	}
}

func leadCriterion(wb *workbook.Workbook) string {
	if len(wb.Criteria) == 0 {
		return ""
	}
	return wb.Criteria[0].Name
}
