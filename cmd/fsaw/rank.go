package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/surface"
)

func newRankCmd(g *globalOpts) *cobra.Command {
	var (
		outputFmt string
		noColor   bool
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "rank [WORKBOOK]",
		Short: "Rank the alternatives of a workbook",
		Long: `Loads a workbook from a local path, s3://bucket/key or gs://bucket/key
(default: the configured workbook, then the built-in example), runs the SAW
pipeline and renders every intermediate table plus the interpretation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.setup(cmd)
			if err != nil {
				return err
			}
			return runRank(cmd.Context(), a, rankOpts{
				location:  argOrEmpty(args),
				outputFmt: outputFmt,
				noColor:   noColor,
				strict:    strict,
			})
		},
	}

	cmd.Flags().StringVarP(&outputFmt, "output", "o", "", "Output format: text, json or markdown (default from config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the workbook has validation issues")

	return cmd
}

type rankOpts struct {
	location  string
	outputFmt string
	noColor   bool
	strict    bool
}

func runRank(ctx context.Context, a *app, opts rankOpts) error {
	wb, err := a.loadWorkbook(ctx, opts.location)
	if err != nil {
		return err
	}

	if issues := wb.Validate(); opts.strict && len(issues) > 0 {
		lines := make([]string, len(issues))
		for i, issue := range issues {
			lines[i] = "  " + issue.String()
		}
		return fmt.Errorf("workbook has %d validation issue(s):\n%s", len(issues), strings.Join(lines, "\n"))
	}

	renderer, err := surface.New(firstNonEmpty(opts.outputFmt, a.cfg.Output.Format), opts.noColor || !a.cfg.Output.Color)
	if err != nil {
		return err
	}

	result := saw.NewEngine(a.logger).Compute(wb.Criteria, wb.Alternatives)
	return renderer.Render(a.stdout, surface.NewReport(wb, result))
}
