package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/narrative"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
)

func newShareCmd(g *globalOpts) *cobra.Command {
	var (
		baseURL   string
		queryOnly bool
	)

	cmd := &cobra.Command{
		Use:   "share [WORKBOOK]",
		Short: "Print a link that carries the current ranking",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.setup(cmd)
			if err != nil {
				return err
			}
			return runShare(cmd.Context(), a, argOrEmpty(args), firstNonEmpty(baseURL, a.cfg.Share.BaseURL), queryOnly)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Interpretation page URL (default from config)")
	cmd.Flags().BoolVar(&queryOnly, "query", false, "Print only the data=... query string")

	return cmd
}

func runShare(ctx context.Context, a *app, location, baseURL string, queryOnly bool) error {
	wb, err := a.loadWorkbook(ctx, location)
	if err != nil {
		return err
	}
	ranking := saw.NewEngine(a.logger).Compute(wb.Criteria, wb.Alternatives).Ranking

	var out string
	if queryOnly || baseURL == "" {
		out, err = narrative.ShareQuery(ranking)
	} else {
		out, err = narrative.ShareURL(baseURL, ranking)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, out)
	return nil
}
