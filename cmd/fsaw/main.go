// Package main provides the fsaw CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/internal/logging"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/internal/source"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/config"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/workbook"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOpts holds the persistent flags shared by every subcommand.
type globalOpts struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	g := &globalOpts{}

	rootCmd := &cobra.Command{
		Use:   "fsaw",
		Short: "Fuzzy SAW decision calculator",
		Long: `fsaw ranks alternatives against weighted benefit and cost criteria with
Simple Additive Weighting, and explains the result in plain language.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to config file (default: nearest .fsaw/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newRankCmd(g),
		newInterpretCmd(g),
		newShareCmd(g),
		newInitCmd(),
		newSessionCmd(g),
	)

	return rootCmd
}

// app is what a command needs after flags and config are resolved.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func (g *globalOpts) setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Resolve(g.configPath)
	if err != nil {
		return nil, err
	}
	level := firstNonEmpty(g.logLevel, cfg.Logging.Level)

	logger, err := logging.NewWriter(cmd.ErrOrStderr(), logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
	}, nil
}

// loadWorkbook reads the workbook named by location, falling back to the
// configured default and then to the built-in seed workbook.
func (a *app) loadWorkbook(ctx context.Context, location string) (*workbook.Workbook, error) {
	location = firstNonEmpty(location, a.cfg.Workbook)
	if location == "" {
		a.logger.Info("using built-in workbook")
		return workbook.Default(), nil
	}

	wb, err := source.Open(ctx, a.cfg.Sources, location)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.stderr, "Loaded %s: %d criteria, %d alternatives\n",
		location, len(wb.Criteria), len(wb.Alternatives))
	return wb, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
