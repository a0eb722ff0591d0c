package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/workbook"
)

func newInitCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the example workbook to a file",
		Long: `Writes the built-in example workbook (four criteria, three alternatives)
as a starting point. PATH defaults to fsaw.<format>; an existing file is kept
unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := workbook.ParseFormat(format)
			if err != nil {
				return err
			}
			path := firstNonEmpty(argOrEmpty(args), "fsaw."+string(f))
			if err := runInit(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "File format when PATH is omitted: yaml or json")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := workbook.Save(filepath.Clean(path), workbook.Default()); err != nil {
		return err
	}
	return nil
}
