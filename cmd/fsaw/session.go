package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/internal/store"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/narrative"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/surface"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/workbook"
)

const sessionHelp = `Commands:
  show                              list criteria and alternatives
  rank                              compute and render the ranking
  interpret                         explain the current ranking
  share                             print a share link for the current ranking
  add-criterion                     add a benefit criterion (weight 0.1)
  set-criterion ID name|weight|type VALUE
  rm-criterion ID
  add-alt                           add an alternative with zero values
  rename-alt ID NAME
  rm-alt ID
  set ALT_ID CRITERION_ID VALUE     set a raw value
  reset                             restore the example workbook
  help
  quit
`

func newSessionCmd(g *globalOpts) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "session [WORKBOOK]",
		Short: "Edit a workbook interactively and re-rank after every change",
		Long: `Starts a line-oriented editor over an in-memory copy of the workbook.
Nothing is written back; every rank recomputes from a fresh snapshot.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.setup(cmd)
			if err != nil {
				return err
			}
			wb, err := a.loadWorkbook(cmd.Context(), argOrEmpty(args))
			if err != nil {
				return err
			}
			s := &session{
				app:      a,
				store:    store.New(wb),
				renderer: &surface.TerminalRenderer{NoColor: noColor || !a.cfg.Output.Color},
			}
			return s.run(cmd.Context(), cmd.InOrStdin())
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")

	return cmd
}

type session struct {
	app      *app
	store    *store.Store
	renderer surface.Renderer
}

var errQuit = errors.New("quit")

func (s *session) run(ctx context.Context, in io.Reader) error {
	out := s.app.stdout
	fmt.Fprint(out, "Type 'help' for commands.\n")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "fsaw> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	out := s.app.stdout
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help", "?":
		fmt.Fprint(out, sessionHelp)
	case "quit", "exit":
		return errQuit
	case "show":
		s.show()
	case "rank":
		wb := s.store.Snapshot()
		result := saw.NewEngine(s.app.logger).Compute(wb.Criteria, wb.Alternatives)
		return s.renderer.Render(out, surface.NewReport(wb, result))
	case "interpret":
		wb := s.store.Snapshot()
		writeNarrative(out, narrative.Interpret(wb.Compute().Ranking, leadCriterion(wb)))
	case "share":
		link, err := narrative.ShareURL(s.app.cfg.Share.BaseURL, s.store.Compute().Ranking)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, link)
	case "add-criterion":
		c := s.store.AddCriterion()
		fmt.Fprintf(out, "added criterion %s (%s)\n", c.ID, c.Name)
	case "set-criterion":
		return s.setCriterion(args)
	case "rm-criterion":
		if err := needArgs(args, 1, "rm-criterion ID"); err != nil {
			return err
		}
		return s.store.RemoveCriterion(args[0])
	case "add-alt":
		alt := s.store.AddAlternative()
		fmt.Fprintf(out, "added alternative %s (%s)\n", alt.ID, alt.Name)
	case "rename-alt":
		if err := needArgs(args, 2, "rename-alt ID NAME"); err != nil {
			return err
		}
		return s.store.UpdateAlternativeName(args[0], strings.Join(args[1:], " "))
	case "rm-alt":
		if err := needArgs(args, 1, "rm-alt ID"); err != nil {
			return err
		}
		return s.store.RemoveAlternative(args[0])
	case "set":
		if err := needArgs(args, 3, "set ALT_ID CRITERION_ID VALUE"); err != nil {
			return err
		}
		v, err := parseNumber(args[2])
		if err != nil {
			return err
		}
		return s.store.UpdateAlternativeValue(args[0], args[1], v)
	case "reset":
		s.store.ResetDefaults()
		fmt.Fprintln(out, "restored the example workbook")
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func (s *session) setCriterion(args []string) error {
	if err := needArgs(args, 3, "set-criterion ID name|weight|type VALUE"); err != nil {
		return err
	}
	id, field, value := args[0], args[1], strings.Join(args[2:], " ")

	var patch store.CriterionPatch
	switch field {
	case "name":
		patch.Name = &value
	case "weight":
		w, err := parseNumber(value)
		if err != nil {
			return err
		}
		patch.Weight = &w
	case "type":
		t, err := workbook.ParseType(value)
		if err != nil {
			return err
		}
		patch.Type = &t
	default:
		return fmt.Errorf("unknown field %q (want name, weight or type)", field)
	}
	return s.store.UpdateCriterion(id, patch)
}

func (s *session) show() {
	out := s.app.stdout
	wb := s.store.Snapshot()

	fmt.Fprintln(out, "Criteria:")
	for _, c := range wb.Criteria {
		fmt.Fprintf(out, "  %-10s %-28s %-8s weight %s\n", c.ID, c.Name, c.Type, narrative.FormatScore(c.Weight))
	}
	fmt.Fprintln(out, "Alternatives:")
	for _, alt := range wb.Alternatives {
		fmt.Fprintf(out, "  %-10s %s\n", alt.ID, alt.Name)
		for _, c := range wb.Criteria {
			fmt.Fprintf(out, "      %-10s %s\n", c.ID, narrative.FormatScore(alt.Values[c.ID]))
		}
	}
}

func needArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
