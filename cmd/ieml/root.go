package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ieml/loader"
	"github.com/katalvlaran/ieml/relation"
	"github.com/katalvlaran/ieml/script"
)

// envUniverse names the default universe file.
const envUniverse = "IEML_UNIVERSE"

var errNoUniverse = errors.New("no universe file: pass --universe or set " + envUniverse)

// app carries the state shared by subcommands.
type app struct {
	logLevel string
	logFile  string
	universe string

	logger   *slog.Logger
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "ieml",
		Short:         "Inspect IEML scripts, paradigm tables and universe relations",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, closeFn, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFile)
			if err != nil {
				return err
			}
			a.logger, a.closeLog = l, closeFn

			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}

			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFile, "log-file", "", "also append JSON logs to this file")
	pf.StringVarP(&a.universe, "universe", "u", os.Getenv(envUniverse), "universe YAML file (default $"+envUniverse+")")

	cmd.AddCommand(
		expandCmd(),
		tablesCmd(),
		factorizeCmd(),
		relationsCmd(a),
		rankCmd(a),
	)

	return cmd
}

// graph loads the universe and builds its relation snapshot.
func (a *app) graph(cmd *cobra.Command) (*relation.Snapshot, error) {
	if a.universe == "" {
		return nil, errNoUniverse
	}
	roots, err := loader.LoadRoots(a.universe)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("universe loaded", "path", a.universe, "roots", len(roots))

	g := relation.NewGraph(relation.WithLogger(a.logger))
	if err := g.Rebuild(cmd.Context(), roots); err != nil {
		return nil, err
	}

	return g.Snapshot()
}

// notFound decorates a lookup failure with the closest known scripts.
func notFound(err error, s *script.Script, snap *relation.Snapshot) error {
	if !errors.Is(err, relation.ErrNotFound) {
		return err
	}
	texts := make([]string, 0, snap.Dictionary().Len())
	for _, t := range snap.Dictionary().Terms() {
		texts = append(texts, t.String())
	}
	if hints := suggest(s.String(), texts); len(hints) > 0 {
		return fmt.Errorf("%w (did you mean %v?)", err, hints)
	}

	return err
}

func printLines(w io.Writer, ss []*script.Script) {
	for _, s := range ss {
		fmt.Fprintln(w, s)
	}
}
