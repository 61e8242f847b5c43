package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ieml/factorize"
	"github.com/katalvlaran/ieml/parser"
	"github.com/katalvlaran/ieml/relation"
	"github.com/katalvlaran/ieml/script"
	"github.com/katalvlaran/ieml/table"
)

func expandCmd() *cobra.Command {
	var count bool

	c := &cobra.Command{
		Use:   "expand SCRIPT",
		Short: "List the singular sequences of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			if count {
				fmt.Fprintln(cmd.OutOrStdout(), s.Cardinal())
				return nil
			}
			printLines(cmd.OutOrStdout(), s.Expand())

			return nil
		},
	}
	c.Flags().BoolVarP(&count, "count", "c", false, "print the cardinal only")

	return c
}

func tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables SCRIPT",
		Short: "Print the paradigm tables of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			tables, err := table.NewBuilder().Build(s)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, t := range tables {
				rows, cols, tabs := t.Shape()
				fmt.Fprintf(w, "# table %d: %s (%dD, %dx%dx%d)\n", i, t.Paradigm(), t.Dimension(), rows, cols, tabs)
				for tab := range tabs {
					if t.Dimension() == 3 {
						fmt.Fprintf(w, "## tab %s\n", t.TabHeaders()[tab])
					}
					for r := range rows {
						line := make([]string, 0, cols)
						for col := range cols {
							cell, err := t.At(r, col, tab)
							if err != nil {
								return err
							}
							line = append(line, cell.String())
						}
						fmt.Fprintln(w, strings.Join(line, "\t"))
					}
				}
			}

			return nil
		},
	}
}

func factorizeCmd() *cobra.Command {
	var showCost bool

	c := &cobra.Command{
		Use:   "factorize SCRIPT...",
		Short: "Find a minimal script denoting the union of the given scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var seqs []*script.Script
			for _, arg := range args {
				s, err := parser.Parse(arg)
				if err != nil {
					return err
				}
				seqs = append(seqs, s.Expand()...)
			}
			r, err := factorize.New().FactorizeCost(seqs)
			if err != nil {
				return err
			}
			if showCost {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", r.Script, r.Cost)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Script)

			return nil
		},
	}
	c.Flags().BoolVar(&showCost, "cost", false, "also print the cost")

	return c
}

func relationsCmd(a *app) *cobra.Command {
	var kinds []string

	c := &cobra.Command{
		Use:   "relations SCRIPT",
		Short: "List the relations of a script in the universe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			selected := relation.Kinds()
			if len(kinds) > 0 {
				if selected, err = relation.ParseKinds(kinds); err != nil {
					return err
				}
			}
			snap, err := a.graph(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, k := range selected {
				rel, err := snap.Relations(s, k)
				if err != nil {
					return notFound(err, s, snap)
				}
				if len(rel) == 0 {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", k, strings.Join(lo.Map(rel, func(x *script.Script, _ int) string {
					return x.String()
				}), " "))
			}

			return nil
		},
	}
	c.Flags().StringSliceVarP(&kinds, "kind", "k", nil, "relation kinds or groups (father, child, siblings, table)")

	return c
}

func rankCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rank PARADIGM",
		Short: "Print the table rank of a paradigm in its root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			snap, err := a.graph(cmd)
			if err != nil {
				return err
			}
			rank, err := snap.TableRank(s)
			if err != nil {
				return notFound(err, s, snap)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rank)

			return nil
		},
	}
}
