package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cascade/internal/sims/cascade"
)

func newAccessibleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accessible [file]",
		Short: "Count cells removable from the grid as given",
		Long: `Reads a grid from file (or stdin when omitted or "-") and prints how many
present cells have fewer than 4 present neighbours. The grid is not changed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.loadGrid(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			n := len(cascade.Evaluator{Workers: opts.cfg.Engine.Workers}.Removable(g))
			r, err := opts.reporter("accessible", cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.Report(n)
		},
	}
}

func newStabilizeCmd(opts *rootOptions) *cobra.Command {
	var (
		trace      bool
		printFinal bool
	)
	cmd := &cobra.Command{
		Use:   "stabilize [file]",
		Short: "Remove accessible cells in rounds until the grid is stable",
		Long: `Reads a grid from file (or stdin when omitted or "-") and repeatedly removes
every accessible cell at once until no cell is accessible. Prints the total
number of removed cells.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.loadGrid(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			e := cascade.New(g,
				cascade.WithWorkers(opts.cfg.Engine.Workers),
				cascade.WithLogger(opts.logger))
			res := e.Run()

			if trace {
				errOut := cmd.ErrOrStderr()
				total := 0
				for i, n := range res.PerRound {
					total += n
					fmt.Fprintf(errOut, "round %d: removed %d (total %d)\n", i+1, n, total)
				}
				fmt.Fprintf(errOut, "stable after %d rounds, %d of %d cells remain\n", res.Rounds, res.Remaining, res.Initial)
			}

			r, err := opts.reporter("stabilize", cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := r.Report(res.TotalRemoved); err != nil {
				return err
			}
			if printFinal {
				out := cmd.OutOrStdout()
				for _, line := range cascade.Format(e.Grid(), opts.cfg.MarkerByte(), cascade.DefaultBlank) {
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print per-round removal counts to stderr")
	cmd.Flags().BoolVar(&printFinal, "print-final", false, "print the stable grid after the result")
	return cmd
}
