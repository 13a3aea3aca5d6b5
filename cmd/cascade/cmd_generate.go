package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cascade/internal/sims/cascade"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	c := cascade.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random grid to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Width <= 0 || c.Height <= 0 {
				return fmt.Errorf("grid size %dx%d must be positive", c.Height, c.Width)
			}
			if c.Density < 0 || c.Density > 1 {
				return fmt.Errorf("density %g must be within [0, 1]", c.Density)
			}
			e := cascade.NewRandom(c)
			out := cmd.OutOrStdout()
			for _, line := range cascade.Format(e.Grid(), opts.cfg.MarkerByte(), cascade.DefaultBlank) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&c.Height, "rows", 10, "number of rows")
	cmd.Flags().IntVar(&c.Width, "cols", 10, "number of columns")
	cmd.Flags().Float64Var(&c.Density, "density", c.Density, "probability that a cell is present")
	cmd.Flags().Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	return cmd
}
