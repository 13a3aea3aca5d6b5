package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cascade/internal/config"
	"cascade/internal/core"
	"cascade/internal/input"
	"cascade/internal/logging"
	"cascade/internal/report"
	"cascade/internal/sims/cascade"
)

// rootOptions carries global flags and the state built from them.
type rootOptions struct {
	configPath string
	verbose    bool
	marker     string
	workers    int
	strict     bool
	format     string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "cascade",
		Short: "Simultaneous neighbour-count removal on marker grids",
		Long: `cascade reads a grid of markers ('@' by default) and removes every present
cell that has fewer than 4 present neighbours among its 8 surrounding cells.

  accessible   count the cells removable from the grid as given
  stabilize    remove in rounds until nothing is removable and print the total
  generate     write a random grid`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&opts.marker, "marker", "@", "character that marks a present cell")
	pf.IntVar(&opts.workers, "workers", 1, "row bands evaluated concurrently")
	pf.BoolVar(&opts.strict, "strict", false, "reject rows whose length differs from the first")
	pf.StringVar(&opts.format, "format", "text", "result format: text or json")

	rootCmd.AddCommand(newAccessibleCmd(opts), newStabilizeCmd(opts), newGenerateCmd(opts))
	return rootCmd
}

// init loads the config file, lets explicitly set flags win over it and
// builds the logger.
func (o *rootOptions) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("marker") {
		cfg.Grid.Marker = o.marker
	}
	if flags.Changed("workers") {
		cfg.Engine.Workers = o.workers
	}
	if flags.Changed("strict") {
		cfg.Grid.Strict = o.strict
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	logger, err := logging.New(cfg.Logging, o.verbose)
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}

func (o *rootOptions) simConfig() cascade.Config {
	c := cascade.DefaultConfig()
	c.Marker = o.cfg.MarkerByte()
	c.Strict = o.cfg.Grid.Strict
	c.Workers = o.cfg.Engine.Workers
	return c
}

func (o *rootOptions) loadGrid(args []string, stdin io.Reader) (*core.ByteGrid, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	lines, err := input.Open(path, stdin).Lines()
	if err != nil {
		return nil, err
	}
	g, err := cascade.NewParser(o.simConfig()).Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("parse grid: %w", err)
	}
	o.logger.Debug("grid loaded",
		zap.String("source", path),
		zap.Int("rows", g.Rows),
		zap.Int("cols", g.Cols),
		zap.Int("present", g.Count(cascade.StatePresent)))
	return g, nil
}

func (o *rootOptions) reporter(mode string, w io.Writer) (report.Reporter, error) {
	r, err := report.New(o.cfg.Output.Format, mode, w)
	if err != nil {
		return nil, err
	}
	return report.Multi{r, report.Log{L: o.logger, Mode: mode}}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
