package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Input   string
	Marker  string
	Rows    int
	Cols    int
	Density float64
	Workers int
	Scale   int
	TPS     int
	RPS     int
	Seed    int64
	Panel   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "cascade",
		Marker:  "@",
		Rows:    128,
		Cols:    128,
		Density: 0.62,
		Workers: 1,
		Scale:   5,
		TPS:     60,
		RPS:     4,
		Seed:    42,
		Panel:   200,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Input, "input", c.Input, "grid file to stabilize instead of a random grid")
	fs.StringVar(&c.Marker, "marker", c.Marker, "character marking a present cell in -input")
	fs.IntVar(&c.Rows, "rows", c.Rows, "rows of the random grid")
	fs.IntVar(&c.Cols, "cols", c.Cols, "columns of the random grid")
	fs.Float64Var(&c.Density, "density", c.Density, "fill density of the random grid")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands evaluated concurrently")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.RPS, "rps", c.RPS, "stabilization rounds per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels, 0 hides it")
}

// SimOptions converts the random-grid flags to the factory's key/value form.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Cols),
		"h":       strconv.Itoa(c.Rows),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"marker":  c.Marker,
		"workers": strconv.Itoa(c.Workers),
	}
}
