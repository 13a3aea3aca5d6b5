package app

import (
	"flag"
	"testing"

	"cascade/internal/core"
	"cascade/internal/sims/cascade"
)

func TestBindAndSimOptions(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-rows", "12", "-cols", "20", "-density", "0.5", "-seed", "9", "-workers", "3"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	got := cascade.FromMap(cfg.SimOptions())
	if got.Height != 12 || got.Width != 20 || got.Density != 0.5 || got.Seed != 9 || got.Workers != 3 {
		t.Fatalf("unexpected sim config %+v", got)
	}

	sim := core.Sims()[cfg.Sim](cfg.SimOptions())
	if sim.Size() != (core.Size{W: 20, H: 12}) {
		t.Fatalf("sim size %+v, expected 20x12", sim.Size())
	}
}
