//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"cascade/internal/app"
	"cascade/internal/core"
	"cascade/internal/input"
	"cascade/internal/sims/cascade"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := buildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("cascade - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.Panel, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func buildSim(cfg *app.Config) (core.Sim, error) {
	if cfg.Input == "" {
		factory, ok := core.Sims()[cfg.Sim]
		if !ok {
			return nil, fmt.Errorf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
		}
		return factory(cfg.SimOptions()), nil
	}

	lines, err := input.FileSource{Path: cfg.Input}.Lines()
	if err != nil {
		return nil, err
	}
	simCfg := cascade.FromMap(cfg.SimOptions())
	g, err := cascade.NewParser(simCfg).Parse(lines)
	if err != nil {
		return nil, err
	}
	return cascade.New(g, cascade.WithWorkers(simCfg.Workers)), nil
}
