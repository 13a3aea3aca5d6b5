package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"cascade/internal/sims/cascade"
)

type densityList []float64

func (l *densityList) String() string {
	parts := make([]string, len(*l))
	for i, d := range *l {
		parts[i] = strconv.FormatFloat(d, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *densityList) Set(value string) error {
	d, err := strconv.ParseFloat(value, 64)
	if err != nil || d < 0 || d > 1 {
		return fmt.Errorf("density %q must be a number in [0, 1]", value)
	}
	*l = append(*l, d)
	return nil
}

type densitySummary struct {
	density     float64
	runs        int
	meanResidue float64
	maxResidue  float64
	meanRounds  float64
	maxRounds   int
	collapsed   int
}

func main() {
	size := flag.Int("size", 96, "width and height of each random grid")
	seeds := flag.Int("seeds", 8, "random grids per density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var densities densityList
	flag.Var(&densities, "density", "fill density to sweep (repeatable, default 0.30..0.90 step 0.05)")
	flag.Parse()

	if *size <= 0 || *seeds <= 0 {
		fmt.Fprintln(os.Stderr, "size and seeds must be positive")
		os.Exit(2)
	}
	if len(densities) == 0 {
		for d := 30; d <= 90; d += 5 {
			densities = append(densities, float64(d)/100)
		}
	}

	var scenarios []cascade.Scenario
	for _, d := range densities {
		for s := 1; s <= *seeds; s++ {
			scenarios = append(scenarios, cascade.Scenario{Width: *size, Height: *size, Density: d, Seed: int64(s)})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %dx%d grids)\n", len(scenarios), *workers, *size, *size)
	start := time.Now()
	results := cascade.Sweep(scenarios, *workers)
	elapsed := time.Since(start)

	fmt.Printf("\n%-8s %6s %10s %10s %10s %8s %9s\n", "density", "runs", "residue", "max", "rounds", "max", "collapsed")
	for _, s := range summarize(results) {
		fmt.Printf("%-8.2f %6d %10.4f %10.4f %10.2f %8d %9d\n",
			s.density, s.runs, s.meanResidue, s.maxResidue, s.meanRounds, s.maxRounds, s.collapsed)
	}
	fmt.Printf("\nCompleted in %s\n", elapsed.Round(time.Millisecond))
}

// summarize folds results, already ordered by density, into one row per density.
func summarize(results []cascade.ScenarioResult) []densitySummary {
	var out []densitySummary
	for _, res := range results {
		if len(out) == 0 || out[len(out)-1].density != res.Scenario.Density {
			out = append(out, densitySummary{density: res.Scenario.Density})
		}
		s := &out[len(out)-1]
		ratio := res.ResidueRatio()
		s.runs++
		s.meanResidue += ratio
		s.meanRounds += float64(res.Result.Rounds)
		if ratio > s.maxResidue {
			s.maxResidue = ratio
		}
		if res.Result.Rounds > s.maxRounds {
			s.maxRounds = res.Result.Rounds
		}
		if res.Result.Remaining == 0 {
			s.collapsed++
		}
	}
	for i := range out {
		out[i].meanResidue /= float64(out[i].runs)
		out[i].meanRounds /= float64(out[i].runs)
	}
	return out
}
