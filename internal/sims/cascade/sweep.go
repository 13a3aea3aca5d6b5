package cascade

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// Scenario is one random grid to stabilize.
type Scenario struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("%dx%d density=%.2f seed=%d", s.Width, s.Height, s.Density, s.Seed)
}

// ScenarioResult holds the outcome of one scenario.
type ScenarioResult struct {
	Scenario Scenario
	Result   Result
}

// ResidueRatio is the fraction of initially present cells that survived.
func (r ScenarioResult) ResidueRatio() float64 {
	if r.Result.Initial == 0 {
		return 0
	}
	return float64(r.Result.Remaining) / float64(r.Result.Initial)
}

// RunScenario stabilizes a single random grid.
func RunScenario(s Scenario) ScenarioResult {
	cfg := DefaultConfig()
	cfg.Width = s.Width
	cfg.Height = s.Height
	cfg.Density = s.Density
	cfg.Seed = s.Seed
	return ScenarioResult{Scenario: s, Result: NewRandom(cfg).Run()}
}

// Sweep runs every scenario on a pool of workers and returns the results
// ordered by density, then seed. Non-positive worker counts use all CPUs.
func Sweep(scenarios []Scenario, workers int) []ScenarioResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan Scenario)
	results := make(chan ScenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- RunScenario(s)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range scenarios {
			jobs <- s
		}
		close(jobs)
	}()

	all := make([]ScenarioResult, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].Scenario, all[j].Scenario
		if a.Density != b.Density {
			return a.Density < b.Density
		}
		return a.Seed < b.Seed
	})
	return all
}
