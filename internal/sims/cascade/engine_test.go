package cascade

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"cascade/internal/core"
)

func mustParse(t *testing.T, lines ...string) *core.ByteGrid {
	t.Helper()
	g, err := Parse(lines, DefaultMarker)
	require.NoError(t, err)
	return g
}

// cutCorners is a 4x4 block without its corners; every cell keeps at least
// four present neighbours.
var cutCorners = []string{
	".@@.",
	"@@@@",
	"@@@@",
	".@@.",
}

func randomGrid(rows, cols int, density float64, seed int64) *core.ByteGrid {
	g := core.NewByteGrid(rows, cols)
	core.NewRNG(seed).FillDensity(g.Cells(), density, StatePresent)
	return g
}

func TestNeighborCountFullBlock(t *testing.T) {
	g := mustParse(t, "@@@", "@@@", "@@@")
	want := [3][3]int{
		{3, 5, 3},
		{5, 8, 5},
		{3, 5, 3},
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			assert.Equalf(t, want[row][col], NeighborCount(g, row, col), "cell (%d,%d)", row, col)
		}
	}
}

func TestNeighborCountIgnoresOutsideCells(t *testing.T) {
	g := mustParse(t, "@")
	assert.Equal(t, 0, NeighborCount(g, 0, 0))

	g = mustParse(t, "@@", "@.")
	assert.Equal(t, 3, NeighborCount(g, 1, 1))
	assert.Equal(t, 1, NeighborCount(g, -1, -1))
}

func TestAccessibleFullBlock(t *testing.T) {
	g := mustParse(t, "@@@", "@@@", "@@@")
	before := slices.Clone(g.Cells())

	assert.Equal(t, []Coord{{0, 0}, {0, 2}, {2, 0}, {2, 2}}, Removable(g))
	assert.Equal(t, 4, Accessible(g))
	assert.Equal(t, before, g.Cells(), "single-pass evaluation must not mutate the grid")
}

func TestRemovableOnlyReportsPresentCells(t *testing.T) {
	g := randomGrid(25, 31, 0.55, 4)
	for _, c := range Removable(g) {
		require.Equal(t, StatePresent, g.At(c.Row, c.Col))
		require.Less(t, NeighborCount(g, c.Row, c.Col), AccessThreshold)
	}
}

func TestRemovableIdempotentOnStableGrid(t *testing.T) {
	g := mustParse(t, cutCorners...)
	require.Empty(t, Removable(g))
	assert.Empty(t, Removable(g))
}

func TestParallelEvaluatorMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, seed := range []int64{1, 2, 3} {
		g := randomGrid(37, 53, 0.6, seed)
		want := Removable(g)
		for workers := 2; workers <= 8; workers++ {
			got := Evaluator{Workers: workers}.Removable(g)
			require.Equalf(t, want, got, "seed %d workers %d", seed, workers)
		}
	}

	small := mustParse(t, "@@@", "@@@", "@@@")
	assert.Equal(t, Removable(small), Evaluator{Workers: 16}.Removable(small))
}

func TestEngineFullBlockScenario(t *testing.T) {
	e := New(mustParse(t, "@@@", "@@@", "@@@"))

	assert.Equal(t, 4, e.Round())
	assert.Equal(t, 4, e.TotalRemoved())
	assert.Equal(t, []string{".@.", "@@@", ".@."}, Format(e.Grid(), DefaultMarker, DefaultBlank))

	assert.Equal(t, 4, e.Round())
	assert.Equal(t, 8, e.TotalRemoved())
	assert.Equal(t, []string{"...", ".@.", "..."}, Format(e.Grid(), DefaultMarker, DefaultBlank))

	assert.Equal(t, 1, e.Round())
	assert.Equal(t, 9, e.TotalRemoved())
	assert.Equal(t, PhaseRunning, e.Phase())

	assert.Equal(t, 0, e.Round())
	assert.Equal(t, PhaseStable, e.Phase())
	assert.Equal(t, 3, e.Generation())

	assert.Equal(t, 0, e.Round(), "a stable engine must not change")
	assert.Equal(t, 9, e.TotalRemoved())
}

func TestEngineRunFullBlock(t *testing.T) {
	res := New(mustParse(t, "@@@", "@@@", "@@@")).Run()
	assert.Equal(t, Result{
		Accessible:   4,
		TotalRemoved: 9,
		Rounds:       4,
		PerRound:     []int{4, 4, 1},
		Initial:      9,
		Remaining:    0,
	}, res)
}

func TestEngineSingleCell(t *testing.T) {
	g := mustParse(t, "@")
	assert.Equal(t, 1, Accessible(g))
	res := New(g).Run()
	assert.Equal(t, 1, res.TotalRemoved)
	assert.Equal(t, 2, res.Rounds)
}

func TestEngineTwoRowStripCollapses(t *testing.T) {
	res := New(mustParse(t, "@@@@@@", "@@@@@@")).Run()
	assert.Equal(t, []int{4, 4, 4}, res.PerRound)
	assert.Equal(t, res.Initial, res.TotalRemoved)
	assert.Zero(t, res.Remaining)
}

func TestEngineStableShapeKeepsCells(t *testing.T) {
	res := New(mustParse(t, cutCorners...)).Run()
	assert.Zero(t, res.Accessible)
	assert.Zero(t, res.TotalRemoved)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, 12, res.Remaining)
}

func TestEngineDoesNotMutateInput(t *testing.T) {
	g := mustParse(t, "@@@", "@@@", "@@@")
	assert.Equal(t, 9, Stabilize(g))
	assert.Equal(t, 9, g.Count(StatePresent))
}

func TestEngineMonotonicAndConserving(t *testing.T) {
	for _, seed := range []int64{11, 12, 13, 14} {
		g := randomGrid(30, 40, 0.7, seed)
		e := New(g)
		initial := e.Present()
		for e.Phase() == PhaseRunning {
			prev := e.Present()
			n := e.Round()
			if e.Phase() == PhaseStable {
				require.Zero(t, n)
				require.Equal(t, prev, e.Present())
				break
			}
			require.Positive(t, n)
			require.Equal(t, prev-n, e.Present(), "present count must drop by exactly the removed count")
		}
		assert.Equal(t, initial-e.Present(), e.TotalRemoved())
		assert.LessOrEqual(t, e.Generation(), g.Rows*g.Cols)
		assert.Empty(t, Removable(e.Grid()))
		assert.Equal(t, g.Rows, e.Grid().Rows)
		assert.Equal(t, g.Cols, e.Grid().Cols)
	}
}

func TestRoundRemovalOrderIndependent(t *testing.T) {
	g := randomGrid(20, 20, 0.5, 21)
	removable := Removable(g)
	require.NotEmpty(t, removable)

	batch := g.Clone()
	for _, c := range removable {
		batch.Set(c.Row, c.Col, StateAbsent)
	}

	rng := core.NewRNG(5)
	for i := 0; i < 5; i++ {
		order := slices.Clone(removable)
		rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
		shuffled := g.Clone()
		for _, c := range order {
			shuffled.Set(c.Row, c.Col, StateAbsent)
		}
		require.Equal(t, batch.Cells(), shuffled.Cells())
	}

	e := New(g)
	e.Round()
	assert.Equal(t, batch.Cells(), e.Cells())
}

func TestEngineParallelMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := randomGrid(48, 64, 0.68, 99)
	want := New(g).Run()
	got := New(g, WithWorkers(6)).Run()
	assert.Equal(t, want, got)
}

func TestEngineResetRestoresParsedGrid(t *testing.T) {
	e := New(mustParse(t, "@@@", "@@@", "@@@"))
	first := e.Run()

	e.Reset(42)
	assert.Equal(t, PhaseRunning, e.Phase())
	assert.Zero(t, e.Generation())
	assert.Zero(t, e.TotalRemoved())
	assert.Equal(t, 9, e.Present())
	assert.Equal(t, first, e.Run())
}

func TestRandomEngineDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	a := NewRandom(cfg)
	b := NewRandom(cfg)
	require.Equal(t, a.Cells(), b.Cells())
	assert.Equal(t, core.Size{W: 24, H: 16}, a.Size())

	a.Reset(777)
	seeded := slices.Clone(a.Cells())
	a.Run()
	a.Reset(777)
	assert.Equal(t, seeded, a.Cells())
	assert.NotEqual(t, b.Cells(), seeded)
}

func TestRemovableMask(t *testing.T) {
	e := New(mustParse(t, "@@@", "@@@", "@@@"))
	assert.Equal(t, []uint8{1, 0, 1, 0, 0, 0, 1, 0, 1}, e.RemovableMask())

	e.Step()
	assert.Equal(t, []uint8{0, 1, 0, 1, 0, 1, 0, 1, 0}, e.RemovableMask())

	e.Run()
	assert.Equal(t, make([]uint8, 9), e.RemovableMask())
}

func TestEngineParameters(t *testing.T) {
	e := New(mustParse(t, "@@@", "@@@", "@@@"))
	e.Run()
	snap := e.Parameters()

	p, ok := snap.Lookup("removed")
	require.True(t, ok)
	assert.Equal(t, "9", p.Value)
	p, _ = snap.Lookup("phase")
	assert.Equal(t, "stable", p.Value)
	_, ok = snap.Lookup("seed")
	assert.False(t, ok, "parsed grids have no seeding group")

	_, ok = NewRandom(DefaultConfig()).Parameters().Lookup("density")
	assert.True(t, ok)
}

func TestEngineLogsRounds(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	New(mustParse(t, "@@@", "@@@", "@@@"), WithLogger(zap.New(obsCore))).Run()

	assert.Equal(t, 3, logs.FilterMessage("round applied").Len())
	stable := logs.FilterMessage("grid stable").All()
	require.Len(t, stable, 1)
	assert.EqualValues(t, 9, stable[0].ContextMap()["total_removed"])
}

func TestRegisteredSim(t *testing.T) {
	factory, ok := core.Sims()["cascade"]
	require.True(t, ok)
	sim := factory(map[string]string{"w": "10", "h": "8"})
	assert.Equal(t, "cascade", sim.Name())
	assert.Equal(t, core.Size{W: 10, H: 8}, sim.Size())
	assert.Len(t, sim.Cells(), 80)
}
