package cascade

import (
	"go.uber.org/zap"

	"cascade/internal/core"
)

// Phase is the state of the stabilization loop.
type Phase uint8

const (
	// PhaseRunning means another round may remove cells.
	PhaseRunning Phase = iota
	// PhaseStable means the last evaluation found nothing removable.
	PhaseStable
)

func (p Phase) String() string {
	if p == PhaseStable {
		return "stable"
	}
	return "running"
}

// Result summarises a run to the fixed point.
type Result struct {
	// Accessible is the single-pass count on the grid the run started from.
	Accessible int
	// TotalRemoved is the cumulative number of cells removed by all rounds.
	TotalRemoved int
	// Rounds counts evaluations, including the final one that found nothing.
	Rounds int
	// PerRound holds the removal count of every round that removed cells.
	PerRound []int
	// Initial and Remaining are the present-cell counts before and after.
	Initial   int
	Remaining int
}

// Engine repeatedly removes every accessible cell at once until none remain.
// It owns its grid for the whole run.
type Engine struct {
	cfg  Config
	eval Evaluator
	log  *zap.Logger

	// initial is the parsed grid restored by Reset; nil for random worlds.
	initial *core.ByteGrid
	cur     *core.ByteGrid
	nxt     *core.ByteGrid

	phase        Phase
	generation   int
	rounds       int
	totalRemoved int
	perRound     []int

	mask      []uint8
	maskValid bool
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger routes round logging to l.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithWorkers sets the number of concurrent row bands used per evaluation.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.eval.Workers = n }
}

// New returns an engine that stabilizes a copy of g.
func New(g *core.ByteGrid, opts ...Option) *Engine {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = g.Cols, g.Rows
	e := newEngine(cfg, g.Clone(), opts)
	e.initial = g.Clone()
	return e
}

// NewRandom returns an engine over a Width×Height grid filled at cfg.Density.
func NewRandom(cfg Config, opts ...Option) *Engine {
	e := newEngine(cfg, core.NewByteGrid(cfg.Height, cfg.Width), opts)
	e.Reset(cfg.Seed)
	return e
}

func newEngine(cfg Config, g *core.ByteGrid, opts []Option) *Engine {
	e := &Engine{
		cfg:  cfg,
		eval: Evaluator{Workers: cfg.Workers},
		log:  zap.NewNop(),
		cur:  g,
		nxt:  core.NewByteGrid(g.Rows, g.Cols),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "cascade" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// Cells exposes the current state buffer.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Grid returns the current grid. Callers must not mutate it while the engine runs.
func (e *Engine) Grid() *core.ByteGrid { return e.cur }

// Phase reports whether the engine has reached its fixed point.
func (e *Engine) Phase() Phase { return e.phase }

// Generation is the number of rounds that removed cells so far.
func (e *Engine) Generation() int { return e.generation }

// TotalRemoved is the cumulative removal count so far.
func (e *Engine) TotalRemoved() int { return e.totalRemoved }

// Present returns the number of present cells in the current grid.
func (e *Engine) Present() int { return e.cur.Count(StatePresent) }

// Reset restores the parsed grid. Engines built from a random config refill
// the grid from seed instead; a zero seed reuses the configured one.
func (e *Engine) Reset(seed int64) {
	if e.initial != nil {
		e.cur.CopyFrom(e.initial)
	} else {
		if seed == 0 {
			seed = e.cfg.Seed
		}
		core.NewRNG(seed).FillDensity(e.cur.Cells(), e.cfg.Density, StatePresent)
	}
	e.phase = PhaseRunning
	e.generation = 0
	e.rounds = 0
	e.totalRemoved = 0
	e.perRound = e.perRound[:0]
	e.maskValid = false
}

// Step advances the engine by one round.
func (e *Engine) Step() {
	e.Round()
}

// Round evaluates the current snapshot, then removes the whole removable set
// as a single batch. It returns the number of removed cells and is a no-op
// once the engine is stable.
func (e *Engine) Round() int {
	if e.phase == PhaseStable {
		return 0
	}
	removable := e.eval.Removable(e.cur)
	e.rounds++
	if len(removable) == 0 {
		e.phase = PhaseStable
		e.log.Info("grid stable",
			zap.Int("generations", e.generation),
			zap.Int("total_removed", e.totalRemoved),
			zap.Int("remaining", e.Present()))
		return 0
	}

	copy(e.nxt.Cells(), e.cur.Cells())
	next := e.nxt.Cells()
	for _, c := range removable {
		next[e.nxt.Index(c.Row, c.Col)] = StateAbsent
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.maskValid = false

	e.generation++
	e.totalRemoved += len(removable)
	e.perRound = append(e.perRound, len(removable))
	e.log.Debug("round applied",
		zap.Int("generation", e.generation),
		zap.Int("removed", len(removable)),
		zap.Int("total", e.totalRemoved))
	return len(removable)
}

// Run drives rounds until the grid is stable and returns the summary. The
// Accessible field reflects the grid as it was when Run was called.
func (e *Engine) Run() Result {
	res := Result{Initial: e.Present()}
	if e.phase == PhaseRunning && e.generation == 0 {
		res.Accessible = len(e.eval.Removable(e.cur))
	}
	for e.phase == PhaseRunning {
		e.Round()
	}
	res.TotalRemoved = e.totalRemoved
	res.Rounds = e.rounds
	res.PerRound = append([]int(nil), e.perRound...)
	res.Remaining = e.Present()
	return res
}

// RemovableMask marks the cells the next round would remove with
// StatePresent. The slice is reused between calls.
func (e *Engine) RemovableMask() []uint8 {
	if e.maskValid {
		return e.mask
	}
	if len(e.mask) != len(e.cur.Cells()) {
		e.mask = make([]uint8, len(e.cur.Cells()))
	} else {
		for i := range e.mask {
			e.mask[i] = StateAbsent
		}
	}
	if e.phase == PhaseRunning {
		for _, c := range e.eval.Removable(e.cur) {
			e.mask[e.cur.Index(c.Row, c.Col)] = StatePresent
		}
	}
	e.maskValid = true
	return e.mask
}

// Stabilize runs a fresh engine over a copy of g and returns the total number
// of cells removed. g is not modified.
func Stabilize(g *core.ByteGrid, opts ...Option) int {
	return New(g, opts...).Run().TotalRemoved
}

func init() {
	core.Register("cascade", func(cfg map[string]string) core.Sim {
		return NewRandom(FromMap(cfg))
	})
}
