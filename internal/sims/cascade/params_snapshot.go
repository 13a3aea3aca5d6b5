package cascade

import "cascade/internal/core"

// Parameters describes the grid and run progress for the viewer HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	size := e.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", size.H),
				core.IntParam("cols", "Cols", size.W),
				core.IntParam("threshold", "Threshold", AccessThreshold),
				core.IntParam("workers", "Workers", max(e.eval.Workers, 1)),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.StringParam("phase", "Phase", e.phase.String()),
				core.IntParam("generation", "Generation", e.generation),
				core.IntParam("removed", "Removed", e.totalRemoved),
				core.IntParam("present", "Present", e.Present()),
			},
		},
	}
	if e.initial == nil {
		groups = append(groups, core.ParameterGroup{
			Name: "Seeding",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", e.cfg.Seed),
				core.FloatParam("density", "Density", e.cfg.Density),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}
