package ui

import (
	"slices"
	"testing"

	"cascade/internal/core"
)

func TestSnapshotLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Run", Params: []core.Parameter{core.IntParam("removed", "Removed", 9), core.StringParam("phase", "Phase", "stable")}},
		{Name: "Empty"},
	}}
	got := snapshotLines("cascade", snap)
	want := []string{"cascade", "", "RUN", "  Removed: 9", "  Phase: stable"}
	if !slices.Equal(got, want) {
		t.Fatalf("lines %q, expected %q", got, want)
	}
}
