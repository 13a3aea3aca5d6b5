package ui

import (
	"fmt"
	"strings"

	"cascade/internal/core"
)

// snapshotLines lays out a parameter snapshot as HUD text rows: a header per
// group followed by indented "label: value" rows.
func snapshotLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, group := range snap.Groups {
		if len(group.Params) == 0 {
			continue
		}
		lines = append(lines, "", strings.ToUpper(group.Name))
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// keyHelp lists the viewer key bindings.
var keyHelp = []string{
	"SPACE pause  N round",
	"R reset  S reseed",
	"1 highlight  Q quit",
}
