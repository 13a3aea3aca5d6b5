//go:build ebiten

package ui

import (
	"image/color"

	"cascade/internal/core"
	"cascade/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type removableProvider interface {
	RemovableMask() []uint8
}

// Overlay highlights the cells the next round will remove.
type Overlay struct {
	sim       core.Sim
	scale     int
	show      bool
	tint      color.RGBA
	painter   *render.GridPainter
	paintSize core.Size
}

// NewOverlay constructs a new overlay instance; the highlight starts enabled.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{
		sim:   sim,
		scale: scale,
		show:  true,
		tint:  color.RGBA{R: 255, G: 96, B: 32, A: 200},
	}
}

// Update toggles the highlight with the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(removableProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.painter == nil || o.paintSize != size {
		o.painter = render.NewGridPainter(size.W, size.H)
		o.paintSize = size
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.painter.BlitMask(screen, provider.RemovableMask(), o.tint, scale)
}
