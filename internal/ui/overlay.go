//go:build ebiten

package ui

import (
	"fmt"

	"sandlab/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay prints a status line over the simulation view. Tab toggles it.
type Overlay struct {
	sim    core.Sim
	show   bool
	paused bool
}

// NewOverlay constructs a new overlay instance, visible by default.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, show: true}
}

// Update handles the toggle key and records the pause state for display.
func (o *Overlay) Update(paused bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
	o.paused = paused
}

// Draw renders the status line onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	status := fmt.Sprintf("TPS %.0f", ebiten.ActualTPS())
	if provider, ok := o.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range []string{"speed", "tool"} {
			if p, ok := snap.Lookup(key); ok {
				status += fmt.Sprintf("  %s %s", key, p.Value)
			}
		}
	}
	if o.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 2)
}
