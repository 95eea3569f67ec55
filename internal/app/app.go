//go:build ebiten

package app

import (
	"sandlab/internal/render"
	"sandlab/internal/sims/sand"
	"sandlab/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var toolKeys = map[ebiten.Key]sand.Particle{
	ebiten.KeyDigit0: sand.Empty,
	ebiten.KeyE:      sand.Empty,
	ebiten.KeyDigit1: sand.Metal,
	ebiten.KeyM:      sand.Metal,
	ebiten.KeyDigit2: sand.Sand,
	ebiten.KeyS:      sand.Sand,
	ebiten.KeyDigit3: sand.Water,
	ebiten.KeyW:      sand.Water,
}

const speedStep = 100

// Game adapts a paintable simulation to the ebiten.Game interface. Each tick
// runs one driving-loop frame; ebiten's TPS does the pacing.
type Game struct {
	canvas  Canvas
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided canvas.
func New(canvas Canvas, scale, hudWidth int, seed int64) *Game {
	size := canvas.Size()
	return &Game{
		canvas:   canvas,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(canvas, hudWidth),
		overlay:  ui.NewOverlay(canvas),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
}

// Reset clears the simulation and reseeds it.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.canvas.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the simulation by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.canvas.SetSpeed(g.canvas.Speed() + speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.canvas.SetSpeed(g.canvas.Speed() - speedStep)
	}
	for key, tool := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.canvas.SetTool(tool)
		}
	}

	size := g.canvas.Size()
	g.overlay.Update(g.paused)
	g.hud.Update(size.W * g.scale)
	g.pollMouse()

	if !g.paused || g.tickOnce {
		g.canvas.Step()
		g.tickOnce = false
	}
	return nil
}

// pollMouse queues a paint while the left button is held over the grid.
func (g *Game) pollMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.canvas.Size()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		return
	}
	g.canvas.Click(my/g.scale, mx/g.scale)
}

// Draw renders the current colors, the control panel and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.canvas.Colors(), g.scale)
	g.hud.Draw(screen, g.canvas.Size().W*g.scale, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.canvas.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
