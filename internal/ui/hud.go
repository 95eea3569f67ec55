//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"sandlab/internal/core"
	"sandlab/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type toolSelector interface {
	Tool() sand.Particle
	SetTool(p sand.Particle)
}

// HUD renders the tool palette and speed controls to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string

	tools     toolSelector
	toolRects []image.Rectangle

	controls  []hudControlState
	intSetter core.IntParameterSetter
	snapshot  core.ParameterSnapshot

	panelOffsetX int
	pixel        *ebiten.Image
}

type hudControlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 28
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 18
	swatchSize     = 12
	toolsTop       = panelPadding + headerBaseline + 12
)

var (
	panelBG      = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimTextColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	selectedBG   = color.RGBA{R: 90, G: 96, B: 130, A: 255}
	disabledBG   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// NewHUD constructs a HUD for the provided simulation and panel width. A
// non-positive width yields nil, which every method accepts.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if ts, ok := sim.(toolSelector); ok {
		h.tools = ts
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	h.layout()
	return h
}

// Update refreshes the cached parameter values and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, textColor)
	h.drawTools()
	h.drawControls()
	h.drawCounts()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s Controls", strings.ToUpper(name[:1])+name[1:])
}

func (h *HUD) layout() {
	top := toolsTop
	if h.tools != nil {
		h.toolRects = make([]image.Rectangle, len(sand.Particles))
		for i := range sand.Particles {
			h.toolRects[i] = image.Rect(panelPadding, top, h.width-panelPadding, top+buttonSize)
			top += lineHeight
		}
		top += lineHeight / 2
	}
	for i := range h.controls {
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
		top += lineHeight
	}
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.value = parsed
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i, rect := range h.toolRects {
		if pointInRect(px, my, rect) {
			h.tools.SetTool(sand.Particles[i])
			return
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.adjust(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	if h.intSetter == nil {
		return
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.value + direction*step)
	if target == state.value {
		return
	}
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

func (h *HUD) drawTools() {
	if h.tools == nil {
		return
	}
	selected := h.tools.Tool()
	face := basicfont.Face7x13
	for i, p := range sand.Particles {
		rect := h.toolRects[i]
		bg := buttonBG
		if p == selected {
			bg = selectedBG
		}
		h.fillRect(rect, bg)
		swatch := image.Rect(rect.Min.X+5, rect.Min.Y+(rect.Dy()-swatchSize)/2, rect.Min.X+5+swatchSize, rect.Min.Y+(rect.Dy()+swatchSize)/2)
		h.fillRect(swatch, sand.ColorOf(p))
		label := fmt.Sprintf("%d %s", i, p)
		if p == sand.Empty {
			label = "0 erase"
		}
		text.Draw(h.panel, label, face, swatch.Max.X+8, rect.Min.Y+labelBaseline-2, textColor)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		text.Draw(h.panel, state.control.Label, face, panelPadding, state.top+labelBaseline, textColor)
		value, valueColor := "--", dimTextColor
		if state.hasValue {
			value, valueColor = strconv.Itoa(state.value), textColor
		}
		width := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-width, state.top+labelBaseline, valueColor)

		step := state.control.Step
		if step <= 0 {
			step = 1
		}
		minusEnabled := state.hasValue && state.control.Clamp(state.value-step) != state.value
		plusEnabled := state.hasValue && state.control.Clamp(state.value+step) != state.value
		h.drawButton(state.minusRect, "-", minusEnabled)
		h.drawButton(state.plusRect, "+", plusEnabled)
	}
}

func (h *HUD) drawCounts() {
	face := basicfont.Face7x13
	y := h.lastHeight - panelPadding
	for _, group := range h.snapshot.Groups {
		if group.Name != "Particles" {
			continue
		}
		for i := len(group.Params) - 1; i >= 0; i-- {
			p := group.Params[i]
			text.Draw(h.panel, fmt.Sprintf("%-6s %s", p.Label, p.Value), face, panelPadding, y, dimTextColor)
			y -= lineHeight - 10
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, textColor
	if !enabled {
		bg, fg = disabledBG, dimTextColor
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
