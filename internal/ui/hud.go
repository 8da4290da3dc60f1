//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"rd-lab/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type statsProvider interface {
	FieldStats() (meanA, meanB float64)
}

type stepCounter interface {
	Steps() int
}

// HUD renders the control panel to the right of the simulation view: step
// count, live field statistics, and clickable +/- rows for every control
// the simulation exposes.
type HUD struct {
	sim   core.Sim
	width int

	panel      *ebiten.Image
	pixel      *ebiten.Image
	lastHeight int

	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	panelOffsetX int
}

type controlState struct {
	control  core.Control
	value    float64
	display  string
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 34
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	statsTop       = panelPadding + headerBaseline + 10
	statsLine      = 16
	controlsTop    = statsTop + 3*statsLine + 12
	labelBaseline  = 22
)

// NewHUD constructs a panel of the given width for the simulation. Width
// zero disables the panel entirely.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ControlsProvider); ok {
		controls := provider.Controls()
		h.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = controlState{control: ctrl, display: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width reports the panel width; zero for a disabled HUD.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes control values from the simulation and applies clicks on
// the +/- buttons. panelOffsetX is the screen x where the panel starts.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refreshControlValues()
	h.handleClick()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
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
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	heading := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	body := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	text.Draw(h.panel, fmt.Sprintf("%s controls", h.sim.Name()), face, panelPadding, panelPadding+headerBaseline, heading)

	statsY := statsTop + statsLine
	if counter, ok := h.sim.(stepCounter); ok {
		text.Draw(h.panel, fmt.Sprintf("step  %d", counter.Steps()), face, panelPadding, statsY, body)
	}
	if stats, ok := h.sim.(statsProvider); ok {
		meanA, meanB := stats.FieldStats()
		text.Draw(h.panel, fmt.Sprintf("meanA %.4f", meanA), face, panelPadding, statsY+statsLine, body)
		text.Draw(h.panel, fmt.Sprintf("meanB %.4f", meanB), face, panelPadding, statsY+2*statsLine, body)
	}

	for i := range h.controls {
		state := &h.controls[i]
		text.Draw(h.panel, state.control.Label, face, panelPadding, state.top+labelBaseline, body)
		valueColor := body
		if !state.hasValue {
			valueColor = dim
		}
		bounds := text.BoundString(face, state.display)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.display, face, valueX, state.top+labelBaseline, valueColor)
		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	if len(h.controls) == 0 {
		return
	}
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	paramMap := map[string]core.Parameter{}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		param, found := paramMap[state.control.Key]
		if !found {
			state.hasValue = false
			state.display = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.display = "--"
			continue
		}
		state.value = parsed
		state.hasValue = true
		state.display = formatControlValue(state.control, parsed)
	}
}

func (h *HUD) handleClick() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *controlState, direction int) {
	target := h.adjustedTarget(state, direction)
	if !state.hasValue || math.Abs(target-state.value) < 1e-12 {
		return
	}
	applied := false
	if state.control.Integer {
		if h.intSetter != nil {
			applied = h.intSetter.SetIntParameter(state.control.Key, int(math.Round(target)))
		}
	} else if h.floatSetter != nil {
		applied = h.floatSetter.SetFloatParameter(state.control.Key, target)
	}
	if applied {
		state.value = target
		state.display = formatControlValue(state.control, target)
	}
}

func (h *HUD) canAdjust(state *controlState, direction int) bool {
	if state.control.Integer && h.intSetter == nil {
		return false
	}
	if !state.control.Integer && h.floatSetter == nil {
		return false
	}
	return h.adjustedTarget(state, direction) != state.value
}

// adjustedTarget computes the clamped value one step in the given direction.
func (h *HUD) adjustedTarget(state *controlState, direction int) float64 {
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.value + float64(direction)*step
	if state.control.Integer {
		target = math.Round(target)
	}
	if target < state.control.Min {
		target = state.control.Min
	}
	if target > state.control.Max {
		target = state.control.Max
	}
	return target
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, 1)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatControlValue(ctrl core.Control, value float64) string {
	if ctrl.Integer {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 2
	switch step := ctrl.Step; {
	case step > 0 && step < 0.001:
		precision = 4
	case step > 0 && step < 0.01:
		precision = 3
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
