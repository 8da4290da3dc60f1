//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"rd-lab/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type cellProbe interface {
	ProbeCell(x, y int) (a, b float64, ok bool)
}

// Overlay draws optional inspection visuals on top of the simulation view.
// The probe shows the concentrations of the cell under the cursor.
type Overlay struct {
	sim   core.Sim
	scale int

	showProbe bool
	pixel     *ebiten.Image
}

// NewOverlay constructs an overlay for the simulation at the given scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay features from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showProbe = !o.showProbe
	}
}

// Draw renders the enabled overlay features.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showProbe {
		return
	}
	probe, ok := o.sim.(cellProbe)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	mx, my := ebiten.CursorPosition()
	cx := mx / scale
	cy := my / scale
	a, b, ok := probe.ProbeCell(cx, cy)
	if !ok {
		return
	}

	lines := []string{
		fmt.Sprintf("(%d,%d)", cx, cy),
		fmt.Sprintf("a %.4f", a),
		fmt.Sprintf("b %.4f", b),
	}
	o.drawTextBox(screen, mx+12, my+12, lines)
}

func (o *Overlay) drawTextBox(screen *ebiten.Image, x, y int, lines []string) {
	face := basicfont.Face7x13
	const pad = 6
	const lineH = 15
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	boxW := width + 2*pad
	boxH := len(lines)*lineH + 2*pad

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(boxW), float64(boxH))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(16.0/255, 16.0/255, 20.0/255, 210.0/255)
	screen.DrawImage(o.pixel, op)

	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	for i, line := range lines {
		text.Draw(screen, line, face, x+pad, y+pad+(i+1)*lineH-4, fg)
	}
}
