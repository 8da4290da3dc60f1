//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log"
	"time"

	"rd-lab/internal/core"
	"rd-lab/internal/export"
	"rd-lab/internal/render"
	"rd-lab/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type frameRenderer interface {
	RenderTo(img *image.RGBA)
}

type stepCounter interface {
	Steps() int
}

// HUDWidth is the pixel width of the control panel beside the grid view.
const HUDWidth = 220

// Game adapts a core simulation to the ebiten.Game interface and adds the
// interactive controls: pause, single-step, reseed, HUD adjustments, probe
// overlay, and frame capture.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	palette  []color.RGBA
	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	frames *export.DirWriter
	canvas *image.RGBA
}

// New constructs a Game for the provided simulation. frames may be nil to
// disable the capture key.
func New(sim core.Sim, scale int, seed int64, frames *export.DirWriter) *Game {
	if scale < 1 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		scale:   scale,
		seed:    seed,
		frames:  frames,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	} else {
		g.palette = grayscale()
	}
	g.hud = ui.NewHUD(sim, HUDWidth)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.saveFrame()
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state, overlay, and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size, HUD panel included.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// saveFrame captures the current state to disk, preferring the sim's exact
// export colors over the quantized display buffer.
func (g *Game) saveFrame() {
	if g.frames == nil {
		return
	}
	size := g.sim.Size()
	if g.canvas == nil {
		g.canvas = image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	}
	if r, ok := g.sim.(frameRenderer); ok {
		r.RenderTo(g.canvas)
	} else {
		render.FillPaletteRGBA(g.canvas.Pix, g.sim.Cells(), g.palette)
	}
	label := 0
	if c, ok := g.sim.(stepCounter); ok {
		label = c.Steps()
	}
	if err := g.frames.WriteFrame(g.canvas, label); err != nil {
		log.Printf("save frame: %v", err)
		return
	}
	log.Printf("saved %s", g.frames.FramePath(label))
}

func grayscale() []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		v := uint8(i)
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return p
}
