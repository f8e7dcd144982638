//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"parlife/internal/core"
	"parlife/internal/render"
	"parlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the pixel width of the parameter panel.
const hudWidth = 220

// maxBatch caps the generations computed in one tick.
const maxBatch = 64

var (
	aliveColor = color.RGBA{R: 40, G: 200, B: 80, A: 255}
	deadColor  = color.RGBA{R: 140, G: 30, B: 30, A: 255}
)

// binding maps keys to a Game action.
type binding struct {
	keys []ebiten.Key
	act  func(g *Game) error
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, func(*Game) error { return ebiten.Termination }},
	{[]ebiten.Key{ebiten.KeySpace}, func(g *Game) error { g.paused = !g.paused; return nil }},
	{[]ebiten.Key{ebiten.KeyEnter}, func(g *Game) error { g.paused = false; return nil }},
	{[]ebiten.Key{ebiten.KeyN}, func(g *Game) error { g.pending++; return nil }},
	{[]ebiten.Key{ebiten.KeyR}, func(g *Game) error { g.Reset(g.seed); return nil }},
	{[]ebiten.Key{ebiten.KeyS}, func(g *Game) error { g.Reset(time.Now().UnixNano()); return nil }},
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd}, func(g *Game) error { g.setBatch(g.batch * 2); return nil }},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract}, func(g *Game) error { g.setBatch(g.batch / 2); return nil }},
}

// Game drives a simulation from ebiten's update loop. Each tick advances
// batch generations unless paused; n queues single generations while paused.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale   int
	seed    int64
	paused  bool
	pending int
	batch   int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, hudWidth),
		scale:   scale,
		seed:    seed,
		batch:   1,
	}
}

// Reset restores the initial population using seed and drops queued steps.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.pending = 0
	g.sim.Reset(seed)
}

func (g *Game) setBatch(n int) {
	g.batch = max(1, min(n, maxBatch))
}

// Update applies key bindings and advances the simulation.
func (g *Game) Update() error {
	for _, b := range bindings {
		for _, k := range b.keys {
			if !inpututil.IsKeyJustPressed(k) {
				continue
			}
			if err := b.act(g); err != nil {
				return err
			}
			break
		}
	}
	g.overlay.Update()

	steps := g.pending
	if !g.paused {
		steps += g.batch
	}
	g.pending = 0
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}
	g.hud.Update()
	return nil
}

// Draw paints the grid, the chunk overlay and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Blit(screen, g.sim.Cells(), aliveColor, deadColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)

	status := fmt.Sprintf("x%d/tick", g.batch)
	if g.paused {
		status = "paused"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
}

// Layout returns the logical screen size: the scaled grid plus the HUD.
func (g *Game) Layout(int, int) (int, int) {
	size := g.sim.Size()
	return size.W*g.scale + g.hud.Width(), size.H * g.scale
}
