//go:build ebiten

package ui

import (
	"image/color"

	"parlife/internal/core"
	"parlife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type chunkProvider interface {
	ChunkSize() int
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim        core.Sim
	scale      int
	showChunks bool
	lines      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, showChunks: true}
}

// Update toggles the chunk boundaries with key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChunks = !o.showChunks
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showChunks {
		return
	}
	provider, ok := o.sim.(chunkProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 {
		return
	}
	if o.lines == nil {
		o.lines = render.ChunkLines(size.W, provider.ChunkSize(), color.RGBA{R: 80, G: 80, B: 200, A: 160})
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.lines, op)
}
