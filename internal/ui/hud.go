//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"parlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the run parameters to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	rows       []hudRow
	title      string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: fmt.Sprintf("%s (%dx%d)", sim.Name(), sim.Size().W, sim.Size().H)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached rows from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.rows = nil
		return
	}
	h.rows = layoutRows(provider.Parameters())
}

// Draw paints the HUD panel at offsetX, sized to at least minHeight.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, minHeight int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := panelHeight(h.rows)
	if height < minHeight {
		height = minHeight
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawRows()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRows() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.rows) == 0 {
		text.Draw(h.panel, "No parameters", face, panelPadding, controlsTop+labelBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for _, row := range h.rows {
		y := row.top + labelBaseline
		if row.header {
			text.Draw(h.panel, row.label, face, panelPadding, y, color.RGBA{R: 120, G: 170, B: 120, A: 255})
			continue
		}
		text.Draw(h.panel, row.label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		bounds := text.BoundString(face, row.value)
		text.Draw(h.panel, row.value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
