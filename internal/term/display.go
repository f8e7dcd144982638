// Package term draws simulation frames on a terminal screen.
package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Display paints frames into a tcell screen, two columns per cell.
type Display struct {
	screen tcell.Screen
	invert bool

	quit     chan struct{}
	quitOnce sync.Once
}

// Open creates and initialises a screen on the controlling terminal.
func Open(invert bool) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return New(screen, invert)
}

// New wraps an existing screen. The screen is initialised and starts
// delivering key events; q or Esc closes the Quit channel.
func New(screen tcell.Screen, invert bool) (*Display, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.Clear()
	d := &Display{screen: screen, invert: invert, quit: make(chan struct{})}
	go d.pollKeys()
	return d, nil
}

// Quit is closed once the user asks to leave.
func (d *Display) Quit() <-chan struct{} { return d.quit }

// Draw paints frame with a status line underneath.
func (d *Display) Draw(frame [][]bool, status string) {
	for y, row := range frame {
		for x, alive := range row {
			style := d.cellStyle(alive)
			d.screen.SetContent(x*2, y, ' ', nil, style)
			d.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	line := len(frame) + 1
	w, _ := d.screen.Size()
	for x := 0; x < w; x++ {
		d.screen.SetContent(x, line, ' ', nil, tcell.StyleDefault)
	}
	for x, r := range status {
		d.screen.SetContent(x, line, r, nil, tcell.StyleDefault)
	}
	d.screen.Show()
}

func (d *Display) cellStyle(alive bool) tcell.Style {
	fg, bg := tcell.ColorBlack, tcell.ColorRed
	if alive {
		bg = tcell.ColorGreen
	}
	if d.invert {
		fg, bg = bg, fg
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

// Close restores the terminal.
func (d *Display) Close() {
	d.screen.Fini()
	d.closeQuit()
}

func (d *Display) closeQuit() {
	d.quitOnce.Do(func() { close(d.quit) })
}

func (d *Display) pollKeys() {
	for {
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// PollEvent returns nil once the screen is finalised.
			d.closeQuit()
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				d.closeQuit()
				return
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}
