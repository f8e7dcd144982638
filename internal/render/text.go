// Package render turns grid snapshots into pixels or text.
package render

import "strings"

// Glyphs for text output: O for a live cell, X for a dead one.
const (
	AliveGlyph = 'O'
	DeadGlyph  = 'X'
)

// Text renders frame one row per line.
func Text(frame [][]bool, alive, dead rune) string {
	var b strings.Builder
	for _, row := range frame {
		for _, c := range row {
			if c {
				b.WriteRune(alive)
				continue
			}
			b.WriteRune(dead)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
