package ui

import (
	"strings"

	"parlife/internal/core"
)

// hudRow is one line of the HUD panel: either a group header or a
// label/value pair.
type hudRow struct {
	header bool
	label  string
	value  string
	top    int
}

// layoutRows flattens a snapshot into panel rows starting at controlsTop.
func layoutRows(snapshot core.ParameterSnapshot) []hudRow {
	var rows []hudRow
	top := controlsTop
	for _, group := range snapshot.Groups {
		rows = append(rows, hudRow{header: true, label: strings.ToUpper(group.Name), top: top})
		top += headerHeight
		for _, p := range group.Params {
			value := p.Value
			if value == "" {
				value = "--"
			}
			rows = append(rows, hudRow{label: p.Label, value: value, top: top})
			top += lineHeight
		}
		top += groupGap
	}
	return rows
}

// panelHeight returns the pixel height needed to show rows.
func panelHeight(rows []hudRow) int {
	if len(rows) == 0 {
		return controlsTop + panelPadding
	}
	last := rows[len(rows)-1]
	return last.top + lineHeight + panelPadding
}

const (
	panelPadding   = 12
	lineHeight     = 20
	headerHeight   = 22
	groupGap       = 8
	headerBaseline = 18
	labelBaseline  = 14
	controlsTop    = panelPadding + headerBaseline + 14
)
