package ui

import (
	"testing"

	"parlife/internal/core"
)

func TestLayoutRows(t *testing.T) {
	snapshot := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{core.IntParam("size", "Size", 12), core.StringParam("pattern", "Pattern", "")}},
		{Name: "Run", Params: []core.Parameter{core.IntParam("generation", "Generation", 3)}},
	}}

	rows := layoutRows(snapshot)
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if !rows[0].header || rows[0].label != "GRID" {
		t.Fatalf("first row = %+v, want GRID header", rows[0])
	}
	if rows[1].value != "12" || rows[2].value != "--" {
		t.Fatalf("values = %q, %q; want 12 and placeholder", rows[1].value, rows[2].value)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].top <= rows[i-1].top {
			t.Fatalf("row %d at %d does not follow row %d at %d", i, rows[i].top, i-1, rows[i-1].top)
		}
	}
	if h := panelHeight(rows); h <= rows[4].top {
		t.Fatalf("panel height %d does not fit last row at %d", h, rows[4].top)
	}
	if h := panelHeight(nil); h != controlsTop+panelPadding {
		t.Fatalf("empty panel height = %d", h)
	}
}
