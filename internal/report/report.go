// Package report formats the outcome of a simulation run.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"parlife/internal/sims/life"
)

// Summary collects the figures printed at the end of a run.
type Summary struct {
	Size      int
	Workers   int
	ChunkSize int
	Steps     int
	Alive     uint64
	Dead      uint64
	Final     int
	Elapsed   time.Duration
}

// FromEngine builds a Summary from the engine's counters.
func FromEngine(e *life.Engine, elapsed time.Duration) Summary {
	stats := e.Stats()
	return Summary{
		Size:      e.Size().W,
		Workers:   len(e.Chunks()),
		ChunkSize: e.ChunkSize(),
		Steps:     stats.Generation,
		Alive:     stats.Alive,
		Dead:      stats.Dead,
		Final:     stats.Population,
		Elapsed:   elapsed,
	}
}

// PerStep returns the mean wall-clock time per generation.
func (s Summary) PerStep() time.Duration {
	if s.Steps == 0 {
		return 0
	}
	return s.Elapsed / time.Duration(s.Steps)
}

// Write prints s as an aligned table. Timing rows are only written when
// timing is set.
func Write(w io.Writer, s Summary, timing bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "grid\t%dx%d\n", s.Size, s.Size)
	fmt.Fprintf(tw, "workers\t%d (chunk %dx%d)\n", s.Workers, s.ChunkSize, s.ChunkSize)
	fmt.Fprintf(tw, "steps\t%d\n", s.Steps)
	fmt.Fprintf(tw, "alive cells\t%d\n", s.Alive)
	fmt.Fprintf(tw, "dead cells\t%d\n", s.Dead)
	fmt.Fprintf(tw, "final population\t%d\n", s.Final)
	if timing {
		fmt.Fprintf(tw, "elapsed\t%s\n", s.Elapsed)
		fmt.Fprintf(tw, "per step\t%s\n", s.PerStep())
	}
	return tw.Flush()
}
