package life

import (
	"context"
	"sync"
	"sync/atomic"

	"parlife/internal/core"

	"golang.org/x/sync/errgroup"
)

// Frame is the grid as it stood at the end of a generation.
type Frame struct {
	Generation int
	Cells      [][]bool
	Alive      int
}

// Stats summarises the work done by an Engine since its last Reset. Alive and
// Dead accumulate one count per cell per generation.
type Stats struct {
	Generation int
	Population int
	Alive      uint64
	Dead       uint64
}

// Engine evolves a padded Game of Life grid with one goroutine per chunk.
// Workers meet at two barriers every generation: once after computing into
// their private buffers and once after committing those buffers to the grid.
type Engine struct {
	cfg    Config
	grid   *core.Grid
	chunks []Chunk

	// commitMu is held for the whole commit phase: the first barrier action
	// locks it and the second unlocks it.
	commitMu sync.Mutex
	runMu    sync.Mutex

	active    atomic.Bool
	stopReq   atomic.Bool
	remaining int
	publish   bool

	generation atomic.Int64
	alive      atomic.Uint64
	dead       atomic.Uint64

	frames chan Frame

	// quit is non-nil only while a run is in progress. Stop requests are
	// tied to it, so a Stop that misses a run has no effect on the next.
	quitMu sync.Mutex
	quit   chan struct{}
}

// New validates cfg, partitions the grid and seeds the initial population.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	chunks, err := Partition(cfg.Size, cfg.Workers, cfg.MaxWorkers)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		grid:   core.NewGrid(cfg.Size),
		chunks: chunks,
	}
	if cfg.Live {
		e.frames = make(chan Frame)
	}
	if err := e.seed(cfg.Seed); err != nil {
		return nil, err
	}
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Chunks returns the partitioning of the live area.
func (e *Engine) Chunks() []Chunk { return append([]Chunk(nil), e.chunks...) }

// ChunkSize returns the side length of every chunk.
func (e *Engine) ChunkSize() int {
	if len(e.chunks) == 0 {
		return 0
	}
	return e.chunks[0].Size
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the live area dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Frames delivers one Frame per generation completed by Run when the engine
// was built with Live set. Workers do not start the next generation until the
// frame has been received. The channel is nil otherwise.
func (e *Engine) Frames() <-chan Frame { return e.frames }

// Snapshot returns a copy of the live area. It never observes a partially
// committed generation.
func (e *Engine) Snapshot() [][]bool {
	e.commitMu.Lock()
	defer e.commitMu.Unlock()
	return e.grid.Snapshot()
}

// Cells returns the live area as 0/1 bytes for the pixel painter.
func (e *Engine) Cells() []uint8 {
	e.commitMu.Lock()
	defer e.commitMu.Unlock()
	return e.grid.Cells()
}

// BorderClear reports whether the dead padding is intact.
func (e *Engine) BorderClear() bool {
	e.commitMu.Lock()
	defer e.commitMu.Unlock()
	return e.grid.BorderClear()
}

// Stats reports generation and cell counters.
func (e *Engine) Stats() Stats {
	e.commitMu.Lock()
	pop := e.grid.Alive()
	e.commitMu.Unlock()
	return Stats{
		Generation: int(e.generation.Load()),
		Population: pop,
		Alive:      e.alive.Load(),
		Dead:       e.dead.Load(),
	}
}

// Reset restores the initial population. A non-zero seed replaces the
// configured seed for generated patterns.
func (e *Engine) Reset(seed int64) {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	if seed == 0 {
		seed = e.cfg.Seed
	}
	// The configuration was validated in New, so seeding cannot fail here.
	_ = e.seed(seed)
}

// Step advances the simulation by exactly one generation. It never publishes
// a Frame, so it does not need a Frames consumer even in live mode.
func (e *Engine) Step() {
	_ = e.run(context.Background(), 1, false)
}

// Stop asks the run in progress to finish at the end of the current
// generation. It does nothing when no run is in progress.
func (e *Engine) Stop() {
	e.quitMu.Lock()
	defer e.quitMu.Unlock()
	if e.quit == nil {
		return
	}
	e.stopReq.Store(true)
	select {
	case <-e.quit:
	default:
		close(e.quit)
	}
}

// Run evolves the grid for steps generations, or until Stop is called or ctx
// is cancelled when steps <= 0. It returns once every worker has exited. In
// live mode every generation is published on Frames.
func (e *Engine) Run(ctx context.Context, steps int) error {
	return e.run(ctx, steps, e.frames != nil)
}

func (e *Engine) run(ctx context.Context, steps int, publish bool) error {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	e.quitMu.Lock()
	e.quit = make(chan struct{})
	e.stopReq.Store(false)
	e.quitMu.Unlock()
	defer func() {
		e.quitMu.Lock()
		e.quit = nil
		e.stopReq.Store(false)
		e.quitMu.Unlock()
	}()

	e.remaining = steps
	e.publish = publish
	e.active.Store(!e.stopReq.Load() && ctx.Err() == nil)

	computed := NewBarrier(len(e.chunks), e.beginCommit)
	committed := NewBarrier(len(e.chunks), e.endGeneration)

	g := new(errgroup.Group)
	for _, c := range e.chunks {
		g.Go(func() error {
			e.work(c, computed, committed)
			return nil
		})
	}

	done := make(chan struct{})
	watched := make(chan struct{})
	go func() {
		defer close(watched)
		select {
		case <-ctx.Done():
			e.Stop()
		case <-done:
		}
	}()

	err := g.Wait()
	close(done)
	<-watched
	if err != nil {
		return err
	}
	return ctx.Err()
}

// work is the loop of one chunk worker. The active flag is only consulted at
// the top of the loop; once a generation is entered both barriers are always
// reached so the other workers are never left waiting.
func (e *Engine) work(c Chunk, computed, committed *Barrier) {
	next := make([]bool, c.Size*c.Size)
	total := uint64(len(next))
	for e.active.Load() {
		i := 0
		for y := c.Y0; y < c.Y0+c.Size; y++ {
			for x := c.X0; x < c.X0+c.Size; x++ {
				next[i] = NextState(e.grid.At(x, y), e.grid.LiveNeighbors(x, y))
				i++
			}
		}

		computed.Wait()

		var alive uint64
		i = 0
		for y := c.Y0; y < c.Y0+c.Size; y++ {
			for x := c.X0; x < c.X0+c.Size; x++ {
				e.grid.Put(x, y, next[i])
				if next[i] {
					alive++
				}
				i++
			}
		}
		e.alive.Add(alive)
		e.dead.Add(total - alive)

		committed.Wait()
	}
}

func (e *Engine) beginCommit() {
	e.commitMu.Lock()
}

// endGeneration runs on the last worker to finish committing, while every
// other worker is parked on the barrier. It is the only writer of the active
// flag during a run, so all workers see the same value at the top of the loop.
func (e *Engine) endGeneration() {
	gen := int(e.generation.Add(1))
	var frame Frame
	if e.publish {
		frame = Frame{Generation: gen, Cells: e.grid.Snapshot(), Alive: e.grid.Alive()}
	}
	e.commitMu.Unlock()

	if e.remaining > 0 {
		e.remaining--
		if e.remaining == 0 {
			e.active.Store(false)
		}
	}
	if e.stopReq.Load() {
		e.active.Store(false)
	}

	if !e.publish {
		return
	}
	e.quitMu.Lock()
	quit := e.quit
	e.quitMu.Unlock()
	select {
	case e.frames <- frame:
	case <-quit:
		e.active.Store(false)
	}
}

func (e *Engine) seed(seed int64) error {
	e.commitMu.Lock()
	defer e.commitMu.Unlock()

	e.grid.Clear()
	e.generation.Store(0)
	e.alive.Store(0)
	e.dead.Store(0)

	if e.cfg.Pattern != "" && e.cfg.Pattern != PatternNone {
		if err := Place(e.grid, e.cfg.Pattern, e.cfg.Origin, seed); err != nil {
			return err
		}
	}
	for _, p := range e.cfg.Cells {
		if err := e.grid.Set(p.X, p.Y, true); err != nil {
			return err
		}
	}
	return nil
}

// Parameters exposes the run configuration and counters for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	stats := e.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("size", "Size", e.cfg.Size),
				core.IntParam("workers", "Workers", len(e.chunks)),
				core.IntParam("chunk", "Chunk size", e.ChunkSize()),
				core.StringParam("pattern", "Pattern", e.cfg.Pattern),
				core.BoolParam("live", "Live frames", e.cfg.Live),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", stats.Generation),
				core.IntParam("population", "Population", stats.Population),
				core.Uint64Param("alive", "Alive total", stats.Alive),
				core.Uint64Param("dead", "Dead total", stats.Dead),
			},
		},
	}}
}
