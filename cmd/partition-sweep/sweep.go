package main

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"sync"
	"time"

	"parlife/internal/core"
	"parlife/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

// Plan describes which runs a sweep compares.
type Plan struct {
	Size       int
	Steps      int
	Seeds      int
	MaxWorkers int
	Parallel   int
}

// WorkerCounts lists every worker count the plan exercises.
func (p Plan) WorkerCounts() []int {
	return life.ValidWorkerCounts(p.Size, p.MaxWorkers)
}

// Result is the outcome of one run.
type Result struct {
	Seed        int64
	Workers     int
	ChunkSize   int
	Elapsed     time.Duration
	Population  int
	Fingerprint uint64
}

// Sweep runs every seed at every valid worker count and fails when any run
// ends on a grid different from the single-worker run for the same seed.
func Sweep(ctx context.Context, p Plan) ([]Result, error) {
	type job struct {
		seed    int64
		workers int
	}
	var jobs []job
	for s := 1; s <= p.Seeds; s++ {
		for _, w := range p.WorkerCounts() {
			jobs = append(jobs, job{seed: int64(s), workers: w})
		}
	}

	var (
		mu      sync.Mutex
		results []Result
	)
	g, ctx := errgroup.WithContext(ctx)
	if p.Parallel > 0 {
		g.SetLimit(p.Parallel)
	}
	for _, j := range jobs {
		g.Go(func() error {
			res, err := runOnce(ctx, p, j.seed, j.workers)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, k int) bool {
		if results[i].Seed != results[k].Seed {
			return results[i].Seed < results[k].Seed
		}
		return results[i].Workers < results[k].Workers
	})

	reference := map[int64]Result{}
	for _, r := range results {
		ref, ok := reference[r.Seed]
		if !ok {
			reference[r.Seed] = r
			continue
		}
		if r.Fingerprint != ref.Fingerprint {
			return results, fmt.Errorf("seed %d: %d workers diverged from %d workers (%016x != %016x)",
				r.Seed, r.Workers, ref.Workers, r.Fingerprint, ref.Fingerprint)
		}
	}
	return results, nil
}

func runOnce(ctx context.Context, p Plan, seed int64, workers int) (Result, error) {
	cfg := life.DefaultConfig()
	cfg.Size = p.Size
	cfg.Workers = workers
	cfg.MaxWorkers = p.MaxWorkers
	cfg.Pattern = "random"
	cfg.Seed = seed

	engine, err := life.New(cfg)
	if err != nil {
		return Result{}, err
	}
	watch := core.NewStopwatch()
	if err := engine.Run(ctx, p.Steps); err != nil {
		return Result{}, fmt.Errorf("seed %d, %d workers: %w", seed, workers, err)
	}
	elapsed := watch.Stop()

	cells := engine.Cells()
	h := fnv.New64a()
	h.Write(cells)
	return Result{
		Seed:        seed,
		Workers:     workers,
		ChunkSize:   engine.ChunkSize(),
		Elapsed:     elapsed,
		Population:  engine.Stats().Population,
		Fingerprint: h.Sum64(),
	}, nil
}
