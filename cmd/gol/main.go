package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"parlife/internal/core"
	"parlife/internal/render"
	"parlife/internal/report"
	"parlife/internal/sims/life"
	"parlife/internal/term"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) error {
	if cfg.Interactive {
		if err := interview(cfg, in, out); err != nil {
			return err
		}
	}
	lifeCfg, err := cfg.LifeConfig()
	if err != nil {
		return err
	}
	steps, err := cfg.StepCount()
	if err != nil {
		return err
	}
	engine, err := life.New(lifeCfg)
	if err != nil {
		return err
	}
	log.Printf("grid %dx%d, %d workers of %dx%d cells", lifeCfg.Size, lifeCfg.Size, lifeCfg.Workers, engine.ChunkSize(), engine.ChunkSize())

	if cfg.Live {
		return runLive(ctx, cfg, engine, steps, out)
	}
	return runTimed(ctx, engine, steps, out)
}

func runTimed(ctx context.Context, engine *life.Engine, steps int, out io.Writer) error {
	fmt.Fprintf(out, "generation 0\n%s\n", render.Text(engine.Snapshot(), render.AliveGlyph, render.DeadGlyph))

	watch := core.NewStopwatch()
	err := engine.Run(ctx, steps)
	elapsed := watch.Stop()
	if err != nil {
		return err
	}

	stats := engine.Stats()
	fmt.Fprintf(out, "generation %d\n%s\n", stats.Generation, render.Text(engine.Snapshot(), render.AliveGlyph, render.DeadGlyph))
	return report.Write(out, report.FromEngine(engine, elapsed), true)
}

func runLive(ctx context.Context, cfg *Config, engine *life.Engine, steps int, out io.Writer) error {
	display, err := term.Open(cfg.Invert)
	if err != nil {
		return err
	}
	display.Draw(engine.Snapshot(), "generation 0")

	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx, steps) }()

	quit := display.Quit()
	watch := core.NewStopwatch()
	var runErr error
loop:
	for {
		select {
		case frame := <-engine.Frames():
			watch.Tick()
			if quit == nil {
				// The quit may have landed before the run started.
				engine.Stop()
			}
			display.Draw(frame.Cells, fmt.Sprintf("generation %d  alive %d  (q to quit)", frame.Generation, frame.Alive))
			if cfg.Delay > 0 && quit != nil {
				select {
				case <-time.After(cfg.Delay):
				case <-quit:
					engine.Stop()
					quit = nil
				}
			}
		case <-quit:
			engine.Stop()
			quit = nil
		case runErr = <-done:
			break loop
		}
	}
	display.Close()
	log.Printf("showed %d frames, slowest %s", watch.Ticks(), watch.Slowest())

	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return report.Write(out, report.FromEngine(engine, 0), false)
}
