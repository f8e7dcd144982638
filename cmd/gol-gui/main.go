//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"parlife/internal/app"
	"parlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lc := life.FromMap(cfg.Sim)
	// The GUI pulls generations with Step; nothing consumes live frames.
	lc.Live = false
	engine, err := life.New(lc)
	if err != nil {
		log.Fatalf("configuring simulation: %v", err)
	}

	game := app.New(engine, cfg.Scale, engine.Config().Seed)
	size := engine.Size()

	ebiten.SetWindowTitle("parlife: " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+220, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
