//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"unbounded-ca/internal/app"
	"unbounded-ca/internal/core"
	_ "unbounded-ca/internal/sims/spacetime"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatalf("sim %q: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	size := sim.Size()

	ebiten.SetWindowTitle("unbounded-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
