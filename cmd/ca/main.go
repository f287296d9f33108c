//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"autopoiesis/internal/app"
	"autopoiesis/internal/core"
	_ "autopoiesis/internal/sims/autopoiesis"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim := factory(cfg.Options)
	if cfg.Seed != 0 {
		sim.Reset(cfg.Seed)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	size := sim.Size()

	ebiten.SetWindowTitle("autopoiesis: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
