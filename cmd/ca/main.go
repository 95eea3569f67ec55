//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandlab/internal/app"
	"sandlab/internal/core"
	_ "sandlab/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim := core.Sims()[cfg.Sim](cfg.SimOptions())
	canvas, ok := sim.(app.Canvas)
	if !ok {
		log.Fatalf("sim %q cannot be painted", cfg.Sim)
	}

	game := app.New(canvas, cfg.Scale, cfg.HUDWidth, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("Falling Sand")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
