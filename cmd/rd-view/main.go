//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"rd-lab/internal/app"
	"rd-lab/internal/core"
	"rd-lab/internal/export"
	_ "rd-lab/internal/sims/grayscott"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.Overrides(flag.CommandLine))
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	var frames *export.DirWriter
	if cfg.SaveDir != "" {
		frames, err = export.NewDirWriter(cfg.SaveDir, "Output", cfg.SaveFormat)
		if err != nil {
			log.Fatal(err)
		}
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, frames)
	size := sim.Size()

	ebiten.SetWindowTitle("rd-lab — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
