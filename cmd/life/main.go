//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"golife/internal/app"
	"golife/internal/core"
	_ "golife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	var configFile string
	flag.StringVar(&configFile, "config", "", "JSON config file (overrides flags)")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			log.Fatal(err)
		}
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reseed(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("golife — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
