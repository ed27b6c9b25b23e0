package main

import (
	"log"
	"strconv"
	"time"

	"github.com/integrii/flaggy"

	"golife/internal/core"
	"golife/internal/engine"
	_ "golife/internal/sims/life"
	"golife/internal/view"
)

type envOptions struct {
	interactive bool
	width       int
	height      int
	percent     int
	seed        uint64
	edge        string
	interval    time.Duration
	maxSteps    int
}

func main() {
	eo := initOptions()

	factory := core.Sims()["life"]
	sim, err := factory(map[string]string{
		"w":       strconv.Itoa(eo.width),
		"h":       strconv.Itoa(eo.height),
		"percent": strconv.Itoa(eo.percent),
		"edge":    eo.edge,
	})
	if err != nil {
		log.Fatal(err)
	}

	opts := engine.Options{
		Interval: eo.interval,
		MaxSteps: uint64(eo.maxSteps),
		Seed:     eo.seed,
	}

	if eo.interactive {
		r := engine.New(sim, opts, nil)
		r.Reseed(eo.seed)
		ui := view.NewConsoleUI(r)
		ui.Start()
		r.Close()
		return
	}

	stateCh := make(chan engine.Status, 16)
	r := engine.New(sim, opts, stateCh)
	out := view.NewConsoleOut()
	out.PrintConfig(sim, opts)

	r.Reseed(eo.seed)
	r.Run()
	out.Watch(stateCh)
	r.Close()
}

func initOptions() *envOptions {
	eo := &envOptions{
		width:    60,
		height:   25,
		percent:  30,
		seed:     42,
		edge:     "wrap",
		interval: 100 * time.Millisecond,
		maxSteps: 1000,
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.Int(&eo.width, "x", "width", "Width of the board in cells")
	flaggy.Int(&eo.height, "y", "height", "Height of the board in cells")
	flaggy.Int(&eo.percent, "p", "percent", "Initial live cell percentage, 0..100")
	flaggy.UInt64(&eo.seed, "d", "seed", "Seed for the deterministic board fill")
	flaggy.String(&eo.edge, "e", "edge", "Edge rule [wrap|clamp]")
	flaggy.Duration(&eo.interval, "i", "interval", "Interval between generations, for example 150ms")
	flaggy.Int(&eo.maxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.Parse()

	if eo.edge != "wrap" && eo.edge != "clamp" {
		flaggy.ShowHelpAndExit("unknown edge rule")
	}
	if eo.percent < 0 || eo.percent > 100 {
		flaggy.ShowHelpAndExit("percent must be within 0..100")
	}
	return eo
}
