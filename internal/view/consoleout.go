package view

import (
	"fmt"
	"time"

	"golife/internal/core"
	"golife/internal/engine"
)

// ConsoleOut prints batch-run progress to stdout.
type ConsoleOut struct {
	startTime time.Time
}

// NewConsoleOut returns a printer for non-interactive runs.
func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

// PrintConfig writes the run configuration before the simulation starts.
func (c *ConsoleOut) PrintConfig(sim core.Sim, o engine.Options) {
	fmt.Println("Running configuration:")
	fmt.Printf("  Simulation: %v\n", sim.Name())
	fmt.Printf("  Dimension: %v x %v\n", sim.Size().W, sim.Size().H)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max steps: %v\n", o.MaxSteps)
	fmt.Printf("  Seed: %v\n", o.Seed)
}

// Watch consumes status updates until the run finishes, printing progress
// every tenth generation and a summary at the end.
func (c *ConsoleOut) Watch(ch <-chan engine.Status) {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
	for st := range ch {
		switch st.Mode {
		case engine.ModeFinished:
			fmt.Println("\nFinished:")
			fmt.Printf("  Last generation: %v\n", st.Generation)
			fmt.Printf("  Live cells: %v\n", st.Population)
			fmt.Printf("  Total time: %v\n", time.Since(c.startTime).Round(time.Millisecond))
			return
		default:
			if st.Generation > 0 && st.Generation%10 == 0 {
				fmt.Printf("  Generations done: %v\n", st.Generation)
			}
		}
	}
}
