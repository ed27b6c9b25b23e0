// Package life adapts the golife grid to the frontend sim contract and
// registers it with the simulation registry.
package life

import (
	"strconv"

	"github.com/pkg/errors"

	"golife/internal/core"
	"golife/pkg/life"
)

// Config holds the tunables for a registered life board.
type Config struct {
	Width   int
	Height  int
	Percent int
	Edge    life.EdgeRule
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Percent: 30, Edge: life.EdgeWrap}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["percent"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.Percent = parsed
		}
	}
	if v, ok := cfg["edge"]; ok && v == "clamp" {
		c.Edge = life.EdgeClamp
	}
	return c
}

// Sim drives a life.Grid through the core.Sim contract.
type Sim struct {
	grid    *life.Grid
	percent int
}

// New constructs a Sim from the provided configuration.
func New(c Config) (*Sim, error) {
	g, err := life.NewWithEdge(c.Width, c.Height, c.Edge)
	if err != nil {
		return nil, errors.Wrap(err, "life sim")
	}
	return &Sim{grid: g, percent: c.Percent}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size {
	return core.Size{W: s.grid.Width(), H: s.grid.Height()}
}

// Cells exposes the current grid values.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Generation returns the grid's generation counter.
func (s *Sim) Generation() uint64 { return s.grid.Generation() }

// Population returns the number of live cells.
func (s *Sim) Population() int { return s.grid.Population() }

// Grid exposes the underlying board for frontends that need cell access.
func (s *Sim) Grid() *life.Grid { return s.grid }

// Reseed clears the board, fills it from the seed, then advances one
// generation to shed the raw random noise before the first frame.
func (s *Sim) Reseed(seed uint64) {
	s.grid.Reset()
	s.grid.Fill(seed, s.percent)
	s.grid.Step()
}

// Reset kills every cell and zeroes the generation counter.
func (s *Sim) Reset() {
	s.grid.Reset()
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	s.grid.Step()
}

// Toggle inverts the cell at (x, y).
func (s *Sim) Toggle(x, y int) {
	s.grid.Toggle(x, y)
}

// Changed reports whether the last Step altered any cell.
func (s *Sim) Changed() bool {
	return s.grid.Changed()
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
