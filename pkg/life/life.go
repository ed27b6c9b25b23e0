// Package life implements a dense, double-buffered Conway's Game of Life
// grid. Cells are stored row-major, one byte per cell. Neighbor lookups use
// toroidal wrapping by default; a clamped rule that excludes out-of-range
// neighbors is available for callers that want hard edges. The two rules
// produce different results near boundaries and are never mixed.
//
// A Grid has exactly one owner: none of its methods are safe for concurrent
// use, and it must not be mutated while a sequence from All is being
// consumed.
package life

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"golife/pkg/core"
)

// EdgeRule selects how neighbor coordinates outside the grid are treated.
type EdgeRule int

const (
	// EdgeWrap wraps neighbor coordinates modulo width/height, joining
	// opposite edges into a torus.
	EdgeWrap EdgeRule = iota
	// EdgeClamp excludes out-of-range neighbors, so border cells have
	// fewer than 8 candidates.
	EdgeClamp
)

func (e EdgeRule) String() string {
	if e == EdgeClamp {
		return "clamp"
	}
	return "wrap"
}

// Cell is one element of the sequence produced by All.
type Cell struct {
	X, Y  int
	Alive bool
}

// Grid holds the current and next generation buffers. The buffers are equal
// sized and swapped by reference after each step, never copied.
type Grid struct {
	w, h int
	cur  []uint8
	nxt  []uint8
	gen  uint64
	edge EdgeRule
}

// New returns a toroidal grid with the provided dimensions, all cells dead.
func New(w, h int) (*Grid, error) {
	return NewWithEdge(w, h, EdgeWrap)
}

// NewWithEdge returns a grid using the provided edge rule.
func NewWithEdge(w, h int, edge EdgeRule) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("life: invalid grid dimensions %dx%d", w, h)
	}
	cells := make([]uint8, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells)), edge: edge}, nil
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height.
func (g *Grid) Height() int { return g.h }

// Edge returns the edge rule the grid was created with.
func (g *Grid) Edge() EdgeRule { return g.edge }

// Generation returns the number of steps applied since creation or the last
// Reset.
func (g *Grid) Generation() uint64 { return g.gen }

// Cells exposes the current cell values. The slice is invalidated by the
// next Step.
func (g *Grid) Cells() []uint8 { return g.cur }

// Reset kills every cell and zeroes the generation counter. No allocation.
func (g *Grid) Reset() {
	for i := range g.cur {
		g.cur[i] = 0
	}
	g.gen = 0
}

// Fill marks approximately percent% of all cells alive, drawing cell indices
// from a generator seeded with seed. The same seed and percent on equal
// dimensions always produce the same board. Draws may collide, so the final
// live count can fall short of the target; existing live cells are kept.
// Fill panics if percent is outside [0, 100].
func (g *Grid) Fill(seed uint64, percent int) {
	if percent < 0 || percent > 100 {
		panic(fmt.Sprintf("life: fill percent %d out of range", percent))
	}
	rng := core.NewRNG(seed)
	num := g.w * g.h * percent / 100
	for i := 0; i < num; i++ {
		g.cur[rng.IntN(g.w*g.h)] = 1
	}
}

// At reports whether the cell at (x, y) is alive. Panics if the coordinates
// are out of range.
func (g *Grid) At(x, y int) bool {
	g.check(x, y)
	return g.cur[y*g.w+x] == 1
}

// AtIndex reports whether the cell at the given row-major index is alive.
func (g *Grid) AtIndex(i int) bool {
	return g.cur[i] == 1
}

// Set forces the cell at (x, y) to the given state.
func (g *Grid) Set(x, y int, alive bool) {
	g.check(x, y)
	v := uint8(0)
	if alive {
		v = 1
	}
	g.cur[y*g.w+x] = v
}

// Toggle inverts the cell at (x, y).
func (g *Grid) Toggle(x, y int) {
	g.check(x, y)
	g.cur[y*g.w+x] ^= 1
}

func (g *Grid) check(x, y int) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d grid", x, y, g.w, g.h))
	}
}

// NeighborCount returns how many of the 8 cells around (x, y) are alive
// under the grid's edge rule.
func (g *Grid) NeighborCount(x, y int) int {
	g.check(x, y)
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.edge == EdgeWrap {
				nx = (nx + g.w) % g.w
				ny = (ny + g.h) % g.h
			} else if nx < 0 || ny < 0 || nx >= g.w || ny >= g.h {
				continue
			}
			neighbors += int(g.cur[ny*g.w+nx])
		}
	}
	return neighbors
}

// Step advances the grid by one generation. Every cell of the next
// generation is written to the scratch buffer while only the current buffer
// is read, then the two are swapped. The generation counter increments even
// when no cell changed.
func (g *Grid) Step() {
	g.stepRows(0, g.h)
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// stepRows computes rows [y0, y1) of the next generation into nxt.
func (g *Grid) stepRows(y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			neighbors := g.NeighborCount(x, y)
			alive := g.cur[idx] == 1
			g.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[idx] = 1
			}
		}
	}
}

// Changed reports whether the last Step altered any cell. Until the first
// Step it reports false. The previous generation is still intact in the
// scratch buffer after the swap, so this is a plain compare.
func (g *Grid) Changed() bool {
	if g.gen == 0 {
		return false
	}
	for i := range g.cur {
		if g.cur[i] != g.nxt[i] {
			return true
		}
	}
	return false
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// All returns a fresh row-major sequence over every cell. Consuming it does
// not mutate the grid; the grid must not be stepped while iterating.
func (g *Grid) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				if !yield(Cell{X: x, Y: y, Alive: g.cur[y*g.w+x] == 1}) {
					return
				}
			}
		}
	}
}
