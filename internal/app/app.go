//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"golife/internal/core"
	"golife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. The frame rate
// stays at ebiten's default; the simulation advances at the pacer's rate,
// StepsPerTick generations at a time.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	pacer   *core.FixedStep
	stats   *core.Stats

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     uint64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	pacer := core.NewFixedStep(cfg.TPS)
	pacer.StepsPerTick = cfg.StepsPerTick
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size().W, sim.Size().H),
		pacer:    pacer,
		stats:    core.NewStats(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed uint64) {
	g.seed = seed
	g.sim.Reseed(seed)
	g.stats = core.NewStats()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(uint64(time.Now().UnixNano()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.pacer.StepsPerTick++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.pacer.StepsPerTick > 1 {
		g.pacer.StepsPerTick--
	}

	steps := 0
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	} else if !g.paused {
		steps = g.pacer.Steps()
	}
	for i := 0; i < steps; i++ {
		start := time.Now()
		g.sim.Step()
		g.stats.Update(g.sim.Generation(), g.sim.Population(), time.Since(start))
	}
	return nil
}

// Draw renders the current simulation state and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)

	state := "running"
	if g.paused {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  gen %d  pop %d  x%d  %.0f gen/s  [%s]",
		g.sim.Name(), g.sim.Generation(), g.sim.Population(),
		g.pacer.StepsPerTick, g.stats.GenerationsPerSecond, state))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
