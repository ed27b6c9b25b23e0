package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the frontends drive a board through.
type Sim interface {
	Name() string
	Size() Size
	// Reseed clears the board, randomizes it from the seed, then advances
	// one generation so the first displayed frame is not raw noise.
	Reseed(seed uint64)
	// Reset kills every cell and zeroes the generation counter.
	Reset()
	Step()
	Cells() []uint8
	Generation() uint64
	Population() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
