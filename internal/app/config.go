package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the GUI binary.
type Config struct {
	Sim          string `json:"sim"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Scale        int    `json:"scale"`
	TPS          int    `json:"tps"`
	StepsPerTick int    `json:"steps_per_tick"`
	Seed         uint64 `json:"seed"`
	Percent      int    `json:"percent"`
	Edge         string `json:"edge"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:          "life",
		Width:        256,
		Height:       256,
		Scale:        3,
		TPS:          30,
		StepsPerTick: 1,
		Seed:         42,
		Percent:      30,
		Edge:         "wrap",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.StepsPerTick, "steps", c.StepsPerTick, "generations per tick")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for board reseeding")
	fs.IntVar(&c.Percent, "percent", c.Percent, "initial live cell percentage")
	fs.StringVar(&c.Edge, "edge", c.Edge, "edge rule: wrap or clamp")
}

// LoadFile overlays values from a JSON file onto the config. Fields absent
// from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// SimConfig renders the grid settings as a registry configuration map.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"percent": strconv.Itoa(c.Percent),
		"edge":    c.Edge,
	}
}
