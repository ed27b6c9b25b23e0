package life

import (
	"testing"

	"golife/pkg/life"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "64", "h": "32", "percent": "55", "edge": "clamp"})
	if c.Width != 64 || c.Height != 32 || c.Percent != 55 || c.Edge != life.EdgeClamp {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{"w": "-3", "h": "zero", "percent": "150", "edge": "moebius"})
	if c != def {
		t.Fatalf("invalid values leaked into config: %+v", c)
	}
}

func TestReseedWarmsUp(t *testing.T) {
	s, err := New(Config{Width: 32, Height: 32, Percent: 40, Edge: life.EdgeWrap})
	if err != nil {
		t.Fatal(err)
	}
	s.Reseed(7)
	// Reset zeroes the counter, fill leaves it alone, warm-up steps once.
	if s.Generation() != 1 {
		t.Fatalf("generation after reseed = %d, want 1", s.Generation())
	}

	first := append([]uint8(nil), s.Cells()...)
	s.Reseed(7)
	for i := range first {
		if first[i] != s.Cells()[i] {
			t.Fatalf("reseed with same seed diverged at index %d", i)
		}
	}
}
