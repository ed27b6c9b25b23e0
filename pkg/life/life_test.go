package life

import "testing"

func mustNew(t *testing.T, w, h int, edge EdgeRule) *Grid {
	t.Helper()
	g, err := NewWithEdge(w, h, edge)
	if err != nil {
		t.Fatalf("NewWithEdge(%d, %d): %v", w, h, err)
	}
	return g
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {0, 0}} {
		if _, err := New(dims[0], dims[1]); err == nil {
			t.Fatalf("New(%d, %d) succeeded, expected error", dims[0], dims[1])
		}
	}
}

func TestNeighborCountToroidal(t *testing.T) {
	g := mustNew(t, 3, 3, EdgeWrap)
	// Four corners alive.
	for _, p := range [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		g.Set(p[0], p[1], true)
	}

	want := [][]int{
		{3, 4, 3},
		{4, 4, 4},
		{3, 4, 3},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := g.NeighborCount(x, y); got != want[y][x] {
				t.Fatalf("wrap neighbors at (%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestNeighborCountClamped(t *testing.T) {
	g := mustNew(t, 3, 3, EdgeClamp)
	for _, p := range [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		g.Set(p[0], p[1], true)
	}

	want := [][]int{
		{0, 2, 0},
		{2, 4, 2},
		{0, 2, 0},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := g.NeighborCount(x, y); got != want[y][x] {
				t.Fatalf("clamp neighbors at (%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestGenerationIncrementsEveryStep(t *testing.T) {
	g := mustNew(t, 4, 4, EdgeWrap)
	for i := uint64(1); i <= 5; i++ {
		g.Step()
		if g.Generation() != i {
			t.Fatalf("after %d steps generation = %d", i, g.Generation())
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := mustNew(t, 10, 10, EdgeWrap)
	block := map[[2]int]bool{{4, 4}: true, {5, 4}: true, {4, 5}: true, {5, 5}: true}
	for p := range block {
		g.Set(p[0], p[1], true)
	}

	for i := 0; i < 4; i++ {
		g.Step()
		for c := range g.All() {
			if c.Alive != block[[2]int{c.X, c.Y}] {
				t.Fatalf("step %d: cell (%d,%d) alive=%v", i+1, c.X, c.Y, c.Alive)
			}
		}
	}
}

func TestLoneCellDies(t *testing.T) {
	g := mustNew(t, 5, 5, EdgeWrap)
	g.Set(2, 2, true)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("lone cell survived, population = %d", g.Population())
	}
}

func TestBirthRequiresExactlyThreeNeighbors(t *testing.T) {
	cases := []struct {
		neighbors [][2]int
		born      bool
	}{
		{[][2]int{{1, 1}, {3, 1}}, false},
		{[][2]int{{1, 1}, {3, 1}, {1, 3}}, true},
		{[][2]int{{1, 1}, {3, 1}, {1, 3}, {3, 3}}, false},
	}
	for _, tc := range cases {
		g := mustNew(t, 7, 7, EdgeWrap)
		for _, p := range tc.neighbors {
			g.Set(p[0], p[1], true)
		}
		g.Step()
		if got := g.At(2, 2); got != tc.born {
			t.Fatalf("dead cell with %d neighbors: alive=%v, want %v", len(tc.neighbors), got, tc.born)
		}
	}
}

func TestFillIsDeterministic(t *testing.T) {
	a := mustNew(t, 32, 24, EdgeWrap)
	b := mustNew(t, 32, 24, EdgeWrap)
	a.Fill(1234, 40)
	b.Fill(1234, 40)

	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("same seed diverged at index %d", i)
		}
	}

	c := mustNew(t, 32, 24, EdgeWrap)
	c.Fill(1235, 40)
	same := true
	for i := range a.Cells() {
		if a.Cells()[i] != c.Cells()[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced an identical board")
	}
}

func TestFillCoverage(t *testing.T) {
	g := mustNew(t, 100, 100, EdgeWrap)
	g.Fill(7, 30)
	pop := g.Population()
	// Collisions make the count fall short of the target, never exceed it.
	if pop > 3000 || pop < 2000 {
		t.Fatalf("fill(30%%) produced %d live cells on 100x100", pop)
	}
}

func TestFillIsAdditive(t *testing.T) {
	g := mustNew(t, 10, 10, EdgeWrap)
	g.Set(0, 0, true)
	g.Fill(99, 0)
	if !g.At(0, 0) {
		t.Fatal("fill cleared an existing live cell")
	}
}

func TestFillPanicsOnBadPercent(t *testing.T) {
	g := mustNew(t, 4, 4, EdgeWrap)
	defer func() {
		if recover() == nil {
			t.Fatal("fill(101) did not panic")
		}
	}()
	g.Fill(0, 101)
}

func TestResetIsIdempotent(t *testing.T) {
	g := mustNew(t, 8, 8, EdgeWrap)
	g.Fill(42, 50)
	g.Step()
	g.Reset()
	g.Reset()

	if g.Generation() != 0 {
		t.Fatalf("generation after reset = %d", g.Generation())
	}
	for c := range g.All() {
		if c.Alive {
			t.Fatalf("cell (%d,%d) alive after reset", c.X, c.Y)
		}
	}
}

func TestAllVisitsEveryCellOnce(t *testing.T) {
	g := mustNew(t, 6, 4, EdgeWrap)
	seen := map[[2]int]int{}
	n := 0
	prev := -1
	for c := range g.All() {
		if c.X < 0 || c.X >= 6 || c.Y < 0 || c.Y >= 4 {
			t.Fatalf("cell (%d,%d) out of range", c.X, c.Y)
		}
		idx := c.Y*6 + c.X
		if idx <= prev {
			t.Fatalf("iteration not row-major at (%d,%d)", c.X, c.Y)
		}
		prev = idx
		seen[[2]int{c.X, c.Y}]++
		n++
	}
	if n != 24 {
		t.Fatalf("iterated %d cells, want 24", n)
	}
	for p, count := range seen {
		if count != 1 {
			t.Fatalf("cell (%d,%d) visited %d times", p[0], p[1], count)
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	g := mustNew(t, 6, 4, EdgeWrap)
	n := 0
	for range g.All() {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Fatalf("consumed %d cells, want 5", n)
	}

	// Each call yields a fresh sequence starting over at (0,0).
	n = 0
	for range g.All() {
		n++
	}
	if n != 24 {
		t.Fatalf("restarted iteration yielded %d cells, want 24", n)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustNew(t, 5, 5, EdgeWrap)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	g.Step()
	expects := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	for c := range g.All() {
		if c.Alive != expects[[2]int{c.X, c.Y}] {
			t.Fatalf("cell (%d,%d) alive=%v, expected %v", c.X, c.Y, c.Alive, expects[[2]int{c.X, c.Y}])
		}
	}

	g.Step()
	expects = map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	for c := range g.All() {
		if c.Alive != expects[[2]int{c.X, c.Y}] {
			t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", c.X, c.Y, c.Alive, expects[[2]int{c.X, c.Y}])
		}
	}
}
