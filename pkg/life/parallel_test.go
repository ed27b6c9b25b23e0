package life

import "testing"

func TestStepParallelMatchesStep(t *testing.T) {
	a := mustNew(t, 64, 48, EdgeWrap)
	b := mustNew(t, 64, 48, EdgeWrap)
	a.Fill(2024, 35)
	b.Fill(2024, 35)

	for i := 0; i < 8; i++ {
		a.Step()
		b.StepParallel()
		for j := range a.Cells() {
			if a.Cells()[j] != b.Cells()[j] {
				t.Fatalf("generation %d: buffers diverge at index %d", i+1, j)
			}
		}
		if a.Generation() != b.Generation() {
			t.Fatalf("generation counters diverge: %d vs %d", a.Generation(), b.Generation())
		}
	}
}

func benchGrid(b *testing.B, w, h int) *Grid {
	b.Helper()
	g, err := New(w, h)
	if err != nil {
		b.Fatal(err)
	}
	g.Fill(1, 30)
	return g
}

func BenchmarkStep(b *testing.B) {
	g := benchGrid(b, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}

func BenchmarkStepParallel(b *testing.B) {
	g := benchGrid(b, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.StepParallel()
	}
}
