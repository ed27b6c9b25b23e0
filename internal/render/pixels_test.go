package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(cells))
	FillBinaryRGBA(buf, cells, color.White, color.Black)

	for i, c := range cells {
		base := i * 4
		want := uint8(0)
		if c != 0 {
			want = 255
		}
		if buf[base] != want || buf[base+1] != want || buf[base+2] != want {
			t.Fatalf("cell %d: rgb = %v, want %d", i, buf[base:base+3], want)
		}
		if buf[base+3] != 255 {
			t.Fatalf("cell %d: alpha = %d", i, buf[base+3])
		}
	}
}
