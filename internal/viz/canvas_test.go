package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	if got := c.String(); got != "⠁⠀\n" {
		t.Errorf("top-left dot rendered %q", got)
	}

	c.Set(3, 3) // bottom-right sub-pixel of the second cell
	if got := c.String(); got != "⠁⢀\n" {
		t.Errorf("got %q", got)
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	before := c.String()

	c.Set(-1, 0)
	c.Set(0, -3)
	c.Set(4, 0)  // x beyond Width*2
	c.Set(0, 8)  // y beyond Height*4
	c.Set(99, 99)

	if c.String() != before {
		t.Errorf("out-of-bounds Set changed the canvas")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Disc(3, 4, 2)
	c.Clear()

	for _, r := range c.String() {
		if r != 0x2800 && r != '\n' {
			t.Fatalf("cell %q left after Clear", r)
		}
	}
}

func TestCanvasDisc(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Disc(4, 4, 2)

	lit := 0
	for _, r := range c.String() {
		if r == '\n' {
			continue
		}
		for bits := r - 0x2800; bits > 0; bits &= bits - 1 {
			lit++
		}
	}
	// r=2 fills the 13 lattice points with dx²+dy² ≤ 4.
	if lit != 13 {
		t.Errorf("disc lit %d sub-pixels, want 13", lit)
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(5, 3)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 5 {
			t.Errorf("line %d has %d cells, want 5", i, n)
		}
	}
}
