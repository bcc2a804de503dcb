package viz

import (
	"strings"
	"testing"

	"github.com/askarov/stdmap/internal/chirikov"
	"github.com/askarov/stdmap/internal/sim"
)

func TestNewCanvasBlank(t *testing.T) {
	c := NewCanvas(10, 4, 0, 1, 0, 1)
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("expected blank braille cell, got %U", r)
			}
		}
	}
}

func TestCanvasMark(t *testing.T) {
	c := NewCanvas(10, 4, 0, 1, 0, 1)
	c.Mark(0.5, 0.5)
	if count := dotCount(c); count != 1 {
		t.Errorf("expected 1 marked cell, got %d", count)
	}
}

func TestCanvasMarkCorners(t *testing.T) {
	c := NewCanvas(10, 4, 0, chirikov.TwoPi, 0, chirikov.TwoPi)
	for _, p := range [][2]float64{
		{0, 0},
		{0, chirikov.TwoPi},
		{chirikov.TwoPi, 0},
		{chirikov.TwoPi, chirikov.TwoPi},
	} {
		c.Mark(p[0], p[1])
	}
	if count := dotCount(c); count != 4 {
		t.Errorf("expected all 4 corners marked, got %d cells", count)
	}
}

func TestCanvasMarkOutsideWindow(t *testing.T) {
	c := NewCanvas(10, 4, 0, 1, 0, 1)
	c.Mark(-0.1, 0.5)
	c.Mark(1.1, 0.5)
	c.Mark(0.5, -0.1)
	c.Mark(0.5, 1.1)
	if count := dotCount(c); count != 0 {
		t.Errorf("points outside the window must be dropped, got %d cells", count)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(10, 4, 0, 1, 0, 1)
	c.Mark(0.2, 0.2)
	c.Mark(0.8, 0.8)
	c.Clear()
	if count := dotCount(c); count != 0 {
		t.Errorf("expected cleared canvas, got %d cells", count)
	}
}

func TestCanvasStringDimensions(t *testing.T) {
	c := NewCanvas(12, 5, 0, 1, 0, 1)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if n := len([]rune(line)); n != 12 {
			t.Errorf("expected 12 runes per row, got %d", n)
		}
	}
}

func TestPhaseCanvas(t *testing.T) {
	b := &sim.Batch{
		K:     1.0,
		Steps: 2,
		Trajectories: []chirikov.Trajectory{
			{I: []float64{1, 2, 3}, Theta: []float64{1, 2, 3}},
		},
	}
	c := PhaseCanvas(b, 0, 20, 8)
	if count := dotCount(c); count == 0 {
		t.Error("expected phase samples on the canvas")
	}

	tailOnly := PhaseCanvas(b, 1, 20, 8)
	if full, tail := dotCount(c), dotCount(tailOnly); tail >= full {
		t.Errorf("tail plot should mark fewer cells: full=%d tail=%d", full, tail)
	}
}

func TestPoincareCanvasBadIndex(t *testing.T) {
	b := &sim.Batch{
		K:            1.0,
		Steps:        1,
		Trajectories: []chirikov.Trajectory{{I: []float64{1, 2}, Theta: []float64{1, 2}}},
	}
	if _, err := PoincareCanvas(b, 1, 20, 8); err == nil {
		t.Error("expected error for out-of-range trajectory index")
	}
	if _, err := PoincareCanvas(b, -1, 20, 8); err == nil {
		t.Error("expected error for negative trajectory index")
	}
	if _, err := PoincareCanvas(b, 0, 20, 8); err != nil {
		t.Errorf("expected valid index to plot, got %v", err)
	}
}

func dotCount(c *Canvas) int {
	count := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				count++
			}
		}
	}
	return count
}
