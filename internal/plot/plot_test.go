package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/askarov/stdmap/internal/analysis"
	"github.com/askarov/stdmap/internal/chirikov"
	"github.com/askarov/stdmap/internal/sim"
)

func testBatch() *sim.Batch {
	return &sim.Batch{
		K:     1.5,
		Seed:  7,
		Steps: 3,
		Trajectories: []chirikov.Trajectory{
			{I: []float64{1, 1.5, 2, 2.5}, Theta: []float64{0.5, 1.5, 3.5, 5.5}},
			{I: []float64{0.5, 1, 1.5, 2}, Theta: []float64{0.1, 1.1, 2.6, 4.6}},
		},
	}
}

func assertImage(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected image at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("image %s is empty", path)
	}
}

func TestPhaseScatter(t *testing.T) {
	file := filepath.Join(t.TempDir(), "phase.png")
	if err := PhaseScatter(testBatch(), 2, file); err != nil {
		t.Fatalf("phase scatter: %v", err)
	}
	assertImage(t, file)
}

func TestPoincareSection(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "poincare.png")
	if err := PoincareSection(testBatch(), 1, file); err != nil {
		t.Fatalf("poincare: %v", err)
	}
	assertImage(t, file)

	if err := PoincareSection(testBatch(), 5, filepath.Join(dir, "bad.png")); err == nil {
		t.Error("expected error for out-of-range trajectory index")
	}
}

func TestBifurcation(t *testing.T) {
	d := &analysis.BifurcationData{
		K: []float64{0.5, 0.5, 1.0, 1.0},
		I: []float64{1.0, 1.2, 2.0, 2.4},
	}
	file := filepath.Join(t.TempDir(), "bifurcation.png")
	if err := Bifurcation(d, file); err != nil {
		t.Fatalf("bifurcation: %v", err)
	}
	assertImage(t, file)
}

func TestSweep(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sweep.png")
	if err := Sweep([]float64{0.5, 0.5, 1.0}, []float64{1, 2, 3}, "I_n", file); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	assertImage(t, file)

	if err := Sweep([]float64{0.5}, []float64{1, 2}, "I_n", file); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
