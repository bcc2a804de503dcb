package viz

import (
	"fmt"

	"github.com/askarov/stdmap/internal/analysis"
	"github.com/askarov/stdmap/internal/chirikov"
	"github.com/askarov/stdmap/internal/sim"
)

// PhaseCanvas marks the late-time (θ, I) samples of a batch on the fixed
// torus window [0, 2π) × [0, 2π). tail <= 0 plots whole orbits.
func PhaseCanvas(b *sim.Batch, tail, width, height int) *Canvas {
	c := NewCanvas(width, height, 0, chirikov.TwoPi, 0, chirikov.TwoPi)
	for _, tr := range b.Trajectories {
		n := tr.Len()
		if tail > 0 && tail < n {
			n = tail
		}
		thetas := tr.ThetaTail(n)
		is := tr.ITail(n)
		for p := range thetas {
			c.Mark(thetas[p], is[p])
		}
	}
	return c
}

// PhasePortrait renders PhaseCanvas with a styled header and axis note.
func PhasePortrait(b *sim.Batch, tail, width, height int) string {
	c := PhaseCanvas(b, tail, width, height)
	return header(fmt.Sprintf("phase space  K=%g  sims=%d  steps=%d", b.K, b.Sims(), b.Steps)) +
		c.String() + axisLine("θ: 0 .. 2π", "I: 0 .. 2π")
}

// PoincareCanvas marks a single trajectory of the batch.
func PoincareCanvas(b *sim.Batch, traj, width, height int) (*Canvas, error) {
	if traj < 0 || traj >= b.Sims() {
		return nil, fmt.Errorf("trajectory index must satisfy 0 <= i < %d, got %d", b.Sims(), traj)
	}
	c := NewCanvas(width, height, 0, chirikov.TwoPi, 0, chirikov.TwoPi)
	tr := b.Trajectories[traj]
	for p := range tr.Theta {
		c.Mark(tr.Theta[p], tr.I[p])
	}
	return c, nil
}

// PoincareSection renders a single trajectory with a styled header.
func PoincareSection(b *sim.Batch, traj, width, height int) (string, error) {
	c, err := PoincareCanvas(b, traj, width, height)
	if err != nil {
		return "", err
	}
	return header(fmt.Sprintf("Poincaré section  K=%g  trajectory=%d", b.K, traj)) +
		c.String() + axisLine("θ: 0 .. 2π", "I: 0 .. 2π"), nil
}

// BifurcationCanvas marks a K sweep: K on the x axis, late-time I on y.
func BifurcationCanvas(d *analysis.BifurcationData, width, height int) *Canvas {
	kMin, kMax := kBounds(d)
	c := NewCanvas(width, height, kMin, kMax, 0, chirikov.TwoPi)
	for n := range d.K {
		c.Mark(d.K[n], d.I[n])
	}
	return c
}

// BifurcationASCII renders BifurcationCanvas with a styled header.
func BifurcationASCII(d *analysis.BifurcationData, width, height int) string {
	if len(d.K) == 0 {
		return "no samples\n"
	}
	kMin, kMax := kBounds(d)
	c := BifurcationCanvas(d, width, height)
	return header(fmt.Sprintf("bifurcation  K in [%g, %g]  %d samples", kMin, kMax, len(d.K))) +
		c.String() + axisLine(fmt.Sprintf("K: %g .. %g", kMin, kMax), "I: 0 .. 2π")
}

func kBounds(d *analysis.BifurcationData) (float64, float64) {
	if len(d.K) == 0 {
		return 0, 1
	}
	kMin, kMax := d.K[0], d.K[0]
	for _, k := range d.K {
		if k < kMin {
			kMin = k
		}
		if k > kMax {
			kMax = k
		}
	}
	if kMax == kMin {
		kMax = kMin + 1
	}
	return kMin, kMax
}
