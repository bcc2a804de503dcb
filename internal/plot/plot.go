// Package plot renders phase-space and parameter-sweep diagnostics to
// image files.
package plot

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/askarov/stdmap/internal/analysis"
	"github.com/askarov/stdmap/internal/chirikov"
	"github.com/askarov/stdmap/internal/sim"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// palette for per-trajectory coloring in phase plots.
var palette = []color.RGBA{
	{R: 0x1b, G: 0x1f, B: 0x3b, A: 0xff},
	{R: 0x28, G: 0x36, B: 0x55, A: 0xff},
	{R: 0x4d, G: 0x64, B: 0x8d, A: 0xff},
	{R: 0x1e, G: 0x43, B: 0x4c, A: 0xff},
	{R: 0x2c, G: 0x78, B: 0x73, A: 0xff},
	{R: 0x55, G: 0x3d, B: 0x67, A: 0xff},
	{R: 0x5d, G: 0x3a, B: 0x58, A: 0xff},
	{R: 0x47, G: 0x2d, B: 0x30, A: 0xff},
}

func newTorusPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Min, p.X.Max = 0, chirikov.TwoPi
	p.Y.Min, p.Y.Max = 0, chirikov.TwoPi
	return p
}

func addScatter(p *plot.Plot, xs, ys []float64, c color.RGBA, radius vg.Length) error {
	pts := make(plotter.XYs, len(xs))
	for n := range xs {
		pts[n] = plotter.XY{X: xs[n], Y: ys[n]}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Radius = radius
	p.Add(sc)
	return nil
}

// PhaseScatter draws every trajectory of the batch on the torus, one
// palette color per trajectory (choice seeded by the batch seed so the
// same run renders the same way twice).
func PhaseScatter(b *sim.Batch, tail int, file string) error {
	p := newTorusPlot(fmt.Sprintf("Phase Space Plot (K = %g)", b.K), "theta", "I")

	rng := rand.New(rand.NewSource(b.Seed))
	for _, tr := range b.Trajectories {
		n := tr.Len()
		if tail > 0 && tail < n {
			n = tail
		}
		c := palette[rng.Intn(len(palette))]
		if err := addScatter(p, tr.ThetaTail(n), tr.ITail(n), c, vg.Points(0.5)); err != nil {
			return err
		}
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, file)
}

// PoincareSection draws a single trajectory of the batch.
func PoincareSection(b *sim.Batch, traj int, file string) error {
	if traj < 0 || traj >= b.Sims() {
		return fmt.Errorf("trajectory index must satisfy 0 <= i < %d, got %d", b.Sims(), traj)
	}
	p := newTorusPlot(fmt.Sprintf("Poincare Section (trajectory %d, K = %g)", traj, b.K), "theta", "I")

	tr := b.Trajectories[traj]
	black := color.RGBA{A: 0xff}
	if err := addScatter(p, tr.Theta, tr.I, black, vg.Points(0.5)); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, file)
}

// Bifurcation draws late-time momentum against K.
func Bifurcation(d *analysis.BifurcationData, file string) error {
	p := plot.New()
	p.Title.Text = "Bifurcation Diagram of the Standard Map"
	p.X.Label.Text = "K"
	p.Y.Label.Text = "I_n (late-time)"

	black := color.RGBA{A: 0xff}
	if err := addScatter(p, d.K, d.I, black, vg.Points(0.4)); err != nil {
		return err
	}
	return p.Save(7*vg.Inch, 5*vg.Inch, file)
}

// Sweep draws flattened (K, value) diagnostic pairs, e.g. the output of
// eval.IKDiagnosticData.
func Sweep(kVals, vals []float64, yLabel, file string) error {
	if len(kVals) != len(vals) {
		return fmt.Errorf("length mismatch: %d K values vs %d samples", len(kVals), len(vals))
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs K", yLabel)
	p.X.Label.Text = "K"
	p.Y.Label.Text = yLabel
	p.Y.Min, p.Y.Max = 0, chirikov.TwoPi

	if err := addScatter(p, kVals, vals, palette[2], vg.Points(0.4)); err != nil {
		return err
	}
	return p.Save(7*vg.Inch, 5*vg.Inch, file)
}
