package analysis

import (
	"math"

	"github.com/askarov/stdmap/internal/chirikov"
)

// Lyapunov estimates the largest Lyapunov exponent of the map at (i0, θ0)
// by iterating a unit tangent vector alongside the orbit and renormalising
// it every step:
//
//	λ ≈ (1/N) · Σ ln ‖J·v‖
//
// Positive λ indicates chaos; for large K the exponent approaches ln(K/2).
func Lyapunov(m *chirikov.Map, i0, theta0 float64, steps int) float64 {
	if steps < 1 {
		return 0
	}

	i, theta := chirikov.Wrap(i0), chirikov.Wrap(theta0)
	di, dtheta := 1.0, 0.0

	sumLog := 0.0
	for n := 0; n < steps; n++ {
		di, dtheta = m.Tangent(theta, di, dtheta)
		i, theta = m.Step(i, theta)

		norm := math.Hypot(di, dtheta)
		if norm == 0 {
			return 0
		}
		sumLog += math.Log(norm)
		di /= norm
		dtheta /= norm
	}

	return sumLog / float64(steps)
}

// LyapunovSweep evaluates the exponent over a K grid from a fixed initial
// condition. Ks must already be populated.
func LyapunovSweep(ks []float64, i0, theta0 float64, steps int) []float64 {
	out := make([]float64, len(ks))
	for n, k := range ks {
		m, err := chirikov.New(k)
		if err != nil {
			continue
		}
		out[n] = Lyapunov(m, i0, theta0, steps)
	}
	return out
}
