package chirikov

import (
	"fmt"
	"math"
)

// TwoPi is the period of both coordinates. The map lives on the torus
// [0, 2π) × [0, 2π).
const TwoPi = 2 * math.Pi

// Map is the Chirikov standard map with kick strength K.
//
//	I' = I + K·sin(θ)   (mod 2π)
//	θ' = θ + I'         (mod 2π)
//
// The update order is part of the definition: I is kicked first and the
// new I drives the angle advance.
type Map struct {
	K float64
}

func New(k float64) (*Map, error) {
	if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, fmt.Errorf("kick strength must be a non-negative real, got %v", k)
	}
	return &Map{K: k}, nil
}

// Wrap normalises x into [0, 2π). Handles negatives and values many
// periods out of range.
func Wrap(x float64) float64 {
	x = math.Mod(x, TwoPi)
	if x < 0 {
		x += TwoPi
	}
	return x
}

// Step advances one iteration.
func (m *Map) Step(i, theta float64) (float64, float64) {
	i1 := Wrap(i + m.K*math.Sin(theta))
	theta1 := Wrap(theta + i1)
	return i1, theta1
}

// InverseStep undoes one iteration: θ = θ' − I', I = I' − K·sin(θ).
func (m *Map) InverseStep(i1, theta1 float64) (float64, float64) {
	theta := Wrap(theta1 - i1)
	i := Wrap(i1 - m.K*math.Sin(theta))
	return i, theta
}

// Tangent applies the Jacobian of one step to the tangent vector (dI, dθ)
// at (I, θ). Used by the Lyapunov estimator.
//
//	dI' = dI + K·cos(θ)·dθ
//	dθ' = dθ + dI'
func (m *Map) Tangent(theta, di, dtheta float64) (float64, float64) {
	di1 := di + m.K*math.Cos(theta)*dtheta
	return di1, dtheta + di1
}

// Orbit iterates the map from (i0, θ0). The returned trajectory has
// steps+1 samples; sample 0 is the (wrapped) initial state.
func (m *Map) Orbit(i0, theta0 float64, steps int) Trajectory {
	tr := Trajectory{
		I:     make([]float64, steps+1),
		Theta: make([]float64, steps+1),
	}
	i, theta := Wrap(i0), Wrap(theta0)
	tr.I[0], tr.Theta[0] = i, theta
	for n := 1; n <= steps; n++ {
		i, theta = m.Step(i, theta)
		tr.I[n], tr.Theta[n] = i, theta
	}
	return tr
}
