package chirikov

import "math"

// Trajectory is one orbit: parallel I and θ series of equal length.
type Trajectory struct {
	I     []float64
	Theta []float64
}

func (t Trajectory) Len() int { return len(t.I) }

func (t Trajectory) Clone() Trajectory {
	c := Trajectory{
		I:     make([]float64, len(t.I)),
		Theta: make([]float64, len(t.Theta)),
	}
	copy(c.I, t.I)
	copy(c.Theta, t.Theta)
	return c
}

// ITail returns the last n momentum samples in original time order.
// The returned slice aliases the trajectory; treat it as read-only.
func (t Trajectory) ITail(n int) []float64 {
	return t.I[len(t.I)-n:]
}

// ThetaTail returns the last n angle samples in original time order.
func (t Trajectory) ThetaTail(n int) []float64 {
	return t.Theta[len(t.Theta)-n:]
}

func (t Trajectory) IsValid() bool {
	for k := range t.I {
		if math.IsNaN(t.I[k]) || math.IsInf(t.I[k], 0) {
			return false
		}
		if math.IsNaN(t.Theta[k]) || math.IsInf(t.Theta[k], 0) {
			return false
		}
	}
	return true
}
