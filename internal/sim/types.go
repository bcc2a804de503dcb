package sim

import (
	"fmt"
	"math"

	"github.com/askarov/stdmap/internal/chirikov"
)

const (
	DefaultK     = 1.0
	DefaultSteps = 500
	DefaultSims  = 50
)

// Options parameterises one simulate call.
type Options struct {
	K     float64
	Steps int
	Sims  int
	Seed  int64
}

func DefaultOptions() Options {
	return Options{K: DefaultK, Steps: DefaultSteps, Sims: DefaultSims}
}

func (o Options) Validate() error {
	if o.K < 0 || math.IsNaN(o.K) || math.IsInf(o.K, 0) {
		return fmt.Errorf("K must be a non-negative real, got %v", o.K)
	}
	if o.Steps < 1 {
		return fmt.Errorf("steps must be >= 1, got %d", o.Steps)
	}
	if o.Sims < 1 {
		return fmt.Errorf("sims must be >= 1, got %d", o.Sims)
	}
	return nil
}

// Batch is the result of iterating the map for a fixed K from a set of
// initial conditions. Immutable once created; all trajectories share the
// same step count.
type Batch struct {
	K            float64
	Seed         int64
	Steps        int
	Trajectories []chirikov.Trajectory
}

func (b *Batch) Sims() int { return len(b.Trajectories) }

// Initial returns the initial condition of trajectory k.
func (b *Batch) Initial(k int) (i0, theta0 float64) {
	tr := b.Trajectories[k]
	return tr.I[0], tr.Theta[0]
}
