package sim

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/askarov/stdmap/internal/chirikov"
)

// IC is one initial condition on the torus.
type IC struct {
	I     float64
	Theta float64
}

// Simulator produces trajectory batches. Initial conditions are either
// caller-supplied or drawn uniformly from [0, 2π)² with a seeded source,
// so a batch is reproducible from (K, steps, sims, seed).
type Simulator struct {
	opts Options
}

func New(opts Options) (*Simulator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{opts: opts}, nil
}

func (s *Simulator) Options() Options { return s.opts }

// SetK retunes the kick strength between simulate calls, keeping the rest
// of the options. Used by parameter sweeps.
func (s *Simulator) SetK(k float64) error {
	opts := s.opts
	opts.K = k
	if err := opts.Validate(); err != nil {
		return err
	}
	s.opts = opts
	return nil
}

// DrawICs draws n initial conditions from the seeded source. Seed 0 means
// "from entropy": the actual seed used is recorded in the batch.
func (s *Simulator) DrawICs(n int) ([]IC, int64) {
	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	ics := make([]IC, n)
	for k := range ics {
		ics[k] = IC{
			I:     rng.Float64() * chirikov.TwoPi,
			Theta: rng.Float64() * chirikov.TwoPi,
		}
	}
	return ics, seed
}

// Simulate iterates the map from random initial conditions.
func (s *Simulator) Simulate(ctx context.Context) (*Batch, error) {
	ics, seed := s.DrawICs(s.opts.Sims)
	return s.simulate(ctx, ics, seed)
}

// SimulateFrom iterates the map from the supplied initial conditions.
// Coordinates must already lie in [0, 2π].
func (s *Simulator) SimulateFrom(ctx context.Context, ics []IC) (*Batch, error) {
	if len(ics) == 0 {
		return nil, fmt.Errorf("at least one initial condition required")
	}
	for k, ic := range ics {
		if ic.I < 0 || ic.I > chirikov.TwoPi || ic.Theta < 0 || ic.Theta > chirikov.TwoPi {
			return nil, fmt.Errorf("initial condition %d outside [0, 2π]: (%v, %v)", k, ic.I, ic.Theta)
		}
	}
	return s.simulate(ctx, ics, s.opts.Seed)
}

// simulate fans the trajectories out across goroutines. Each orbit is
// independent so there is nothing to coordinate beyond the wait.
func (s *Simulator) simulate(ctx context.Context, ics []IC, seed int64) (*Batch, error) {
	m, err := chirikov.New(s.opts.K)
	if err != nil {
		return nil, err
	}

	batch := &Batch{
		K:            s.opts.K,
		Seed:         seed,
		Steps:        s.opts.Steps,
		Trajectories: make([]chirikov.Trajectory, len(ics)),
	}

	var wg sync.WaitGroup
	for k := range ics {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			batch.Trajectories[idx] = m.Orbit(ics[idx].I, ics[idx].Theta, s.opts.Steps)
		}(k)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return batch, nil
}
