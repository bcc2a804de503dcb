package analysis

import (
	"fmt"

	"github.com/askarov/stdmap/internal/chirikov"
	"gonum.org/v1/gonum/floats"
)

// BifurcationConfig controls a K sweep from a single initial condition.
type BifurcationConfig struct {
	KMin   float64
	KMax   float64
	KSteps int
	I0     float64
	Theta0 float64
	Iters  int
	BurnIn int
}

func DefaultBifurcationConfig() BifurcationConfig {
	return BifurcationConfig{
		KMin:   0.0,
		KMax:   4.0,
		KSteps: 400,
		I0:     1.0,
		Theta0: 2.0,
		Iters:  2000,
		BurnIn: 500,
	}
}

func (c BifurcationConfig) Validate() error {
	if c.KMin < 0 || c.KMax < c.KMin {
		return fmt.Errorf("K sweep bounds invalid: [%v, %v]", c.KMin, c.KMax)
	}
	if c.KSteps < 2 {
		return fmt.Errorf("K steps must be >= 2, got %d", c.KSteps)
	}
	if c.Iters < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", c.Iters)
	}
	if c.BurnIn < 0 || c.BurnIn >= c.Iters {
		return fmt.Errorf("burn-in must satisfy 0 <= burnIn < %d, got %d", c.Iters, c.BurnIn)
	}
	return nil
}

// BifurcationData holds flattened (K, I_n) samples: K repeated once per
// recorded late-time point. Ready for scatter rendering.
type BifurcationData struct {
	K []float64
	I []float64
}

// Bifurcation sweeps K over an even grid, iterates the map from the same
// initial condition at each K, discards the burn-in transient and records
// the late-time momentum against K.
func Bifurcation(cfg BifurcationConfig) (*BifurcationData, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ks := floats.Span(make([]float64, cfg.KSteps), cfg.KMin, cfg.KMax)
	recorded := cfg.Iters - cfg.BurnIn

	data := &BifurcationData{
		K: make([]float64, 0, cfg.KSteps*recorded),
		I: make([]float64, 0, cfg.KSteps*recorded),
	}

	for _, k := range ks {
		m, err := chirikov.New(k)
		if err != nil {
			return nil, err
		}

		i, theta := chirikov.Wrap(cfg.I0), chirikov.Wrap(cfg.Theta0)
		for n := 0; n < cfg.BurnIn; n++ {
			i, theta = m.Step(i, theta)
		}
		for n := cfg.BurnIn; n < cfg.Iters; n++ {
			i, theta = m.Step(i, theta)
			data.K = append(data.K, k)
			data.I = append(data.I, i)
		}
	}
	return data, nil
}

// Window restricts the samples to K in [lo, hi] inclusive.
func (d *BifurcationData) Window(lo, hi float64) *BifurcationData {
	out := &BifurcationData{}
	for n, k := range d.K {
		if k >= lo && k <= hi {
			out.K = append(out.K, k)
			out.I = append(out.I, d.I[n])
		}
	}
	return out
}
