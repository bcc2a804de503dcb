// Package eval derives read-only diagnostic slices from a run history:
// trajectory tails, phase-space coordinates, and K-sweep samples for
// plotting. Nothing here mutates a batch.
package eval

import (
	"fmt"

	"github.com/askarov/stdmap/internal/chirikov"
	"github.com/askarov/stdmap/internal/sim"
	"gonum.org/v1/gonum/stat"
)

type Evaluator struct {
	history *sim.History
}

func New(h *sim.History) *Evaluator {
	return &Evaluator{history: h}
}

func checkTail(n, steps int) error {
	if n < 1 || n > steps {
		return fmt.Errorf("tail length must satisfy 1 <= n <= %d, got %d", steps, n)
	}
	return nil
}

// KickValues returns the kick strength of each run in order.
func (e *Evaluator) KickValues() []float64 {
	runs := e.history.Runs()
	ks := make([]float64, len(runs))
	for i, b := range runs {
		ks[i] = b.K
	}
	return ks
}

// Theta returns the angle series of every trajectory in run. The inner
// slices alias the batch; treat them as read-only.
func (e *Evaluator) Theta(run int) ([][]float64, error) {
	b, err := e.history.Run(run)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, b.Sims())
	for k, tr := range b.Trajectories {
		out[k] = tr.Theta
	}
	return out, nil
}

// I returns the momentum series of every trajectory in run.
func (e *Evaluator) I(run int) ([][]float64, error) {
	b, err := e.history.Run(run)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, b.Sims())
	for k, tr := range b.Trajectories {
		out[k] = tr.I
	}
	return out, nil
}

// ThetaTail returns the last n angle samples of every trajectory in run,
// in original time order.
func (e *Evaluator) ThetaTail(run, n int) ([][]float64, error) {
	b, err := e.history.Run(run)
	if err != nil {
		return nil, err
	}
	if err := checkTail(n, b.Trajectories[0].Len()); err != nil {
		return nil, err
	}
	out := make([][]float64, b.Sims())
	for k, tr := range b.Trajectories {
		out[k] = tr.ThetaTail(n)
	}
	return out, nil
}

// ITail returns the last n momentum samples of every trajectory in run.
func (e *Evaluator) ITail(run, n int) ([][]float64, error) {
	b, err := e.history.Run(run)
	if err != nil {
		return nil, err
	}
	if err := checkTail(n, b.Trajectories[0].Len()); err != nil {
		return nil, err
	}
	out := make([][]float64, b.Sims())
	for k, tr := range b.Trajectories {
		out[k] = tr.ITail(n)
	}
	return out, nil
}

// PhaseSpaceData flattens the late-time (I, θ) samples of one run for a
// phase-space scatter. Both slices have sims × n points.
func (e *Evaluator) PhaseSpaceData(run, n int) (iVals, thetaVals []float64, err error) {
	b, err := e.history.Run(run)
	if err != nil {
		return nil, nil, err
	}
	if err := checkTail(n, b.Trajectories[0].Len()); err != nil {
		return nil, nil, err
	}
	iVals = make([]float64, 0, b.Sims()*n)
	thetaVals = make([]float64, 0, b.Sims()*n)
	for _, tr := range b.Trajectories {
		iVals = append(iVals, tr.ITail(n)...)
		thetaVals = append(thetaVals, tr.ThetaTail(n)...)
	}
	return iVals, thetaVals, nil
}

// IKDiagnosticData flattens (K, I_n) pairs from the late-time tail of every
// run, for sweep plots that show invariant curves breaking up as K grows.
func (e *Evaluator) IKDiagnosticData(n int) (kVals, iVals []float64, err error) {
	return e.sweepData(n, chirikov.Trajectory.ITail)
}

// ThetaKDiagnosticData is IKDiagnosticData for the angle.
func (e *Evaluator) ThetaKDiagnosticData(n int) (kVals, thetaVals []float64, err error) {
	return e.sweepData(n, chirikov.Trajectory.ThetaTail)
}

func (e *Evaluator) sweepData(n int, tail func(chirikov.Trajectory, int) []float64) ([]float64, []float64, error) {
	kVals := make([]float64, 0)
	vals := make([]float64, 0)
	for _, b := range e.history.Runs() {
		if err := checkTail(n, b.Trajectories[0].Len()); err != nil {
			return nil, nil, err
		}
		for _, tr := range b.Trajectories {
			samples := tail(tr, n)
			vals = append(vals, samples...)
			for range samples {
				kVals = append(kVals, b.K)
			}
		}
	}
	return kVals, vals, nil
}

// TailStats summarises the late-time momentum of one run.
type TailStats struct {
	Mean   float64
	StdDev float64
	Points int
}

func (e *Evaluator) ITailStats(run, n int) (TailStats, error) {
	iVals, _, err := e.PhaseSpaceData(run, n)
	if err != nil {
		return TailStats{}, err
	}
	mean, std := stat.MeanStdDev(iVals, nil)
	return TailStats{Mean: mean, StdDev: std, Points: len(iVals)}, nil
}
