package sim

import (
	"fmt"
	"math"
)

// History is an ordered run history: one batch per simulate call,
// accumulated for aggregate analysis across a sweep of K values.
type History struct {
	runs []*Batch
}

func NewHistory() *History {
	return &History{runs: make([]*Batch, 0)}
}

// RunInfo is the queryable metadata of one run.
type RunInfo struct {
	Index int
	K     float64
	Seed  int64
	Steps int
	Sims  int
}

func (h *History) Len() int { return len(h.runs) }

// Runs exposes the underlying list for read-only traversal.
func (h *History) Runs() []*Batch { return h.runs }

func (h *History) Append(b *Batch) { h.runs = append(h.runs, b) }

// Overwrite replaces the most recent run. On an empty history it appends:
// there is nothing to replace yet.
func (h *History) Overwrite(b *Batch) {
	if len(h.runs) == 0 {
		h.runs = append(h.runs, b)
		return
	}
	h.runs[len(h.runs)-1] = b
}

func (h *History) Run(i int) (*Batch, error) {
	if err := h.checkIndex(i); err != nil {
		return nil, err
	}
	return h.runs[i], nil
}

func (h *History) Last() (*Batch, error) {
	if len(h.runs) == 0 {
		return nil, fmt.Errorf("history is empty")
	}
	return h.runs[len(h.runs)-1], nil
}

func (h *History) checkIndex(i int) error {
	if len(h.runs) == 0 {
		return fmt.Errorf("history is empty")
	}
	if i < 0 || i >= len(h.runs) {
		return fmt.Errorf("run index must satisfy 0 <= i < %d, got %d", len(h.runs), i)
	}
	return nil
}

func (h *History) checkRange(lo, hi int) error {
	if err := h.checkIndex(lo); err != nil {
		return err
	}
	if err := h.checkIndex(hi); err != nil {
		return err
	}
	if lo > hi {
		return fmt.Errorf("run range inverted: %d > %d", lo, hi)
	}
	return nil
}

func (h *History) info(i int) RunInfo {
	b := h.runs[i]
	return RunInfo{Index: i, K: b.K, Seed: b.Seed, Steps: b.Steps, Sims: b.Sims()}
}

// Info returns the metadata of run i.
func (h *History) Info(i int) (RunInfo, error) {
	if err := h.checkIndex(i); err != nil {
		return RunInfo{}, err
	}
	return h.info(i), nil
}

// InfoRange returns metadata for runs lo..hi inclusive.
func (h *History) InfoRange(lo, hi int) ([]RunInfo, error) {
	if err := h.checkRange(lo, hi); err != nil {
		return nil, err
	}
	infos := make([]RunInfo, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		infos = append(infos, h.info(i))
	}
	return infos, nil
}

func checkBounds(name string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return fmt.Errorf("%s bounds must be real, got [%v, %v]", name, lo, hi)
	}
	if lo > hi {
		return fmt.Errorf("%s range inverted: %v > %v", name, lo, hi)
	}
	return nil
}

// FindK returns metadata for every run whose K lies in [lo, hi]. A point
// query is lo == hi. No match yields an empty slice.
func (h *History) FindK(lo, hi float64) ([]RunInfo, error) {
	if err := checkBounds("K", lo, hi); err != nil {
		return nil, err
	}
	found := make([]RunInfo, 0)
	for i, b := range h.runs {
		if b.K >= lo && b.K <= hi {
			found = append(found, h.info(i))
		}
	}
	return found, nil
}

// FindI0 returns metadata for every run with at least one trajectory whose
// initial momentum lies in [lo, hi].
func (h *History) FindI0(lo, hi float64) ([]RunInfo, error) {
	if err := checkBounds("I0", lo, hi); err != nil {
		return nil, err
	}
	return h.findInitial(lo, hi, func(b *Batch, k int) float64 {
		i0, _ := b.Initial(k)
		return i0
	}), nil
}

// FindTheta0 is FindI0 for the initial angle.
func (h *History) FindTheta0(lo, hi float64) ([]RunInfo, error) {
	if err := checkBounds("theta0", lo, hi); err != nil {
		return nil, err
	}
	return h.findInitial(lo, hi, func(b *Batch, k int) float64 {
		_, theta0 := b.Initial(k)
		return theta0
	}), nil
}

func (h *History) findInitial(lo, hi float64, coord func(*Batch, int) float64) []RunInfo {
	found := make([]RunInfo, 0)
	for i, b := range h.runs {
		for k := 0; k < b.Sims(); k++ {
			if v := coord(b, k); v >= lo && v <= hi {
				found = append(found, h.info(i))
				break
			}
		}
	}
	return found
}

// Clear drops every run. The simulator keeps its current options.
func (h *History) Clear() { h.runs = h.runs[:0] }

// ClearRuns removes runs lo..hi inclusive.
func (h *History) ClearRuns(lo, hi int) error {
	if err := h.checkRange(lo, hi); err != nil {
		return err
	}
	h.runs = append(h.runs[:lo], h.runs[hi+1:]...)
	return nil
}

// ClearK removes every run whose K lies in [lo, hi].
func (h *History) ClearK(lo, hi float64) error {
	if err := checkBounds("K", lo, hi); err != nil {
		return err
	}
	kept := h.runs[:0]
	for _, b := range h.runs {
		if b.K < lo || b.K > hi {
			kept = append(kept, b)
		}
	}
	h.runs = kept
	return nil
}

// Summary reports the run count and the K range covered.
type Summary struct {
	Runs int
	KMin float64
	KMax float64
}

func (h *History) Summary() Summary {
	s := Summary{Runs: len(h.runs)}
	for i, b := range h.runs {
		if i == 0 || b.K < s.KMin {
			s.KMin = b.K
		}
		if i == 0 || b.K > s.KMax {
			s.KMax = b.K
		}
	}
	return s
}

func (h *History) String() string {
	s := h.Summary()
	if s.Runs == 0 {
		return "history: no runs"
	}
	return fmt.Sprintf("history: %d runs, K in [%g, %g]", s.Runs, s.KMin, s.KMax)
}
