package sim

import (
	"context"
	"math"
	"testing"

	"github.com/askarov/stdmap/internal/chirikov"
	"github.com/google/go-cmp/cmp"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", DefaultOptions(), false},
		{"zero k", Options{K: 0, Steps: 10, Sims: 1}, false},
		{"negative k", Options{K: -1, Steps: 10, Sims: 1}, true},
		{"nan k", Options{K: math.NaN(), Steps: 10, Sims: 1}, true},
		{"zero steps", Options{K: 1, Steps: 0, Sims: 1}, true},
		{"zero sims", Options{K: 1, Steps: 10, Sims: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Same K, steps and seed must yield identical arrays.
func TestSimulateDeterminism(t *testing.T) {
	opts := Options{K: 1.2, Steps: 100, Sims: 10, Seed: 42}

	run := func() *Batch {
		s, err := New(opts)
		if err != nil {
			t.Fatal(err)
		}
		b, err := s.Simulate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return b
	}

	a, b := run(), run()
	if a.Seed != 42 || b.Seed != 42 {
		t.Fatalf("expected recorded seed 42, got %d and %d", a.Seed, b.Seed)
	}
	for k := range a.Trajectories {
		if diff := cmp.Diff(a.Trajectories[k].I, b.Trajectories[k].I); diff != "" {
			t.Fatalf("trajectory %d momentum differs (-a +b):\n%s", k, diff)
		}
		if diff := cmp.Diff(a.Trajectories[k].Theta, b.Trajectories[k].Theta); diff != "" {
			t.Fatalf("trajectory %d angle differs (-a +b):\n%s", k, diff)
		}
	}
}

func TestBatchDimensions(t *testing.T) {
	s, err := New(Options{K: 0.5, Steps: 50, Sims: 7, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Simulate(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if b.Sims() != 7 {
		t.Errorf("expected 7 trajectories, got %d", b.Sims())
	}
	for k, tr := range b.Trajectories {
		if tr.Len() != 51 {
			t.Errorf("trajectory %d: expected 51 samples, got %d", k, tr.Len())
		}
		if !tr.IsValid() {
			t.Errorf("trajectory %d contains NaN/Inf", k)
		}
	}
}

func TestSimulateFrom(t *testing.T) {
	s, err := New(Options{K: 1, Steps: 10, Sims: 1, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}

	b, err := s.SimulateFrom(context.Background(), []IC{{I: 1, Theta: 2}})
	if err != nil {
		t.Fatal(err)
	}
	i0, theta0 := b.Initial(0)
	if i0 != 1 || theta0 != 2 {
		t.Errorf("expected initial (1, 2), got (%v, %v)", i0, theta0)
	}

	if _, err := s.SimulateFrom(context.Background(), nil); err == nil {
		t.Error("expected error for empty initial conditions")
	}
	if _, err := s.SimulateFrom(context.Background(), []IC{{I: -1, Theta: 0}}); err == nil {
		t.Error("expected error for initial condition outside the domain")
	}
	if _, err := s.SimulateFrom(context.Background(), []IC{{I: 0, Theta: chirikov.TwoPi + 0.1}}); err == nil {
		t.Error("expected error for angle outside the domain")
	}
}

func TestDrawICsInDomain(t *testing.T) {
	s, err := New(Options{K: 1, Steps: 1, Sims: 100, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	ics, seed := s.DrawICs(100)
	if seed != 3 {
		t.Errorf("expected seed 3, got %d", seed)
	}
	for k, ic := range ics {
		if ic.I < 0 || ic.I >= chirikov.TwoPi || ic.Theta < 0 || ic.Theta >= chirikov.TwoPi {
			t.Fatalf("ic %d outside [0, 2π): (%v, %v)", k, ic.I, ic.Theta)
		}
	}
}

func TestSetK(t *testing.T) {
	s, err := New(Options{K: 1, Steps: 10, Sims: 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetK(2.5); err != nil {
		t.Fatalf("SetK(2.5): %v", err)
	}
	if s.Options().K != 2.5 {
		t.Errorf("expected K 2.5, got %v", s.Options().K)
	}
	if err := s.SetK(-1); err == nil {
		t.Error("expected error for negative K")
	}
}
