package chirikov

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		k       float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 0.9716, false},
		{"large", 10, false},
		{"negative", -0.5, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.k)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%v) error = %v, wantErr %v", tt.k, err, tt.wantErr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.5, 1.5},
		{TwoPi, 0},
		{TwoPi + 1, 1},
		{-1, TwoPi - 1},
		{-TwoPi, 0},
		{5 * TwoPi, 0},
		{-3*TwoPi - 0.25, TwoPi - 0.25},
	}

	for _, tt := range tests {
		if got := Wrap(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// One step followed by the inverse step must restore the state modulo the
// periodic wrap.
func TestStepInverseRoundTrip(t *testing.T) {
	ks := []float64{0, 0.5, 0.9716, 2.5, 8}
	ics := []struct{ i, theta float64 }{
		{0, 0},
		{1, 2},
		{3.1, 0.3},
		{6.2, 6.2},
		{math.Pi, math.Pi / 2},
	}

	for _, k := range ks {
		m, err := New(k)
		if err != nil {
			t.Fatalf("New(%v): %v", k, err)
		}
		for _, ic := range ics {
			i1, theta1 := m.Step(ic.i, ic.theta)
			i0, theta0 := m.InverseStep(i1, theta1)
			if math.Abs(i0-Wrap(ic.i)) > 1e-9 || math.Abs(theta0-Wrap(ic.theta)) > 1e-9 {
				t.Errorf("K=%v ic=(%v,%v): round trip gave (%v,%v)", k, ic.i, ic.theta, i0, theta0)
			}
		}
	}
}

// K = 0 reduces the map to rigid rotation: I invariant, θ advancing by I.
func TestZeroKickIsRotation(t *testing.T) {
	m, err := New(0)
	if err != nil {
		t.Fatal(err)
	}

	i0, theta0 := 1.25, 0.5
	tr := m.Orbit(i0, theta0, 200)

	for n, iv := range tr.I {
		if math.Abs(iv-i0) > 1e-12 {
			t.Fatalf("step %d: I drifted to %v", n, iv)
		}
	}
	for n := 1; n < tr.Len(); n++ {
		want := Wrap(theta0 + float64(n)*i0)
		if math.Abs(tr.Theta[n]-want) > 1e-9 {
			t.Fatalf("step %d: theta = %v, want %v", n, tr.Theta[n], want)
		}
	}
}

// Every recorded coordinate must stay inside [0, 2π) no matter the input.
func TestOrbitStaysInDomain(t *testing.T) {
	tests := []struct {
		name      string
		k         float64
		i0, theta0 float64
	}{
		{"in range", 1.0, 1, 2},
		{"negative ic", 2.5, -5, -11},
		{"far out of range", 6.0, 100, -100},
		{"chaotic", 8.0, math.Pi, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.k)
			if err != nil {
				t.Fatal(err)
			}
			tr := m.Orbit(tt.i0, tt.theta0, 1000)
			for n := range tr.I {
				if tr.I[n] < 0 || tr.I[n] >= TwoPi {
					t.Fatalf("step %d: I = %v outside [0, 2π)", n, tr.I[n])
				}
				if tr.Theta[n] < 0 || tr.Theta[n] >= TwoPi {
					t.Fatalf("step %d: theta = %v outside [0, 2π)", n, tr.Theta[n])
				}
			}
		})
	}
}

func TestOrbitLength(t *testing.T) {
	m, _ := New(1.0)
	tr := m.Orbit(1, 2, 500)
	if tr.Len() != 501 {
		t.Errorf("expected 501 samples (initial + 500 steps), got %d", tr.Len())
	}
	if tr.I[0] != 1 || tr.Theta[0] != 2 {
		t.Errorf("sample 0 should be the initial state, got (%v, %v)", tr.I[0], tr.Theta[0])
	}
}

func TestTangentMatchesFiniteDifference(t *testing.T) {
	m, _ := New(1.5)
	i0, theta0 := 2.0, 1.0
	eps := 1e-7

	// perturb θ and compare against the tangent map
	i1, theta1 := m.Step(i0, theta0)
	i1p, theta1p := m.Step(i0, theta0+eps)

	di, dtheta := m.Tangent(theta0, 0, 1)

	gotDi := (i1p - i1) / eps
	gotDtheta := (theta1p - theta1) / eps
	if math.Abs(gotDi-di) > 1e-4 || math.Abs(gotDtheta-dtheta) > 1e-4 {
		t.Errorf("tangent (%v, %v) disagrees with finite difference (%v, %v)", di, dtheta, gotDi, gotDtheta)
	}
}
