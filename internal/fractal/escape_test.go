package fractal

import "testing"

func TestEvaluate_OriginIsInside(t *testing.T) {
	m := Mandelbrot{Params: DefaultParams()}
	got := m.Evaluate(0)
	want := Inside(DefaultMaxIterations, DefaultMaxIterations)
	if got != want {
		t.Errorf("Evaluate(0): got %+v, want %+v", got, want)
	}
}

func TestEvaluate_StartBeyondEscapeRadius(t *testing.T) {
	// The escape test runs before each step, so a start point already past
	// the radius completes no steps.
	got := Evaluate(complex(3, 0), 0, 2, 100, Identity)
	if got != Outside(0, 100) {
		t.Errorf("got %+v, want Outside{0,100}", got)
	}

	// Exactly on the radius counts as escaped.
	got = Evaluate(complex(0, 2), 0, 2, 100, Identity)
	if got != Outside(0, 100) {
		t.Errorf("on radius: got %+v, want Outside{0,100}", got)
	}
}

func TestEvaluate_FarPointsEscapeImmediately(t *testing.T) {
	params := Params{MaxIterations: 50, EscapeLength: 2}
	points := []complex128{complex(2, 0), complex(-2.5, 0), complex(2, 2), complex(0, -3)}

	for _, p := range points {
		// Mandelbrot starts at zero: one step lands on c.
		if got := (Mandelbrot{Params: params}).Evaluate(p); got != Outside(1, 50) {
			t.Errorf("Mandelbrot(%v): got %+v, want Outside{1,50}", p, got)
		}
		// Julia starts at p itself.
		if got := (Julia{Params: params, C: complex(-0.8, 0.156)}).Evaluate(p); got != Outside(0, 50) {
			t.Errorf("Julia(%v): got %+v, want Outside{0,50}", p, got)
		}
	}
}

func TestEvaluate_IterationCountMatchesSteps(t *testing.T) {
	// c = 1: 0 -> 1 -> 2 (|2|² = 4 reaches threshold) after two steps.
	got := Evaluate(0, 1, 2, 100, Identity)
	if got != Outside(2, 100) {
		t.Errorf("c=1: got %+v, want Outside{2,100}", got)
	}

	// c = -2 sits on the boundary: 0 -> -2 escapes after one step.
	got = Evaluate(0, -2, 2, 100, Identity)
	if got != Outside(1, 100) {
		t.Errorf("c=-2: got %+v, want Outside{1,100}", got)
	}
}

func TestEvaluate_ZeroBudget(t *testing.T) {
	got := Evaluate(0, complex(5, 5), 2, 0, Identity)
	if got != Inside(0, 0) {
		t.Errorf("got %+v, want Inside{0,0}", got)
	}
}

func TestEvaluate_NilTransformIsIdentity(t *testing.T) {
	c := complex(0.3, 0.5)
	if Evaluate(0, c, 2, 200, nil) != Evaluate(0, c, 2, 200, Identity) {
		t.Error("nil transform should behave like Identity")
	}
}

func TestEvaluate_TransformRunsEveryIteration(t *testing.T) {
	calls := 0
	counting := func(z complex128) complex128 {
		calls++
		return z
	}

	got := Evaluate(0, 0, 2, 25, counting)
	if got != Inside(25, 25) {
		t.Fatalf("got %+v, want Inside{25,25}", got)
	}
	if calls != 25 {
		t.Errorf("transform called %d times, want 25", calls)
	}
}

func TestEvaluate_LargerEscapeLength(t *testing.T) {
	// c = 1 reaches 2 then 5; with radius 3 it escapes at 5 after 3 steps.
	got := Evaluate(0, 1, 3, 100, Identity)
	if got != Outside(3, 100) {
		t.Errorf("got %+v, want Outside{3,100}", got)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in, want complex128
	}{
		{complex(1, 1), complex(1, -1)},
		{complex(-1, 1), complex(1, -1)},
		{complex(-2, -3), complex(2, -3)},
		{complex(0.5, 0), complex(0.5, 0)},
	}

	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
