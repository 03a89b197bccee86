package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestNewSection(t *testing.T) {
	t.Parallel()

	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)

	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}

	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSampleDFIIT(t *testing.T) {
	t.Parallel()

	// n=0: y=0.25, d0=0.55, d1=0.24
	// n=1: y=0.55
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})

	y0 := s.ProcessSample(1)
	if math.Abs(y0-0.25) > eps {
		t.Fatalf("y[0] = %v, want 0.25", y0)
	}

	y1 := s.ProcessSample(0)
	if math.Abs(y1-0.55) > eps {
		t.Fatalf("y[1] = %v, want 0.55", y1)
	}
}

func TestProcessBlockToMatchesSamples(t *testing.T) {
	t.Parallel()

	c := Coefficients{B0: 0.2, B1: 0.1, B2: -0.05, A1: -0.5, A2: 0.1}
	ref := NewSection(c)
	blk := NewSection(c)

	src := []float64{1, -0.5, 0.25, 0, 0.75, -1, 0.3}
	dst := make([]float64, len(src))
	blk.ProcessBlockTo(dst, src)

	for i, x := range src {
		want := ref.ProcessSample(x)
		if math.Abs(dst[i]-want) > eps {
			t.Fatalf("sample %d: got %v, want %v", i, dst[i], want)
		}
	}

	if blk.State() != ref.State() {
		t.Fatalf("state mismatch: %v vs %v", blk.State(), ref.State())
	}
}

func TestProcessBlockToInPlace(t *testing.T) {
	t.Parallel()

	s := NewSection(Coefficients{B0: 2})
	buf := []float64{1, 2, 3}
	s.ProcessBlockTo(buf, buf)

	for i, want := range []float64{2, 4, 6} {
		if buf[i] != want {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want)
		}
	}

	s.ProcessBlockTo(nil, nil)
}

func TestResetAndState(t *testing.T) {
	t.Parallel()

	s := NewSection(Coefficients{B0: 1, B1: 1, A1: 0.5})
	s.ProcessSample(1)

	saved := s.State()
	if saved == [2]float64{} {
		t.Fatal("expected non-zero state after processing")
	}

	s.Reset()

	if s.State() != [2]float64{} {
		t.Fatal("Reset must clear the delay line")
	}

	s.SetState(saved)

	if s.State() != saved {
		t.Fatal("SetState must restore the delay line")
	}
}

func TestImpulseResponsePreservesState(t *testing.T) {
	t.Parallel()

	s := NewSection(Coefficients{B0: 0.5, B1: 0.5})
	s.ProcessSample(0.7)
	before := s.State()

	ir := s.ImpulseResponse(4)
	want := []float64{0.5, 0.5, 0, 0}

	for i := range want {
		if math.Abs(ir[i]-want[i]) > eps {
			t.Fatalf("ir[%d] = %v, want %v", i, ir[i], want[i])
		}
	}

	if s.State() != before {
		t.Fatal("ImpulseResponse must not modify the section state")
	}

	if s.ImpulseResponse(0) != nil {
		t.Fatal("expected nil for n <= 0")
	}
}

func TestResponseUnity(t *testing.T) {
	t.Parallel()

	c := Coefficients{B0: 1}
	for _, f := range []float64{10, 1000, 20000} {
		if db := c.MagnitudeDB(f, 48000); math.Abs(db) > 1e-9 {
			t.Fatalf("MagnitudeDB(%v) = %v, want 0", f, db)
		}
	}

	if !(Coefficients{}).IsZero() || c.IsZero() {
		t.Fatal("IsZero mismatch")
	}
}
