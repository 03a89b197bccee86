package pass

import (
	"math"
	"testing"
)

func TestLowpassRBJ_Shape(t *testing.T) {
	sr := 48000.0
	c := LowpassRBJ(1000, defaultQ, sr)

	if db := c.MagnitudeDB(20, sr); math.Abs(db) > 0.01 {
		t.Fatalf("passband = %v dB, want ~0", db)
	}

	if db := c.MagnitudeDB(1000, sr); math.Abs(db+3.01) > 0.05 {
		t.Fatalf("cutoff = %v dB, want ~-3", db)
	}

	if db := c.MagnitudeDB(16000, sr); db > -40 {
		t.Fatalf("stopband = %v dB, want < -40", db)
	}
}

func TestHighpassRBJ_Shape(t *testing.T) {
	sr := 48000.0
	c := HighpassRBJ(1000, defaultQ, sr)

	if db := c.MagnitudeDB(20000, sr); math.Abs(db) > 0.05 {
		t.Fatalf("passband = %v dB, want ~0", db)
	}

	if db := c.MagnitudeDB(1000, sr); math.Abs(db+3.01) > 0.05 {
		t.Fatalf("cutoff = %v dB, want ~-3", db)
	}

	if db := c.MagnitudeDB(50, sr); db > -40 {
		t.Fatalf("stopband = %v dB, want < -40", db)
	}
}

func TestRBJ_QSetsPeak(t *testing.T) {
	sr := 48000.0
	q := 4.0

	want := 20 * math.Log10(q)
	lp := LowpassRBJ(2000, q, sr)
	hp := HighpassRBJ(2000, q, sr)

	// The gain at the cutoff equals q.
	if db := lp.MagnitudeDB(2000, sr); math.Abs(db-want) > 1e-6 {
		t.Fatalf("lowpass at cutoff = %v dB, want %v", db, want)
	}

	if db := hp.MagnitudeDB(2000, sr); math.Abs(db-want) > 1e-6 {
		t.Fatalf("highpass at cutoff = %v dB, want %v", db, want)
	}

	if LowpassRBJ(2000, 0, sr) != LowpassRBJ(2000, defaultQ, sr) {
		t.Fatal("q=0 does not fall back to the Butterworth Q")
	}
}

func TestRBJ_InvalidInput(t *testing.T) {
	for _, tc := range []struct {
		name     string
		freq, sr float64
	}{
		{"zero freq", 0, 48000},
		{"at nyquist", 24000, 48000},
		{"nan freq", math.NaN(), 48000},
		{"zero rate", 1000, 0},
	} {
		if !LowpassRBJ(tc.freq, defaultQ, tc.sr).IsZero() {
			t.Errorf("%s: lowpass not zero", tc.name)
		}

		if !HighpassRBJ(tc.freq, defaultQ, tc.sr).IsZero() {
			t.Errorf("%s: highpass not zero", tc.name)
		}
	}
}
