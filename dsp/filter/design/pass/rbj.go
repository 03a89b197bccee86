// Package pass designs low-pass and high-pass biquad sections.
package pass

import (
	"math"

	"github.com/cwbudde/algo-effectnode/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// LowpassRBJ designs a second-order RBJ low-pass section with cutoff freq
// (Hz) and quality factor q. Invalid frequencies yield zero coefficients;
// a non-positive q selects the Butterworth Q.
func LowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	cw, alpha, ok := rbjPrototype(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	b1 := 1 - cw

	return normalize(b1/2, b1, b1/2, 1+alpha, -2*cw, 1-alpha)
}

// HighpassRBJ designs a second-order RBJ high-pass section with cutoff freq
// (Hz) and quality factor q.
func HighpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	cw, alpha, ok := rbjPrototype(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	b1 := 1 + cw

	return normalize(b1/2, -b1, b1/2, 1+alpha, -2*cw, 1-alpha)
}

// rbjPrototype returns cos(w0) and alpha = sin(w0)/(2q) for a cutoff strictly
// between DC and Nyquist.
func rbjPrototype(freq, q, sampleRate float64) (cw, alpha float64, ok bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, 0, false
	}

	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) {
		return 0, 0, false
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = defaultQ
	}

	w0 := 2 * math.Pi * freq / sampleRate

	return math.Cos(w0), math.Sin(w0) / (2 * q), true
}

func normalize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
