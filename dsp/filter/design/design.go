package design

import (
	"math"

	"github.com/cwbudde/algo-effectnode/dsp/filter/biquad"
	"github.com/cwbudde/algo-effectnode/dsp/filter/design/pass"
)

const (
	defaultQ     = 1 / math.Sqrt2
	centsPerOct  = 1200
	maxNyquistFr = 0.499
)

// Bandpass designs a band-pass biquad with 0 dB gain at freq (Hz).
func Bandpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalizeBiquad(alpha, 0, -alpha, 1+alpha, -2*cw, 1-alpha)
}

// Lowpass designs a second-order low-pass biquad with cutoff freq (Hz).
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	return pass.LowpassRBJ(freq, q, sampleRate)
}

// Highpass designs a second-order high-pass biquad with cutoff freq (Hz).
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	return pass.HighpassRBJ(freq, q, sampleRate)
}

// BandwidthToQ converts a bandwidth in cents to the equivalent quality factor.
// Non-positive or non-finite bandwidths yield the Butterworth Q.
func BandwidthToQ(cents float64) float64 {
	if cents <= 0 || math.IsNaN(cents) || math.IsInf(cents, 0) {
		return defaultQ
	}

	ratio := math.Pow(2, cents/centsPerOct)

	return math.Sqrt(ratio) / (ratio - 1)
}

// ResonanceToQ converts a resonance peak in dB to a quality factor. 0 dB is
// the maximally flat Butterworth response.
func ResonanceToQ(db float64) float64 {
	if math.IsNaN(db) || math.IsInf(db, 0) {
		return defaultQ
	}

	return defaultQ * math.Pow(10, db/20)
}

// LimitToNyquist caps freq at 0.499*fs, just inside the range the designers
// accept.
func LimitToNyquist(freq, sampleRate float64) float64 {
	limit := sampleRate * maxNyquistFr
	if freq > limit {
		return limit
	}

	return freq
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
