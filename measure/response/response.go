package response

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-effectnode/dsp/core"
	"github.com/cwbudde/algo-effectnode/graph"
)

// Errors returned by response measurement.
var (
	ErrEmptyIR           = errors.New("response: impulse response is empty")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

// Response is the magnitude spectrum of an impulse response, from DC to
// Nyquist.
type Response struct {
	sampleRate float64
	fftSize    int
	power      []float64
}

// FromImpulse transforms ir with a zero-padded power-of-two FFT. No window
// is applied: ir should decay to silence within its length.
func FromImpulse(ir []float64, sampleRate float64) (*Response, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return nil, ErrInvalidSampleRate
	}

	fftSize := nextPow2(max(len(ir), 16))

	in := make([]complex128, fftSize)
	for i, x := range ir {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)

	err = plan.Forward(out, in)
	if err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return &Response{sampleRate: sampleRate, fftSize: fftSize, power: power}, nil
}

// Measure renders n frames of the engine output and returns their response.
// The output is expected to be driven by an impulse.
func Measure(e *graph.Engine, n int) (*Response, error) {
	if n <= 0 {
		return nil, ErrEmptyIR
	}

	ir := make([]float64, n)

	err := e.Render(ir)
	if err != nil {
		return nil, err
	}

	return FromImpulse(ir, e.SampleRate())
}

// SampleRate returns the sample rate the response was measured at.
func (r *Response) SampleRate() float64 {
	return r.sampleRate
}

// FFTSize returns the transform length.
func (r *Response) FFTSize() int {
	return r.fftSize
}

// BinFrequency returns the center frequency of bin k in Hz.
func (r *Response) BinFrequency(k int) float64 {
	return float64(k) * r.sampleRate / float64(r.fftSize)
}

// Bins returns the magnitude of every bin from DC to Nyquist in dB.
func (r *Response) Bins() []float64 {
	out := make([]float64, len(r.power))
	for k, p := range r.power {
		out[k] = core.PowerToDB(p)
	}

	return out
}

// MagnitudeDB returns the magnitude at freq in dB, interpolating the power
// linearly between neighboring bins. freq is clamped to [0, Nyquist]; NaN
// yields NaN.
func (r *Response) MagnitudeDB(freq float64) float64 {
	if math.IsNaN(freq) {
		return math.NaN()
	}

	pos := core.Clamp(freq, 0, r.sampleRate/2) * float64(r.fftSize) / r.sampleRate

	k := int(pos)
	if k >= len(r.power)-1 {
		return core.PowerToDB(r.power[len(r.power)-1])
	}

	frac := pos - float64(k)

	return core.PowerToDB(r.power[k]*(1-frac) + r.power[k+1]*frac)
}

// Peak returns the frequency and level of the loudest bin.
func (r *Response) Peak() (freq, db float64) {
	best := 0
	for k, p := range r.power {
		if p > r.power[best] {
			best = k
		}
	}

	return r.BinFrequency(best), core.PowerToDB(r.power[best])
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
