package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-effectnode/dsp/core"
)

var (
	// ErrLength is returned for non-positive sample counts.
	ErrLength = errors.New("signal: length must be > 0")
	// ErrAmplitude is returned for negative amplitudes.
	ErrAmplitude = errors.New("signal: amplitude must be >= 0")
)

// Generator creates deterministic test and demo signals.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used for noise.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the given processor settings.
func NewGenerator(cfg core.ProcessorConfig, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 {
	return g.cfg.SampleRate
}

// Samples converts a duration in seconds to a sample count at the generator rate.
func (g *Generator) Samples(seconds float64) int {
	if seconds <= 0 {
		return 0
	}

	return int(math.Round(seconds * g.cfg.SampleRate))
}

// Impulse returns a unit-sample pulse of the given amplitude followed by zeros.
func (g *Generator) Impulse(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse: %w (%d)", ErrLength, samples)
	}

	out := make([]float64, samples)
	out[0] = amplitude

	return out, nil
}

// Sine generates a sine wave at freqHz.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine: %w (%d)", ErrLength, samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("sine: %w (%f)", ErrAmplitude, amplitude)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// WhiteNoise generates seeded white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise: %w (%d)", ErrLength, samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("noise: %w (%f)", ErrAmplitude, amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed)) //nolint:gosec

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}
