package soft

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/cwbudde/algo-effectnode/audiounit"
	"github.com/cwbudde/algo-effectnode/dsp/filter/biquad"
)

var errSampleRate = errors.New("soft: sample rate must be > 0")

// designFunc maps the two unit parameters to biquad coefficients.
type designFunc func(p0, p1, sampleRate float64) biquad.Coefficients

// Filter is a two-parameter biquad effect unit. Parameter writes and
// processing are serialized, so a control goroutine may retune the unit
// while another goroutine renders.
type Filter struct {
	info       []audiounit.ParameterInfo
	sampleRate float64
	design     designFunc

	mu      sync.Mutex
	values  []float32
	section *biquad.Section
}

var _ audiounit.Unit = (*Filter)(nil)

func newFilter(sampleRate float64, info []audiounit.ParameterInfo, design designFunc) (*Filter, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", errSampleRate, sampleRate)
	}

	f := &Filter{
		info:       info,
		sampleRate: sampleRate,
		design:     design,
		values:     make([]float32, len(info)),
		section:    biquad.NewSection(biquad.Coefficients{B0: 1}),
	}

	for i, p := range info {
		f.values[i] = p.Default
	}

	f.redesign()

	return f, nil
}

// ParameterInfo implements audiounit.Describer.
func (f *Filter) ParameterInfo() []audiounit.ParameterInfo {
	return slices.Clone(f.info)
}

// SetParameter implements audiounit.Unit. Values are clamped to the
// parameter range.
func (f *Filter) SetParameter(id audiounit.ParameterID, scope audiounit.Scope, element uint32, value float32) error {
	if err := f.check(id, scope, element); err != nil {
		return err
	}

	if math.IsNaN(float64(value)) {
		return fmt.Errorf("%w: parameter %d", audiounit.ErrInvalidValue, id)
	}

	p := f.info[id]
	value = min(max(value, p.Min), p.Max)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[id] = value
	f.redesign()

	return nil
}

// Parameter implements audiounit.Unit.
func (f *Filter) Parameter(id audiounit.ParameterID, scope audiounit.Scope, element uint32) (float32, error) {
	if err := f.check(id, scope, element); err != nil {
		return 0, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.values[id], nil
}

// Process implements audiounit.Unit.
func (f *Filter) Process(dst, src []float64) {
	f.mu.Lock()
	f.section.ProcessBlockTo(dst, src)
	f.mu.Unlock()
}

// Reset implements audiounit.Unit.
func (f *Filter) Reset() {
	f.mu.Lock()
	f.section.Reset()
	f.mu.Unlock()
}

// Coefficients returns the biquad currently in use.
func (f *Filter) Coefficients() biquad.Coefficients {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.section.Coefficients
}

func (f *Filter) check(id audiounit.ParameterID, scope audiounit.Scope, element uint32) error {
	if scope != audiounit.ScopeGlobal {
		return fmt.Errorf("%w: %s", audiounit.ErrInvalidScope, scope)
	}

	if element != 0 {
		return fmt.Errorf("%w: %d", audiounit.ErrInvalidElement, element)
	}

	if int(id) >= len(f.info) {
		return fmt.Errorf("%w: %d", audiounit.ErrInvalidParameter, id)
	}

	return nil
}

// redesign must be called with mu held or before the unit is shared.
func (f *Filter) redesign() {
	c := f.design(float64(f.values[0]), float64(f.values[1]), f.sampleRate)
	if c.IsZero() {
		return
	}

	f.section.SetCoefficients(c)
}
