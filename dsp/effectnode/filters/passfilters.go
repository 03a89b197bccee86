package filters

import (
	"github.com/cwbudde/algo-effectnode/audiounit"
	"github.com/cwbudde/algo-effectnode/dsp/core"
	"github.com/cwbudde/algo-effectnode/dsp/effectnode"
	"github.com/cwbudde/algo-effectnode/graph"
)

// Low/high-pass parameter ranges.
var (
	CutoffFrequencyRange = core.Range{Min: 10, Max: 22050, Default: 6900}
	ResonanceRange       = core.Range{Min: -20, Max: 40, Default: 0}
)

// LowPassSpec describes the low-pass unit.
var LowPassSpec = passSpec("lowpass", audiounit.LowPassFilterDescription,
	audiounit.LowPassCutoffFrequency, audiounit.LowPassResonance)

// HighPassSpec describes the high-pass unit.
var HighPassSpec = passSpec("highpass", audiounit.HighPassFilterDescription,
	audiounit.HighPassCutoffFrequency, audiounit.HighPassResonance)

func passSpec(name string, desc audiounit.Description, cutoff, resonance audiounit.ParameterID) effectnode.Spec {
	return effectnode.Spec{
		Name:      name,
		Component: desc,
		Params: []effectnode.ParamSpec{
			{ID: cutoff, Key: "cutoffFrequency", Name: "Cutoff Frequency", Unit: "Hz", Range: CutoffFrequencyRange},
			{ID: resonance, Key: "resonance", Name: "Resonance", Unit: "dB", Range: ResonanceRange},
		},
	}
}

// passFilter is the shared body of the low- and high-pass nodes.
type passFilter struct {
	*effectnode.Node

	cutoffFrequency *effectnode.Param
	resonance       *effectnode.Param
}

func newPassFilter(ctx effectnode.Context, spec effectnode.Spec, input graph.Node, opts []effectnode.Option) (passFilter, error) {
	n, err := effectnode.New(ctx, spec, input, opts...)
	if err != nil {
		return passFilter{}, err
	}

	p := passFilter{Node: n}
	p.cutoffFrequency, _ = n.Param(spec.Params[0].ID)
	p.resonance, _ = n.Param(spec.Params[1].ID)

	return p, nil
}

// CutoffFrequency returns the cutoff frequency in Hz.
func (p *passFilter) CutoffFrequency() float64 {
	return p.cutoffFrequency.Value()
}

// SetCutoffFrequency clamps hz to [10, 22050] and forwards it.
func (p *passFilter) SetCutoffFrequency(hz float64) {
	p.cutoffFrequency.Set(hz)
}

// Resonance returns the resonance in dB.
func (p *passFilter) Resonance() float64 {
	return p.resonance.Value()
}

// SetResonance clamps db to [-20, 40] and forwards it.
func (p *passFilter) SetResonance(db float64) {
	p.resonance.Set(db)
}

// LowPassFilter is a resonant low-pass effect node.
type LowPassFilter struct {
	passFilter
}

// NewLowPassFilter builds a low-pass node processing input.
func NewLowPassFilter(ctx effectnode.Context, input graph.Node, opts ...effectnode.Option) (*LowPassFilter, error) {
	p, err := newPassFilter(ctx, LowPassSpec, input, opts)
	if err != nil {
		return nil, err
	}

	return &LowPassFilter{passFilter: p}, nil
}

// HighPassFilter is a resonant high-pass effect node.
type HighPassFilter struct {
	passFilter
}

// NewHighPassFilter builds a high-pass node processing input.
func NewHighPassFilter(ctx effectnode.Context, input graph.Node, opts ...effectnode.Option) (*HighPassFilter, error) {
	p, err := newPassFilter(ctx, HighPassSpec, input, opts)
	if err != nil {
		return nil, err
	}

	return &HighPassFilter{passFilter: p}, nil
}

// WithCutoffFrequency sets the initial cutoff of a low- or high-pass node.
// Both units address the cutoff as parameter 0.
func WithCutoffFrequency(hz float64) effectnode.Option {
	return effectnode.WithParameter(audiounit.LowPassCutoffFrequency, hz)
}

// WithResonance sets the initial resonance of a low- or high-pass node.
func WithResonance(db float64) effectnode.Option {
	return effectnode.WithParameter(audiounit.LowPassResonance, db)
}
