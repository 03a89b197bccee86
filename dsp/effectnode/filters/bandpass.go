package filters

import (
	"github.com/cwbudde/algo-effectnode/audiounit"
	"github.com/cwbudde/algo-effectnode/dsp/core"
	"github.com/cwbudde/algo-effectnode/dsp/effectnode"
	"github.com/cwbudde/algo-effectnode/graph"
)

// Band-pass parameter ranges.
var (
	CenterFrequencyRange = core.Range{Min: 20, Max: 22050, Default: 5000}
	BandwidthRange       = core.Range{Min: 100, Max: 12000, Default: 600}
)

// BandPassSpec describes the band-pass unit.
var BandPassSpec = effectnode.Spec{
	Name:      "bandpass",
	Component: audiounit.BandPassFilterDescription,
	Params: []effectnode.ParamSpec{
		{
			ID:    audiounit.BandpassCenterFrequency,
			Key:   "centerFrequency",
			Name:  "Center Frequency",
			Unit:  "Hz",
			Range: CenterFrequencyRange,
		},
		{
			ID:    audiounit.BandpassBandwidth,
			Key:   "bandwidth",
			Name:  "Bandwidth",
			Unit:  "Cents",
			Range: BandwidthRange,
		},
	},
}

// BandPassFilter is a band-pass effect node.
type BandPassFilter struct {
	*effectnode.Node

	centerFrequency *effectnode.Param
	bandwidth       *effectnode.Param
}

// NewBandPassFilter builds a band-pass node processing input.
func NewBandPassFilter(ctx effectnode.Context, input graph.Node, opts ...effectnode.Option) (*BandPassFilter, error) {
	n, err := effectnode.New(ctx, BandPassSpec, input, opts...)
	if err != nil {
		return nil, err
	}

	f := &BandPassFilter{Node: n}
	f.centerFrequency, _ = n.Param(audiounit.BandpassCenterFrequency)
	f.bandwidth, _ = n.Param(audiounit.BandpassBandwidth)

	return f, nil
}

// WithCenterFrequency sets the initial center frequency in Hz.
func WithCenterFrequency(hz float64) effectnode.Option {
	return effectnode.WithParameter(audiounit.BandpassCenterFrequency, hz)
}

// WithBandwidth sets the initial bandwidth in cents.
func WithBandwidth(cents float64) effectnode.Option {
	return effectnode.WithParameter(audiounit.BandpassBandwidth, cents)
}

// CenterFrequency returns the center frequency in Hz.
func (f *BandPassFilter) CenterFrequency() float64 {
	return f.centerFrequency.Value()
}

// SetCenterFrequency clamps hz to [20, 22050] and forwards it.
func (f *BandPassFilter) SetCenterFrequency(hz float64) {
	f.centerFrequency.Set(hz)
}

// Bandwidth returns the bandwidth in cents.
func (f *BandPassFilter) Bandwidth() float64 {
	return f.bandwidth.Value()
}

// SetBandwidth clamps cents to [100, 12000] and forwards it.
func (f *BandPassFilter) SetBandwidth(cents float64) {
	f.bandwidth.Set(cents)
}
