package soft

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/audiounit"
	"github.com/cwbudde/algo-effectnode/dsp/filter/biquad"
	"github.com/cwbudde/algo-effectnode/dsp/filter/design"
)

var bandPassInfo = []audiounit.ParameterInfo{
	{ID: audiounit.BandpassCenterFrequency, Name: "Center Frequency", Unit: "Hz", Min: 20, Max: 22050, Default: 5000},
	{ID: audiounit.BandpassBandwidth, Name: "Bandwidth", Unit: "Cents", Min: 100, Max: 12000, Default: 600},
}

var lowPassInfo = []audiounit.ParameterInfo{
	{ID: audiounit.LowPassCutoffFrequency, Name: "Cutoff Frequency", Unit: "Hz", Min: 10, Max: 22050, Default: 6900},
	{ID: audiounit.LowPassResonance, Name: "Resonance", Unit: "dB", Min: -20, Max: 40, Default: 0},
}

var highPassInfo = []audiounit.ParameterInfo{
	{ID: audiounit.HighPassCutoffFrequency, Name: "Cutoff Frequency", Unit: "Hz", Min: 10, Max: 22050, Default: 6900},
	{ID: audiounit.HighPassResonance, Name: "Resonance", Unit: "dB", Min: -20, Max: 40, Default: 0},
}

// NewBandPass creates a band-pass unit with 0 dB gain at the center frequency.
func NewBandPass(sampleRate float64) (*Filter, error) {
	return newFilter(sampleRate, bandPassInfo, func(center, cents, fs float64) biquad.Coefficients {
		return design.Bandpass(design.LimitToNyquist(center, fs), design.BandwidthToQ(cents), fs)
	})
}

// NewLowPass creates a resonant low-pass unit.
func NewLowPass(sampleRate float64) (*Filter, error) {
	return newFilter(sampleRate, lowPassInfo, func(cutoff, resonance, fs float64) biquad.Coefficients {
		return design.Lowpass(design.LimitToNyquist(cutoff, fs), design.ResonanceToQ(resonance), fs)
	})
}

// NewHighPass creates a resonant high-pass unit.
func NewHighPass(sampleRate float64) (*Filter, error) {
	return newFilter(sampleRate, highPassInfo, func(cutoff, resonance, fs float64) biquad.Coefficients {
		return design.Highpass(design.LimitToNyquist(cutoff, fs), design.ResonanceToQ(resonance), fs)
	})
}

// Register installs the software filter units in host.
func Register(host *audiounit.Host) error {
	for desc, factory := range map[audiounit.Description]audiounit.Factory{
		audiounit.BandPassFilterDescription: func(fs float64) (audiounit.Unit, error) { return NewBandPass(fs) },
		audiounit.LowPassFilterDescription:  func(fs float64) (audiounit.Unit, error) { return NewLowPass(fs) },
		audiounit.HighPassFilterDescription: func(fs float64) (audiounit.Unit, error) { return NewHighPass(fs) },
	} {
		if err := host.Register(desc, factory); err != nil {
			return err
		}
	}

	return nil
}

// NewHost returns a host with the software units registered.
func NewHost(log logrus.FieldLogger) (*audiounit.Host, error) {
	host := audiounit.NewHost(log)
	if err := Register(host); err != nil {
		return nil, err
	}

	return host, nil
}
