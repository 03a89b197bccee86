package effectchain

import "github.com/cwbudde/algo-effectnode/dsp/effectnode/filters"

// RegisterDefaults adds the built-in filter nodes ("bandpass", "lowpass",
// "highpass") to r.
func RegisterDefaults(r *Registry) error {
	for _, spec := range []struct {
		name    string
		factory Factory
	}{
		{"bandpass", SpecFactory(filters.BandPassSpec)},
		{"lowpass", SpecFactory(filters.LowPassSpec)},
		{"highpass", SpecFactory(filters.HighPassSpec)},
	} {
		if err := r.Register(spec.name, spec.factory); err != nil {
			return err
		}
	}

	return nil
}

// DefaultRegistry returns a Registry pre-populated with the built-in nodes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := RegisterDefaults(r); err != nil {
		panic("effectchain registry: " + err.Error())
	}

	return r
}
