package core

// Range describes a bounded parameter with its default value.
type Range struct {
	Min     float64
	Max     float64
	Default float64
}

// Clamp limits v to the range bounds.
func (r Range) Clamp(v float64) float64 {
	return Clamp(v, r.Min, r.Max)
}

// Contains reports whether v lies inside the inclusive bounds.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Normalize maps v into [0, 1] relative to the bounds.
func (r Range) Normalize(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}

	return (r.Clamp(v) - r.Min) / (r.Max - r.Min)
}
