package graph

import (
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// Mixer sums its inputs into one signal.
type Mixer struct {
	Connections

	inputs []Node
}

// NewMixer creates a mixer fed by inputs.
func NewMixer(inputs ...Node) *Mixer {
	m := &Mixer{}
	for _, in := range inputs {
		m.Connect(in)
	}

	return m
}

// Connect adds in as a mixer input. Nil and duplicate inputs are ignored.
func (m *Mixer) Connect(in Node) {
	if in == nil || slices.Contains(m.inputs, in) {
		return
	}

	m.inputs = append(m.inputs, in)
	in.AddConnectionPoint(m)
}

// Disconnect removes in from the mixer inputs and from in's connection points.
func (m *Mixer) Disconnect(in Node) {
	if in == nil {
		return
	}

	m.inputs = slices.DeleteFunc(m.inputs, func(n Node) bool { return n == in })
	in.RemoveConnectionPoint(m)
}

// Inputs returns the mixer inputs in connection order.
func (m *Mixer) Inputs() []Node {
	return slices.Clone(m.inputs)
}

// Render implements Node.
func (m *Mixer) Render(c *Cycle, dst []float64) {
	clear(dst)

	for _, in := range m.inputs {
		vecmath.AddBlockInPlace(dst, c.Pull(in))
	}
}
