package graph

import (
	"github.com/cwbudde/algo-vecmath"
)

// Gain scales its input by a linear factor.
type Gain struct {
	Connections

	input Node
	gain  float64
}

// NewGain wraps input with a gain stage and records itself as one of the
// input's connection points.
func NewGain(input Node, gain float64) *Gain {
	g := &Gain{input: input, gain: gain}
	if input != nil {
		input.AddConnectionPoint(g)
	}

	return g
}

// Gain returns the linear gain factor.
func (g *Gain) Gain() float64 {
	return g.gain
}

// SetGain sets the linear gain factor.
func (g *Gain) SetGain(gain float64) {
	g.gain = gain
}

// Input returns the wrapped node.
func (g *Gain) Input() Node {
	return g.input
}

// Render implements Node.
func (g *Gain) Render(c *Cycle, dst []float64) {
	vecmath.ScaleBlock(dst, c.Pull(g.input), g.gain)
}
