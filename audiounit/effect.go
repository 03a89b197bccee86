package audiounit

import (
	"github.com/cwbudde/algo-effectnode/graph"
)

// Effect is a graph node that runs its input through a hosted unit.
type Effect struct {
	graph.Connections

	desc  Description
	unit  Unit
	input graph.Node
}

// NewEffect places unit in the graph downstream of input and records the
// effect as one of the input's connection points.
func NewEffect(desc Description, unit Unit, input graph.Node) *Effect {
	e := &Effect{desc: desc, unit: unit, input: input}
	if input != nil {
		input.AddConnectionPoint(e)
	}

	return e
}

// Description returns the component description the unit was created from.
func (e *Effect) Description() Description {
	return e.desc
}

// Unit returns the hosted unit.
func (e *Effect) Unit() Unit {
	return e.unit
}

// Input returns the upstream node.
func (e *Effect) Input() graph.Node {
	return e.input
}

// Render implements graph.Node.
func (e *Effect) Render(c *graph.Cycle, dst []float64) {
	e.unit.Process(dst, c.Pull(e.input))
}

// Reset clears the unit's processing state.
func (e *Effect) Reset() {
	e.unit.Reset()
}
