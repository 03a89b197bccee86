package graph

import "slices"

// Node is one processing unit in the graph.
type Node interface {
	// Render writes the node's output for the current cycle into dst.
	// Inputs are obtained with c.Pull.
	Render(c *Cycle, dst []float64)

	// AddConnectionPoint records a downstream node fed by this node.
	AddConnectionPoint(to Node)

	// RemoveConnectionPoint forgets a downstream node recorded earlier.
	RemoveConnectionPoint(to Node)

	// ConnectionPoints returns the downstream nodes recorded so far.
	ConnectionPoints() []Node
}

// Resetter is implemented by nodes that hold state between cycles.
type Resetter interface {
	Reset()
}

// Connections is embedded by nodes to satisfy the connection-point half of
// [Node].
type Connections struct {
	points []Node
}

// AddConnectionPoint records to as a downstream node. Duplicates are ignored.
func (c *Connections) AddConnectionPoint(to Node) {
	if to == nil || slices.Contains(c.points, to) {
		return
	}

	c.points = append(c.points, to)
}

// RemoveConnectionPoint removes to from the recorded downstream nodes.
func (c *Connections) RemoveConnectionPoint(to Node) {
	c.points = slices.DeleteFunc(c.points, func(n Node) bool { return n == to })
}

// ConnectionPoints returns a copy of the recorded downstream nodes.
func (c *Connections) ConnectionPoints() []Node {
	return slices.Clone(c.points)
}

// Cycle is one render pass over the graph.
type Cycle struct {
	engine  *Engine
	id      uint64
	frames  int
	outputs map[Node][]float64
}

// ID returns the monotonically increasing cycle number.
func (c *Cycle) ID() uint64 {
	return c.id
}

// Frames returns the block length of this cycle.
func (c *Cycle) Frames() int {
	return c.frames
}

// SampleRate returns the engine sample rate.
func (c *Cycle) SampleRate() float64 {
	return c.engine.cfg.SampleRate
}

// Pull returns n's output for this cycle, rendering it on first request.
// The returned slice is owned by the engine, read-only for the caller, and
// valid until the next cycle.
// A nil node yields silence. A node that pulls itself (directly or through a
// feedback loop) reads silence for the pending block.
func (c *Cycle) Pull(n Node) []float64 {
	if n == nil {
		return c.engine.silence(c.frames)
	}

	if buf, ok := c.outputs[n]; ok {
		return buf
	}

	buf := c.engine.buffer(n, c.frames)
	clear(buf)
	c.outputs[n] = buf
	n.Render(c, buf)

	return buf
}
