package effectchain

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/dsp/effectnode"
	"github.com/cwbudde/algo-effectnode/graph"
)

// ErrUnknownEffect is returned when a node references an unregistered effect type.
var ErrUnknownEffect = errors.New("unknown effect type")

// Chain builds a patch of effect nodes inside an engine and renders its
// output. It implements graph.Node, so it can be set as an engine output or
// fed into further nodes.
type Chain struct {
	graph.Connections

	ctx      effectnode.Context
	registry *Registry
	log      logrus.FieldLogger

	input  graph.Node
	output graph.Node
	patch  *compiledPatch

	nodes []*effectnode.Node
	byID  map[string]*effectnode.Node
	parts []graph.Node
	joins []*graph.Mixer
}

// New creates an empty chain fed by input. An empty chain passes input
// through. A nil registry selects DefaultRegistry.
func New(ctx effectnode.Context, registry *Registry, input graph.Node) (*Chain, error) {
	if ctx.Engine == nil {
		return nil, effectnode.ErrNilEngine
	}

	if input == nil {
		return nil, effectnode.ErrNilInput
	}

	if registry == nil {
		registry = DefaultRegistry()
	}

	log := ctx.Logger
	if log == nil {
		log = ctx.Engine.Logger()
	}

	return &Chain{
		ctx:      ctx,
		registry: registry,
		log:      log,
		input:    input,
		output:   input,
		byID:     make(map[string]*effectnode.Node),
	}, nil
}

// HasPatch returns true if the chain has a loaded patch with valid I/O nodes.
func (c *Chain) HasPatch() bool {
	return c.patch != nil && len(c.patch.Order) > 0
}

// Load parses a JSON patch and rebuilds the chain from it. The previous
// nodes are detached from the engine. An empty patch clears the chain.
// A parse error keeps the previous patch; a build error leaves the chain
// empty.
func (c *Chain) Load(raw []byte) error {
	patch, err := parsePatch(raw)
	if err != nil {
		return err
	}

	c.Reset()

	if len(patch.Order) == 0 {
		return nil
	}

	outs := make(map[string]graph.Node, len(patch.Order))

	for _, id := range patch.Order {
		params := patch.Nodes[id]

		switch id {
		case InputNodeID:
			outs[id] = c.input

			continue
		case OutputNodeID:
			outs[id] = c.join(patch.Parents[id], outs)

			continue
		}

		upstream := c.join(patch.Parents[id], outs)
		if upstream == nil {
			c.log.WithFields(logrus.Fields{
				"function": "Load",
				"node":     id,
			}).Warn("Skipping unconnected node")

			continue
		}

		n, err := c.build(upstream, params)
		if errors.Is(err, ErrUnknownEffect) {
			c.log.WithFields(logrus.Fields{
				"function": "Load",
				"node":     id,
				"type":     params.Type,
			}).Warn("Unknown effect type, passing input through")

			outs[id] = upstream

			continue
		}

		if err != nil {
			c.Reset()

			return fmt.Errorf("effectchain: build node %q (%s): %w", id, params.Type, err)
		}

		outs[id] = n
	}

	c.patch = patch
	if out := outs[OutputNodeID]; out != nil {
		c.output = out
	} else {
		c.output = graph.NewBuffer(nil)
	}

	c.log.WithFields(logrus.Fields{
		"function": "Load",
		"nodes":    len(c.nodes),
	}).Debug("Loaded patch")

	return nil
}

func (c *Chain) build(upstream graph.Node, params Params) (*effectnode.Node, error) {
	factory := c.registry.Lookup(params.Type)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, params.Type)
	}

	n, err := factory(c.ctx, upstream, params)
	if err != nil {
		return nil, err
	}

	if params.Bypassed {
		n.Stop()
	}

	c.ctx.Engine.Attach(n)
	c.nodes = append(c.nodes, n)
	c.byID[params.ID] = n
	c.parts = append(c.parts, n, n.Effect(), n.InputGain(), n.EffectGain(), n.Mixer())

	return n, nil
}

// join returns the signal feeding a node with the given parents: nil for
// none, the parent itself for one, and a mixer summing them otherwise.
func (c *Chain) join(parents []string, outs map[string]graph.Node) graph.Node {
	ins := make([]graph.Node, 0, len(parents))

	for _, p := range parents {
		if out := outs[p]; out != nil {
			ins = append(ins, out)
		}
	}

	switch len(ins) {
	case 0:
		return nil
	case 1:
		return ins[0]
	}

	m := graph.NewMixer(ins...)
	c.ctx.Engine.Attach(m)
	c.parts = append(c.parts, m)
	c.joins = append(c.joins, m)

	return m
}

// Reset detaches every node built by the chain, unhooks them from their
// inputs and clears the patch. The chain passes its input through afterwards.
func (c *Chain) Reset() {
	for _, p := range c.parts {
		c.ctx.Engine.Detach(p)
	}

	for _, n := range c.nodes {
		n.Disconnect()
	}

	for _, m := range c.joins {
		for _, in := range m.Inputs() {
			m.Disconnect(in)
		}
	}

	c.patch = nil
	c.nodes = nil
	c.parts = nil
	c.joins = nil
	c.byID = make(map[string]*effectnode.Node)
	c.output = c.input
}

// Input returns the node feeding the chain.
func (c *Chain) Input() graph.Node {
	return c.input
}

// Output returns the node feeding the patch output.
func (c *Chain) Output() graph.Node {
	return c.output
}

// Node returns the effect node built for the patch node id.
func (c *Chain) Node(id string) (*effectnode.Node, bool) {
	n, ok := c.byID[id]

	return n, ok
}

// Nodes returns the built effect nodes in topological order.
func (c *Chain) Nodes() []*effectnode.Node {
	out := make([]*effectnode.Node, len(c.nodes))
	copy(out, c.nodes)

	return out
}

// Render implements graph.Node by rendering the chain output.
func (c *Chain) Render(cyc *graph.Cycle, dst []float64) {
	copy(dst, cyc.Pull(c.output))
}
