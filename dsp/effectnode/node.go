package effectnode

import (
	"fmt"
	"math"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/audiounit"
	"github.com/cwbudde/algo-effectnode/graph"
)

// Node is a hosted effect unit with a dry path, a wet path and a mix point.
// It implements graph.Node; its output is the mixer.
//
// A Node is not safe for concurrent use: callers write parameters and
// transport state from one goroutine.
type Node struct {
	graph.Connections

	spec  Spec
	name  string
	log   logrus.FieldLogger
	input graph.Node

	effect     *audiounit.Effect
	inputGain  *graph.Gain
	effectGain *graph.Gain
	mixer      *graph.Mixer

	params    []*Param
	dryWetMix float64
	state     State
}

// New instantiates spec.Component on the context's host and builds the
// dry/wet topology around it. Every parameter is forwarded once, in spec
// order, with its default or optioned value.
func New(ctx Context, spec Spec, input graph.Node, opts ...Option) (*Node, error) {
	if err := ctx.validate(); err != nil {
		return nil, err
	}

	if input == nil {
		return nil, ErrNilInput
	}

	o := options{name: spec.Name}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	unit, err := ctx.Host.Instantiate(spec.Component, ctx.Engine.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("effectnode: %s: %w", o.name, err)
	}

	n := &Node{
		spec:      spec,
		name:      o.name,
		log:       ctx.logger().WithField("node", o.name),
		input:     input,
		dryWetMix: DryWetMixRange.Default,
		state:     Started,
	}

	n.inputGain = graph.NewGain(input, 0)
	n.mixer = graph.NewMixer(n.inputGain)

	n.effect = audiounit.NewEffect(spec.Component, unit, input)
	ctx.Engine.Attach(n.effect)

	n.effectGain = graph.NewGain(n.effect, 1)
	n.mixer.Connect(n.effectGain)

	ctx.Engine.Attach(n.inputGain)
	ctx.Engine.Attach(n.effectGain)
	ctx.Engine.Attach(n.mixer)

	n.params = make([]*Param, len(spec.Params))
	for i, ps := range spec.Params {
		v := ps.Range.Default
		if ov, ok := o.params[ps.ID]; ok && !math.IsNaN(ov) {
			v = ov
		}

		n.params[i] = &Param{node: n, spec: ps, value: ps.Range.Clamp(v)}
		n.params[i].forward()
	}

	if o.dryWetMix != nil {
		n.SetDryWetMix(*o.dryWetMix)
	}

	n.log.WithFields(logrus.Fields{
		"function":  "New",
		"component": spec.Component.String(),
		"params":    len(n.params),
	}).Debug("Created effect node")

	return n, nil
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Spec returns the node's unit description.
func (n *Node) Spec() Spec {
	return n.spec
}

// Param returns the parameter with the given id.
func (n *Node) Param(id audiounit.ParameterID) (*Param, bool) {
	for _, p := range n.params {
		if p.spec.ID == id {
			return p, true
		}
	}

	return nil, false
}

// ParamByKey returns the parameter with the given key.
func (n *Node) ParamByKey(key string) (*Param, bool) {
	for _, p := range n.params {
		if p.spec.Key == key {
			return p, true
		}
	}

	return nil, false
}

// Params returns the node parameters in forwarding order.
func (n *Node) Params() []*Param {
	return slices.Clone(n.params)
}

// Set writes parameter id. See Param.Set.
func (n *Node) Set(id audiounit.ParameterID, v float64) error {
	p, ok := n.Param(id)
	if !ok {
		return fmt.Errorf("%w: %s id %d", ErrUnknownParameter, n.name, id)
	}

	p.Set(v)

	return nil
}

// SetByKey writes the parameter named key. The dry/wet mix is addressed by
// [DryWetMixKey].
func (n *Node) SetByKey(key string, v float64) error {
	if key == DryWetMixKey {
		n.SetDryWetMix(v)

		return nil
	}

	p, ok := n.ParamByKey(key)
	if !ok {
		return fmt.Errorf("%w: %s key %q", ErrUnknownParameter, n.name, key)
	}

	p.Set(v)

	return nil
}

// DryWetMix returns the stored mix in percent.
func (n *Node) DryWetMix() float64 {
	return n.dryWetMix
}

// SetDryWetMix clamps v to [0, 100] and sets the input gain to 1-v/100 and
// the effect gain to v/100. It writes the gains regardless of the transport
// state. NaN leaves the mix unchanged.
func (n *Node) SetDryWetMix(v float64) {
	if math.IsNaN(v) {
		return
	}

	n.dryWetMix = DryWetMixRange.Clamp(v)
	wet := n.dryWetMix / 100
	n.inputGain.SetGain(1 - wet)
	n.effectGain.SetGain(wet)
}

// Disconnect removes the dry and wet paths from the input's connection
// points. Call it before dropping a node whose input lives on.
func (n *Node) Disconnect() {
	n.input.RemoveConnectionPoint(n.inputGain)
	n.input.RemoveConnectionPoint(n.effect)

	n.log.WithField("function", "Disconnect").Debug("Disconnected effect node")
}

// Input returns the upstream node.
func (n *Node) Input() graph.Node {
	return n.input
}

// Effect returns the hosted effect node.
func (n *Node) Effect() *audiounit.Effect {
	return n.effect
}

// Unit returns the hosted unit.
func (n *Node) Unit() audiounit.Unit {
	return n.effect.Unit()
}

// InputGain returns the dry-path gain stage.
func (n *Node) InputGain() *graph.Gain {
	return n.inputGain
}

// EffectGain returns the wet-path gain stage.
func (n *Node) EffectGain() *graph.Gain {
	return n.effectGain
}

// Mixer returns the mix point.
func (n *Node) Mixer() *graph.Mixer {
	return n.mixer
}

// Render implements graph.Node by rendering the mix point.
func (n *Node) Render(c *graph.Cycle, dst []float64) {
	copy(dst, c.Pull(n.mixer))
}
