package effectnode

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/audiounit"
	"github.com/cwbudde/algo-effectnode/dsp/core"
	"github.com/cwbudde/algo-effectnode/graph"
)

var (
	// ErrNilEngine is returned when the context carries no engine.
	ErrNilEngine = errors.New("effectnode: nil engine")
	// ErrNilHost is returned when the context carries no unit host.
	ErrNilHost = errors.New("effectnode: nil host")
	// ErrNilInput is returned when a node is built without an input.
	ErrNilInput = errors.New("effectnode: nil input")
	// ErrUnknownParameter is returned for a parameter id or key the node does not expose.
	ErrUnknownParameter = errors.New("effectnode: unknown parameter")
)

// DryWetMixKey is the parameter key of the dry/wet mix.
const DryWetMixKey = "dryWetMix"

// DryWetMixRange bounds the dry/wet mix in percent.
var DryWetMixRange = core.Range{Min: 0, Max: 100, Default: 50}

// Context is the handle a node is built against.
type Context struct {
	Engine *graph.Engine
	Host   *audiounit.Host
	Logger logrus.FieldLogger
}

func (c Context) validate() error {
	if c.Engine == nil {
		return ErrNilEngine
	}

	if c.Host == nil {
		return ErrNilHost
	}

	return nil
}

func (c Context) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}

	return c.Engine.Logger()
}

// ParamSpec describes one forwarded unit parameter.
type ParamSpec struct {
	ID    audiounit.ParameterID
	Key   string
	Name  string
	Unit  string
	Range core.Range
}

// Spec describes a wrapped unit type: which component to instantiate and
// which parameters it exposes, in forwarding order.
type Spec struct {
	Name      string
	Component audiounit.Description
	Params    []ParamSpec
}

// State is the transport state of a node.
type State int

// Transport states.
const (
	Started State = iota
	Stopped
)

func (s State) String() string {
	if s == Started {
		return "started"
	}

	return "stopped"
}

// Option configures a node at construction.
type Option func(*options)

type options struct {
	name      string
	params    map[audiounit.ParameterID]float64
	dryWetMix *float64
}

// WithName overrides the node name used in logs. It defaults to the spec name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithParameter sets the initial value of parameter id. The value is clamped
// like any later write.
func WithParameter(id audiounit.ParameterID, v float64) Option {
	return func(o *options) {
		if o.params == nil {
			o.params = make(map[audiounit.ParameterID]float64)
		}

		o.params[id] = v
	}
}

// WithDryWetMix applies SetDryWetMix(v) once construction is complete.
// Without it the node starts fully wet with a stored mix of 50.
func WithDryWetMix(v float64) Option {
	return func(o *options) {
		o.dryWetMix = &v
	}
}
