package graph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/dsp/core"
)

// ErrNoOutput is returned by Render when no output node has been set.
var ErrNoOutput = errors.New("graph: engine has no output node")

// Engine owns a set of attached nodes and renders the output node on demand.
// It is not safe for concurrent use; callers render and mutate the graph
// from one goroutine.
type Engine struct {
	cfg core.ProcessorConfig
	log logrus.FieldLogger

	nodes   []Node
	output  Node
	buffers map[Node][]float64
	zeros   []float64
	cycle   Cycle
}

// NewEngine creates an engine. A nil logger selects the logrus standard logger.
func NewEngine(log logrus.FieldLogger, opts ...core.ProcessorOption) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}

	e := &Engine{
		cfg:     core.ApplyProcessorOptions(opts...),
		log:     log,
		buffers: make(map[Node][]float64),
	}
	e.cycle = Cycle{engine: e, outputs: make(map[Node][]float64)}

	e.log.WithFields(logrus.Fields{
		"function":    "NewEngine",
		"sample_rate": e.cfg.SampleRate,
		"block_size":  e.cfg.BlockSize,
	}).Debug("Created graph engine")

	return e
}

// Config returns the engine processor configuration.
func (e *Engine) Config() core.ProcessorConfig {
	return e.cfg
}

// SampleRate returns the engine sample rate.
func (e *Engine) SampleRate() float64 {
	return e.cfg.SampleRate
}

// Logger returns the engine logger.
func (e *Engine) Logger() logrus.FieldLogger {
	return e.log
}

// Attach adds n to the engine. Attaching twice is a no-op.
func (e *Engine) Attach(n Node) {
	if n == nil || e.IsAttached(n) {
		return
	}

	e.nodes = append(e.nodes, n)

	e.log.WithFields(logrus.Fields{
		"function": "Attach",
		"node":     fmt.Sprintf("%T", n),
		"attached": len(e.nodes),
	}).Debug("Attached node")
}

// Detach removes n and releases its render buffer.
func (e *Engine) Detach(n Node) {
	i := slices.Index(e.nodes, n)
	if i < 0 {
		return
	}

	e.nodes = slices.Delete(e.nodes, i, i+1)
	delete(e.buffers, n)

	if e.output == n {
		e.output = nil
	}
}

// IsAttached reports whether n was attached.
func (e *Engine) IsAttached(n Node) bool {
	return slices.Contains(e.nodes, n)
}

// Nodes returns the attached nodes in attach order.
func (e *Engine) Nodes() []Node {
	return slices.Clone(e.nodes)
}

// SetOutput selects the node rendered by Render. The node is attached if needed.
func (e *Engine) SetOutput(n Node) {
	e.Attach(n)
	e.output = n
}

// Output returns the current output node.
func (e *Engine) Output() Node {
	return e.output
}

// Render fills dst with the output node's signal, one block at a time.
func (e *Engine) Render(dst []float64) error {
	if e.output == nil {
		return ErrNoOutput
	}

	block := e.cfg.BlockSize
	for off := 0; off < len(dst); off += block {
		n := min(block, len(dst)-off)
		out := e.begin(n).Pull(e.output)
		copy(dst[off:off+n], out)
	}

	return nil
}

// Reset clears state in every attached node that implements [Resetter].
func (e *Engine) Reset() {
	for _, n := range e.nodes {
		if r, ok := n.(Resetter); ok {
			r.Reset()
		}
	}
}

func (e *Engine) begin(frames int) *Cycle {
	e.cycle.id++
	e.cycle.frames = frames
	clear(e.cycle.outputs)

	return &e.cycle
}

func (e *Engine) buffer(n Node, frames int) []float64 {
	buf := core.EnsureLen(e.buffers[n], frames)
	e.buffers[n] = buf

	return buf
}

func (e *Engine) silence(frames int) []float64 {
	e.zeros = core.EnsureLen(e.zeros, frames)
	clear(e.zeros)

	return e.zeros
}
