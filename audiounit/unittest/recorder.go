// Package unittest provides a recording audiounit.Unit for tests, in the
// spirit of net/http/httptest.
package unittest

import (
	"fmt"
	"slices"
	"sync"

	"github.com/cwbudde/algo-effectnode/audiounit"
)

// Description identifies the recorder when registered on its own.
var Description = audiounit.EffectDescription(audiounit.NewFourCC("rcrd"), audiounit.NewFourCC("test"))

// Call is one recorded SetParameter invocation.
type Call struct {
	ID      audiounit.ParameterID
	Scope   audiounit.Scope
	Element uint32
	Value   float32
}

type address struct {
	id      audiounit.ParameterID
	scope   audiounit.Scope
	element uint32
}

// Recorder accepts every parameter write, remembers it, and processes audio
// by copying (or by Transform, when set).
type Recorder struct {
	// Transform, if non-nil, maps one input sample to one output sample.
	Transform func(x float64) float64

	mu        sync.Mutex
	calls     []Call
	values    map[address]float32
	err       error
	processed int
	resets    int
}

var _ audiounit.Unit = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{values: make(map[address]float32)}
}

// Register installs a factory for desc that always hands out r.
func Register(host *audiounit.Host, desc audiounit.Description, r *Recorder) error {
	return host.Register(desc, func(float64) (audiounit.Unit, error) { return r, nil })
}

// FailWith makes later SetParameter calls return err after recording them.
// A nil err restores success.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

// SetParameter implements audiounit.Unit.
func (r *Recorder) SetParameter(id audiounit.ParameterID, scope audiounit.Scope, element uint32, value float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{ID: id, Scope: scope, Element: element, Value: value})

	if r.err != nil {
		return r.err
	}

	r.values[address{id, scope, element}] = value

	return nil
}

// Parameter implements audiounit.Unit.
func (r *Recorder) Parameter(id audiounit.ParameterID, scope audiounit.Scope, element uint32) (float32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.values[address{id, scope, element}]
	if !ok {
		return 0, fmt.Errorf("%w: %d never set", audiounit.ErrInvalidParameter, id)
	}

	return v, nil
}

// Process implements audiounit.Unit.
func (r *Recorder) Process(dst, src []float64) {
	r.mu.Lock()
	r.processed++
	transform := r.Transform
	r.mu.Unlock()

	if transform == nil {
		copy(dst, src)

		return
	}

	for i, x := range src {
		dst[i] = transform(x)
	}
}

// Reset implements audiounit.Unit.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.resets++
	r.mu.Unlock()
}

// Calls returns every recorded SetParameter call in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.calls)
}

// CallsFor returns the recorded calls for one parameter id.
func (r *Recorder) CallsFor(id audiounit.ParameterID) []Call {
	var out []Call

	for _, c := range r.Calls() {
		if c.ID == id {
			out = append(out, c)
		}
	}

	return out
}

// Last returns the most recent call, if any.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.calls) == 0 {
		return Call{}, false
	}

	return r.calls[len(r.calls)-1], true
}

// Processed returns how many blocks were processed.
func (r *Recorder) Processed() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.processed
}

// Resets returns how many times Reset was called.
func (r *Recorder) Resets() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resets
}
