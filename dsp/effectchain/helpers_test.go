package effectchain

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/audiounit"
	"github.com/cwbudde/algo-effectnode/audiounit/unittest"
	"github.com/cwbudde/algo-effectnode/dsp/core"
	"github.com/cwbudde/algo-effectnode/dsp/effectnode"
	"github.com/cwbudde/algo-effectnode/graph"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

var (
	doubleDesc = audiounit.EffectDescription(audiounit.NewFourCC("dble"), audiounit.NewFourCC("test"))
	addOneDesc = audiounit.EffectDescription(audiounit.NewFourCC("add1"), audiounit.NewFourCC("test"))
)

func testSpec(name string, desc audiounit.Description) effectnode.Spec {
	return effectnode.Spec{
		Name:      name,
		Component: desc,
		Params: []effectnode.ParamSpec{
			{ID: 0, Key: "depth", Range: core.Range{Min: 0, Max: 10, Default: 1}},
		},
	}
}

// testRig wires a host with two recorders: "double" multiplies by two and
// "addone" adds one.
type testRig struct {
	ctx      effectnode.Context
	registry *Registry
	double   *unittest.Recorder
	addOne   *unittest.Recorder
}

func newTestRig(t *testing.T) testRig {
	t.Helper()

	log := quietLogger()
	host := audiounit.NewHost(log)

	rig := testRig{
		ctx:      effectnode.Context{Engine: graph.NewEngine(log, core.WithBlockSize(16)), Host: host, Logger: log},
		registry: NewRegistry(),
		double:   unittest.NewRecorder(),
		addOne:   unittest.NewRecorder(),
	}
	rig.double.Transform = func(x float64) float64 { return 2 * x }
	rig.addOne.Transform = func(x float64) float64 { return x + 1 }

	if err := unittest.Register(host, doubleDesc, rig.double); err != nil {
		t.Fatalf("register double: %v", err)
	}

	if err := unittest.Register(host, addOneDesc, rig.addOne); err != nil {
		t.Fatalf("register addone: %v", err)
	}

	rig.registry.MustRegister("double", SpecFactory(testSpec("double", doubleDesc)))
	rig.registry.MustRegister("addone", SpecFactory(testSpec("addone", addOneDesc)))

	return rig
}

// render loads patch into a chain fed by a constant 1 and renders n frames.
func (r testRig) render(t *testing.T, patch string, n int) (*Chain, []float64) {
	t.Helper()

	in := make([]float64, n)
	for i := range in {
		in[i] = 1
	}

	c, err := New(r.ctx, r.registry, graph.NewBuffer(in))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := c.Load([]byte(patch)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	r.ctx.Engine.SetOutput(c)

	out := make([]float64, n)
	if err := r.ctx.Engine.Render(out); err != nil {
		t.Fatalf("Render: %v", err)
	}

	return c, out
}

func assertConst(t *testing.T, got []float64, want float64) {
	t.Helper()

	for i, v := range got {
		if v != want {
			t.Fatalf("out[%d] = %v, want %v", i, v, want)
		}
	}
}
