package effectnode

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-effectnode/audiounit"
	"github.com/cwbudde/algo-effectnode/audiounit/unittest"
	"github.com/cwbudde/algo-effectnode/dsp/core"
	"github.com/cwbudde/algo-effectnode/graph"
	"github.com/cwbudde/algo-effectnode/internal/testutil"
)

var testSpec = Spec{
	Name:      "test",
	Component: unittest.Description,
	Params: []ParamSpec{
		{ID: 3, Key: "depth", Name: "Depth", Unit: "%", Range: core.Range{Min: 0, Max: 10, Default: 4}},
		{ID: 7, Key: "rate", Name: "Rate", Unit: "Hz", Range: core.Range{Min: 1, Max: 2, Default: 1.5}},
	},
}

type fixture struct {
	ctx   Context
	rec   *unittest.Recorder
	input *graph.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	host := audiounit.NewHost(log)
	rec := unittest.NewRecorder()
	require.NoError(t, unittest.Register(host, unittest.Description, rec))

	return fixture{
		ctx:   Context{Engine: graph.NewEngine(log), Host: host, Logger: log},
		rec:   rec,
		input: graph.NewBuffer(testutil.DC(1, 64)),
	}
}

func (f fixture) node(t *testing.T, opts ...Option) *Node {
	t.Helper()

	n, err := New(f.ctx, testSpec, f.input, opts...)
	require.NoError(t, err)

	return n
}

func TestNewInitialState(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	n := f.node(t)

	assert.Equal(t, "test", n.Name())
	assert.Equal(t, Started, n.State())
	assert.True(t, n.IsStarted())
	assert.True(t, n.IsPlaying())
	assert.False(t, n.IsStopped())
	assert.False(t, n.IsBypassed())

	assert.Equal(t, 50.0, n.DryWetMix())
	assert.Equal(t, 0.0, n.InputGain().Gain(), "dry path starts muted")
	assert.Equal(t, 1.0, n.EffectGain().Gain())

	assert.Equal(t, []unittest.Call{
		{ID: 3, Scope: audiounit.ScopeGlobal, Value: 4},
		{ID: 7, Scope: audiounit.ScopeGlobal, Value: 1.5},
	}, f.rec.Calls(), "defaults are forwarded once in spec order")
}

func TestNewTopology(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	n := f.node(t)

	assert.Equal(t, graph.Node(f.input), n.Input())
	assert.Equal(t, graph.Node(f.input), n.InputGain().Input())
	assert.Equal(t, graph.Node(n.Effect()), n.EffectGain().Input())
	assert.Equal(t, graph.Node(f.input), n.Effect().Input())
	assert.Same(t, f.rec, n.Unit())

	assert.Equal(t, []graph.Node{n.InputGain(), n.Effect()}, f.input.ConnectionPoints())
	assert.Equal(t, []graph.Node{n.InputGain(), n.EffectGain()}, n.Mixer().Inputs())

	for _, part := range []graph.Node{n.Effect(), n.InputGain(), n.EffectGain(), n.Mixer()} {
		assert.True(t, f.ctx.Engine.IsAttached(part))
	}
}

func TestDisconnect(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	kept := f.node(t)
	dropped := f.node(t)

	require.Len(t, f.input.ConnectionPoints(), 4)

	dropped.Disconnect()

	assert.Equal(t, []graph.Node{kept.InputGain(), kept.Effect()}, f.input.ConnectionPoints())
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := New(Context{Host: f.ctx.Host}, testSpec, f.input)
	require.ErrorIs(t, err, ErrNilEngine)

	_, err = New(Context{Engine: f.ctx.Engine}, testSpec, f.input)
	require.ErrorIs(t, err, ErrNilHost)

	_, err = New(f.ctx, testSpec, nil)
	require.ErrorIs(t, err, ErrNilInput)

	missing := testSpec
	missing.Component = audiounit.HighPassFilterDescription
	_, err = New(f.ctx, missing, f.input)
	require.ErrorIs(t, err, audiounit.ErrComponentNotFound)
	assert.Empty(t, f.input.ConnectionPoints(), "a failed build must not wire the input")
}

func TestOptions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	n := f.node(t,
		WithName("custom"),
		WithParameter(3, 99),
		WithParameter(7, math.NaN()),
		WithDryWetMix(25),
		nil,
	)

	assert.Equal(t, "custom", n.Name())

	depth, ok := n.Param(3)
	require.True(t, ok)
	assert.Equal(t, 10.0, depth.Value())

	rate, ok := n.ParamByKey("rate")
	require.True(t, ok)
	assert.Equal(t, 1.5, rate.Value(), "NaN options fall back to the default")

	assert.Equal(t, 25.0, n.DryWetMix())
	assert.InDelta(t, 0.75, n.InputGain().Gain(), 1e-12)
	assert.InDelta(t, 0.25, n.EffectGain().Gain(), 1e-12)
}

func TestParamSetClampsAndForwards(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	n := f.node(t)

	for _, tc := range []struct {
		in, want float64
	}{
		{-5, 0},
		{5, 5},
		{11, 10},
		{math.Inf(1), 10},
		{math.Inf(-1), 0},
	} {
		require.NoError(t, n.Set(3, tc.in))

		p, _ := n.Param(3)
		assert.Equal(t, tc.want, p.Value(), "Set(%v)", tc.in)

		last, ok := f.rec.Last()
		require.True(t, ok)
		assert.Equal(t, unittest.Call{ID: 3, Scope: audiounit.ScopeGlobal, Value: float32(tc.want)}, last)
	}
}

func TestParamSetIgnoresNaN(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	n := f.node(t)
	calls := len(f.rec.Calls())

	require.NoError(t, n.Set(3, math.NaN()))

	p, _ := n.Param(3)
	assert.Equal(t, 4.0, p.Value())
	assert.Len(t, f.rec.Calls(), calls, "NaN must not be forwarded")

	n.SetDryWetMix(math.NaN())
	assert.Equal(t, 50.0, n.DryWetMix())
}

func TestSetUnknownParameter(t *testing.T) {
	t.Parallel()

	n := newFixture(t).node(t)

	require.ErrorIs(t, n.Set(42, 1), ErrUnknownParameter)
	require.ErrorIs(t, n.SetByKey("nope", 1), ErrUnknownParameter)

	require.NoError(t, n.SetByKey("depth", 2))
	require.NoError(t, n.SetByKey(DryWetMixKey, 70))
	assert.Equal(t, 70.0, n.DryWetMix())
	assert.Len(t, n.Params(), 2)
	assert.Equal(t, "depth", n.Params()[0].Spec().Key)
}

func TestUnitErrorsAreNotPropagated(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	n := f.node(t)
	f.rec.FailWith(errors.New("unit offline"))

	require.NoError(t, n.Set(7, 2))

	p, _ := n.Param(7)
	assert.Equal(t, 2.0, p.Value(), "value is stored even when the unit rejects it")
}

func TestDryWetMixGainsSumToOne(t *testing.T) {
	t.Parallel()

	n := newFixture(t).node(t)

	for _, v := range []float64{-10, 0, 12.5, 33.3, 50, 80, 99.9, 100, 250} {
		n.SetDryWetMix(v)

		want := core.Clamp(v, 0, 100)
		assert.Equal(t, want, n.DryWetMix())
		assert.InDelta(t, 1-want/100, n.InputGain().Gain(), 1e-12)
		assert.InDelta(t, want/100, n.EffectGain().Gain(), 1e-12)
		assert.InDelta(t, 1.0, n.InputGain().Gain()+n.EffectGain().Gain(), 1e-12)
	}
}

func TestTransport(t *testing.T) {
	t.Parallel()

	n := newFixture(t).node(t)

	n.Stop()
	assert.Equal(t, Stopped, n.State())
	assert.True(t, n.IsBypassed())
	assert.Equal(t, 1.0, n.InputGain().Gain())
	assert.Equal(t, 0.0, n.EffectGain().Gain())

	n.Start()
	assert.Equal(t, Started, n.State())
	assert.Equal(t, 0.0, n.InputGain().Gain())
	assert.Equal(t, 1.0, n.EffectGain().Gain())

	n.Play()
	assert.True(t, n.IsPlaying())

	n.Bypass()
	assert.True(t, n.IsStopped())

	assert.Equal(t, "stopped", n.State().String())
	assert.Equal(t, "started", Started.String())
}

func TestTransportIsIdempotent(t *testing.T) {
	t.Parallel()

	n := newFixture(t).node(t)

	// A started node keeps whatever gains the mix set: Start is a no-op.
	n.SetDryWetMix(30)
	n.Start()
	n.Start()
	assert.Equal(t, Started, n.State())
	assert.InDelta(t, 0.7, n.InputGain().Gain(), 1e-12)
	assert.InDelta(t, 0.3, n.EffectGain().Gain(), 1e-12)

	n.Stop()
	n.SetDryWetMix(30)
	n.Stop()
	assert.InDelta(t, 0.7, n.InputGain().Gain(), 1e-12, "Stop on a stopped node changes nothing")
}

func TestTransportDiscardsMixRatio(t *testing.T) {
	t.Parallel()

	n := newFixture(t).node(t)
	n.Stop()
	n.SetDryWetMix(80)

	assert.Equal(t, Stopped, n.State())
	assert.InDelta(t, 0.2, n.InputGain().Gain(), 1e-12)
	assert.InDelta(t, 0.8, n.EffectGain().Gain(), 1e-12)

	n.Start()
	assert.Equal(t, 80.0, n.DryWetMix(), "the stored mix survives")
	assert.Equal(t, 0.0, n.InputGain().Gain())
	assert.Equal(t, 1.0, n.EffectGain().Gain())
}

func TestRender(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.rec.Transform = func(x float64) float64 { return 3 * x }

	n := f.node(t)
	f.ctx.Engine.SetOutput(n)

	dst := make([]float64, 4)

	require.NoError(t, f.ctx.Engine.Render(dst))
	assert.Equal(t, testutil.DC(3, 4), dst, "started: wet only")

	n.Stop()
	require.NoError(t, f.ctx.Engine.Render(dst))
	assert.Equal(t, testutil.DC(1, 4), dst, "stopped: dry only")

	n.SetDryWetMix(50)
	require.NoError(t, f.ctx.Engine.Render(dst))
	assert.Equal(t, testutil.DC(2, 4), dst, "half dry, half wet")

	assert.Equal(t, 3, f.rec.Processed())
}
