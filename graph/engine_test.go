package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-effectnode/dsp/core"
	"github.com/cwbudde/algo-effectnode/internal/testutil"
)

func TestEngineRenderWithoutOutput(t *testing.T) {
	t.Parallel()

	e := testEngine()
	require.ErrorIs(t, e.Render(make([]float64, 4)), ErrNoOutput)
}

func TestEngineAttach(t *testing.T) {
	t.Parallel()

	e := testEngine()
	src := &countingSource{}

	e.Attach(src)
	e.Attach(src)
	e.Attach(nil)

	assert.True(t, e.IsAttached(src))
	assert.Len(t, e.Nodes(), 1)

	e.SetOutput(src)
	assert.Equal(t, Node(src), e.Output())

	e.Detach(src)
	assert.False(t, e.IsAttached(src))
	assert.Nil(t, e.Output())
}

func TestEngineRendersInBlocks(t *testing.T) {
	t.Parallel()

	e := testEngine(core.WithBlockSize(4))
	src := &countingSource{}
	e.SetOutput(src)

	dst := make([]float64, 10)
	require.NoError(t, e.Render(dst))

	assert.Equal(t, testutil.Ramp(1, 11)[1:], dst)
	assert.Equal(t, 3, src.renders)
}

func TestCyclePullsFanOutOnce(t *testing.T) {
	t.Parallel()

	e := testEngine(core.WithBlockSize(8))
	src := &countingSource{}
	dry := NewGain(src, 1)
	wet := NewGain(src, 2)
	mix := NewMixer(dry, wet)
	e.SetOutput(mix)

	dst := make([]float64, 8)
	require.NoError(t, e.Render(dst))

	assert.Equal(t, 1, src.renders, "a shared input must render once per cycle")
	assert.Equal(t, []float64{3, 6, 9, 12, 15, 18, 21, 24}, dst)
	assert.Equal(t, []Node{dry, wet}, src.ConnectionPoints())
}

func TestEngineReset(t *testing.T) {
	t.Parallel()

	e := testEngine()
	src := &countingSource{}
	buf := NewBuffer([]float64{1, 2})
	e.Attach(src)
	e.Attach(buf)
	e.SetOutput(src)

	require.NoError(t, e.Render(make([]float64, 3)))
	e.Reset()

	dst := make([]float64, 2)
	require.NoError(t, e.Render(dst))
	assert.Equal(t, []float64{1, 2}, dst)
}

func TestCyclePullNil(t *testing.T) {
	t.Parallel()

	e := testEngine()
	g := NewGain(nil, 5)
	e.SetOutput(g)

	dst := testutil.DC(1, 4)
	require.NoError(t, e.Render(dst))
	assert.Equal(t, make([]float64, 4), dst)
	assert.Equal(t, 48000.0, e.SampleRate())
}
