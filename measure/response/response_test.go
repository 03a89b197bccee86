package response_test

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/audiounit/soft"
	"github.com/cwbudde/algo-effectnode/dsp/core"
	"github.com/cwbudde/algo-effectnode/dsp/effectnode"
	"github.com/cwbudde/algo-effectnode/dsp/effectnode/filters"
	"github.com/cwbudde/algo-effectnode/graph"
	"github.com/cwbudde/algo-effectnode/internal/testutil"
	"github.com/cwbudde/algo-effectnode/measure/response"
)

func TestFromImpulseFlat(t *testing.T) {
	t.Parallel()

	r, err := response.FromImpulse(testutil.Impulse(100, 0), 48000)
	if err != nil {
		t.Fatalf("FromImpulse: %v", err)
	}

	if r.FFTSize() != 128 {
		t.Errorf("FFTSize() = %d, want 128", r.FFTSize())
	}

	bins := r.Bins()
	if len(bins) != 65 {
		t.Fatalf("len(Bins()) = %d, want 65", len(bins))
	}

	for k, db := range bins {
		if math.Abs(db) > 1e-9 {
			t.Fatalf("bin %d = %v dB, want 0", k, db)
		}
	}

	if got := r.BinFrequency(64); got != 24000 {
		t.Errorf("BinFrequency(64) = %v, want 24000", got)
	}
}

func TestMagnitudeDBOutOfRange(t *testing.T) {
	t.Parallel()

	ir := []float64{1, 0.5, 0, 0}

	r, err := response.FromImpulse(ir, 48000)
	if err != nil {
		t.Fatalf("FromImpulse: %v", err)
	}

	if got := r.MagnitudeDB(math.NaN()); !math.IsNaN(got) {
		t.Errorf("MagnitudeDB(NaN) = %v, want NaN", got)
	}

	if got, want := r.MagnitudeDB(-100), r.MagnitudeDB(0); got != want {
		t.Errorf("MagnitudeDB(-100) = %v, want DC level %v", got, want)
	}

	if got, want := r.MagnitudeDB(math.Inf(-1)), r.MagnitudeDB(0); got != want {
		t.Errorf("MagnitudeDB(-Inf) = %v, want DC level %v", got, want)
	}

	if got, want := r.MagnitudeDB(math.Inf(1)), r.MagnitudeDB(24000); got != want {
		t.Errorf("MagnitudeDB(+Inf) = %v, want Nyquist level %v", got, want)
	}
}

func TestFromImpulseScaled(t *testing.T) {
	t.Parallel()

	ir := testutil.Impulse(16, 3)
	ir[3] = 0.5

	r, err := response.FromImpulse(ir, 1000)
	if err != nil {
		t.Fatalf("FromImpulse: %v", err)
	}

	want := 20 * math.Log10(0.5)
	for _, f := range []float64{0, 123.4, 250, 500, 900} {
		if got := r.MagnitudeDB(f); math.Abs(got-want) > 1e-9 {
			t.Errorf("MagnitudeDB(%v) = %v, want %v", f, got, want)
		}
	}
}

func TestFromImpulseErrors(t *testing.T) {
	t.Parallel()

	if _, err := response.FromImpulse(nil, 48000); !errors.Is(err, response.ErrEmptyIR) {
		t.Errorf("empty ir: err = %v, want ErrEmptyIR", err)
	}

	if _, err := response.FromImpulse([]float64{1}, 0); !errors.Is(err, response.ErrInvalidSampleRate) {
		t.Errorf("zero rate: err = %v, want ErrInvalidSampleRate", err)
	}

	if _, err := response.Measure(graph.NewEngine(nil), 0); !errors.Is(err, response.ErrEmptyIR) {
		t.Errorf("zero frames: err = %v, want ErrEmptyIR", err)
	}

	if _, err := response.Measure(graph.NewEngine(nil), 16); !errors.Is(err, graph.ErrNoOutput) {
		t.Errorf("no output: err = %v, want graph.ErrNoOutput", err)
	}
}

func TestMeasureBandPassPeaksAtCenter(t *testing.T) {
	t.Parallel()

	const (
		fs     = 48000.0
		center = 1000.0
		frames = 8192
	)

	log := logrus.New()
	log.SetOutput(io.Discard)

	host, err := soft.NewHost(log)
	if err != nil {
		t.Fatalf("soft.NewHost: %v", err)
	}

	engine := graph.NewEngine(log, core.WithSampleRate(fs))
	ctx := effectnode.Context{Engine: engine, Host: host, Logger: log}

	f, err := filters.NewBandPassFilter(ctx, graph.NewBuffer(testutil.Impulse(frames, 0)),
		filters.WithCenterFrequency(center),
		filters.WithBandwidth(1200),
	)
	if err != nil {
		t.Fatalf("NewBandPassFilter: %v", err)
	}

	engine.SetOutput(f)

	r, err := response.Measure(engine, frames)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}

	binWidth := fs / frames

	peakHz, peakDB := r.Peak()
	if math.Abs(peakHz-center) > binWidth {
		t.Errorf("peak at %v Hz, want %v +/- %v", peakHz, center, binWidth)
	}

	if math.Abs(peakDB) > 0.1 {
		t.Errorf("peak level = %v dB, want 0", peakDB)
	}

	// One octave wide: the band edges sit near -3 dB.
	for _, edge := range []float64{center / math.Sqrt2, center * math.Sqrt2} {
		if got := r.MagnitudeDB(edge); math.Abs(got+3.01) > 0.5 {
			t.Errorf("MagnitudeDB(%v) = %v, want about -3", edge, got)
		}
	}

	if got := r.MagnitudeDB(100); got > -15 {
		t.Errorf("MagnitudeDB(100) = %v, want below -15", got)
	}
}
