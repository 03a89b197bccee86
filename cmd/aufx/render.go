package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/audiounit/soft"
	"github.com/cwbudde/algo-effectnode/dsp/core"
	"github.com/cwbudde/algo-effectnode/dsp/effectchain"
	"github.com/cwbudde/algo-effectnode/dsp/effectnode"
	"github.com/cwbudde/algo-effectnode/dsp/signal"
	"github.com/cwbudde/algo-effectnode/graph"
	"github.com/cwbudde/algo-effectnode/measure/response"
)

const impulseLength = 16384

func newContext(sampleRate float64, log logrus.FieldLogger) (effectnode.Context, error) {
	host, err := soft.NewHost(log)
	if err != nil {
		return effectnode.Context{}, err
	}

	engine := graph.NewEngine(log, core.WithSampleRate(sampleRate))

	return effectnode.Context{Engine: engine, Host: host, Logger: log}, nil
}

// buildEffect returns the node to render: a patch chain when patch is set,
// otherwise a single node of cfg.effect.
func buildEffect(ctx effectnode.Context, input graph.Node, cfg config, patch []byte) (graph.Node, error) {
	registry := effectchain.DefaultRegistry()

	if patch != nil {
		c, err := effectchain.New(ctx, registry, input)
		if err != nil {
			return nil, err
		}

		if err := c.Load(patch); err != nil {
			return nil, err
		}

		if cfg.bypass {
			for _, n := range c.Nodes() {
				n.Bypass()
			}
		}

		return c, nil
	}

	factory := registry.Lookup(cfg.effect)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", effectchain.ErrUnknownEffect, cfg.effect)
	}

	// Keys a node does not expose are ignored, so one set serves every type.
	// Unset flags are NaN and leave the type's default in place.
	num := make(map[string]float64)
	for key, v := range map[string]float64{
		"centerFrequency":       cfg.fc,
		"cutoffFrequency":       cfg.fc,
		"bandwidth":             cfg.bw,
		"resonance":             cfg.res,
		effectnode.DryWetMixKey: cfg.mix,
	} {
		if !math.IsNaN(v) {
			num[key] = v
		}
	}

	n, err := factory(ctx, input, effectchain.Params{ID: cfg.effect, Type: cfg.effect, Num: num})
	if err != nil {
		return nil, err
	}

	if cfg.bypass {
		n.Bypass()
	}

	return n, nil
}

func process(cfg config, patch []byte, log *logrus.Logger) error {
	sampleRate := cfg.rate

	var (
		src    graph.Node
		frames int
	)

	if cfg.in != "" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return err
		}

		streamer, format, err := wav.Decode(f)
		if err != nil {
			_ = f.Close()

			return fmt.Errorf("decode %s: %w", cfg.in, err)
		}
		defer streamer.Close()

		sampleRate = float64(format.SampleRate)
		frames = streamer.Len()
		src = graph.NewStreamerSource(streamer)
	} else {
		gen := signal.NewGenerator(core.ProcessorConfig{SampleRate: sampleRate, BlockSize: 512}, signal.WithSeed(cfg.seed))

		noise, err := gen.WhiteNoise(0.5, gen.Samples(cfg.noise))
		if err != nil {
			return err
		}

		src = graph.NewBuffer(noise)
		frames = len(noise)
	}

	ctx, err := newContext(sampleRate, log)
	if err != nil {
		return err
	}

	out, err := buildEffect(ctx, src, cfg, patch)
	if err != nil {
		return err
	}

	ctx.Engine.SetOutput(out)

	format := beep.Format{SampleRate: beep.SampleRate(sampleRate), NumChannels: 2, Precision: 2}
	stream := ctx.Engine.Stream()
	rendered := beep.NewBuffer(format)
	rendered.Append(beep.Take(frames, stream))

	if err := stream.Err(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if s, ok := src.(*graph.StreamerSource); ok && s.Err() != nil {
		return fmt.Errorf("decode %s: %w", cfg.in, s.Err())
	}

	log.WithFields(logrus.Fields{
		"function":    "process",
		"frames":      rendered.Len(),
		"sample_rate": sampleRate,
	}).Info("Rendered audio")

	if cfg.out != "" {
		if err := writeWav(cfg.out, rendered, format); err != nil {
			return err
		}
	}

	if cfg.play {
		return play(rendered, sampleRate)
	}

	return nil
}

func writeWav(path string, rendered *beep.Buffer, format beep.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wav.Encode(f, rendered.Streamer(0, rendered.Len()), format); err != nil {
		_ = f.Close()

		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}

func analyze(cfg config, patch []byte, log *logrus.Logger) error {
	ctx, err := newContext(cfg.rate, log)
	if err != nil {
		return err
	}

	impulse, err := signal.NewGenerator(ctx.Engine.Config()).Impulse(1, impulseLength)
	if err != nil {
		return err
	}

	out, err := buildEffect(ctx, graph.NewBuffer(impulse), cfg, patch)
	if err != nil {
		return err
	}

	ctx.Engine.SetOutput(out)

	r, err := response.Measure(ctx.Engine, impulseLength)
	if err != nil {
		return err
	}

	printResponse(r)

	return nil
}

func printResponse(r *response.Response) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude [dB]\t\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for f := 31.25; f < r.SampleRate()/2; f *= 2 {
		if _, err := fmt.Fprintf(tw, "%.2f\t%.2f\t\n", f, r.MagnitudeDB(f)); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	peakHz, peakDB := r.Peak()
	if _, err := fmt.Fprintf(tw, "peak %.2f\t%.2f\t\n", peakHz, peakDB); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
		return
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printList() {
	for _, name := range effectchain.DefaultRegistry().Types() {
		fmt.Println(name)
	}
}
