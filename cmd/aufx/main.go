// Command aufx renders audio through a hosted filter node or a patch of
// them, and prints the resulting magnitude response.
//
// Usage:
//
//	aufx [flags]
//
// The input is a wav file (-in) or generated white noise (-noise seconds).
// Without -patch a single node of -type is built from -fc, -bw, -res and
// -mix.
//
// Examples:
//
//	aufx -noise 2 -fc 800 -bw 1200 -out band.wav
//	aufx -in voice.wav -type highpass -fc 300 -play
//	aufx -patch telephone.json -analyze
//	aufx -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
)

type config struct {
	in       string
	out      string
	noise    float64
	seed     int64
	effect   string
	fc       float64
	bw       float64
	res      float64
	mix      float64
	bypass   bool
	patch    string
	analyze  bool
	play     bool
	rate     float64
	logLevel string
}

var errNoInput = errors.New("no input: use -in, -noise or -analyze")

func main() {
	var cfg config

	flag.StringVar(&cfg.in, "in", "", "input wav file")
	flag.StringVar(&cfg.out, "out", "", "output wav file")
	flag.Float64Var(&cfg.noise, "noise", 0, "generate this many seconds of white noise as input")
	flag.Int64Var(&cfg.seed, "seed", 1, "white noise seed")
	flag.StringVar(&cfg.effect, "type", "bandpass", "effect type without -patch (see -list)")
	flag.Float64Var(&cfg.fc, "fc", math.NaN(), "center or cutoff frequency in Hz (default: per effect type)")
	flag.Float64Var(&cfg.bw, "bw", math.NaN(), "band-pass bandwidth in cents (default 600)")
	flag.Float64Var(&cfg.res, "res", math.NaN(), "low/high-pass resonance in dB (default 0)")
	flag.Float64Var(&cfg.mix, "mix", math.NaN(), "dry/wet mix in percent (default: fully wet)")
	flag.BoolVar(&cfg.bypass, "bypass", false, "stop the effect and pass the dry signal")
	flag.StringVar(&cfg.patch, "patch", "", "JSON patch file describing a chain of effects")
	flag.BoolVar(&cfg.analyze, "analyze", false, "print the magnitude response of the effect")
	flag.BoolVar(&cfg.play, "play", false, "play the rendered audio")
	flag.Float64Var(&cfg.rate, "rate", 44100, "sample rate for generated input and analysis")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	list := flag.Bool("list", false, "list available effect types")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aufx [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders audio through hosted filter nodes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  aufx -noise 2 -fc 800 -bw 1200 -out band.wav\n")
		fmt.Fprintf(os.Stderr, "  aufx -in voice.wav -type highpass -fc 300 -play\n")
		fmt.Fprintf(os.Stderr, "  aufx -patch telephone.json -analyze\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log.SetLevel(level)

	if err := run(cfg, log); err != nil {
		log.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Error("aufx failed")
		os.Exit(1)
	}
}

func run(cfg config, log *logrus.Logger) error {
	var patch []byte

	if cfg.patch != "" {
		var err error

		patch, err = os.ReadFile(cfg.patch)
		if err != nil {
			return fmt.Errorf("read patch: %w", err)
		}
	}

	hasInput := cfg.in != "" || cfg.noise > 0
	if !hasInput && !cfg.analyze {
		return errNoInput
	}

	if hasInput {
		if err := process(cfg, patch, log); err != nil {
			return err
		}
	}

	if cfg.analyze {
		return analyze(cfg, patch, log)
	}

	return nil
}
