package graph

import (
	"github.com/faiface/beep"

	"github.com/cwbudde/algo-effectnode/dsp/core"
)

var _ beep.Streamer = (*Stream)(nil)

// Stream exposes the engine output as an endless stereo beep.Streamer.
// The mono output is copied to both channels. Bound its length with
// beep.Take.
type Stream struct {
	engine *Engine
	mono   []float64
	err    error
}

// Stream returns a beep.Streamer rendering the engine output.
func (e *Engine) Stream() *Stream {
	return &Stream{engine: e}
}

// Stream implements beep.Streamer.
func (s *Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}

	s.mono = core.EnsureLen(s.mono, len(samples))

	if err := s.engine.Render(s.mono); err != nil {
		s.err = err

		return 0, false
	}

	for i, v := range s.mono {
		samples[i][0] = v
		samples[i][1] = v
	}

	return len(samples), true
}

// Err implements beep.Streamer.
func (s *Stream) Err() error {
	return s.err
}
