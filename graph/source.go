package graph

import (
	"github.com/faiface/beep"
)

// Buffer plays a fixed sample slice once and then renders silence.
type Buffer struct {
	Connections

	samples []float64
	pos     int
}

// NewBuffer creates a source over samples. The slice is not copied.
func NewBuffer(samples []float64) *Buffer {
	return &Buffer{samples: samples}
}

// Render implements Node.
func (b *Buffer) Render(_ *Cycle, dst []float64) {
	n := copy(dst, b.samples[b.pos:])
	clear(dst[n:])
	b.pos += n
}

// Len returns the number of samples in the buffer.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Done reports whether every sample has been rendered.
func (b *Buffer) Done() bool {
	return b.pos >= len(b.samples)
}

// Reset rewinds to the first sample.
func (b *Buffer) Reset() {
	b.pos = 0
}

// StreamerSource adapts a beep.Streamer to a mono graph source by averaging
// the two channels. Once the streamer is drained it renders silence.
type StreamerSource struct {
	Connections

	streamer beep.Streamer
	scratch  [][2]float64
	drained  bool
}

// NewStreamerSource wraps s.
func NewStreamerSource(s beep.Streamer) *StreamerSource {
	return &StreamerSource{streamer: s}
}

// Render implements Node.
func (s *StreamerSource) Render(_ *Cycle, dst []float64) {
	clear(dst)

	if s.drained || s.streamer == nil {
		return
	}

	if cap(s.scratch) < len(dst) {
		s.scratch = make([][2]float64, len(dst))
	}

	filled := 0
	for filled < len(dst) {
		n, ok := s.streamer.Stream(s.scratch[:len(dst)-filled])
		for i := range n {
			dst[filled+i] = (s.scratch[i][0] + s.scratch[i][1]) / 2
		}

		filled += n

		if !ok {
			s.drained = true

			return
		}

		if n == 0 {
			return
		}
	}
}

// Done reports whether the wrapped streamer has been drained.
func (s *StreamerSource) Done() bool {
	return s.drained
}

// Err returns the wrapped streamer's error, if any.
func (s *StreamerSource) Err() error {
	if s.streamer == nil {
		return nil
	}

	return s.streamer.Err()
}
