package graph

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/dsp/core"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func testEngine(opts ...core.ProcessorOption) *Engine {
	return NewEngine(quietLogger(), append([]core.ProcessorOption{core.WithSampleRate(48000)}, opts...)...)
}

// countingSource emits 1, 2, 3, ... and counts how often it renders.
type countingSource struct {
	Connections

	next    float64
	renders int
}

func (s *countingSource) Render(_ *Cycle, dst []float64) {
	s.renders++

	for i := range dst {
		s.next++
		dst[i] = s.next
	}
}

func (s *countingSource) Reset() {
	s.next = 0
}
