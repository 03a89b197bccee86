package main

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/faiface/beep"
)

// monoReader turns a stereo beep streamer into mono float32 PCM for oto.
type monoReader struct {
	streamer beep.Streamer
	frames   [][2]float64
}

func (m *monoReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if n == 0 {
		return 0, nil
	}

	if cap(m.frames) < n {
		m.frames = make([][2]float64, n)
	}

	got, ok := m.streamer.Stream(m.frames[:n])
	if !ok && got == 0 {
		return 0, io.EOF
	}

	for i := range got {
		v := float32((m.frames[i][0] + m.frames[i][1]) / 2)
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}

	return got * 4, nil
}

func play(rendered *beep.Buffer, sampleRate float64) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(sampleRate),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready

	p := ctx.NewPlayer(&monoReader{streamer: rendered.Streamer(0, rendered.Len())})
	defer p.Close()

	p.Play()

	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	return p.Err()
}
