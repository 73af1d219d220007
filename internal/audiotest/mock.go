// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests: synthetic
// sources and raw PCM builders.
package audiotest

import (
	"encoding/base64"
	"encoding/binary"
	"io"
	"math"
)

// MockSource generates samples from a waveform function. It satisfies
// audio.Source without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate
	generated  int // frames generated so far
	waveform   func(frame, channel int) float32
	closed     bool
}

func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Closed() bool    { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// ReadSamples returns io.EOF together with the final frames.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range count {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += count
	if m.generated >= m.frames {
		return count * m.channels, io.EOF
	}

	return count * m.channels, nil
}

// FailingSource returns Err on the first read.
type FailingSource struct {
	Rate int
	Err  error
}

func (f FailingSource) SampleRate() int                    { return f.Rate }
func (f FailingSource) Channels() int                      { return 1 }
func (f FailingSource) BufSize() int                       { return 64 }
func (f FailingSource) Close() error                       { return nil }
func (f FailingSource) ReadSamples([]float32) (int, error) { return 0, f.Err }

// PCM16LE encodes samples as raw 16-bit little-endian PCM.
func PCM16LE(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}

// Base64PCM is PCM16LE in the standard base64 alphabet, the shape a speech
// service hands back.
func Base64PCM(samples ...int16) string {
	return base64.StdEncoding.EncodeToString(PCM16LE(samples...))
}
