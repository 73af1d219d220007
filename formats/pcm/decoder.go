// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/storyaudio/audio"
)

type source struct {
	r          io.Reader
	sampleRate int
	channels   int
	strict     bool
	buf        []byte
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return cap(s.buf) / BytesPerSample }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * BytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	// ReadFull only comes up short at the end of the stream.
	n, err := io.ReadFull(s.r, s.buf)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
	default:
		return 0, fmt.Errorf("%w", err)
	}

	samples := NormalizeInto(dst, s.buf[:n])

	if s.done {
		if s.strict && n%BytesPerSample != 0 {
			return samples, ErrOddLength
		}

		return samples, io.EOF
	}

	return samples, nil
}

// Decoder reads headerless s16le PCM. Zero values select 24000 Hz mono.
// With Strict set, a stream ending on half a sample fails with ErrOddLength
// instead of dropping the byte.
type Decoder struct {
	SampleRate int
	Channels   int
	Strict     bool
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if d.SampleRate < 0 || d.Channels < 0 {
		return nil, fmt.Errorf("%w: rate %d, channels %d", ErrInvalidFormat, d.SampleRate, d.Channels)
	}

	rate := d.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}

	channels := d.Channels
	if channels == 0 {
		channels = 1
	}

	return &source{
		r:          r,
		sampleRate: rate,
		channels:   channels,
		strict:     d.Strict,
		buf:        make([]byte, 8192),
	}, nil
}
