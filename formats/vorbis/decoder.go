// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/storyaudio/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

// ReadSamples fills whole frames only; a trailing partial frame in dst is
// left untouched.
func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	// oggvorbis counts values, not frames
	n, err := s.dec.Read(dst[:whole])
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotOggVorbis, err)
	}

	return newSource(dec), nil
}

func newSource(dec oggReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   max(dec.Channels(), 1),
	}
}
