// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts the go-audio decoders (WAV, AIFF), which hand out
// integer PCM in an IntBuffer, to audio.Source.
package intpcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/storyaudio/utils"
)

// BitDepth is the only sample width the adapters accept.
const BitDepth = 16

const defaultBufSize = 4096

// Reader is what the go-audio decoders have in common.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads 16-bit integer PCM from a Reader as floats.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func NewSource(dec Reader, sampleRate, channels int) *Source {
	return &Source{dec: dec, sampleRate: sampleRate, channels: channels}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}

	return defaultBufSize
}

// ReadSamples treats a short read as the end of the stream; go-audio only
// comes up short at the end of the data chunk.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: BitDepth,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.Int16ToFloat32(int16(v))
	}

	if n < len(dst) || err == io.EOF {
		return n, io.EOF
	}

	return n, nil
}
