// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"io"
	"math"
)

const bytesPerSample = 4

// sampleReader serves float32 samples as little-endian bytes, the layout of
// oto.FormatFloat32LE.
type sampleReader struct {
	samples []float32
	pos     int // in bytes
}

// NewSampleReader returns a reader over samples encoded as float32 LE. It
// copes with reads that split a sample.
func NewSampleReader(samples []float32) io.Reader {
	return &sampleReader{samples: samples}
}

func (r *sampleReader) Read(p []byte) (int, error) {
	total := len(r.samples) * bytesPerSample
	if r.pos >= total {
		return 0, io.EOF
	}

	var b [bytesPerSample]byte
	n := 0

	for n < len(p) && r.pos < total {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(r.samples[r.pos/bytesPerSample]))
		c := copy(p[n:], b[r.pos%bytesPerSample:])
		n += c
		r.pos += c
	}

	return n, nil
}
