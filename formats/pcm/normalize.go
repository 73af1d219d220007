// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"

	"github.com/ik5/storyaudio/utils"
)

const (
	// DefaultSampleRate is the fixed output rate of the speech service.
	DefaultSampleRate = 24000
	// BytesPerSample for 16-bit PCM.
	BytesPerSample = 2
)

// SampleCount is the number of whole samples in n bytes.
func SampleCount(n int) int {
	return n / BytesPerSample
}

// Normalize converts s16le bytes to floats in [-1, 1). An odd trailing byte
// is ignored. b is not modified.
func Normalize(b []byte) []float32 {
	out := make([]float32, SampleCount(len(b)))
	NormalizeInto(out, b)

	return out
}

// NormalizeStrict is Normalize, but rejects an odd byte count.
func NormalizeStrict(b []byte) ([]float32, error) {
	if len(b)%BytesPerSample != 0 {
		return nil, ErrOddLength
	}

	return Normalize(b), nil
}

// NormalizeInto writes min(len(dst), len(b)/2) samples into dst and returns
// how many it wrote.
func NormalizeInto(dst []float32, b []byte) int {
	n := min(len(dst), SampleCount(len(b)))
	for i := range n {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(b[2*i:])))
	}

	return n
}
