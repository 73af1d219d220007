// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// writeChunk is the number of samples converted per Write call.
const writeChunk = 8192

// WriteWAV16 streams int16 samples to w as a mono 16-bit PCM WAV at
// sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16, opts ...EncodeOption) error {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	o := applyOptions(opts)

	header := make([]byte, HeaderSize)
	putHeader(header, sampleRate, uint32(len(samples)*2), o.chunkSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), writeChunk)*2)

	for start := 0; start < len(samples); start += writeChunk {
		chunk := samples[start:min(start+writeChunk, len(samples))]
		out := buf[:len(chunk)*2]

		for i, s := range chunk {
			binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
