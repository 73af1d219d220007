// SPDX-License-Identifier: EPL-2.0

package wav

// MIMEType of the containers built by Encode.
const MIMEType = "audio/wav"

// DefaultSampleRate is used when Encode gets a non-positive rate.
const DefaultSampleRate = 24000

type encodeOptions struct {
	chunkSize ChunkSizeMode
}

// EncodeOption tunes Encode and WriteWAV16.
type EncodeOption func(*encodeOptions)

// WithChunkSize selects how the RIFF chunk size field is computed.
func WithChunkSize(mode ChunkSizeMode) EncodeOption {
	return func(o *encodeOptions) {
		o.chunkSize = mode
	}
}

func applyOptions(opts []EncodeOption) encodeOptions {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Encode wraps raw s16le mono PCM in a WAV container. The result is a new
// slice of HeaderSize+len(pcm) bytes; pcm is copied, never modified.
func Encode(pcm []byte, sampleRate int, opts ...EncodeOption) []byte {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	o := applyOptions(opts)

	out := make([]byte, HeaderSize+len(pcm))
	putHeader(out, sampleRate, uint32(len(pcm)), o.chunkSize)
	copy(out[HeaderSize:], pcm)

	return out
}
