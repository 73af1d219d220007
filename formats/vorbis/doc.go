// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis speech responses (audio/ogg,
// audio/vorbis).
//
// This package uses github.com/jfreymuth/oggvorbis.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis streams
//   - Variable bitrates
//   - Mono and stereo
//   - Any sample rate
//
// # Decoding Vorbis Responses
//
//	source, err := vorbis.Decoder{}.Decode(resp.Body)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// Vorbis decoder output:
//   - Sample format: float32 in range [-1.0, 1.0], passed through as decoded
//   - Channels: as stored in the stream
//   - Sample rate: as stored in the stream
//
// # Channel Layout
//
// For stereo streams, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// ReadSamples only returns whole frames. To fold to mono narration PCM:
//
//	samples, rate, err := audio.ResampleToMono16(source, 24000, 4096)
//
// # Error Handling
//
// The package defines:
//   - ErrNotOggVorbis: the stream has no Vorbis headers
//
// Errors from the library after the headers are returned as is.
package vorbis
