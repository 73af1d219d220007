// SPDX-License-Identifier: EPL-2.0

// Package pcm handles raw 16-bit signed little-endian PCM, the payload
// speech-synthesis services return (usually base64 encoded, mono, 24 kHz).
//
// # Decoding the Service Payload
//
//	raw, err := pcm.DecodeBase64(resp.Audio)
//	if errors.Is(err, pcm.ErrInvalidBase64) {
//	    // the response was not base64
//	}
//
// # Normalizing
//
// Normalize maps every sample to sample/32768.0. Negative full scale is
// exactly -1.0, positive full scale is 0.999969..., which is the usual
// asymmetry of this mapping:
//
//	samples := pcm.Normalize(raw) // len(samples) == len(raw)/2
//
// A trailing odd byte is dropped silently. NormalizeStrict reports it as
// ErrOddLength instead.
//
// # Streaming
//
// Decoder wraps a reader of raw PCM as an audio.Source so the payload can
// be fed to the resampler or the mixer:
//
//	src, _ := pcm.Decoder{SampleRate: 24000}.Decode(bytes.NewReader(raw))
package pcm
