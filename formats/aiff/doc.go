// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF speech responses (audio/aiff, audio/x-aiff).
//
// This package uses github.com/go-audio/aiff to parse the container.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF with 16-bit PCM samples
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Responses
//
//	source, err := aiff.Decoder{}.Decode(resp.Body)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-audio needs to seek between chunks, so a body that is not an
// io.ReadSeeker is read into memory first.
//
// # Output Format
//
// AIFF decoder output:
//   - Sample format: float32 in range [-1.0, 1.0), value / 32768
//   - Channels: as stored in the file
//   - Sample rate: as stored in the file
//
// Fold it to mono narration PCM with storyaudio.DecodeResponse or
// audio.ResampleToMono16.
//
// # Error Handling
//
// The package defines several errors:
//   - ErrNotAiffFile: The input is not a FORM/AIFF file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrUnsupportedAiffLayout: The COMM chunk is missing or has no channels
//
// Example:
//
//	source, err := aiff.Decoder{}.Decode(body)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF response")
//	}
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as an 80-bit float (WAV uses a 32-bit int)
package aiff
