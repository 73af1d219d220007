// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes speech responses delivered as audio/mpeg.
//
// This package uses github.com/hajimehoshi/go-mp3.
//
// # Supported Formats
//
// The decoder supports:
//   - MPEG-1 and MPEG-2 Layer 3
//   - Constant and variable bitrates
//   - Mono and stereo streams
//
// # Decoding MP3 Responses
//
//	source, err := mp3.Decoder{}.Decode(resp.Body)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0), value / 32768
//   - Channels: always 2 (go-mp3 duplicates mono streams)
//   - Sample rate: the stream's own rate
//
// Fold it to mono at the narration rate before writing a WAV:
//
//	samples, rate, err := audio.ResampleToMono16(source, 24000, 4096)
//
// storyaudio.DecodeResponse does this for any registered content type.
//
// # Error Handling
//
// The package defines:
//   - ErrNotMP3: go-mp3 could not find a valid frame header
//
// Example:
//
//	source, err := mp3.Decoder{}.Decode(body)
//	if errors.Is(err, mp3.ErrNotMP3) {
//	    fmt.Println("Not an MP3 response")
//	}
//
// # Limitations
//
// Note:
//   - Decoding only; narration is always written as WAV
//   - A trailing partial sample is dropped
package mp3
