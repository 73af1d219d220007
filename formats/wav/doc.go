// SPDX-License-Identifier: EPL-2.0

// Package wav builds and reads the WAV container used to hand narration
// audio to the user.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit little-endian
//   - Mono output from Encode and WriteWAV16
//   - Mono and stereo input through Decoder
//   - Any sample rate (narration defaults to 24000 Hz)
//
// # Writing WAV Files
//
// Encode wraps raw 16-bit mono PCM in a 44-byte RIFF header:
//
//	data := wav.Encode(pcm, 24000)
//	os.WriteFile("chapter-1.wav", data, 0o644)
//
// WriteWAV16 streams int16 samples through the same header builder:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("chapter-1.wav")
//	err := wav.WriteWAV16(file, 24000, samples)
//
// # Chunk Size
//
// The RIFF chunk size is 36 + N by default. Files produced by the older
// storybook exporter carried 32 + N; pass WithChunkSize(ChunkSizeLegacy)
// to reproduce them byte for byte:
//
//	data := wav.Encode(pcm, 24000, wav.WithChunkSize(wav.ChunkSizeLegacy))
//
// ParseHeader and Payload accept both values.
//
// # Reading WAV Files
//
// ParseHeader and Payload read the canonical 44-byte layout that Encode
// writes. Decoder handles everything else a speech service may send,
// using github.com/go-audio/wav, so extra chunks (LIST, fact) before the
// data chunk are skipped:
//
//	source, err := wav.Decoder{}.Decode(resp.Body)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// Decoder output:
//   - Sample format: float32 in range [-1.0, 1.0), value / 32768
//   - Channels: as stored in the file
//   - Sample rate: as stored in the file
//
// # Error Handling
//
// The package defines several errors:
//   - ErrNotWavFile: The input is not a RIFF/WAVE file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: The fmt chunk is missing or malformed
//   - ErrUnsupportedWavChunks: The data chunk does not follow fmt directly
//   - ErrShortPayload: The data chunk claims more bytes than the file has
//   - ErrUnknownChunkSizeMode: ParseChunkSizeMode got an unknown name
//
// Example:
//
//	h, err := wav.ParseHeader(data)
//	if errors.Is(err, wav.ErrUnsupportedWavChunks) {
//	    source, err = wav.Decoder{}.Decode(bytes.NewReader(data))
//	}
//
// # File Format
//
// Encode writes:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): PCM, 1 channel, sample rate, 16 bits
//   - data chunk header (8 bytes) followed by the samples
package wav
