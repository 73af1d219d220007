// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the decoders and the
// narration helpers are built on.
//
// # Source Interface
//
// Every decoder returns a Source, a pull-based stream of interleaved float32
// samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is exhausted. A read may return
// samples together with io.EOF.
//
// # Format Registry
//
// Speech services label their responses with a media type. The Registry maps
// those media types to decoders, and Lookup accepts a full Content-Type value:
//
//	reg := audio.NewRegistry()
//	reg.Register(wav.Decoder{}, "audio/wav", "audio/x-wav")
//	dec, params, err := reg.Lookup("audio/wav")
//
// # Processing
//
// Resampler changes the sample rate with cubic interpolation, MonoMixer
// averages channels down to one, ReadAll drains a Source into memory and
// ResampleToMono16 chains all of them into 16-bit PCM:
//
//	pcm16, rate, err := audio.ResampleToMono16(src, 16000, 4096)
package audio
