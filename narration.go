// SPDX-License-Identifier: EPL-2.0

package storyaudio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/ik5/storyaudio/audio"
	"github.com/ik5/storyaudio/formats/pcm"
	"github.com/ik5/storyaudio/formats/wav"
	"github.com/ik5/storyaudio/utils"
)

// Narration is decoded speech: 16-bit little-endian mono PCM at a known
// rate. Its bytes are never modified after construction.
type Narration struct {
	pcm        []byte
	sampleRate int
}

// NewNarration wraps raw PCM. The narration takes ownership of raw.
// sampleRate <= 0 selects pcm.DefaultSampleRate.
func NewNarration(raw []byte, sampleRate int) *Narration {
	if sampleRate <= 0 {
		sampleRate = pcm.DefaultSampleRate
	}

	return &Narration{pcm: raw, sampleRate: sampleRate}
}

// DecodeNarration decodes the base64 audio field of a speech response.
func DecodeNarration(b64 string, sampleRate int) (*Narration, error) {
	raw, err := pcm.DecodeBase64(b64)
	if err != nil {
		return nil, err
	}

	return NewNarration(raw, sampleRate), nil
}

// NarrationToWAV is DecodeNarration followed by WAV.
func NarrationToWAV(b64 string, sampleRate int, opts ...wav.EncodeOption) ([]byte, error) {
	n, err := DecodeNarration(b64, sampleRate)
	if err != nil {
		return nil, err
	}

	return n.WAV(opts...), nil
}

func (n *Narration) SampleRate() int { return n.sampleRate }

// Len is the number of whole samples.
func (n *Narration) Len() int { return pcm.SampleCount(len(n.pcm)) }

// PCM returns a copy of the raw bytes.
func (n *Narration) PCM() []byte { return bytes.Clone(n.pcm) }

func (n *Narration) Duration() time.Duration {
	return time.Duration(n.Len()) * time.Second / time.Duration(n.sampleRate)
}

// WAV wraps the PCM in a WAV container.
func (n *Narration) WAV(opts ...wav.EncodeOption) []byte {
	return wav.Encode(n.pcm, n.sampleRate, opts...)
}

// Samples returns the narration as floats in [-1, 1) for playback. An odd
// trailing byte is dropped.
func (n *Narration) Samples() []float32 { return pcm.Normalize(n.pcm) }

// SamplesStrict is Samples, but fails with pcm.ErrOddLength on a dangling
// byte.
func (n *Narration) SamplesStrict() ([]float32, error) { return pcm.NormalizeStrict(n.pcm) }

// Source streams the narration as an audio.Source.
func (n *Narration) Source() (audio.Source, error) {
	return pcm.Decoder{SampleRate: n.sampleRate, Channels: 1}.Decode(bytes.NewReader(n.pcm))
}

// Resample returns the narration at targetRate. The same rate yields a
// copy.
func (n *Narration) Resample(targetRate int) (*Narration, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidRate, targetRate)
	}

	if targetRate == n.sampleRate {
		return NewNarration(n.PCM(), targetRate), nil
	}

	src, err := n.Source()
	if err != nil {
		return nil, err
	}

	samples, rate, err := audio.ResampleToMono16(src, targetRate, 0)
	if err != nil {
		return nil, fmt.Errorf("resampling narration: %w", err)
	}

	return NewNarration(encodePCM16(samples), rate), nil
}

// DecodeResponse decodes a speech response body of any registered content
// type into a narration at sampleRate (<= 0 selects the default). A nil
// reg selects DefaultRegistry. Raw PCM honours a rate parameter such as
// "audio/L16; rate=24000".
func DecodeResponse(reg *audio.Registry, contentType string, body []byte, sampleRate int) (*Narration, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	if sampleRate <= 0 {
		sampleRate = pcm.DefaultSampleRate
	}

	dec, params, err := reg.Lookup(contentType)
	if err != nil {
		return nil, err
	}

	if raw, ok := dec.(pcm.Decoder); ok {
		if rate, err := strconv.Atoi(params["rate"]); err == nil && rate > 0 {
			raw.SampleRate = rate
		}
		dec = raw
	}

	src, err := dec.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", contentType, err)
	}
	defer src.Close()

	samples, err := collectMono16(src, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", contentType, err)
	}

	return NewNarration(encodePCM16(samples), sampleRate), nil
}

// collectMono16 reads src as mono int16 at rate, skipping the resampler
// when src already matches.
func collectMono16(src audio.Source, rate int) ([]int16, error) {
	if src.Channels() != 1 || src.SampleRate() != rate {
		samples, _, err := audio.ResampleToMono16(src, rate, 0)
		return samples, err
	}

	floats, err := audio.ReadAll(src)
	if err != nil {
		return nil, err
	}

	samples := make([]int16, len(floats))
	for i, f := range floats {
		samples[i] = utils.Float32ToInt16(f)
	}

	return samples, nil
}

func encodePCM16(samples []int16) []byte {
	out := make([]byte, len(samples)*pcm.BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}
