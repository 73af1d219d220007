// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"mime"
	"strings"
	"sync"
)

// Source is a stream of interleaved float32 samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst and returns the number of float32 values written
	// (not frames). n == 0 with io.EOF means the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is a hint for the read buffer size, in samples.
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps media types ("audio/wav", "audio/mpeg", "audio/l16") to
// decoders. It is safe for concurrent use.
type Registry struct {
	codecs map[string]Decoder

	mtx sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

// Register adds d under each of the given media types, replacing any
// decoder previously registered for them.
func (r *Registry) Register(d Decoder, mediaTypes ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, mt := range mediaTypes {
		r.codecs[normalizeMediaType(mt)] = d
	}
}

// Get returns the decoder for an exact media type.
func (r *Registry) Get(mediaType string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeMediaType(mediaType)]
	return d, ok
}

// Lookup resolves a Content-Type header value, parameters included
// (e.g. "audio/L16; rate=24000"), to a decoder and its parameters.
func (r *Registry) Lookup(contentType string) (Decoder, map[string]string, error) {
	mt, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q: %w", ErrUnknownFormat, contentType, err)
	}

	d, ok := r.Get(mt)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFormat, mt)
	}

	return d, params, nil
}

// MediaTypes lists the registered media types in no particular order.
func (r *Registry) MediaTypes() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]string, 0, len(r.codecs))
	for mt := range r.codecs {
		out = append(out, mt)
	}

	return out
}

func normalizeMediaType(mt string) string {
	return strings.ToLower(strings.TrimSpace(mt))
}
