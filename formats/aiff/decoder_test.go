// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

type onlyReader struct{ io.Reader }

func TestDecoder_NotAiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    io.Reader
	}{
		{"seekable", bytes.NewReader([]byte("RIFF....WAVEfmt "))},
		{"stream", onlyReader{bytes.NewReader([]byte("plain text"))}},
		{"empty", bytes.NewReader(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(tt.r); !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

// encodeAiff writes 16-bit big-endian PCM through go-audio's encoder, which
// needs a seekable file to patch the chunk sizes.
func encodeAiff(t *testing.T, rate, channels int, samples []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "speech.aiff")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	enc := aiff.NewEncoder(f, rate, 16, channels)
	buf := &goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{SampleRate: rate, NumChannels: channels},
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	return data
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, -16384, 32767, 100, -100}
	want := []float32{0, 0.5, -0.5, 32767.0 / 32768, 100.0 / 32768, -100.0 / 32768}

	tests := []struct {
		name     string
		rate     int
		channels int
		stream   bool
	}{
		{"mono seekable", 24000, 1, false},
		{"mono stream", 24000, 1, true},
		{"stereo seekable", 44100, 2, false},
		{"stereo stream", 44100, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := encodeAiff(t, tt.rate, tt.channels, append([]int(nil), samples...))

			var r io.Reader = bytes.NewReader(data)
			if tt.stream {
				r = onlyReader{r}
			}

			src, err := (Decoder{}).Decode(r)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer src.Close()

			if src.SampleRate() != tt.rate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.rate)
			}

			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}

			var got []float32
			buf := make([]float32, 4)

			for range 10 {
				n, err := src.ReadSamples(buf)
				got = append(got, buf[:n]...)

				if err == io.EOF {
					break
				}

				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != len(want) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(want))
			}

			for i := range want {
				if got[i] != want[i] {
					t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
				}
			}

			if n, err := src.ReadSamples(buf); n != 0 || err != io.EOF {
				t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
			}
		})
	}
}
