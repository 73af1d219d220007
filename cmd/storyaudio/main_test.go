// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/storyaudio/formats/pcm"
	"github.com/ik5/storyaudio/formats/wav"
	"github.com/ik5/storyaudio/internal/audiotest"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	err := run(context.Background(), args, strings.NewReader(stdin), stdout, stderr)

	return stdout.String(), stderr.String(), err
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	if _, _, err := runCLI(t, ""); !errors.Is(err, errUsage) {
		t.Errorf("no args: error = %v, want errUsage", err)
	}

	if _, _, err := runCLI(t, "", "mp4"); !errors.Is(err, errUsage) {
		t.Errorf("unknown command: error = %v, want errUsage", err)
	}

	if out, _, err := runCLI(t, "", "help"); err != nil || !strings.Contains(out, "usage") {
		t.Errorf("help = (%q, %v)", out, err)
	}
}

func TestWavCmd_Stdout(t *testing.T) {
	t.Parallel()

	b64 := audiotest.Base64PCM(0, 16384, -16384, 32767)
	// wrapped the way base64 files usually are
	in := b64[:6] + "\n" + b64[6:] + "\n"

	out, _, err := runCLI(t, in, "wav")
	if err != nil {
		t.Fatalf("wav: error = %v", err)
	}

	want := wav.Encode(audiotest.PCM16LE(0, 16384, -16384, 32767), 24000)
	if out != string(want) {
		t.Errorf("wav output differs from Encode (%d bytes, want %d)", len(out), len(want))
	}
}

func TestWavCmd_FileLegacyAndExportRate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "narration.b64")
	out := filepath.Join(dir, "story.wav")

	if err := os.WriteFile(in, []byte(audiotest.Base64PCM(make([]int16, 2400)...)), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, "", "wav", "-in", in, "-out", out, "-legacy-chunk", "-export-rate", "8000"); err != nil {
		t.Fatalf("wav: error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	h, err := wav.ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if h.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", h.SampleRate)
	}

	if h.ChunkSize != 32+h.DataSize {
		t.Errorf("ChunkSize = %d, want legacy %d", h.ChunkSize, 32+h.DataSize)
	}
}

func TestWavCmd_ContentType(t *testing.T) {
	t.Parallel()

	raw := audiotest.PCM16LE(1, 2, 3, 4)
	in := base64.StdEncoding.EncodeToString(wav.Encode(raw, 24000))

	out, _, err := runCLI(t, in, "wav", "-content-type", "audio/wav")
	if err != nil {
		t.Fatalf("wav: error = %v", err)
	}

	payload, err := wav.Payload([]byte(out))
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}

	if !bytes.Equal(payload, raw) {
		t.Errorf("payload = %v, want %v", payload, raw)
	}
}

func TestWavCmd_Errors(t *testing.T) {
	t.Parallel()

	if _, _, err := runCLI(t, "!!!", "wav"); !errors.Is(err, pcm.ErrInvalidBase64) {
		t.Errorf("bad input: error = %v, want ErrInvalidBase64", err)
	}

	if _, _, err := runCLI(t, "", "wav", "-nope"); err == nil {
		t.Error("bad flag: error = nil")
	}

	if _, _, err := runCLI(t, "", "wav", "-in", filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing input: error = %v, want ErrNotExist", err)
	}
}

func TestWavCmd_StrictConfig(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfg, []byte("audio:\n  strict_length: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	odd := base64.StdEncoding.EncodeToString([]byte{0x00, 0x40, 0x01})

	if _, _, err := runCLI(t, odd, "wav", "-config", cfg); !errors.Is(err, pcm.ErrOddLength) {
		t.Errorf("error = %v, want ErrOddLength", err)
	}

	if _, _, err := runCLI(t, odd, "wav"); err != nil {
		t.Errorf("lenient run: error = %v", err)
	}
}

func TestInspectCmd(t *testing.T) {
	t.Parallel()

	b64 := audiotest.Base64PCM(0, 16384, -32768, 100)

	out, _, err := runCLI(t, b64, "inspect")
	if err != nil {
		t.Fatalf("inspect: error = %v", err)
	}

	for _, want := range []string{"sample rate: 24000 Hz", "samples:     4", "peak:        1.000000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "container") {
		t.Errorf("base64 input reported as a container:\n%s", out)
	}
}

func TestInspectCmd_WAV(t *testing.T) {
	t.Parallel()

	data := wav.Encode(audiotest.PCM16LE(make([]int16, 8000)...), 16000, wav.WithChunkSize(wav.ChunkSizeLegacy))

	out, _, err := runCLI(t, string(data), "inspect")
	if err != nil {
		t.Fatalf("inspect: error = %v", err)
	}

	wantChunk := binary.LittleEndian.Uint32(data[4:8])

	for _, want := range []string{
		"legacy chunk size",
		"1 ch, 16 bit, block align 2, byte rate 32000",
		"sample rate: 16000 Hz",
		"duration:    500ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if wantChunk != 32+16000 {
		t.Fatalf("fixture chunk size = %d", wantChunk)
	}
}

// riffWAV lays out a 16-bit PCM WAV, with extra chunks between fmt and
// data when given.
func riffWAV(rate, channels int, samples []int16, extra ...[]byte) []byte {
	fmtChunk := make([]byte, 24)
	copy(fmtChunk, "fmt ")
	binary.LittleEndian.PutUint32(fmtChunk[4:], 16)
	binary.LittleEndian.PutUint16(fmtChunk[8:], 1)
	binary.LittleEndian.PutUint16(fmtChunk[10:], uint16(channels))
	binary.LittleEndian.PutUint32(fmtChunk[12:], uint32(rate))
	binary.LittleEndian.PutUint32(fmtChunk[16:], uint32(rate*channels*2))
	binary.LittleEndian.PutUint16(fmtChunk[20:], uint16(channels*2))
	binary.LittleEndian.PutUint16(fmtChunk[22:], 16)

	body := append([]byte("WAVE"), fmtChunk...)
	for _, chunk := range extra {
		body = append(body, chunk...)
	}

	payload := audiotest.PCM16LE(samples...)
	body = append(body, "data"...)
	body = binary.LittleEndian.AppendUint32(body, uint32(len(payload)))
	body = append(body, payload...)

	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))

	return append(out, body...)
}

func TestInspectCmd_DecodedWAV(t *testing.T) {
	t.Parallel()

	factChunk := []byte{'f', 'a', 'c', 't', 4, 0, 0, 0, 0xa0, 0x0f, 0, 0}

	stereo := make([]int16, 8000)
	for i := range stereo {
		stereo[i] = 8192
	}

	mono := make([]int16, 4000)
	for i := range mono {
		mono[i] = -8192
	}

	tests := []struct {
		name string
		data []byte
		want []string
	}{
		{
			name: "stereo",
			data: riffWAV(8000, 2, stereo),
			want: []string{"2 ch, 16 bit", "samples:     4000", "duration:    500ms", "peak:        0.250000"},
		},
		{
			name: "fact chunk before data",
			data: riffWAV(8000, 1, mono, factChunk),
			want: []string{"1 ch, 16 bit", "samples:     4000", "duration:    500ms", "peak:        0.250000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := runCLI(t, string(tt.data), "inspect")
			if err != nil {
				t.Fatalf("inspect: error = %v", err)
			}

			want := append([]string{"container:   wav (decoded", "sample rate: 8000 Hz"}, tt.want...)
			for _, w := range want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestInspectCmd_WAV8Bit(t *testing.T) {
	t.Parallel()

	data := wav.Encode(audiotest.PCM16LE(1, 2, 3, 4), 8000)
	binary.LittleEndian.PutUint16(data[34:36], 8)

	if _, _, err := runCLI(t, string(data), "inspect"); !errors.Is(err, wav.ErrOnlyPCM16bitSupported) {
		t.Errorf("inspect: error = %v, want ErrOnlyPCM16bitSupported", err)
	}
}
