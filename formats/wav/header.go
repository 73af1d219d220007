// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// HeaderSize of a canonical PCM WAV file: RIFF (12) + fmt (24) + data (8).
const HeaderSize = 44

const (
	formatPCM     = 1
	channelsMono  = 1
	bitsPerSample = 16
	blockAlign    = channelsMono * bitsPerSample / 8
)

// ChunkSizeMode selects the value written to the RIFF chunk size field.
type ChunkSizeMode int

const (
	// ChunkSizeCanonical writes 36 + N, the size of everything after the
	// field for a 16-byte fmt chunk.
	ChunkSizeCanonical ChunkSizeMode = iota
	// ChunkSizeLegacy writes 32 + N, matching files produced by the
	// original browser tool byte for byte. Lenient players accept it.
	ChunkSizeLegacy
)

func (m ChunkSizeMode) riffSize(dataSize uint32) uint32 {
	if m == ChunkSizeLegacy {
		return 32 + dataSize
	}

	return 36 + dataSize
}

func (m ChunkSizeMode) String() string {
	switch m {
	case ChunkSizeCanonical:
		return "canonical"
	case ChunkSizeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("ChunkSizeMode(%d)", int(m))
	}
}

// ParseChunkSizeMode accepts "canonical" or "legacy"; empty means canonical.
func ParseChunkSizeMode(s string) (ChunkSizeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "canonical":
		return ChunkSizeCanonical, nil
	case "legacy":
		return ChunkSizeLegacy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownChunkSizeMode, s)
	}
}

// Header holds the fields of a canonical 44-byte PCM WAV header.
type Header struct {
	ChunkSize     uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// putHeader writes a mono 16-bit PCM header for dataSize payload bytes into
// dst[:HeaderSize].
func putHeader(dst []byte, sampleRate int, dataSize uint32, mode ChunkSizeMode) {
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], mode.riffSize(dataSize))
	copy(dst[8:12], "WAVE")

	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16)
	binary.LittleEndian.PutUint16(dst[20:22], formatPCM)
	binary.LittleEndian.PutUint16(dst[22:24], channelsMono)
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(sampleRate)*blockAlign)
	binary.LittleEndian.PutUint16(dst[32:34], blockAlign)
	binary.LittleEndian.PutUint16(dst[34:36], bitsPerSample)

	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// ParseHeader reads a canonical 44-byte header. The RIFF chunk size is
// returned as found; both 36+N and 32+N files parse.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrNotWavFile, len(data))
	}

	if !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.Equal(data[12:16], []byte("fmt ")) || binary.LittleEndian.Uint32(data[16:20]) != 16 {
		return Header{}, ErrUnsupportedWavLayout
	}

	h := Header{
		ChunkSize:     binary.LittleEndian.Uint32(data[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(data[20:22]),
		Channels:      binary.LittleEndian.Uint16(data[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(data[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(data[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(data[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(data[34:36]),
		DataSize:      binary.LittleEndian.Uint32(data[40:44]),
	}

	if h.AudioFormat != formatPCM || h.BitsPerSample != bitsPerSample {
		return Header{}, ErrOnlyPCM16bitSupported
	}

	if !bytes.Equal(data[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return h, nil
}

// Payload returns the PCM bytes of a canonical WAV file. The result aliases
// data.
func Payload(data []byte) ([]byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	end := uint64(HeaderSize) + uint64(h.DataSize)
	if end > uint64(len(data)) {
		return nil, fmt.Errorf("%w: header says %d bytes, file has %d", ErrShortPayload, h.DataSize, len(data)-HeaderSize)
	}

	return data[HeaderSize:end], nil
}
