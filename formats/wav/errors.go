// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
	// ErrShortPayload means the data chunk claims more bytes than the file has.
	ErrShortPayload = errors.New("WAV data chunk is truncated")
	// ErrUnknownChunkSizeMode is returned by ParseChunkSizeMode.
	ErrUnknownChunkSizeMode = errors.New("unknown RIFF chunk size mode")
)
