// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/storyaudio/audio"
	"github.com/ik5/storyaudio/formats/pcm"
)

// go-mp3 output layout.
const channels = 2

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	return newSource(dec)
}

// newSource reads the decoder's s16le output through the raw PCM source.
func newSource(dec mp3Reader) (audio.Source, error) {
	return pcm.Decoder{SampleRate: dec.SampleRate(), Channels: channels}.Decode(dec)
}
