// SPDX-License-Identifier: EPL-2.0

package storyaudio

import (
	"github.com/ik5/storyaudio/audio"
	"github.com/ik5/storyaudio/formats/aiff"
	"github.com/ik5/storyaudio/formats/mp3"
	"github.com/ik5/storyaudio/formats/pcm"
	"github.com/ik5/storyaudio/formats/vorbis"
	"github.com/ik5/storyaudio/formats/wav"
)

// DefaultRegistry returns a registry holding every decoder in this module,
// keyed by the content types speech services use for them.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register(pcm.Decoder{}, "audio/l16", "audio/pcm")
	reg.Register(wav.Decoder{}, wav.MIMEType, "audio/x-wav", "audio/wave")
	reg.Register(mp3.Decoder{}, "audio/mpeg", "audio/mp3")
	reg.Register(vorbis.Decoder{}, "audio/ogg", "audio/vorbis")
	reg.Register(aiff.Decoder{}, "audio/aiff", "audio/x-aiff")

	return reg
}
