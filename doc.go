// SPDX-License-Identifier: EPL-2.0

// Package storyaudio turns the narration returned by a speech service into
// something a storybook can use.
//
// The service answers with base64 text holding 16-bit little-endian mono
// PCM at 24 kHz. DecodeNarration decodes it once; the result feeds both
// outputs:
//
//	n, err := storyaudio.DecodeNarration(resp.Audio, 24000)
//	if err != nil {
//	    return err
//	}
//
//	os.WriteFile("story.wav", n.WAV(), 0o644) // download
//	player.Play(ctx, n.Samples())             // listen
//
// Services that answer with a container format instead (mp3, ogg, aiff,
// wav) go through DecodeResponse, which picks a decoder by content type
// from DefaultRegistry and folds the audio to mono at the requested rate.
//
// The building blocks live in subpackages: formats/pcm for base64 and
// sample normalization, formats/wav for the WAV container, audio for
// resampling and channel mixing.
package storyaudio
