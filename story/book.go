// SPDX-License-Identifier: EPL-2.0

package story

import (
	"github.com/google/uuid"
	"github.com/ik5/storyaudio"
)

// Image is a generated picture as returned by the service.
type Image struct {
	MIMEType string
	Data     []byte
}

func (i Image) Empty() bool { return len(i.Data) == 0 }

type Chapter struct {
	Title string
	Text  string
	Image Image
}

// Draft is the text model's answer.
type Draft struct {
	Title    string
	Chapters []Chapter
}

// Speech is the speech model's answer: base64 audio and its content type.
// An empty ContentType means raw 16-bit PCM at Settings.SampleRate.
type Speech struct {
	ContentType string
	Audio       string
}

type Book struct {
	ID        uuid.UUID
	Prompt    Prompt
	Title     string
	Chapters  []Chapter
	Cover     Image
	Narration *storyaudio.Narration // nil unless ModeNarrated
}
