// SPDX-License-Identifier: EPL-2.0

package story

import (
	"context"
	"fmt"
	"sync"
)

// fakeGenerator records calls and answers with canned data.
type fakeGenerator struct {
	mtx sync.Mutex

	speech    Speech
	storyErr  error
	imageErr  error
	speechErr error
	chapters  int // overrides the chapter count when > 0

	// onImage runs before the n-th image call (1-based) is answered.
	onImage func(n int)

	images   int
	settings []Settings
	prompts  []string
}

func (f *fakeGenerator) record(s Settings, prompt string) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	f.settings = append(f.settings, s)
	f.prompts = append(f.prompts, prompt)
}

func (f *fakeGenerator) Story(_ context.Context, s Settings, prompt string, chapters int) (Draft, error) {
	f.record(s, prompt)

	if f.storyErr != nil {
		return Draft{}, f.storyErr
	}

	if f.chapters > 0 {
		chapters = f.chapters
	}

	d := Draft{Title: "Mia and the Moon"}
	for i := range chapters {
		d.Chapters = append(d.Chapters, Chapter{
			Title: fmt.Sprintf("Part %d", i+1),
			Text:  fmt.Sprintf("Mia looks up at the sky. Night %d is quiet.", i+1),
		})
	}

	return d, nil
}

func (f *fakeGenerator) Image(_ context.Context, s Settings, prompt string) (Image, error) {
	f.record(s, prompt)

	f.mtx.Lock()
	f.images++
	n := f.images
	f.mtx.Unlock()

	if f.onImage != nil {
		f.onImage(n)
	}

	if f.imageErr != nil {
		return Image{}, f.imageErr
	}

	return Image{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G', byte(n)}}, nil
}

func (f *fakeGenerator) Speech(_ context.Context, s Settings, text string) (Speech, error) {
	f.record(s, text)

	if f.speechErr != nil {
		return Speech{}, f.speechErr
	}

	return f.speech, nil
}
