// SPDX-License-Identifier: EPL-2.0

package story

import (
	"fmt"
	"strings"
)

// Mode selects what the book is made of.
type Mode int

const (
	ModeIllustrated Mode = iota // text and pictures
	ModeNarrated                // text, pictures and narration
)

func (m Mode) String() string {
	switch m {
	case ModeIllustrated:
		return "illustrated"
	case ModeNarrated:
		return "narrated"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "illustrated" and "narrated" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "illustrated":
		return ModeIllustrated, nil
	case "narrated":
		return ModeNarrated, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

const (
	MinAge      = 2
	MaxAge      = 12
	MaxChapters = 10
)

// Prompt is what the reader asked for.
type Prompt struct {
	ChildName string
	Age       int
	Theme     string
	Language  string
	Chapters  int
	Mode      Mode
}

func (p Prompt) Validate() error {
	switch {
	case strings.TrimSpace(p.ChildName) == "":
		return fmt.Errorf("%w: child name is empty", ErrInvalidPrompt)
	case strings.TrimSpace(p.Theme) == "":
		return fmt.Errorf("%w: theme is empty", ErrInvalidPrompt)
	case p.Age < MinAge || p.Age > MaxAge:
		return fmt.Errorf("%w: age must be between %d and %d, got %d", ErrInvalidPrompt, MinAge, MaxAge, p.Age)
	case p.Chapters < 1 || p.Chapters > MaxChapters:
		return fmt.Errorf("%w: chapters must be between 1 and %d, got %d", ErrInvalidPrompt, MaxChapters, p.Chapters)
	case p.Mode != ModeIllustrated && p.Mode != ModeNarrated:
		return fmt.Errorf("%w: %w: %d", ErrInvalidPrompt, ErrUnknownMode, int(p.Mode))
	}

	return nil
}

func (p Prompt) language() string {
	if l := strings.TrimSpace(p.Language); l != "" {
		return l
	}

	return "English"
}

// StoryPrompt is the instruction sent to the text model.
func StoryPrompt(p Prompt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a gentle children's story in %s for %s, who is %d years old.\n",
		p.language(), p.ChildName, p.Age)
	fmt.Fprintf(&b, "The story is about %s and has exactly %d chapters.\n", p.Theme, p.Chapters)
	b.WriteString("Use simple words, short sentences and a happy ending.\n")
	b.WriteString("Give the book a title and every chapter a title.")

	return b.String()
}

// CoverPrompt describes the cover picture.
func CoverPrompt(title string, p Prompt) string {
	return fmt.Sprintf("A warm, colourful picture-book cover for %q, a story about %s. "+
		"Soft watercolour style, friendly characters, no text.", title, p.Theme)
}

// ChapterImagePrompt describes the picture for one chapter.
func ChapterImagePrompt(ch Chapter, p Prompt) string {
	return fmt.Sprintf("A picture-book illustration for the chapter %q of a story about %s. "+
		"Scene: %s Soft watercolour style, no text.", ch.Title, p.Theme, firstSentence(ch.Text))
}

// NarrationText is the text read aloud for a narrated book.
func NarrationText(b *Book) string {
	var sb strings.Builder

	sb.WriteString(b.Title)
	sb.WriteString(".\n\n")

	for i, ch := range b.Chapters {
		fmt.Fprintf(&sb, "Chapter %d. %s.\n\n%s\n\n", i+1, ch.Title, strings.TrimSpace(ch.Text))
	}

	sb.WriteString("The end.")

	return sb.String()
}

func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		return text[:i+1]
	}

	return text
}
