// SPDX-License-Identifier: EPL-2.0

package story

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ik5/storyaudio"
	"github.com/ik5/storyaudio/audio"
	"github.com/ik5/storyaudio/formats/pcm"
	"github.com/rs/zerolog"
)

// Stage names one step of a run.
type Stage string

const (
	StageStory         Stage = "story"
	StageCover         Stage = "cover"
	StageChapterImages Stage = "chapter-images"
	StageNarration     Stage = "narration"
)

// Stages lists the stages run for mode, in order.
func Stages(mode Mode) []Stage {
	stages := []Stage{StageStory, StageCover, StageChapterImages}
	if mode == ModeNarrated {
		stages = append(stages, StageNarration)
	}

	return stages
}

// Result is the outcome of one stage. Err is nil on success.
type Result struct {
	Stage    Stage
	Duration time.Duration
	Err      error
}

type Option func(*Pipeline)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithRegistry sets the decoders used for non-PCM speech responses.
func WithRegistry(reg *audio.Registry) Option {
	return func(p *Pipeline) { p.registry = reg }
}

// WithProgress registers a callback invoked after every stage.
func WithProgress(fn func(Result)) Option {
	return func(p *Pipeline) { p.progress = fn }
}

// Pipeline turns a Prompt into a Book. It is safe for concurrent use as
// long as the Generator is.
type Pipeline struct {
	gen      Generator
	settings Settings
	log      zerolog.Logger
	registry *audio.Registry
	progress func(Result)
}

func NewPipeline(gen Generator, settings Settings, opts ...Option) (*Pipeline, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	p := &Pipeline{
		gen:      gen,
		settings: settings.withDefaults(),
		log:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.registry == nil {
		p.registry = storyaudio.DefaultRegistry()
	}

	return p, nil
}

// Run executes every stage for prompt.Mode. On failure it returns the
// results gathered so far, the last one carrying the error.
func (p *Pipeline) Run(ctx context.Context, prompt Prompt) (*Book, []Result, error) {
	if err := prompt.Validate(); err != nil {
		return nil, nil, err
	}

	book := &Book{ID: uuid.New(), Prompt: prompt}
	log := p.log.With().Str("book", book.ID.String()).Str("mode", prompt.Mode.String()).Logger()

	stages := Stages(prompt.Mode)
	results := make([]Result, 0, len(stages))

	log.Info().Str("child", prompt.ChildName).Int("chapters", prompt.Chapters).Msg("generating book")

	for _, stage := range stages {
		if err := checkCanceled(ctx); err != nil {
			res := p.finish(log, Result{Stage: stage, Err: err})
			results = append(results, res)

			return nil, results, &StageError{Stage: stage, Err: err}
		}

		log.Debug().Str("stage", string(stage)).Msg("stage started")

		start := time.Now()
		err := p.runStage(ctx, log, stage, book)
		res := p.finish(log, Result{Stage: stage, Duration: time.Since(start), Err: err})
		results = append(results, res)

		if err != nil {
			return nil, results, &StageError{Stage: stage, Err: err}
		}
	}

	log.Info().Str("title", book.Title).Msg("book ready")

	return book, results, nil
}

func (p *Pipeline) finish(log zerolog.Logger, res Result) Result {
	if res.Err != nil {
		log.Error().Err(res.Err).Str("stage", string(res.Stage)).Dur("took", res.Duration).Msg("stage failed")
	} else {
		log.Info().Str("stage", string(res.Stage)).Dur("took", res.Duration).Msg("stage finished")
	}

	if p.progress != nil {
		p.progress(res)
	}

	return res
}

func (p *Pipeline) runStage(ctx context.Context, log zerolog.Logger, stage Stage, book *Book) error {
	switch stage {
	case StageStory:
		return p.writeStory(ctx, book)
	case StageCover:
		return p.drawCover(ctx, book)
	case StageChapterImages:
		return p.drawChapters(ctx, log, book)
	case StageNarration:
		return p.narrate(ctx, book)
	default:
		return fmt.Errorf("unknown stage %q", stage)
	}
}

func (p *Pipeline) writeStory(ctx context.Context, book *Book) error {
	draft, err := p.gen.Story(ctx, p.settings, StoryPrompt(book.Prompt), book.Prompt.Chapters)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if strings.TrimSpace(draft.Title) == "" || len(draft.Chapters) == 0 {
		return ErrEmptyStory
	}

	if len(draft.Chapters) != book.Prompt.Chapters {
		return fmt.Errorf("%w: asked for %d, got %d", ErrChapterMissing, book.Prompt.Chapters, len(draft.Chapters))
	}

	book.Title = strings.TrimSpace(draft.Title)
	book.Chapters = draft.Chapters

	return nil
}

func (p *Pipeline) drawCover(ctx context.Context, book *Book) error {
	img, err := p.gen.Image(ctx, p.settings, CoverPrompt(book.Title, book.Prompt))
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	book.Cover = img

	return nil
}

func (p *Pipeline) drawChapters(ctx context.Context, log zerolog.Logger, book *Book) error {
	for i := range book.Chapters {
		if err := checkCanceled(ctx); err != nil {
			return err
		}

		img, err := p.gen.Image(ctx, p.settings, ChapterImagePrompt(book.Chapters[i], book.Prompt))
		if err != nil {
			return fmt.Errorf("chapter %d: %w", i+1, err)
		}

		book.Chapters[i].Image = img
		log.Debug().Int("chapter", i+1).Int("bytes", len(img.Data)).Msg("chapter image ready")
	}

	return nil
}

func (p *Pipeline) narrate(ctx context.Context, book *Book) error {
	speech, err := p.gen.Speech(ctx, p.settings, NarrationText(book))
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if speech.Audio == "" {
		return ErrMissingSpeech
	}

	if speech.ContentType == "" {
		n, err := storyaudio.DecodeNarration(speech.Audio, p.settings.SampleRate)
		if err != nil {
			return err
		}

		book.Narration = n

		return nil
	}

	raw, err := pcm.DecodeBase64(speech.Audio)
	if err != nil {
		return err
	}

	n, err := storyaudio.DecodeResponse(p.registry, speech.ContentType, raw, p.settings.SampleRate)
	if err != nil {
		return err
	}

	book.Narration = n

	return nil
}

func checkCanceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	return nil
}
