// SPDX-License-Identifier: EPL-2.0

// Package story drives the generation of a children's storybook: the text,
// a cover, one picture per chapter and, for narrated books, the spoken
// narration.
//
// The generative service sits behind the Generator interface. Every call
// receives the Settings it should use; nothing is read from the
// environment or kept in package state.
//
// Pipeline.Run executes the stages in a fixed order and stops at the first
// failure. Cancelling the context aborts the run before the next stage (or
// the next chapter picture) starts:
//
//	p, err := story.NewPipeline(gen, settings, story.WithLogger(log))
//	book, results, err := p.Run(ctx, prompt)
//
// Each stage reports a Result; a failed run returns a *StageError naming
// the stage that broke.
package story
