// SPDX-License-Identifier: EPL-2.0

package story

import (
	"errors"
	"fmt"
)

var (
	ErrCanceled       = errors.New("story generation canceled")
	ErrMissingAPIKey  = errors.New("missing api key")
	ErrInvalidSafety  = errors.New("invalid safety level")
	ErrInvalidPrompt  = errors.New("invalid story prompt")
	ErrEmptyStory     = errors.New("generator returned an empty story")
	ErrNilGenerator   = errors.New("nil generator")
	ErrMissingSpeech  = errors.New("generator returned no speech")
	ErrUnknownMode    = errors.New("unknown book mode")
	ErrChapterMissing = errors.New("chapter count mismatch")
)

// StageError reports the stage a run stopped at.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
