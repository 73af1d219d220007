// SPDX-License-Identifier: EPL-2.0

package story

import (
	"fmt"
	"strings"

	"github.com/ik5/storyaudio/formats/pcm"
)

// Safety is the content filter level requested from the service.
type Safety string

const (
	SafetyStrict   Safety = "strict"
	SafetyStandard Safety = "standard"
	SafetyRelaxed  Safety = "relaxed"
)

// ParseSafety accepts the level names case-insensitively. An empty string
// selects SafetyStrict.
func ParseSafety(s string) (Safety, error) {
	switch v := Safety(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return SafetyStrict, nil
	case SafetyStrict, SafetyStandard, SafetyRelaxed:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSafety, s)
	}
}

// Settings travel with every Generator call.
type Settings struct {
	APIKey     string
	Model      string
	Safety     Safety
	SampleRate int // rate of raw PCM speech responses
}

func (s Settings) Validate() error {
	if strings.TrimSpace(s.APIKey) == "" {
		return ErrMissingAPIKey
	}

	if _, err := ParseSafety(string(s.Safety)); err != nil {
		return err
	}

	if s.SampleRate < 0 {
		return fmt.Errorf("sample rate must not be negative, got %d", s.SampleRate)
	}

	return nil
}

func (s Settings) withDefaults() Settings {
	if s.Safety == "" {
		s.Safety = SafetyStrict
	}

	if s.SampleRate == 0 {
		s.SampleRate = pcm.DefaultSampleRate
	}

	return s
}
