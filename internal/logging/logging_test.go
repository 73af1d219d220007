// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	log, err := New(buf, "warn", "json")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info().Msg("hidden")
	log.Warn().Str("stage", "cover").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %s", out)
	}

	if !strings.Contains(out, `"stage":"cover"`) || !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("output = %s", out)
	}
}

func TestNew_Console(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	log, err := New(buf, "", "console")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info().Str("file", "story.wav").Msg("wrote narration")

	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("console output looks like JSON: %s", out)
	}

	if !strings.Contains(out, "wrote narration") || !strings.Contains(out, "story.wav") {
		t.Errorf("output = %s", out)
	}
}

func TestNew_BadLevel(t *testing.T) {
	t.Parallel()

	if _, err := New(new(bytes.Buffer), "shouty", "json"); err == nil {
		t.Error("New() error = nil, want error")
	}
}
