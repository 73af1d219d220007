// SPDX-License-Identifier: EPL-2.0

// Package logging builds the zerolog logger used by the command line tool.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to w at level ("info" when empty). format
// "console" gives human readable lines, anything else JSON.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	if level == "" {
		level = "info"
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}

	out := w
	if strings.EqualFold(format, "console") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
