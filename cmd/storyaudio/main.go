// SPDX-License-Identifier: EPL-2.0

// Command storyaudio converts speech-service narration into WAV files,
// describes narration files and plays them.
//
//	storyaudio wav -in narration.b64 -out story.wav
//	storyaudio inspect -in story.wav
//	storyaudio play -in narration.b64
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

var errUsage = errors.New("usage: storyaudio <wav|inspect|play> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "storyaudio:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	env := &environment{stdin: stdin, stdout: stdout, stderr: stderr}

	switch args[0] {
	case "wav":
		return env.wavCmd(args[1:])
	case "inspect":
		return env.inspectCmd(args[1:])
	case "play":
		return env.playCmd(ctx, args[1:])
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, errUsage)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}
