// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ik5/storyaudio"
	"github.com/ik5/storyaudio/formats/pcm"
	"github.com/ik5/storyaudio/formats/wav"
	"github.com/ik5/storyaudio/internal/config"
	"github.com/ik5/storyaudio/internal/logging"
	"github.com/ik5/storyaudio/playback"
	"github.com/rs/zerolog"
)

type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// common holds the flags every command shares.
type common struct {
	configPath  string
	in          string
	rate        int
	contentType string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&c.in, "in", "-", "input file, - for stdin")
	fs.IntVar(&c.rate, "rate", 0, "sample rate of raw PCM input (default from config)")
	fs.StringVar(&c.contentType, "content-type", "", "content type of base64 input that is not raw PCM, e.g. audio/mpeg")
}

func (e *environment) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	return fs
}

// setup loads the config and builds the logger.
func (e *environment) setup(c *common) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	log, err := logging.New(e.stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	if c.rate == 0 {
		c.rate = cfg.Audio.SampleRate
	}

	return cfg, log, nil
}

func (e *environment) readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return data, nil
}

// loadNarration decodes base64 narration text. Whitespace and line breaks
// in the text are ignored.
func (e *environment) loadNarration(c *common, data []byte) (*storyaudio.Narration, error) {
	b64 := strings.Join(strings.Fields(string(data)), "")

	if c.contentType == "" {
		return storyaudio.DecodeNarration(b64, c.rate)
	}

	raw, err := pcm.DecodeBase64(b64)
	if err != nil {
		return nil, err
	}

	return storyaudio.DecodeResponse(nil, c.contentType, raw, c.rate)
}

func (e *environment) wavCmd(args []string) error {
	var (
		c          common
		out        string
		legacy     bool
		exportRate int
	)

	fs := e.flagSet("wav")
	c.register(fs)
	fs.StringVar(&out, "out", "-", "output WAV file, - for stdout")
	fs.BoolVar(&legacy, "legacy-chunk", false, "write the 32+N RIFF chunk size of the old exporter")
	fs.IntVar(&exportRate, "export-rate", 0, "resample to this rate before writing (default from config)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, log, err := e.setup(&c)
	if err != nil {
		return err
	}

	data, err := e.readInput(c.in)
	if err != nil {
		return err
	}

	n, err := e.loadNarration(&c, data)
	if err != nil {
		return err
	}

	if cfg.Audio.StrictLength {
		if _, err := n.SamplesStrict(); err != nil {
			return err
		}
	}

	if exportRate == 0 {
		exportRate = cfg.Audio.ExportRate
	}

	if exportRate > 0 && exportRate != n.SampleRate() {
		if n, err = n.Resample(exportRate); err != nil {
			return err
		}
	}

	mode := cfg.Audio.ChunkSizeMode()
	if legacy {
		mode = wav.ChunkSizeLegacy
	}

	wavData := n.WAV(wav.WithChunkSize(mode))

	if out == "-" {
		_, err = e.stdout.Write(wavData)
	} else {
		err = os.WriteFile(out, wavData, 0o644)
	}

	if err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}

	log.Info().
		Str("out", out).
		Int("rate", n.SampleRate()).
		Int("samples", n.Len()).
		Dur("duration", n.Duration()).
		Str("chunk_size", mode.String()).
		Msg("wrote narration")

	return nil
}

func (e *environment) inspectCmd(args []string) error {
	var c common

	fs := e.flagSet("inspect")
	c.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, _, err := e.setup(&c); err != nil {
		return err
	}

	data, err := e.readInput(c.in)
	if err != nil {
		return err
	}

	n, ok, err := e.inspectWAV(data)
	if err != nil {
		return err
	}

	if !ok {
		if n, err = e.loadNarration(&c, data); err != nil {
			return err
		}
	}

	samples := n.Samples()

	var peak float32
	for _, s := range samples {
		peak = max(peak, s, -s)
	}

	fmt.Fprintf(e.stdout, "sample rate: %d Hz\n", n.SampleRate())
	fmt.Fprintf(e.stdout, "samples:     %d\n", len(samples))
	fmt.Fprintf(e.stdout, "duration:    %s\n", n.Duration())
	fmt.Fprintf(e.stdout, "peak:        %.6f\n", peak)

	return nil
}

// inspectWAV prints the container details of a WAV input and folds it to
// mono at its own rate. ok is false when data is not a RIFF/WAVE file.
func (e *environment) inspectWAV(data []byte) (*storyaudio.Narration, bool, error) {
	h, err := wav.ParseHeader(data)

	switch {
	case errors.Is(err, wav.ErrNotWavFile):
		return nil, false, nil
	case err == nil && h.Channels == 1:
		payload, err := wav.Payload(data)
		if err != nil {
			return nil, true, err
		}

		mode := wav.ChunkSizeCanonical
		if h.ChunkSize == uint32(32+len(payload)) {
			mode = wav.ChunkSizeLegacy
		}

		fmt.Fprintf(e.stdout, "container:   wav (%s chunk size %d)\n", mode, h.ChunkSize)
		fmt.Fprintf(e.stdout, "format:      %d ch, %d bit, block align %d, byte rate %d\n",
			h.Channels, h.BitsPerSample, h.BlockAlign, h.ByteRate)

		return storyaudio.NewNarration(payload, int(h.SampleRate)), true, nil
	case err == nil, errors.Is(err, wav.ErrUnsupportedWavChunks), errors.Is(err, wav.ErrUnsupportedWavLayout):
		// extra chunks or more than one channel
	default:
		return nil, true, err
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, true, err
	}

	rate, channels := src.SampleRate(), src.Channels()
	if err := src.Close(); err != nil {
		return nil, true, fmt.Errorf("%w", err)
	}

	fmt.Fprintf(e.stdout, "container:   wav (decoded, folded to mono)\n")
	fmt.Fprintf(e.stdout, "format:      %d ch, 16 bit\n", channels)

	n, err := storyaudio.DecodeResponse(nil, wav.MIMEType, data, rate)
	if err != nil {
		return nil, true, err
	}

	return n, true, nil
}

func (e *environment) playCmd(ctx context.Context, args []string) error {
	var (
		c      common
		volume float64
	)

	fs := e.flagSet("play")
	c.register(fs)
	fs.Float64Var(&volume, "volume", 1, "playback volume between 0 and 1")

	if err := fs.Parse(args); err != nil {
		return err
	}

	_, log, err := e.setup(&c)
	if err != nil {
		return err
	}

	data, err := e.readInput(c.in)
	if err != nil {
		return err
	}

	n, err := e.loadNarration(&c, data)
	if err != nil {
		return err
	}

	player, err := playback.NewPlayer(n.SampleRate())
	if err != nil {
		return err
	}
	defer player.Close()

	player.SetVolume(volume)

	log.Info().Dur("duration", n.Duration()).Msg("playing narration")

	return player.Play(ctx, n.Samples())
}
