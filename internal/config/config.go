// SPDX-License-Identifier: EPL-2.0

// Package config loads the storyaudio configuration from a YAML file and
// STORYAUDIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ik5/storyaudio/formats/pcm"
	"github.com/ik5/storyaudio/formats/wav"
	"github.com/ik5/storyaudio/story"
	"gopkg.in/yaml.v3"
)

const envPrefix = "STORYAUDIO_"

type Config struct {
	Audio     AudioConfig     `yaml:"audio"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type AudioConfig struct {
	SampleRate   int    `yaml:"sample_rate"`   // rate of the speech service output
	ChunkSize    string `yaml:"chunk_size"`    // canonical or legacy
	StrictLength bool   `yaml:"strict_length"` // reject odd-length PCM
	ExportRate   int    `yaml:"export_rate"`   // 0 keeps SampleRate
}

type GeneratorConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
	Safety string `yaml:"safety"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate: pcm.DefaultSampleRate,
			ChunkSize:  wav.ChunkSizeCanonical.String(),
		},
		Generator: GeneratorConfig{
			Safety: string(story.SafetyStrict),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path on top of Default, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Audio.SampleRate = getEnvInt("AUDIO_SAMPLE_RATE", c.Audio.SampleRate)
	c.Audio.ChunkSize = getEnv("AUDIO_CHUNK_SIZE", c.Audio.ChunkSize)
	c.Audio.ExportRate = getEnvInt("AUDIO_EXPORT_RATE", c.Audio.ExportRate)

	if v := getEnv("AUDIO_STRICT_LENGTH", ""); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sAUDIO_STRICT_LENGTH: %w", envPrefix, err)
		}
		c.Audio.StrictLength = strict
	}

	c.Generator.APIKey = getEnv("API_KEY", c.Generator.APIKey)
	c.Generator.Model = getEnv("MODEL", c.Generator.Model)
	c.Generator.Safety = getEnv("SAFETY", c.Generator.Safety)

	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)

	return nil
}

func (c *Config) Validate() error {
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("audio config: %w", err)
	}

	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

func (a *AudioConfig) Validate() error {
	if a.SampleRate < 1000 || a.SampleRate > 192000 {
		return fmt.Errorf("sample_rate must be between 1000 and 192000 Hz, got %d", a.SampleRate)
	}

	if a.ExportRate != 0 && (a.ExportRate < 1000 || a.ExportRate > 192000) {
		return fmt.Errorf("export_rate must be 0 or between 1000 and 192000 Hz, got %d", a.ExportRate)
	}

	if _, err := wav.ParseChunkSizeMode(a.ChunkSize); err != nil {
		return fmt.Errorf("chunk_size: %w", err)
	}

	return nil
}

// ChunkSizeMode is the parsed chunk_size. Call after Validate.
func (a *AudioConfig) ChunkSizeMode() wav.ChunkSizeMode {
	mode, _ := wav.ParseChunkSizeMode(a.ChunkSize)
	return mode
}

// Validate leaves an empty api_key alone; only commands that reach the
// service need one.
func (g *GeneratorConfig) Validate() error {
	if _, err := story.ParseSafety(g.Safety); err != nil {
		return fmt.Errorf("safety: %w", err)
	}

	return nil
}

// Settings converts the generator section into the settings passed to
// story.Pipeline.Run. The CLI only handles audio; a program that links a
// story.Generator client loads the same file and calls this.
func (c *Config) Settings() story.Settings {
	safety, _ := story.ParseSafety(c.Generator.Safety)

	return story.Settings{
		APIKey:     c.Generator.APIKey,
		Model:      c.Generator.Model,
		Safety:     safety,
		SampleRate: c.Audio.SampleRate,
	}
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("level must be one of trace, debug, info, warn, error, disabled, got %q", l.Level)
	}

	switch strings.ToLower(l.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("format must be console or json, got %q", l.Format)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}

	return defaultValue
}
