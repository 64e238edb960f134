package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePlayback(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePlayback() error {
	if c.Playback.PollIntervalMillis <= 0 {
		return errors.New("playback.poll_interval_ms must be positive")
	}
	if c.Playback.PollIntervalMillis > maxPollIntervalMillis {
		return fmt.Errorf("playback.poll_interval_ms must be at most %d", maxPollIntervalMillis)
	}
	if c.Playback.TitleDelaySeconds < 0 {
		return errors.New("playback.title_delay_seconds must be >= 0")
	}
	if c.Playback.TitleFadeSeconds < 0 {
		return errors.New("playback.title_fade_seconds must be >= 0")
	}
	if c.Playback.StartOffsetSeconds < 0 {
		return errors.New("playback.start_offset_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
