package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	c.Paths.LyricsPath = strings.TrimSpace(c.Paths.LyricsPath)
	if c.Paths.LyricsPath == "" {
		if value, ok := os.LookupEnv("LYRICSYNC_LYRICS"); ok {
			c.Paths.LyricsPath = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Paths.LyricsPath, err = expandPath(c.Paths.LyricsPath); err != nil {
		return fmt.Errorf("paths.lyrics_path: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
