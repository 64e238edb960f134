package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"lyricsync/internal/config"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LYRICSYNC_LYRICS", "")
	os.Unsetenv("LYRICSYNC_LYRICS")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultsExpandPaths(t *testing.T) {
	home := isolateHome(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved != filepath.Join(home, ".config", "lyricsync", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Paths.LogDir != filepath.Join(home, ".local", "share", "lyricsync", "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Paths.LyricsPath != "" {
		t.Fatalf("expected built-in lyrics by default, got %q", cfg.Paths.LyricsPath)
	}
	if cfg.PollInterval() != 50*time.Millisecond {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval())
	}
	if cfg.TitleDelay() != 216*time.Second || cfg.TitleFade() != 3*time.Second {
		t.Fatalf("unexpected title timing %v/%v", cfg.TitleDelay(), cfg.TitleFade())
	}
	if !cfg.Playback.ShowTitle {
		t.Fatal("expected title enabled by default")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.LogDir); err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	home := isolateHome(t)
	configPath := filepath.Join(t.TempDir(), "lyricsync.toml")

	type payload struct {
		Paths struct {
			LyricsPath string `toml:"lyrics_path"`
		} `toml:"paths"`
		Playback struct {
			PollIntervalMillis int     `toml:"poll_interval_ms"`
			StartOffsetSeconds float64 `toml:"start_offset_seconds"`
		} `toml:"playback"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.LyricsPath = "~/songs/milagro.toml"
	custom.Playback.PollIntervalMillis = 20
	custom.Playback.StartOffsetSeconds = 17.5
	custom.Logging.Format = " JSON "
	custom.Logging.Level = "Debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.LyricsPath != filepath.Join(home, "songs", "milagro.toml") {
		t.Fatalf("unexpected lyrics path %q", cfg.Paths.LyricsPath)
	}
	if cfg.PollInterval() != 20*time.Millisecond {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval())
	}
	if cfg.StartOffset() != 17500*time.Millisecond {
		t.Fatalf("unexpected start offset %v", cfg.StartOffset())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %+v", cfg.Logging)
	}
	if cfg.TitleDelay() != 216*time.Second {
		t.Fatalf("expected default title delay to survive partial file, got %v", cfg.TitleDelay())
	}
}

func TestLoadLyricsFromEnv(t *testing.T) {
	home := isolateHome(t)
	t.Setenv("LYRICSYNC_LYRICS", "~/sheet.toml")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.LyricsPath != filepath.Join(home, "sheet.toml") {
		t.Fatalf("expected env lyrics path, got %q", cfg.Paths.LyricsPath)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	isolateHome(t)
	if err := os.WriteFile("lyricsync.toml", []byte("[playback]\npoll_interval_ms = 40\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "lyricsync.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.Playback.PollIntervalMillis != 40 {
		t.Fatalf("unexpected poll interval %d", cfg.Playback.PollIntervalMillis)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolateHome(t)
	tests := map[string]string{
		"zero poll":        "[playback]\npoll_interval_ms = 0\n",
		"slow poll":        "[playback]\npoll_interval_ms = 5000\n",
		"negative delay":   "[playback]\ntitle_delay_seconds = -1\n",
		"negative fade":    "[playback]\ntitle_fade_seconds = -3\n",
		"negative offset":  "[playback]\nstart_offset_seconds = -2\n",
		"bad format":       "[logging]\nformat = \"xml\"\n",
		"bad level":        "[logging]\nlevel = \"loud\"\n",
		"unknown key":      "[playback]\npoll = 10\n",
		"malformed toml":   "[playback\n",
		"wrong value type": "[playback]\npoll_interval_ms = \"fast\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	isolateHome(t)
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestCreateSampleRoundTripsThroughLoad(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Playback.PollIntervalMillis != 50 {
		t.Fatalf("unexpected sample poll interval %d", cfg.Playback.PollIntervalMillis)
	}
}
