package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	lyricsPath string
	logDir     string
}

const testSheet = `title = "Test Song"
duration_seconds = 0

[[lines]]
text = "one"
time = "0:02"

[[lines]]
text = "two"
time = "0:01"

[[lines]]
text = "bad"
time = "x"
`

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("LYRICSYNC_LYRICS", "")
	os.Unsetenv("LYRICSYNC_LYRICS")
	t.Chdir(base)

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		lyricsPath: filepath.Join(base, "test-song.toml"),
		logDir:     filepath.Join(base, "logs"),
	}
	if err := os.WriteFile(env.lyricsPath, []byte(testSheet), 0o644); err != nil {
		t.Fatalf("write lyrics: %v", err)
	}
	writeTestConfig(t, env.configPath, env.lyricsPath, env.logDir)
	return env
}

func writeTestConfig(t *testing.T, path, lyricsPath, logDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nlyrics_path = %q\nlog_dir = %q\n\n[playback]\npoll_interval_ms = 10\n",
		lyricsPath,
		logDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
