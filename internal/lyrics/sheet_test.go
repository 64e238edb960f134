package lyrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lyricsync/internal/captions"
	"lyricsync/internal/logging"
	"lyricsync/internal/lyrics"
)

func TestDefaultSheetBuildsSortedSchedule(t *testing.T) {
	sheet, err := lyrics.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if sheet.Title != "Milagro" {
		t.Fatalf("unexpected title %q", sheet.Title)
	}
	if len(sheet.Lines) != 26 {
		t.Fatalf("expected 26 lines, got %d", len(sheet.Lines))
	}

	schedule, err := sheet.Schedule(logging.NewNop())
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if schedule.Len() != 26 {
		t.Fatalf("expected every line scheduled, got %d", schedule.Len())
	}
	entries := schedule.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i].StartMs < entries[i-1].StartMs {
			t.Fatalf("schedule not sorted at %d", i)
		}
	}
	if entries[0].StartMs != 18010 || entries[0].Text != "♫ Imagina cuántas veces ♫" {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if entries[len(entries)-1].StartMs != 112000 {
		t.Fatalf("unexpected last entry %+v", entries[len(entries)-1])
	}
	if got := sheet.Length(schedule); got != 220*time.Second {
		t.Fatalf("expected declared duration to win, got %v", got)
	}
}

func TestDecodeMixedTimestampForms(t *testing.T) {
	body := `
title = "mixed"

[[lines]]
text = "numeric"
time = 17.5

[[lines]]
text = "integer"
time = 3

[[lines]]
text = "seconds millis"
time = "17:012"

[[lines]]
text = "minutes seconds"
time = "0:17"
`
	sheet, err := lyrics.Decode(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	schedule, err := sheet.Schedule(nil)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	want := []captions.Entry{
		{Text: "integer", StartMs: 3000},
		{Text: "minutes seconds", StartMs: 17000},
		{Text: "seconds millis", StartMs: 17012},
		{Text: "numeric", StartMs: 17500},
	}
	got := schedule.Entries()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if sheet.Length(schedule) != 22500*time.Millisecond {
		t.Fatalf("expected length to cover last window, got %v", sheet.Length(schedule))
	}
}

func TestScheduleHandlesMalformedTimes(t *testing.T) {
	body := `
[[lines]]
text = "never"
time = "soon"

[[lines]]
text = "zero"
time = "1:2:3:4"

[[lines]]
text = "missing"

[[lines]]
text = "ok"
time = "0:05"
`
	logPath := filepath.Join(t.TempDir(), "lyrics.log")
	logger, err := logging.New(logging.Options{OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	sheet, err := lyrics.Decode(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	schedule, err := sheet.Schedule(logger)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	got := schedule.Entries()
	if len(got) != 3 {
		t.Fatalf("expected non-numeric line dropped, got %+v", got)
	}
	if got[0] != (captions.Entry{Text: "zero", StartMs: 0}) || got[1] != (captions.Entry{Text: "missing", StartMs: 0}) {
		t.Fatalf("expected unrecognized times at zero in source order, got %+v", got)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"event_type=lyric_time_not_numeric", "event_type=lyric_time_unrecognized"} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("expected %q in log, got %q", want, content)
		}
	}
}

func TestScheduleAllLinesDropped(t *testing.T) {
	sheet, err := lyrics.Decode(strings.NewReader("[[lines]]\ntext = \"x\"\ntime = \"nope\"\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, err := sheet.Schedule(nil); !errors.Is(err, captions.ErrEmptySchedule) {
		t.Fatalf("expected ErrEmptySchedule, got %v", err)
	}
}

func TestDecodeRejectsBadSheets(t *testing.T) {
	if _, err := lyrics.Decode(strings.NewReader("title = \"empty\"\n")); !errors.Is(err, lyrics.ErrNoLines) {
		t.Fatalf("expected ErrNoLines, got %v", err)
	}
	if _, err := lyrics.Decode(strings.NewReader("colour = \"red\"\n[[lines]]\ntext = \"a\"\ntime = 1\n")); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
	if _, err := lyrics.Decode(strings.NewReader("duration_seconds = -1\n[[lines]]\ntext = \"a\"\ntime = 1\n")); err == nil {
		t.Fatal("expected negative duration to be rejected")
	}
}

func TestDecodeNormalizesText(t *testing.T) {
	decomposed := "cua\u0301ntas"
	sheet, err := lyrics.Decode(strings.NewReader("[[lines]]\ntext = \"  " + decomposed + "  \"\ntime = 1\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sheet.Lines[0].Text != "cu\u00e1ntas" {
		t.Fatalf("expected NFC trimmed text, got %q", sheet.Lines[0].Text)
	}
}

func TestLoadDerivesTitleFromFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "que_significa-el.amor.toml")
	if err := os.WriteFile(path, []byte("[[lines]]\ntext = \"a\"\ntime = \"0:01\"\n"), 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	sheet, err := lyrics.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sheet.Title != "Que Significa El Amor" {
		t.Fatalf("unexpected derived title %q", sheet.Title)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	sheet, err := lyrics.Resolve("  ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sheet.Title != "Milagro" {
		t.Fatalf("expected built-in sheet, got %q", sheet.Title)
	}
	if _, err := lyrics.Resolve(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestTitleFromPath(t *testing.T) {
	cases := map[string]string{
		"/songs/milagro.toml":  "Milagro",
		"tú_eres.toml":         "Tú Eres",
		"///":                  "Untitled",
		"--.toml":              "Untitled",
		"track 01 - intro.txt": "Track 01 Intro",
	}
	for in, want := range cases {
		if got := lyrics.TitleFromPath(in); got != want {
			t.Fatalf("TitleFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}
