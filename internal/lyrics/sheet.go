// Package lyrics loads lyric sheets and turns them into caption schedules.
//
// A sheet is a TOML document with a title and a list of lines, each carrying
// its text and a raw timestamp (seconds as a number, or one of the string forms
// the timestamp package accepts). The built-in sheet is used when no file is
// configured.
package lyrics

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"lyricsync/internal/captions"
	"lyricsync/internal/logging"
	"lyricsync/internal/timestamp"
)

//go:embed default_song.toml
var defaultSong []byte

// ErrNoLines is returned for a sheet without any lines.
var ErrNoLines = errors.New("lyric sheet has no lines")

// Line is one lyric line as written in the sheet.
type Line struct {
	Text string `toml:"text"`
	Time any    `toml:"time"`
}

// Sheet is a decoded lyric sheet.
type Sheet struct {
	Title           string  `toml:"title"`
	Artist          string  `toml:"artist"`
	DurationSeconds float64 `toml:"duration_seconds"`
	Lines           []Line  `toml:"lines"`
}

// Default returns the built-in sheet.
func Default() (*Sheet, error) {
	sheet, err := Decode(bytes.NewReader(defaultSong))
	if err != nil {
		return nil, fmt.Errorf("built-in lyrics: %w", err)
	}
	return sheet, nil
}

// Load reads a sheet from path. A sheet without a title is named after the file.
func Load(path string) (*Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lyrics: %w", err)
	}
	defer file.Close()

	sheet, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("lyrics %s: %w", path, err)
	}
	if sheet.Title == "" {
		sheet.Title = TitleFromPath(path)
	}
	return sheet, nil
}

// Resolve loads path, or the built-in sheet when path is empty.
func Resolve(path string) (*Sheet, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return Load(path)
}

// Decode parses a sheet and normalizes its text to NFC.
func Decode(r io.Reader) (*Sheet, error) {
	var sheet Sheet
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sheet); err != nil {
		return nil, fmt.Errorf("parse lyrics: %w", err)
	}
	if len(sheet.Lines) == 0 {
		return nil, ErrNoLines
	}
	if sheet.DurationSeconds < 0 {
		return nil, errors.New("duration_seconds must be >= 0")
	}
	sheet.Title = cleanText(sheet.Title)
	sheet.Artist = cleanText(sheet.Artist)
	for i := range sheet.Lines {
		sheet.Lines[i].Text = cleanText(sheet.Lines[i].Text)
	}
	return &sheet, nil
}

// Schedule normalizes every line's timestamp and builds the caption schedule.
// Lines whose time is not numeric can never become active and are dropped;
// lines with an unrecognized time shape start at zero. Both are logged.
func (s *Sheet) Schedule(logger *slog.Logger) (*captions.Schedule, error) {
	logger = logging.NewComponentLogger(logger, "lyrics")
	entries := make([]captions.Entry, 0, len(s.Lines))
	for i, line := range s.Lines {
		ms, err := timestamp.FromValue(line.Time)
		switch {
		case errors.Is(err, timestamp.ErrNotNumeric):
			logging.WarnWithContext(logger, "lyric line dropped", "lyric_time_not_numeric",
				logging.Int("line", i),
				logging.Any("time", line.Time),
				logging.String("text", line.Text),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "fix the time value in the lyric sheet"),
				logging.String(logging.FieldImpact, "line is never shown"),
			)
			continue
		case err != nil:
			logging.WarnWithContext(logger, "lyric line starts at zero", "lyric_time_unrecognized",
				logging.Int("line", i),
				logging.Any("time", line.Time),
				logging.String("text", line.Text),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "use M:SS:MMM, M:SS, SS:MMM or seconds"),
				logging.String(logging.FieldImpact, "line is shown at the start of the track"),
			)
		}
		entries = append(entries, captions.Entry{Text: line.Text, StartMs: ms})
	}

	schedule, err := captions.NewSchedule(entries)
	if err != nil {
		return nil, fmt.Errorf("lyrics %q: %w", s.Title, err)
	}
	logger.Debug("caption schedule built",
		logging.Int("lines", schedule.Len()),
		logging.Int("dropped", len(s.Lines)-schedule.Len()),
	)
	return schedule, nil
}

// Length returns how long playback of the sheet lasts: the declared duration,
// extended to cover the last caption window.
func (s *Sheet) Length(schedule *captions.Schedule) time.Duration {
	length := time.Duration(s.DurationSeconds * float64(time.Second))
	if schedule.Len() > 0 {
		if end := time.Duration(schedule.Last().EndMs()) * time.Millisecond; end > length {
			length = end
		}
	}
	return length
}

// TitleFromPath derives a display title from a sheet's file name.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var cleaned strings.Builder
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled"
	}
	return cases.Title(language.Und).String(norm.NFC.String(title))
}

func cleanText(value string) string {
	return strings.TrimSpace(norm.NFC.String(value))
}
