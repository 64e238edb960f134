// Package logging assembles the slog loggers used by lyricsync.
//
// It owns the console and JSON handlers, level parsing, and output routing to
// stdout/stderr or a log file. Playback writes to a file so log lines never
// tear the caption line drawn on the terminal. Components tag their lines with
// NewComponentLogger; playback sessions add a session id.
package logging
