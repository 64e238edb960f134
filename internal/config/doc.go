// Package config loads, normalizes, and validates lyricsync configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the LYRICSYNC_LYRICS environment fallback for the
// lyric sheet. Always obtain settings through Load so callers receive expanded
// paths and clear validation errors naming the offending key.
package config
