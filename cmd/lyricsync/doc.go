// Package main hosts the lyricsync CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration and the lyric sheet, then
// hands playback to the internal packages: the caption scheduler drives the
// terminal display while the playback session owns timing. Inspection
// commands print the normalized schedule and individual timestamps.
//
// Keep this package lean: add behaviour to the internal packages first, then
// surface it here through dedicated commands or flags.
package main
