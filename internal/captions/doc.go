// Package captions decides which lyric line is on screen for a playback
// position and how opaque it is.
//
// A Schedule is built once from normalized entries and never changes. The
// Scheduler owns the presentation target while ticking: every tick it picks
// the first entry, in start order, whose five-second window contains the
// position, runs it through the fade envelope, and writes the result. Text is
// only rewritten when it changes; opacity is written every tick.
package captions
