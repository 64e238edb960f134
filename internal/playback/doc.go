// Package playback drives caption ticks from a playback clock.
//
// A Session owns a fixed-period ticker and the one-shot title timers on a
// single goroutine, so the caption scheduler and both targets are never touched
// concurrently. Cancel the context passed to Run to stop a session.
package playback
