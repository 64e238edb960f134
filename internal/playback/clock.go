package playback

import (
	"sync"
	"time"
)

// Clock reports the current playback position in seconds.
type Clock interface {
	Position() float64
}

// endedClock is implemented by clocks that know when the track is over.
type endedClock interface {
	Ended() bool
}

// WallClock stands in for an audio element: it advances with wall time from
// the moment Start is called, beginning at a seek offset.
type WallClock struct {
	mu      sync.Mutex
	now     func() time.Time
	started time.Time
	offset  time.Duration
	length  time.Duration
}

// NewWallClock returns a stopped clock positioned at offset. A zero length
// means the track never ends on its own.
func NewWallClock(offset, length time.Duration) *WallClock {
	return &WallClock{now: time.Now, offset: offset, length: length}
}

// Start begins advancing the clock.
func (c *WallClock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started.IsZero() {
		c.started = c.now()
	}
}

// Seek moves the position to offset.
func (c *WallClock) Seek(offset time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = offset
	if !c.started.IsZero() {
		c.started = c.now()
	}
}

// Position returns the elapsed playback position in seconds.
func (c *WallClock) Position() float64 {
	return c.elapsed().Seconds()
}

// Ended reports whether the position reached the track length.
func (c *WallClock) Ended() bool {
	return c.length > 0 && c.elapsed() >= c.length
}

func (c *WallClock) elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos := c.offset
	if !c.started.IsZero() {
		pos += c.now().Sub(c.started)
	}
	if c.length > 0 && pos > c.length {
		pos = c.length
	}
	return pos
}
