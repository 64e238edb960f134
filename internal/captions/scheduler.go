package captions

import (
	"errors"
	"log/slog"

	"lyricsync/internal/logging"
	"lyricsync/internal/timestamp"
)

// ErrNoTarget is returned when a scheduler is built without a presentation target.
var ErrNoTarget = errors.New("caption presentation target is required")

// Target receives the caption text and opacity.
type Target interface {
	SetText(text string)
	SetOpacity(opacity float64)
}

// Frame is the outcome of a single tick.
type Frame struct {
	Index   int
	Text    string
	Opacity float64
	Phase   Phase
}

// Scheduler selects the active caption for the current playback position and
// pushes it to its target. A Scheduler is owned by a single goroutine.
type Scheduler struct {
	schedule *Schedule
	target   Target
	logger   *slog.Logger

	cursor    int
	displayed string
	written   bool
}

// NewScheduler binds a schedule to a presentation target.
func NewScheduler(schedule *Schedule, target Target, logger *slog.Logger) (*Scheduler, error) {
	if schedule.Len() == 0 {
		return nil, ErrEmptySchedule
	}
	if target == nil {
		return nil, ErrNoTarget
	}
	return &Scheduler{
		schedule: schedule,
		target:   target,
		logger:   logging.NewComponentLogger(logger, "captions"),
		cursor:   -1,
	}, nil
}

// Tick evaluates the schedule at currentMs and applies the result to the
// target. It reports false when no caption is active.
func (s *Scheduler) Tick(currentMs float64) (Frame, bool) {
	frame, ok := s.Evaluate(currentMs)
	if !ok {
		if s.cursor != -1 && s.schedule.outside(currentMs) {
			s.logger.Debug("caption schedule left", logging.Float64("position_ms", currentMs))
			s.cursor = -1
		}
		s.apply("", 0)
		return Frame{Index: -1}, false
	}
	if frame.Index != s.cursor {
		s.logger.Debug("caption line active",
			logging.Int("line", frame.Index),
			logging.String("start", timestamp.Format(s.schedule.At(frame.Index).StartMs)),
			logging.String("text", frame.Text),
		)
	}
	s.cursor = frame.Index
	s.apply(frame.Text, frame.Opacity)
	return frame, true
}

// Evaluate computes the frame for currentMs without touching the target.
func (s *Scheduler) Evaluate(currentMs float64) (Frame, bool) {
	idx, ok := s.schedule.Lookup(currentMs, s.cursor)
	if !ok {
		return Frame{Index: -1}, false
	}
	entry := s.schedule.At(idx)
	opacity, phase := Envelope(currentMs - float64(entry.StartMs))
	return Frame{Index: idx, Text: entry.Text, Opacity: opacity, Phase: phase}, true
}

func (s *Scheduler) apply(text string, opacity float64) {
	if !s.written || s.displayed != text {
		s.target.SetText(text)
		s.displayed = text
		s.written = true
	}
	s.target.SetOpacity(opacity)
}
