package playback

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lyricsync/internal/captions"
	"lyricsync/internal/logging"
)

// DefaultPollInterval is the caption tick period when none is configured.
const DefaultPollInterval = 50 * time.Millisecond

// CaptionTicker is the caption entry point driven on every poll.
type CaptionTicker interface {
	Tick(currentMs float64) (captions.Frame, bool)
}

// TitleTarget is the title element faded out once per session.
type TitleTarget interface {
	FadeOut(d time.Duration)
	Hide()
}

// Options configures a Session.
type Options struct {
	PollInterval time.Duration
	// TitleDelay is wall time from Run until the title starts fading.
	TitleDelay time.Duration
	TitleFade  time.Duration
	SessionID  string
}

// Session polls the clock on a fixed period, ticks the captions, and runs the
// one-shot title fade. Everything happens on the goroutine calling Run.
type Session struct {
	clock    Clock
	captions CaptionTicker
	title    TitleTarget
	opts     Options
	logger   *slog.Logger
}

// NewSession wires a session. title may be nil, which disables the title timer.
func NewSession(clock Clock, ticker CaptionTicker, title TitleTarget, opts Options, logger *slog.Logger) (*Session, error) {
	if clock == nil {
		return nil, errors.New("playback clock is required")
	}
	if ticker == nil {
		return nil, errors.New("caption ticker is required")
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	logger = logging.NewComponentLogger(logger, "playback").With(logging.String(logging.FieldSessionID, opts.SessionID))
	return &Session{clock: clock, captions: ticker, title: title, opts: opts, logger: logger}, nil
}

// ID returns the session identifier attached to log lines.
func (s *Session) ID() string {
	return s.opts.SessionID
}

// Run ticks until ctx is cancelled, returning ctx.Err(), or until the clock
// reports the track ended, returning nil.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("playback started",
		logging.Duration("poll_interval", s.opts.PollInterval),
		logging.Bool("title", s.title != nil),
	)

	ticks := 1
	if s.tick() {
		s.logger.Info("playback finished", logging.Int("ticks", ticks))
		return nil
	}

	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	var titleC, hideC <-chan time.Time
	if s.title != nil {
		titleTimer := time.NewTimer(s.opts.TitleDelay)
		defer titleTimer.Stop()
		titleC = titleTimer.C
	}
	var hideTimer *time.Timer
	defer func() {
		if hideTimer != nil {
			hideTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("playback stopped", logging.Int("ticks", ticks), logging.Float64("position_s", s.clock.Position()))
			return ctx.Err()
		case <-ticker.C:
			ticks++
			if s.tick() {
				s.logger.Info("playback finished", logging.Int("ticks", ticks))
				return nil
			}
		case <-titleC:
			titleC = nil
			s.logger.Debug("title fading out", logging.Duration("fade", s.opts.TitleFade))
			s.title.FadeOut(s.opts.TitleFade)
			hideTimer = time.NewTimer(s.opts.TitleFade)
			hideC = hideTimer.C
		case <-hideC:
			hideC = nil
			s.logger.Debug("title hidden")
			s.title.Hide()
		}
	}
}

// tick applies the current position and reports whether the track ended.
func (s *Session) tick() bool {
	s.captions.Tick(s.clock.Position() * 1000)
	if ended, ok := s.clock.(endedClock); ok {
		return ended.Ended()
	}
	return false
}
