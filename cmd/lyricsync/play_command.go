package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lyricsync/internal/captions"
	"lyricsync/internal/logging"
	"lyricsync/internal/lyrics"
	"lyricsync/internal/playback"
	"lyricsync/internal/terminal"
)

type playOptions struct {
	lyricsPath string
	offset     float64
	noTitle    bool
}

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play captions in time with the track",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lyricsPath, "lyrics", "l", "", "Lyric sheet to play (defaults to paths.lyrics_path or the built-in song)")
	cmd.Flags().Float64Var(&opts.offset, "offset", 0, "Start this many seconds into the track (overrides playback.start_offset_seconds)")
	cmd.Flags().BoolVar(&opts.noTitle, "no-title", false, "Do not show the title card")
	return cmd
}

func runPlay(cmd *cobra.Command, ctx *commandContext, opts playOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	sheet, err := ctx.loadSheet(opts.lyricsPath)
	if err != nil {
		return err
	}
	schedule, err := sheet.Schedule(logger)
	if err != nil {
		return err
	}

	offset := cfg.StartOffset()
	if cmd.Flags().Changed("offset") {
		if opts.offset < 0 {
			return fmt.Errorf("--offset must be >= 0, got %v", opts.offset)
		}
		offset = time.Duration(opts.offset * float64(time.Second))
	}

	showTitle := cfg.Playback.ShowTitle && !opts.noTitle
	titleText := ""
	if showTitle {
		titleText = displayTitle(sheet)
	}
	display := terminal.New(cmd.OutOrStdout(), titleText)

	scheduler, err := captions.NewScheduler(schedule, display, logger)
	if err != nil {
		return err
	}
	var title playback.TitleTarget
	if showTitle {
		title = display
	}

	clock := playback.NewWallClock(offset, sheet.Length(schedule))
	session, err := playback.NewSession(clock, scheduler, title, playback.Options{
		PollInterval: cfg.PollInterval(),
		TitleDelay:   cfg.TitleDelay(),
		TitleFade:    cfg.TitleFade(),
	}, logger)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("playing lyrics",
		logging.String("title", sheet.Title),
		logging.Int("lines", schedule.Len()),
		logging.Duration("offset", offset),
		logging.String(logging.FieldSessionID, session.ID()),
	)

	display.Open()
	clock.Start()
	runErr := session.Run(runCtx)
	closeErr := display.Close()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return closeErr
}

func displayTitle(sheet *lyrics.Sheet) string {
	if sheet.Artist == "" {
		return sheet.Title
	}
	return sheet.Title + " · " + sheet.Artist
}
