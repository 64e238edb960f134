package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"lyricsync/internal/captions"
	"lyricsync/internal/logging"
	"lyricsync/internal/timestamp"
)

type scheduleEntry struct {
	Index   int    `json:"index"`
	StartMs int64  `json:"start_ms"`
	EndMs   int64  `json:"end_ms"`
	Text    string `json:"text"`
}

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	var lyricsPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the normalized caption schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := ctx.loadSheet(lyricsPath)
			if err != nil {
				return err
			}
			logger, err := newCommandLogger(ctx)
			if err != nil {
				return err
			}
			schedule, err := sheet.Schedule(logger)
			if err != nil {
				return err
			}

			entries := scheduleEntries(schedule)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.Itoa(entry.Index),
					timestamp.Format(entry.StartMs),
					timestamp.Format(entry.EndMs),
					entry.Text,
				})
			}
			columns := []tableColumn{
				{header: "#", align: alignRight},
				{header: "Start", align: alignRight},
				{header: "End", align: alignRight},
				{header: "Text"},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(sheet.Title, columns, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&lyricsPath, "lyrics", "l", "", "Lyric sheet to read (defaults to paths.lyrics_path or the built-in song)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the schedule as JSON")
	return cmd
}

func scheduleEntries(schedule *captions.Schedule) []scheduleEntry {
	entries := make([]scheduleEntry, 0, schedule.Len())
	for i, entry := range schedule.Entries() {
		entries = append(entries, scheduleEntry{
			Index:   i,
			StartMs: entry.StartMs,
			EndMs:   entry.EndMs(),
			Text:    entry.Text,
		})
	}
	return entries
}

// newCommandLogger builds the logger for non-interactive commands. Warnings
// about the lyric sheet belong on stderr next to the output they explain.
func newCommandLogger(ctx *commandContext) (*slog.Logger, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stderr"},
	})
}
