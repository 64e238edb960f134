package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyricsync/internal/timestamp"
)

func newNormalizeCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:         "normalize VALUE...",
		Short:       "Convert lyric timestamps to milliseconds",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				ms, err := timestamp.Parse(arg)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s\t0\t(%v)\n", arg, err)
					continue
				}
				fmt.Fprintf(out, "%s\t%d\t%s\n", arg, ms, timestamp.Format(ms))
			}
			if strict && failed > 0 {
				return fmt.Errorf("%d of %d timestamps could not be normalized", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any value is malformed")
	return cmd
}
