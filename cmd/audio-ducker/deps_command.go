package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmicsplendor/audio-ducker/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that ffmpeg and ffprobe are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			requirements := []deps.Requirement{
				{Name: "FFmpeg", Command: cfg.FFmpeg.FFmpegBinary, Description: "renders the ducked output"},
				{Name: "FFprobe", Command: cfg.FFmpeg.FFprobeBinary, Description: "probes track duration"},
			}

			for _, line := range renderSectionHeader("External Tools", colorize) {
				fmt.Fprintln(stdout, line)
			}
			missing := make([]string, 0, len(requirements))
			for _, status := range deps.CheckBinaries(requirements) {
				if !status.Available {
					missing = append(missing, status.Name)
					detail := status.Detail
					if detail == "" {
						detail = "not available"
					}
					fmt.Fprintln(stdout, renderStatusLine(status.Name, statusError, detail, colorize))
					continue
				}
				message := fmt.Sprintf("Ready (%s)", deps.ResolvePath(status.Command))
				if version := deps.ToolVersion(cmd.Context(), status.Command); version != "" {
					message = fmt.Sprintf("%s, %s", message, version)
				}
				fmt.Fprintln(stdout, renderStatusLine(status.Name, statusOK, message, colorize))
			}
			if len(missing) > 0 {
				fmt.Fprintln(stdout, renderStatusLine("Missing tools", statusError,
					fmt.Sprintf("%s (install ffmpeg to enable transcoding)", strings.Join(missing, ", ")), colorize))
			}
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Output Directory", colorize) {
				fmt.Fprintln(stdout, line)
			}
			result := deps.CheckDirectoryAccess("Output Dir", cfg.Output.Dir)
			kind := statusOK
			if !result.Passed {
				kind = statusError
			}
			fmt.Fprintln(stdout, renderStatusLine(result.Name, kind, result.Detail, colorize))
			return nil
		},
	}
}
