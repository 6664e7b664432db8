package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cosmicsplendor/audio-ducker/internal/ducking"
	"github.com/cosmicsplendor/audio-ducker/internal/services"
	"github.com/cosmicsplendor/audio-ducker/internal/volumefilter"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "plan <music-file> <intervals-file>",
		Short: "Show the volume envelope and filter without transcoding",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return services.Wrap(services.ErrUsage, "cli", "arguments",
					fmt.Sprintf("Expected music and intervals arguments, got %d", len(args)), nil)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			musicPath, err := resolveInputFile("music file", args[0])
			if err != nil {
				return err
			}
			intervalsPath, err := resolveInputFile("intervals file", args[1])
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyModeOverride(cfg, modeFlag); err != nil {
				return err
			}

			engine, err := ctx.newEngine()
			if err != nil {
				return err
			}
			plan, err := engine.Plan(cmd.Context(), musicPath, intervalsPath)
			if err != nil {
				return err
			}
			renderPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "", "Filter mode override: step or smooth")
	return cmd
}

func renderPlan(out io.Writer, plan *ducking.Plan) {
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Ducking Plan", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, planFactLine("Mode", string(plan.Strategy)))
	fmt.Fprintln(out, planFactLine("Intervals", strconv.Itoa(len(plan.Intervals))))
	if plan.Duration > 0 {
		fmt.Fprintln(out, planFactLine("Track Duration", formatSeconds(plan.Duration)))
	} else {
		fmt.Fprintln(out, planFactLine("Track Duration", "not probed"))
	}
	fmt.Fprintln(out)

	if len(plan.Intervals) > 0 {
		for _, line := range renderSectionHeader("Speech Intervals", colorize) {
			fmt.Fprintln(out, line)
		}
		rows := make([][]string, 0, len(plan.Intervals))
		for i, iv := range plan.Intervals {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				formatSeconds(iv.Start),
				formatSeconds(iv.End()),
				displaySpeaker(iv.Speaker),
			})
		}
		table := renderTable(
			[]string{"#", "Start", "End", "Speaker"},
			rows,
			[]columnAlignment{alignRight, alignRight, alignRight, alignLeft},
		)
		fmt.Fprintln(out, table)
		fmt.Fprintln(out)
	}

	switch {
	case len(plan.Segments) > 0:
		for _, line := range renderSectionHeader("Volume Segments", colorize) {
			fmt.Fprintln(out, line)
		}
		rows := make([][]string, 0, len(plan.Segments))
		for i, seg := range plan.Segments {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				formatSeconds(seg.Start),
				formatSeconds(seg.End),
				volumefilter.FormatNumber(seg.Volume),
			})
		}
		table := renderTable(
			[]string{"#", "Start", "End", "Volume"},
			rows,
			[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
		)
		fmt.Fprintln(out, table)
		fmt.Fprintln(out)
	case len(plan.Keyframes) > 0:
		for _, line := range renderSectionHeader("Volume Keyframes", colorize) {
			fmt.Fprintln(out, line)
		}
		rows := make([][]string, 0, len(plan.Keyframes))
		for i, kf := range plan.Keyframes {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				formatSeconds(kf.Time),
				volumefilter.FormatNumber(kf.Volume),
			})
		}
		table := renderTable(
			[]string{"#", "Time", "Volume"},
			rows,
			[]columnAlignment{alignRight, alignRight, alignRight},
		)
		fmt.Fprintln(out, table)
		fmt.Fprintln(out)
	}

	for _, line := range renderSectionHeader("Filter", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, plan.Filter)
}

func planFactLine(label, value string) string {
	return fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", value)
}

// displaySpeaker turns transcript speaker tags like "speaker_01" or
// "narrator-two" into readable labels for table output.
func displaySpeaker(speaker string) string {
	speaker = strings.TrimSpace(speaker)
	if speaker == "" {
		return "-"
	}
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(speaker)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return "-"
	}
	return cases.Title(language.Und).String(cleaned)
}
