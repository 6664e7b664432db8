package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmicsplendor/audio-ducker/internal/config"
	"github.com/cosmicsplendor/audio-ducker/internal/services"
	"github.com/cosmicsplendor/audio-ducker/internal/volumefilter"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var modeFlag string
	var overwriteFlag bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "audio-ducker <music-file> <intervals-file> <output-file>",
		Short: "Duck background music around speech intervals",
		Long: "audio-ducker computes a volume envelope that quiets background music while\n" +
			"speech is playing, then hands the result to ffmpeg for rendering.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return services.Wrap(services.ErrUsage, "cli", "arguments",
					fmt.Sprintf("Expected music, intervals, and output arguments, got %d", len(args)), nil)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, ctx, args, modeFlag, overwriteFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&modeFlag, "mode", "", "Filter mode override: step or smooth")
	rootCmd.Flags().BoolVar(&overwriteFlag, "overwrite", false, "Replace the output file if it already exists")

	rootCmd.AddCommand(newPlanCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runProcess(cmd *cobra.Command, ctx *commandContext, args []string, modeOverride string, overwrite bool) error {
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
	if err := applyModeOverride(cfg, modeOverride); err != nil {
		return err
	}
	if overwrite {
		cfg.Output.Overwrite = true
	}

	engine, err := ctx.newEngine()
	if err != nil {
		return err
	}

	outputPath, err := engine.Process(cmd.Context(), musicPath, intervalsPath, args[2])
	if err != nil {
		return err
	}

	// The resolved path is the only stdout payload so the command composes
	// in pipelines; everything else goes to stderr.
	fmt.Fprintln(cmd.OutOrStdout(), outputPath)
	return nil
}

func applyModeOverride(cfg *config.Config, mode string) error {
	mode = strings.TrimSpace(mode)
	if mode == "" {
		return nil
	}
	strategy, err := volumefilter.ParseStrategy(mode)
	if err != nil {
		return err
	}
	cfg.Ducking.Mode = string(strategy)
	return nil
}
