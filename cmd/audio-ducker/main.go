package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cosmicsplendor/audio-ducker/internal/services"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, services.ExitMessage(err))
			if errors.Is(err, services.ErrUsage) {
				fmt.Fprint(os.Stderr, cmd.UsageString())
			}
		}
		os.Exit(1)
	}
}
