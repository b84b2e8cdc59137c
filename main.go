package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkerring/envelock/cmd"
)

func main() {
	// Interrupts stop the batch between files, never mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.RootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
