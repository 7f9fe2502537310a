package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ardnew/yaf/cli"
)

func main() {
	// Interrupt cancels a command directive that is still running.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		cli.Report(ctx, err)
		os.Exit(1)
	}
}
