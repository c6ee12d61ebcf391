package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ardnew/evdef/cli"
	"github.com/ardnew/evdef/cli/cmd"
	"github.com/ardnew/evdef/log"
)

// exitCheckFailed is the exit status of a check that found errors. The
// diagnostics have already been printed.
const exitCheckFailed = 2

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)

	switch {
	case err == nil:
		return

	case errors.Is(err, cmd.ErrCheckFailed):
		log.Debug("check failed", slog.Any("error", err))
		os.Exit(exitCheckFailed)

	default:
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
