package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitCodeOK = iota
	exitCodeErr
)

type loggerKey struct{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	exitCode := run(ctx, os.Args, os.Stdout, os.Stderr)

	stop()
	os.Exit(exitCode)
}

// run keeps reports on stdout and logs on stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx = context.WithValue(ctx, loggerKey{}, log)

	if err := cmd(stdout).Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "stopped app due to the error %q\n", err)
		return exitCodeErr
	}

	return exitCodeOK
}
