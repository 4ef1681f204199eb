package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/kurochkinivan/house_reporter/internal/app"
	"github.com/kurochkinivan/house_reporter/internal/report"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "house_reporter",
		Usage:   "Print status reports of the sample smart house",
		Version: version,
		Writer:  stdout,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			return app.New(log, stdout,
				app.Output{Name: "text", Generator: report.NewText()},
				app.Output{Name: "tsv", Generator: report.NewTSV()},
			).Run(ctx)
		},
	}
}
