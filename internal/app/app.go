package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kurochkinivan/house_reporter/internal/domain"
	"github.com/kurochkinivan/house_reporter/internal/provider"
)

type Generator interface {
	Generate(house *domain.House, provider domain.StatusProvider) ([]byte, error)
}

// Output names a report format, the name appears in section headers.
type Output struct {
	Name      string
	Generator Generator
}

type App struct {
	log     *slog.Logger
	out     io.Writer
	outputs []Output
}

func New(log *slog.Logger, out io.Writer, outputs ...Output) *App {
	return &App{
		log:     log,
		out:     out,
		outputs: outputs,
	}
}

type namedProvider struct {
	name     string
	provider domain.StatusProvider
}

func (a *App) Run(ctx context.Context) error {
	house := domain.DefaultHouse()

	a.log.InfoContext(ctx, "starting app",
		slog.String("house", house.Name()),
		slog.Int("rooms_count", len(house.RoomNames())),
		slog.Int("outputs_count", len(a.outputs)),
	)

	socket := &provider.SmartSocket{}
	thermo := &provider.SmartThermometer{}

	providers := []namedProvider{
		{name: "socket", provider: socket},
		{name: "thermometer", provider: thermo},
		{name: "owning composite", provider: provider.NewOwningComposite(provider.SmartSocket{})},
		{name: "borrowing composite", provider: provider.NewBorrowingComposite(socket, thermo)},
	}

	for _, p := range providers {
		for _, o := range a.outputs {
			if err := ctx.Err(); err != nil {
				return err
			}

			log := a.log.With(
				slog.String("provider", p.name),
				slog.String("output", o.Name),
			)

			log.DebugContext(ctx, "generating report")

			if err := a.writeReport(house, p, o); err != nil {
				log.ErrorContext(ctx, "failed to write report", slog.String("err", err.Error()))
				return err
			}
		}
	}

	a.log.InfoContext(ctx, "all reports written", slog.Int("reports_count", len(providers)*len(a.outputs)))

	return nil
}

func (a *App) writeReport(house *domain.House, p namedProvider, o Output) error {
	data, err := o.Generator.Generate(house, p.provider)
	if err != nil {
		return fmt.Errorf("failed to generate %s %s report: %w", p.name, o.Name, err)
	}

	if _, err := fmt.Fprintf(a.out, "=== %s: %s ===\n", p.name, o.Name); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := a.out.Write(data); err != nil {
		return fmt.Errorf("failed to write %s %s report: %w", p.name, o.Name, err)
	}

	if _, err := io.WriteString(a.out, "\n"); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	return nil
}
