package ui

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/monthgrid/pkg/monthgrid"
	"tableflip.dev/monthgrid/pkg/store"
	"tableflip.dev/monthgrid/pkg/tui/app"
)

// UI launches the interactive calendar.
type UI struct {
	Config      *store.Config
	Persistence store.Persistence
	Logger      *zap.Logger

	// Display and Value override the persisted state when set.
	Display *time.Time
	Value   *time.Time
	// Fresh skips loading persisted state.
	Fresh bool
}

// Grid assembles the grid the UI starts with.
func (u *UI) Grid() (*monthgrid.Grid, error) {
	opts := []monthgrid.Option{}
	if u.Config != nil {
		opts = append(opts,
			monthgrid.WithName(u.Config.Name),
			monthgrid.WithMatchYear(u.Config.MatchYear),
		)
	}
	g := monthgrid.New(opts...)

	if !u.Fresh {
		if err := app.Restore(g, u.Persistence); err != nil {
			return nil, fmt.Errorf("failed to restore calendar state: %w", err)
		}
	}
	if u.Value != nil {
		g.SetValue(u.Value)
		g.SetDisplayMonth(*u.Value)
	}
	if u.Display != nil {
		g.SetDisplayMonth(*u.Display)
	}
	return g, nil
}

// Do runs the program until the user quits.
func (u *UI) Do(ctx context.Context) error {
	logger := u.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	g, err := u.Grid()
	if err != nil {
		return err
	}
	logger.Info("starting calendar",
		zap.String("name", g.Name()),
		zap.Time("display", g.DisplayMonth()),
		zap.Bool("match_year", g.MatchYear()))

	return app.Run(ctx, app.Options{
		Grid:        g,
		Persistence: u.Persistence,
		Logger:      logger,
	})
}
