package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"pfeifer.dev/dbwd/cli"
	"pfeifer.dev/dbwd/control"
	"pfeifer.dev/dbwd/params"
	"pfeifer.dev/dbwd/settings"
	"pfeifer.dev/dbwd/utils"
	"pfeifer.dev/dbwd/waypoints"
)

func main() {
	cli.Handle()

	params.Default.EnsureDirectories()
	s := &settings.Settings
	s.LoadWithRetries(5)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	utils.Check(run(ctx, s))
}

func run(ctx context.Context, s *settings.VehicleSettings) error {
	clock := control.MonotonicClock()
	state := NewState()
	state.SetReloadRoute(s.ReloadTrajectory)

	controller := control.NewController(s.ControlConfig(), clock)
	updater := waypoints.NewUpdater(s.UpdaterConfig())
	loop := NewLoop(state, controller, updater, clock, newCerealOutputs())
	loop.StatusInterval = settings.STATUS_INTERVAL

	period := s.TickPeriod()

	slog.Info("starting dbwd", "period", period, "endPolicy", s.EndPolicy)

	// from here on settings are only touched by the dbwIn pump
	group, ctx := errgroup.WithContext(ctx)
	startPumps(ctx, group, state, s)
	group.Go(func() error {
		return loop.Run(ctx, NewTicker(period))
	})
	return group.Wait()
}
