package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"pfeifer.dev/dbwd/cereal"
	"pfeifer.dev/dbwd/route"
)

type routeOptions struct {
	File     string
	Speed    float64
	Decel    float64
	Loop     bool
	Repeat   int
	Interval time.Duration
}

func publishRoute(ctx context.Context, opts routeOptions) error {
	trajectory, err := route.LoadFile(opts.File, route.Options{
		CruiseSpeed: opts.Speed,
		MaxDecel:    opts.Decel,
		Loop:        opts.Loop,
	})
	if err != nil {
		return err
	}

	pub := cereal.NewPublisher(cereal.BASE_WAYPOINTS, cereal.LaneCreator)
	for i := range max(opts.Repeat, 1) {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(opts.Interval):
			}
		}
		msg, lane := pub.NewMessage(true)
		if err := cereal.SetLane(lane, trajectory); err != nil {
			return errors.Wrap(err, "could not build base waypoints")
		}
		if err := pub.Send(msg); err != nil {
			return err
		}
		slog.Info("published base waypoints", "file", opts.File, "waypoints", len(trajectory))
	}
	return nil
}
