package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"pfeifer.dev/dbwd/cereal"
	"pfeifer.dev/dbwd/cereal/dbw"
	"pfeifer.dev/dbwd/settings"
	"pfeifer.dev/dbwd/utils"
	"pfeifer.dev/dbwd/waypoints"
)

// source is the part of a cereal subscriber the pumps need.
type source[T any] interface {
	Read() (T, bool)
}

// pump applies every message read from src until ctx is cancelled or apply
// fails. Reads don't block, so an empty read sleeps for delay.
func pump[T any](ctx context.Context, src source[T], delay time.Duration, apply func(T) error) error {
	for ctx.Err() == nil {
		msg, ok := src.Read()
		if !ok {
			time.Sleep(delay)
			continue
		}
		if err := apply(msg); err != nil {
			return err
		}
	}
	return nil
}

func applyPose(state *State) func(dbw.Pose) error {
	return func(p dbw.Pose) error {
		state.SetPose(cereal.PoseToPoint(p))
		return nil
	}
}

func applyVelocity(state *State) func(dbw.Twist) error {
	return func(t dbw.Twist) error {
		state.SetVelocity(t.Linear())
		return nil
	}
}

func applyTarget(state *State) func(dbw.Twist) error {
	return func(t dbw.Twist) error {
		state.SetTarget(cereal.TwistToTarget(t))
		return nil
	}
}

func applyTrafficWaypoint(state *State) func(dbw.TrafficWaypoint) error {
	return func(t dbw.TrafficWaypoint) error {
		state.SetStopIndex(int(t.Index()))
		return nil
	}
}

func applyEnabled(state *State) func(dbw.DbwEnabled) error {
	return func(e dbw.DbwEnabled) error {
		state.SetEnabled(e.Enabled())
		return nil
	}
}

// applyBaseWaypoints stores the delivered route. An empty route can't be
// followed and ends the daemon.
func applyBaseWaypoints(state *State) func(dbw.Lane) error {
	return func(l dbw.Lane) error {
		trajectory, err := cereal.LaneToTrajectory(l)
		if err != nil {
			utils.Loge(err, "could not decode base waypoints")
			return nil
		}
		if len(trajectory) == 0 {
			return errors.Wrap(waypoints.ErrEmptyTrajectory, "received empty base waypoints")
		}
		accepted, err := state.SetRoute(trajectory)
		if err != nil {
			utils.Loge(err, "could not build route", "waypoints", len(trajectory))
			return nil
		}
		if accepted {
			slog.Info("loaded base waypoints", "waypoints", len(trajectory))
		} else {
			slog.Debug("ignored base waypoints, route already loaded", "waypoints", len(trajectory))
		}
		return nil
	}
}

// applyInput handles runtime commands. Everything except enabling is a
// settings change and is handled by the settings package.
func applyInput(state *State, s *settings.VehicleSettings) func(dbw.DbwIn) error {
	return func(in dbw.DbwIn) error {
		slog.Debug("dbw input", "type", in.Type().String())
		switch in.Type() {
		case dbw.DbwInputType_setEnabled:
			state.SetEnabled(in.Bool())
		default:
			s.Handle(in)
			state.SetReloadRoute(s.ReloadTrajectory)
		}
		return nil
	}
}

// startPumps subscribes to every input topic with one goroutine per topic.
func startPumps(ctx context.Context, group *errgroup.Group, state *State, s *settings.VehicleSettings) {
	goPump(ctx, group, cereal.NewSubscriber(cereal.CURRENT_POSE, cereal.PoseReader, true), applyPose(state))
	goPump(ctx, group, cereal.NewSubscriber(cereal.CURRENT_VELOCITY, cereal.TwistReader, true), applyVelocity(state))
	goPump(ctx, group, cereal.NewSubscriber(cereal.TWIST_CMD, cereal.TwistReader, true), applyTarget(state))
	goPump(ctx, group, cereal.NewSubscriber(cereal.BASE_WAYPOINTS, cereal.LaneReader, true), applyBaseWaypoints(state))
	goPump(ctx, group, cereal.NewSubscriber(cereal.TRAFFIC_WAYPOINT, cereal.TrafficWaypointReader, true), applyTrafficWaypoint(state))
	goPump(ctx, group, cereal.NewSubscriber(cereal.DBW_ENABLED, cereal.DbwEnabledReader, false), applyEnabled(state))
	goPump(ctx, group, cereal.NewSubscriber(cereal.DBW_IN, cereal.DbwInReader, false), applyInput(state, s))
}

func goPump[T any](ctx context.Context, group *errgroup.Group, sub cereal.Subscriber[T], apply func(T) error) {
	group.Go(func() error {
		defer sub.Close()
		return pump(ctx, &sub, settings.POLL_DELAY, apply)
	})
}
