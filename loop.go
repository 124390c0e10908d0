package main

import (
	"context"
	"log/slog"
	"time"

	"pfeifer.dev/dbwd/control"
	"pfeifer.dev/dbwd/utils"
	"pfeifer.dev/dbwd/waypoints"
)

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	ticker *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.ticker.C }
func (t timeTicker) Stop()               { t.ticker.Stop() }

func NewTicker(period time.Duration) Ticker {
	return timeTicker{ticker: time.NewTicker(period)}
}

type Status struct {
	Ticks        uint64
	Skipped      uint64
	Enabled      bool
	ClosestIndex int
	BrakeIndex   int
	TickPeriod   float64
	RouteLength  int
}

// Outputs receives everything a tick produces. Implementations must not
// block.
type Outputs interface {
	SendCommand(control.Command) error
	SendWindow(waypoints.Window) error
	SendStatus(Status) error
}

type Loop struct {
	state      *State
	controller *control.Controller
	updater    waypoints.Updater
	clock      control.Clock
	outputs    Outputs

	StatusInterval time.Duration

	enabled    utils.TrackedState[bool]
	tracker    utils.UpdateTracker
	status     Status
	lastStatus time.Duration
}

func NewLoop(state *State, controller *control.Controller, updater waypoints.Updater, clock control.Clock, outputs Outputs) *Loop {
	if clock == nil {
		clock = control.MonotonicClock()
	}
	l := &Loop{
		state:          state,
		controller:     controller,
		updater:        updater,
		clock:          clock,
		outputs:        outputs,
		StatusInterval: time.Second,
		status:         Status{ClosestIndex: -1, BrakeIndex: waypoints.NoStop},
	}
	l.tracker.Init(50, clock)
	l.lastStatus = clock()
	return l
}

// Run ticks until the context is cancelled. A tick that has started always
// runs to completion.
func (l *Loop) Run(ctx context.Context, ticker Ticker) error {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C():
			l.Tick()
		}
	}
}

// Tick runs the controller and the window generator once. It reports false
// when there is no pose or route yet.
func (l *Loop) Tick() bool {
	l.tracker.Update()
	defer l.maybeSendStatus()

	inputs := l.state.Snapshot()
	route := l.state.Route()
	if !inputs.HasPose || route == nil {
		l.status.Skipped++
		slog.Debug("skipping tick", "hasPose", inputs.HasPose, "hasRoute", route != nil)
		return false
	}

	if l.enabled.Update(inputs.Enabled) {
		slog.Info("drive by wire enabled changed", "enabled", inputs.Enabled)
	}

	vehicle := control.VehicleState{
		Velocity: inputs.Velocity,
		Position: inputs.Pose,
	}
	cmd := l.controller.Control(vehicle, inputs.Enabled, inputs.Target)
	window := l.updater.Window(inputs.Pose, route, inputs.StopIndex)

	slog.Debug("tick",
		"throttle", cmd.Throttle,
		"brake", cmd.Brake,
		"steer", cmd.Steer,
		"velocity", l.controller.FilteredVelocity(),
		"closest", window.ClosestIndex,
	)

	utils.Loge(l.outputs.SendCommand(cmd), "could not publish command")
	utils.Loge(l.outputs.SendWindow(window), "could not publish final waypoints")

	l.status.Ticks++
	l.status.Enabled = inputs.Enabled
	l.status.ClosestIndex = window.ClosestIndex
	l.status.BrakeIndex = window.BrakeIndex
	l.status.RouteLength = route.Len()
	return true
}

func (l *Loop) Status() Status {
	status := l.status
	status.TickPeriod = l.tracker.Period()
	return status
}

func (l *Loop) maybeSendStatus() {
	now := l.clock()
	if now-l.lastStatus < l.StatusInterval {
		return
	}
	l.lastStatus = now
	utils.Loge(l.outputs.SendStatus(l.Status()), "could not publish status")
}
