package main

import (
	"github.com/pkg/errors"

	"pfeifer.dev/dbwd/cereal"
	"pfeifer.dev/dbwd/cereal/dbw"
	"pfeifer.dev/dbwd/control"
	"pfeifer.dev/dbwd/waypoints"
)

type cerealOutputs struct {
	commands cereal.Publisher[dbw.Command]
	lanes    cereal.Publisher[dbw.Lane]
	status   cereal.Publisher[dbw.Status]
}

func newCerealOutputs() *cerealOutputs {
	return &cerealOutputs{
		commands: cereal.NewPublisher(cereal.DBW_CMD, cereal.CommandCreator),
		lanes:    cereal.NewPublisher(cereal.FINAL_WAYPOINTS, cereal.LaneCreator),
		status:   cereal.NewPublisher(cereal.DBW_STATUS, cereal.StatusCreator),
	}
}

func (o *cerealOutputs) SendCommand(cmd control.Command) error {
	msg, out := o.commands.NewMessage(true)
	cereal.SetCommand(out, cmd)
	return errors.Wrap(o.commands.Send(msg), "could not send command")
}

func (o *cerealOutputs) SendWindow(w waypoints.Window) error {
	msg, lane := o.lanes.NewMessage(true)
	if err := cereal.SetWindow(lane, w); err != nil {
		return err
	}
	return errors.Wrap(o.lanes.Send(msg), "could not send final waypoints")
}

func (o *cerealOutputs) SendStatus(s Status) error {
	msg, out := o.status.NewMessage(true)
	out.SetTicks(s.Ticks)
	out.SetSkipped(s.Skipped)
	out.SetEnabled(s.Enabled)
	out.SetClosestIndex(int32(s.ClosestIndex))
	out.SetBrakeIndex(int32(s.BrakeIndex))
	out.SetTickPeriod(float32(s.TickPeriod))
	out.SetRouteLength(int32(s.RouteLength))
	return errors.Wrap(o.status.Send(msg), "could not send status")
}
