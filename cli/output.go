package cli

import (
	"fmt"

	"pfeifer.dev/dbwd/cereal"
	"pfeifer.dev/dbwd/cereal/dbw"
)

type outputModel struct {
	command     dbw.Command
	status      dbw.Status
	validCmd    bool
	validStatus bool
}

func (m outputModel) Update(cmdSub *cereal.Subscriber[dbw.Command], statusSub *cereal.Subscriber[dbw.Status]) outputModel {
	if cmd, success := cmdSub.Read(); success {
		m.validCmd = true
		m.command = cmd
	}
	if status, success := statusSub.Read(); success {
		m.validStatus = true
		m.status = status
	}
	return m
}

func (m outputModel) View() string {
	out := ""
	if m.validCmd {
		out += fmt.Sprintf(
			"throttle: %f\nbrake: %f N·m\nsteer: %f rad\n",
			m.command.Throttle(),
			m.command.Brake(),
			m.command.Steer(),
		)
	} else {
		out += "waiting for dbwCmd\n"
	}
	if m.validStatus {
		out += fmt.Sprintf(
			"\nenabled: %t\nticks: %d\nskipped ticks: %d\ntick period: %f s\nclosest index: %d\nbrake index: %d\nroute length: %d\n",
			m.status.Enabled(),
			m.status.Ticks(),
			m.status.Skipped(),
			m.status.TickPeriod(),
			m.status.ClosestIndex(),
			m.status.BrakeIndex(),
			m.status.RouteLength(),
		)
	}
	return docStyle.Render(out + "\n(esc to return)") + "\n"
}
