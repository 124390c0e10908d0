package cereal

import (
	"github.com/pkg/errors"

	"pfeifer.dev/dbwd/cereal/dbw"
	"pfeifer.dev/dbwd/control"
	m "pfeifer.dev/dbwd/math"
	"pfeifer.dev/dbwd/waypoints"
)

func PoseToPoint(p dbw.Pose) m.Point {
	return m.NewPoint(p.X(), p.Y(), p.Z())
}

func SetPose(p dbw.Pose, pt m.Point) {
	p.SetX(pt.X)
	p.SetY(pt.Y)
	p.SetZ(pt.Z)
}

func TwistToTarget(t dbw.Twist) control.DriveTarget {
	return control.DriveTarget{LinearVelocity: t.Linear(), AngularVelocity: t.Angular()}
}

func SetCommand(c dbw.Command, cmd control.Command) {
	c.SetThrottle(cmd.Throttle)
	c.SetBrake(cmd.Brake)
	c.SetSteer(cmd.Steer)
}

func CommandFromMessage(c dbw.Command) control.Command {
	return control.Command{Throttle: c.Throttle(), Brake: c.Brake(), Steer: c.Steer()}
}

func LaneToTrajectory(l dbw.Lane) (waypoints.Trajectory, error) {
	list, err := l.Waypoints()
	if err != nil {
		return nil, errors.Wrap(err, "could not read lane waypoints")
	}
	trajectory := make(waypoints.Trajectory, list.Len())
	for i := range list.Len() {
		wp := list.At(i)
		trajectory[i] = waypoints.Waypoint{
			Position: m.NewPoint(wp.X(), wp.Y(), wp.Z()),
			Speed:    wp.Speed(),
		}
	}
	return trajectory, nil
}

func SetLane(l dbw.Lane, wps []waypoints.Waypoint) error {
	list, err := l.NewWaypoints(int32(len(wps)))
	if err != nil {
		return errors.Wrap(err, "could not create lane waypoints")
	}
	for i, wp := range wps {
		out := list.At(i)
		out.SetX(wp.Position.X)
		out.SetY(wp.Position.Y)
		out.SetZ(wp.Position.Z)
		out.SetSpeed(wp.Speed)
	}
	return nil
}

func SetWindow(l dbw.Lane, w waypoints.Window) error {
	l.SetClosestIndex(int32(w.ClosestIndex))
	l.SetBrakeIndex(int32(w.BrakeIndex))
	return SetLane(l, w.Waypoints)
}
