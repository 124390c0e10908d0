package cereal

import (
	"pfeifer.dev/dbwd/cereal/dbw"
)

func PoseCreator(evt dbw.Event) (dbw.Pose, error) {
	return evt.NewPose()
}

func TwistCreator(evt dbw.Event) (dbw.Twist, error) {
	return evt.NewTwist()
}

func LaneCreator(evt dbw.Event) (dbw.Lane, error) {
	return evt.NewLane()
}

func TrafficWaypointCreator(evt dbw.Event) (dbw.TrafficWaypoint, error) {
	return evt.NewTrafficWaypoint()
}

func DbwEnabledCreator(evt dbw.Event) (dbw.DbwEnabled, error) {
	return evt.NewDbwEnabled()
}

func DbwInCreator(evt dbw.Event) (dbw.DbwIn, error) {
	return evt.NewDbwIn()
}

func CommandCreator(evt dbw.Event) (dbw.Command, error) {
	return evt.NewCommand()
}

func StatusCreator(evt dbw.Event) (dbw.Status, error) {
	return evt.NewStatus()
}
