package cereal

import (
	"pfeifer.dev/dbwd/cereal/dbw"
)

func PoseReader(evt dbw.Event) (dbw.Pose, error) {
	return evt.Pose()
}

func TwistReader(evt dbw.Event) (dbw.Twist, error) {
	return evt.Twist()
}

func LaneReader(evt dbw.Event) (dbw.Lane, error) {
	return evt.Lane()
}

func TrafficWaypointReader(evt dbw.Event) (dbw.TrafficWaypoint, error) {
	return evt.TrafficWaypoint()
}

func DbwEnabledReader(evt dbw.Event) (dbw.DbwEnabled, error) {
	return evt.DbwEnabled()
}

func DbwInReader(evt dbw.Event) (dbw.DbwIn, error) {
	return evt.DbwIn()
}

func CommandReader(evt dbw.Event) (dbw.Command, error) {
	return evt.Command()
}

func StatusReader(evt dbw.Event) (dbw.Status, error) {
	return evt.Status()
}
