// Package control turns the current vehicle state and a target twist into
// throttle, brake and steering commands.
package control

import (
	"time"

	m "pfeifer.dev/dbwd/math"
)

// VehicleState is the measured state of the car.
type VehicleState struct {
	Velocity float64 // m/s
	Position m.Point
}

// DriveTarget is the twist requested by the waypoint follower.
type DriveTarget struct {
	LinearVelocity  float64 // m/s
	AngularVelocity float64 // rad/s
}

// Command is sent to the actuators. Brake is a torque in N*m and is only
// non-zero when Throttle is zero.
type Command struct {
	Throttle float64
	Brake    float64
	Steer    float64
}

// Neutral is the command used while drive-by-wire is disengaged.
var Neutral = Command{}

// Clock returns a monotonic timestamp.
type Clock func() time.Duration

func MonotonicClock() Clock {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
