// Package waypoints locates the car on the base trajectory and shapes the
// look-ahead lane that is handed to the waypoint follower.
package waypoints

import (
	m "pfeifer.dev/dbwd/math"
)

// NoStop marks the absence of a stop line.
const NoStop = -1

type Waypoint struct {
	Position m.Point
	Speed    float64 // m/s
}

// Trajectory is the ordered base path.
type Trajectory []Waypoint

func (t Trajectory) Points() []m.Point {
	points := make([]m.Point, len(t))
	for i, wp := range t {
		points[i] = wp.Position
	}
	return points
}

// Route is a trajectory together with its spatial index. A Route is never
// modified after NewRoute returns, so it can be shared between goroutines.
type Route struct {
	trajectory Trajectory
	index      Index
}

// NewRoute copies the trajectory and builds its index.
func NewRoute(t Trajectory) (*Route, error) {
	trajectory := make(Trajectory, len(t))
	copy(trajectory, t)
	index, err := NewKDIndex(trajectory.Points())
	if err != nil {
		return nil, err
	}
	return &Route{trajectory: trajectory, index: index}, nil
}

// NewRouteWithIndex is used when a caller wants a specific Index.
func NewRouteWithIndex(t Trajectory, index Index) (*Route, error) {
	if len(t) == 0 {
		return nil, ErrEmptyTrajectory
	}
	trajectory := make(Trajectory, len(t))
	copy(trajectory, t)
	return &Route{trajectory: trajectory, index: index}, nil
}

func (r *Route) Len() int {
	return len(r.trajectory)
}

func (r *Route) At(i int) Waypoint {
	return r.trajectory[i]
}

func (r *Route) Nearest(pos m.Point) int {
	return r.index.Nearest(pos)
}
