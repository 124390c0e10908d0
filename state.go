package main

import (
	"sync"
	"sync/atomic"

	"pfeifer.dev/dbwd/control"
	m "pfeifer.dev/dbwd/math"
	"pfeifer.dev/dbwd/waypoints"
)

// Inputs is the latest value of every asynchronous input.
type Inputs struct {
	Pose      m.Point
	HasPose   bool
	Velocity  float64
	Target    control.DriveTarget
	StopIndex int
	Enabled   bool
}

// State is shared between the input pumps and the tick loop. Scalar inputs
// sit behind one mutex and the route is swapped as a whole.
type State struct {
	mu      sync.Mutex
	inputs  Inputs
	route   atomic.Pointer[waypoints.Route]
	reload  atomic.Bool
	builder func(waypoints.Trajectory) (*waypoints.Route, error)
}

func NewState() *State {
	return &State{
		inputs:  Inputs{StopIndex: waypoints.NoStop},
		builder: waypoints.NewRoute,
	}
}

func (s *State) SetPose(p m.Point) {
	s.mu.Lock()
	s.inputs.Pose = p
	s.inputs.HasPose = true
	s.mu.Unlock()
}

func (s *State) SetVelocity(v float64) {
	s.mu.Lock()
	s.inputs.Velocity = v
	s.mu.Unlock()
}

func (s *State) SetTarget(t control.DriveTarget) {
	s.mu.Lock()
	s.inputs.Target = t
	s.mu.Unlock()
}

func (s *State) SetStopIndex(idx int) {
	if idx < 0 {
		idx = waypoints.NoStop
	}
	s.mu.Lock()
	s.inputs.StopIndex = idx
	s.mu.Unlock()
}

func (s *State) SetEnabled(enabled bool) {
	s.mu.Lock()
	s.inputs.Enabled = enabled
	s.mu.Unlock()
}

func (s *State) Snapshot() Inputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs
}

func (s *State) Route() *waypoints.Route {
	return s.route.Load()
}

// SetReloadRoute allows later trajectories to replace the current route.
func (s *State) SetReloadRoute(reload bool) {
	s.reload.Store(reload)
}

// SetRoute builds the route and its index on the calling goroutine and
// publishes it. Without reload only the first route is kept.
func (s *State) SetRoute(t waypoints.Trajectory) (accepted bool, err error) {
	reload := s.reload.Load()
	if !reload && s.route.Load() != nil {
		return false, nil
	}
	route, err := s.builder(t)
	if err != nil {
		return false, err
	}
	if reload {
		s.route.Store(route)
		return true, nil
	}
	return s.route.CompareAndSwap(nil, route), nil
}
