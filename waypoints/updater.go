package waypoints

import (
	gm "math"

	"gonum.org/v1/gonum/floats"

	m "pfeifer.dev/dbwd/math"
)

// EndPolicy decides what to do when the look-ahead runs past the last
// waypoint.
type EndPolicy string

const (
	// Truncate returns a shorter window at the end of a terminal route.
	Truncate EndPolicy = "truncate"
	// Wrap treats the route as a closed loop.
	Wrap EndPolicy = "wrap"
)

type UpdaterConfig struct {
	LookaheadWaypoints int       `json:"lookahead_waypoints"`
	MaxDecel           float64   `json:"max_decel"`
	StopMargin         int       `json:"stop_margin"`
	StopVelocity       float64   `json:"stop_velocity"`
	EndPolicy          EndPolicy `json:"end_policy"`
}

// Window is the lane published to the follower.
type Window struct {
	ClosestIndex int
	// BrakeIndex is the window relative index the car must be stopped at,
	// or NoStop when the speeds are the base speeds.
	BrakeIndex int
	Waypoints  []Waypoint
}

func (w Window) Shaped() bool {
	return w.BrakeIndex != NoStop
}

type Updater struct {
	cfg UpdaterConfig
}

func NewUpdater(cfg UpdaterConfig) Updater {
	if cfg.LookaheadWaypoints < 1 {
		cfg.LookaheadWaypoints = 1
	}
	if cfg.StopMargin < 0 {
		cfg.StopMargin = 0
	}
	cfg.MaxDecel = gm.Abs(cfg.MaxDecel)
	if cfg.EndPolicy != Wrap {
		cfg.EndPolicy = Truncate
	}
	return Updater{cfg: cfg}
}

func (u Updater) wrap() bool {
	return u.cfg.EndPolicy == Wrap
}

// ClosestIndex returns the index of the first waypoint that is not behind the
// car.
func (u Updater) ClosestIndex(route *Route, pos m.Point) int {
	closest := route.Nearest(pos)
	n := route.Len()
	if n < 2 {
		return closest
	}

	cl := route.At(closest).Position
	var heading m.Point
	switch {
	case closest > 0:
		heading = cl.Subtract(route.At(closest - 1).Position)
	case u.wrap():
		heading = cl.Subtract(route.At(n - 1).Position)
	default:
		// a terminal route has nothing before the first point
		heading = route.At(1).Position.Subtract(cl)
	}

	if heading.Dot2(pos.Subtract(cl)) > 0 {
		closest++
		if closest == n {
			if u.wrap() {
				closest = 0
			} else {
				closest = n - 1
			}
		}
	}
	return closest
}

// Window slices the look-ahead out of the route starting at the closest
// waypoint and, when a stop line falls inside it, lowers the speeds so the
// car comes to rest StopMargin waypoints before the line.
func (u Updater) Window(pos m.Point, route *Route, stopIdx int) Window {
	closest := u.ClosestIndex(route, pos)
	return u.window(closest, route, stopIdx)
}

func (u Updater) window(closest int, route *Route, stopIdx int) Window {
	n := route.Len()
	lookahead := u.cfg.LookaheadWaypoints

	var base []Waypoint
	if u.wrap() {
		size := min(lookahead, n)
		base = make([]Waypoint, size)
		for i := range size {
			base[i] = route.At((closest + i) % n)
		}
	} else {
		end := min(closest+lookahead, n)
		base = make([]Waypoint, 0, end-closest)
		for i := closest; i < end; i++ {
			base = append(base, route.At(i))
		}
	}

	w := Window{ClosestIndex: closest, BrakeIndex: NoStop, Waypoints: base}
	if stopIdx < 0 || stopIdx >= n || len(base) == 0 {
		return w
	}

	rel := stopIdx - closest
	if u.wrap() && rel < 0 {
		rel += n
	}
	if rel >= lookahead {
		return w
	}

	w.BrakeIndex = min(max(rel-u.cfg.StopMargin, 0), len(base)-1)
	w.Waypoints = u.decelerate(base, w.BrakeIndex)
	return w
}

func (u Updater) decelerate(base []Waypoint, brakeIdx int) []Waypoint {
	segments := make([]float64, len(base))
	for i := 1; i < len(base); i++ {
		segments[i] = base[i-1].Position.DistanceTo(base[i].Position)
	}
	travelled := floats.CumSum(make([]float64, len(base)), segments)

	shaped := make([]Waypoint, len(base))
	limit := gm.Inf(1)
	for i, wp := range base {
		dist := 0.0
		if i < brakeIdx {
			dist = travelled[brakeIdx] - travelled[i]
		}
		vel := gm.Sqrt(gm.Max(0, 2*u.cfg.MaxDecel*dist))
		if vel < u.cfg.StopVelocity {
			vel = 0
		}
		limit = gm.Min(limit, gm.Min(vel, wp.Speed))
		shaped[i] = Waypoint{Position: wp.Position, Speed: limit}
	}
	return shaped
}
