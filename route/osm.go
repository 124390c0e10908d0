package route

import (
	"context"
	"io"
	gm "math"
	"runtime"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"

	m "pfeifer.dev/dbwd/math"
	"pfeifer.dev/dbwd/waypoints"
)

const EARTH_RADIUS = 6378137.0

// LoadOSM builds a trajectory from the first way in an OSM extract with at
// least two nodes. Nodes are projected onto a local plane in metres around
// the first node, and the way's maxspeed tag becomes the waypoint speed.
func LoadOSM(r io.Reader, pbf bool, opts Options) (waypoints.Trajectory, error) {
	var scanner osm.Scanner
	if pbf {
		s := osmpbf.New(context.Background(), r, runtime.GOMAXPROCS(-1))
		s.SkipRelations = true
		scanner = s
	} else {
		scanner = osmxml.New(context.Background(), r)
	}
	defer scanner.Close()

	nodes := map[osm.NodeID]*osm.Node{}
	var way *osm.Way
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = o
		case *osm.Way:
			if way == nil && len(o.Nodes) > 1 {
				way = o
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not scan osm data")
	}
	if way == nil {
		return nil, waypoints.ErrEmptyTrajectory
	}

	speed := ParseMaxSpeed(way.Tags.Find("maxspeed"))
	trajectory := make(waypoints.Trajectory, 0, len(way.Nodes))
	var originLat, originLon float64
	for i, wn := range way.Nodes {
		lat, lon := wn.Lat, wn.Lon
		if n, ok := nodes[wn.ID]; ok {
			lat, lon = n.Lat, n.Lon
		} else if lat == 0 && lon == 0 {
			return nil, errors.Errorf("way %d references missing node %d", way.ID, wn.ID)
		}
		if i == 0 {
			originLat, originLon = lat, lon
		}
		trajectory = append(trajectory, waypoints.Waypoint{
			Position: project(originLat, originLon, lat, lon),
			Speed:    speed,
		})
	}

	return profile(trajectory, opts), nil
}

// project is an equirectangular projection, accurate enough over the length
// of a test track.
func project(originLat, originLon, lat, lon float64) m.Point {
	toRad := gm.Pi / 180
	x := (lon - originLon) * toRad * gm.Cos(originLat*toRad) * EARTH_RADIUS
	y := (lat - originLat) * toRad * EARTH_RADIUS
	return m.NewPoint(x, y, 0)
}

// ParseMaxSpeed converts an OSM maxspeed value to m/s. Unknown values are 0.
func ParseMaxSpeed(maxspeed string) float64 {
	splitSpeed := strings.Split(maxspeed, " ")
	if len(splitSpeed) == 0 {
		return 0
	}

	numeric, err := strconv.ParseUint(splitSpeed[0], 10, 64)
	if err != nil {
		return 0
	}

	if len(splitSpeed) == 1 {
		return 0.277778 * float64(numeric)
	}

	switch splitSpeed[1] {
	case "kph", "km/h", "kmh":
		return 0.277778 * float64(numeric)
	case "mph":
		return 0.44704 * float64(numeric)
	case "knots":
		return 0.514444 * float64(numeric)
	}

	return 0
}
