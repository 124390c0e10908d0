// Package route loads base waypoints for the window generator from track
// files and assigns them a speed profile that comes to rest at the end.
package route

import (
	gm "math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"pfeifer.dev/dbwd/waypoints"
)

type Options struct {
	// CruiseSpeed is used for waypoints without a speed of their own.
	CruiseSpeed float64
	// MaxDecel shapes the approach to the final waypoint. Zero leaves the
	// speeds untouched.
	MaxDecel float64
	// Loop marks a closed track, which never decelerates at the end.
	Loop bool
}

var ErrUnknownFormat = errors.New("unknown route file format")

// LoadFile picks a loader from the file extension.
func LoadFile(path string, opts Options) (waypoints.Trajectory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open route file")
	}
	defer file.Close()

	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".csv"):
		return LoadCSV(file, opts)
	case strings.HasSuffix(name, ".osm.pbf"), strings.HasSuffix(name, ".pbf"):
		return LoadOSM(file, true, opts)
	case strings.HasSuffix(name, ".osm"), strings.HasSuffix(name, ".xml"):
		return LoadOSM(file, false, opts)
	}
	return nil, errors.Wrap(ErrUnknownFormat, path)
}

// profile fills missing speeds with the cruise speed and, for terminal
// routes, caps every speed by the braking envelope into the last waypoint.
func profile(t waypoints.Trajectory, opts Options) waypoints.Trajectory {
	for i := range t {
		if t[i].Speed <= 0 {
			t[i].Speed = opts.CruiseSpeed
		}
	}
	if opts.Loop || opts.MaxDecel == 0 || len(t) == 0 {
		return t
	}

	dist := make([]float64, len(t))
	for i := len(t) - 1; i > 0; i-- {
		dist[i-1] = t[i-1].Position.DistanceTo(t[i].Position)
	}
	// remaining distance to the end, accumulated from the back
	floats.Reverse(dist)
	floats.CumSum(dist, dist)
	floats.Reverse(dist)
	for i := range t {
		envelope := gm.Sqrt(2 * gm.Abs(opts.MaxDecel) * dist[i])
		t[i].Speed = gm.Min(t[i].Speed, envelope)
	}
	return t
}
