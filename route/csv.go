package route

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	m "pfeifer.dev/dbwd/math"
	"pfeifer.dev/dbwd/waypoints"
)

// LoadCSV reads x,y,z[,yaw[,speed]] rows. A leading header row is skipped.
func LoadCSV(r io.Reader, opts Options) (waypoints.Trajectory, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	trajectory := waypoints.Trajectory{}
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not read route csv")
		}
		if len(record) < 3 {
			return nil, errors.Errorf("route csv line %d: expected at least 3 columns, got %d", line, len(record))
		}
		values := make([]float64, len(record))
		var parseErr error
		for i, field := range record {
			values[i], parseErr = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if parseErr != nil {
				break
			}
		}
		if parseErr != nil {
			if line == 1 {
				continue
			}
			return nil, errors.Wrapf(parseErr, "route csv line %d", line)
		}

		wp := waypoints.Waypoint{Position: m.NewPoint(values[0], values[1], values[2])}
		if len(values) > 4 {
			wp.Speed = values[4]
		}
		trajectory = append(trajectory, wp)
	}
	if len(trajectory) == 0 {
		return nil, waypoints.ErrEmptyTrajectory
	}

	return profile(trajectory, opts), nil
}
