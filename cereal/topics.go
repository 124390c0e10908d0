package cereal

import (
	"time"
)

const (
	CURRENT_POSE     = "currentPose"
	CURRENT_VELOCITY = "currentVelocity"
	TWIST_CMD        = "twistCmd"
	BASE_WAYPOINTS   = "baseWaypoints"
	TRAFFIC_WAYPOINT = "trafficWaypoint"
	DBW_ENABLED      = "dbwEnabled"
	DBW_IN           = "dbwIn"
	DBW_CMD          = "dbwCmd"
	FINAL_WAYPOINTS  = "finalWaypoints"
	DBW_STATUS       = "dbwStatus"
)

var processStart = time.Now()

// GetTime is a monotonic timestamp in nanoseconds.
func GetTime() uint64 {
	return uint64(time.Since(processStart).Nanoseconds())
}
