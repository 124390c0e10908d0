package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	POLL_DELAY           = 5 * time.Millisecond
	STATUS_INTERVAL      = 1 * time.Second
	MPH_TO_MS            = 0.44704
)
