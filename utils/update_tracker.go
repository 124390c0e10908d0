package utils

import (
	"time"

	m "pfeifer.dev/dbwd/math"
)

// UpdateTracker smooths the interval between successive updates.
type UpdateTracker struct {
	LastTime time.Duration
	Time     time.Duration
	DiffMA   m.MovingAverage
	now      func() time.Duration
}

func (u *UpdateTracker) Init(maLength int, now func() time.Duration) {
	if now == nil {
		start := time.Now()
		now = func() time.Duration { return time.Since(start) }
	}
	u.now = now
	u.Time = now()
	u.LastTime = u.Time
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update() {
	u.LastTime = u.Time
	u.Time = u.now()
	u.DiffMA.Update(u.Time.Seconds() - u.LastTime.Seconds())
}

// Period is the smoothed update interval in seconds.
func (u *UpdateTracker) Period() float64 {
	return u.DiffMA.Estimate
}
