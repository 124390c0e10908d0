package utils

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackedStateTransitions(t *testing.T) {
	var enabled TrackedState[bool]

	assert.False(t, enabled.Update(false))
	assert.False(t, enabled.Rising())

	assert.True(t, enabled.Update(true))
	assert.True(t, enabled.Rising())
	assert.False(t, enabled.Falling())

	assert.False(t, enabled.Update(true))
	assert.False(t, enabled.Rising())

	assert.True(t, enabled.Update(false))
	assert.True(t, enabled.Falling())
	assert.Equal(t, uint64(2), enabled.Changes)
}

func TestUpdateTrackerPeriod(t *testing.T) {
	now := time.Duration(0)
	tracker := UpdateTracker{}
	tracker.Init(4, func() time.Duration { return now })

	for range 8 {
		now += 20 * time.Millisecond
		tracker.Update()
	}
	assert.InDelta(t, 0.02, tracker.Period(), 1e-9)
}

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestLogHelpers(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	Loge(nil, "nothing")
	Logwe(nil, "nothing")
	Logde(nil, "nothing")
	assert.Empty(t, buf.String())

	Loge(assert.AnError, "publish failed", "topic", "dbwCmd")
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "msg=\"publish failed\"")
	assert.Contains(t, buf.String(), "topic=dbwCmd")

	buf.Reset()
	Logwe(assert.AnError, "dropped")
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	Logde(assert.AnError, "missing")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestCheck(t *testing.T) {
	captureLogs(t, slog.LevelError)
	assert.NotPanics(t, func() { Check(nil) })
	assert.Panics(t, func() { Check(assert.AnError) })
}
