package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"pfeifer.dev/dbwd/cereal"
	"pfeifer.dev/dbwd/cereal/dbw"
	m "pfeifer.dev/dbwd/math"
	"pfeifer.dev/dbwd/settings"
	"pfeifer.dev/dbwd/waypoints"
)

type sliceSource[T any] struct {
	items []T
	reads atomic.Int64
}

func (s *sliceSource[T]) Read() (obj T, ok bool) {
	i := int(s.reads.Add(1)) - 1
	if i >= len(s.items) {
		return obj, false
	}
	return s.items[i], true
}

func TestPumpAppliesUntilCancelled(t *testing.T) {
	src := &sliceSource[int]{items: []int{1, 2, 3}}
	ctx, cancel := context.WithCancel(context.Background())
	total := atomic.Int64{}
	done := make(chan error)
	go func() {
		done <- pump(ctx, src, time.Millisecond, func(v int) error {
			total.Add(int64(v))
			return nil
		})
	}()

	require.Eventually(t, func() bool { return total.Load() == 6 }, 5*time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("pump did not stop")
	}
}

func TestPumpStopsOnApplyError(t *testing.T) {
	src := &sliceSource[int]{items: []int{1, 2, 3}}
	applied := 0
	err := pump(context.Background(), src, time.Millisecond, func(v int) error {
		applied++
		if v == 2 {
			return assert.AnError
		}
		return nil
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, applied)
}

func TestEmptyBaseWaypointsStopGroup(t *testing.T) {
	state := NewState()
	_, empty, err := cereal.NewEventMessage(true, cereal.LaneCreator)
	require.NoError(t, err)
	require.NoError(t, cereal.SetLane(empty, nil))

	group, ctx := errgroup.WithContext(context.Background())
	group.Go(func() error {
		src := &sliceSource[dbw.Lane]{items: []dbw.Lane{empty}}
		return pump(ctx, src, time.Millisecond, applyBaseWaypoints(state))
	})
	group.Go(func() error {
		<-ctx.Done()
		return nil
	})

	assert.ErrorIs(t, group.Wait(), waypoints.ErrEmptyTrajectory)
	assert.Nil(t, state.Route())
}

func TestApplyPoseAndTwist(t *testing.T) {
	state := NewState()

	_, pose, err := cereal.NewEventMessage(true, cereal.PoseCreator)
	require.NoError(t, err)
	cereal.SetPose(pose, m.NewPoint(1, 2, 3))
	require.NoError(t, applyPose(state)(pose))

	_, twist, err := cereal.NewEventMessage(true, cereal.TwistCreator)
	require.NoError(t, err)
	twist.SetLinear(4)
	twist.SetAngular(0.5)
	require.NoError(t, applyVelocity(state)(twist))
	require.NoError(t, applyTarget(state)(twist))

	snap := state.Snapshot()
	assert.Equal(t, m.NewPoint(1, 2, 3), snap.Pose)
	assert.Equal(t, 4.0, snap.Velocity)
	assert.Equal(t, 0.5, snap.Target.AngularVelocity)
}

func TestApplyTrafficWaypointAndEnabled(t *testing.T) {
	state := NewState()

	_, traffic, err := cereal.NewEventMessage(true, cereal.TrafficWaypointCreator)
	require.NoError(t, err)
	traffic.SetIndex(42)
	require.NoError(t, applyTrafficWaypoint(state)(traffic))
	assert.Equal(t, 42, state.Snapshot().StopIndex)

	traffic.SetIndex(-1)
	require.NoError(t, applyTrafficWaypoint(state)(traffic))
	assert.Equal(t, waypoints.NoStop, state.Snapshot().StopIndex)

	_, enabled, err := cereal.NewEventMessage(true, cereal.DbwEnabledCreator)
	require.NoError(t, err)
	enabled.SetEnabled(true)
	require.NoError(t, applyEnabled(state)(enabled))
	assert.True(t, state.Snapshot().Enabled)
}

func TestApplyBaseWaypoints(t *testing.T) {
	state := NewState()

	_, lane, err := cereal.NewEventMessage(true, cereal.LaneCreator)
	require.NoError(t, err)
	require.NoError(t, cereal.SetLane(lane, straightTrajectory(30, 5)))
	require.NoError(t, applyBaseWaypoints(state)(lane))
	require.NotNil(t, state.Route())
	assert.Equal(t, 30, state.Route().Len())

	_, empty, err := cereal.NewEventMessage(true, cereal.LaneCreator)
	require.NoError(t, err)
	require.NoError(t, cereal.SetLane(empty, nil))
	assert.ErrorIs(t, applyBaseWaypoints(state)(empty), waypoints.ErrEmptyTrajectory)
	state.SetReloadRoute(true)
	assert.ErrorIs(t, applyBaseWaypoints(state)(empty), waypoints.ErrEmptyTrajectory)
	assert.Equal(t, 30, state.Route().Len())
}

func TestApplyInput(t *testing.T) {
	state := NewState()
	s := &settings.VehicleSettings{}
	s.Default()

	_, in, err := cereal.NewEventMessage(true, cereal.DbwInCreator)
	require.NoError(t, err)
	in.SetType(dbw.DbwInputType_setEnabled)
	in.SetBool(true)
	require.NoError(t, applyInput(state, s)(in))
	assert.True(t, state.Snapshot().Enabled)

	s.VehicleMass = 1
	in.SetType(dbw.DbwInputType_loadDefaultSettings)
	require.NoError(t, applyInput(state, s)(in))
	assert.Equal(t, 1736.35, s.VehicleMass)
}
