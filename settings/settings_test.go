package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/dbwd/cereal/dbw"
	"pfeifer.dev/dbwd/params"
	"pfeifer.dev/dbwd/waypoints"
)

func newTestStore(t *testing.T) *params.Store {
	dir := filepath.Join(t.TempDir(), "params", "d")
	require.NoError(t, os.MkdirAll(dir, 0o775))
	return params.NewStore(dir)
}

func newInput(t *testing.T) dbw.DbwIn {
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)
	evt, err := dbw.NewRootEvent(seg)
	require.NoError(t, err)
	in, err := evt.NewDbwIn()
	require.NoError(t, err)
	return in
}

func TestDefaults(t *testing.T) {
	s := VehicleSettings{}
	s.Default()

	cfg := s.ControlConfig()
	assert.Equal(t, 1736.35, cfg.VehicleMass)
	assert.Equal(t, 0.2413, cfg.WheelRadius)
	assert.Equal(t, -5.0, cfg.DecelLimit)
	assert.Equal(t, 14.8, cfg.Yaw.SteerRatio)
	assert.Equal(t, 0.2, cfg.Throttle.Max)
	assert.Equal(t, 700.0, cfg.FullStopTorque)

	up := s.UpdaterConfig()
	assert.Equal(t, 50, up.LookaheadWaypoints)
	assert.Equal(t, 0.5, up.MaxDecel)
	assert.Equal(t, 2, up.StopMargin)
	assert.Equal(t, waypoints.Truncate, up.EndPolicy)

	assert.Equal(t, 20*time.Millisecond, s.TickPeriod())
}

func TestTickPeriodFallback(t *testing.T) {
	s := VehicleSettings{ControlRate: 0}
	assert.Equal(t, 20*time.Millisecond, s.TickPeriod())
	s.ControlRate = 10
	assert.Equal(t, 100*time.Millisecond, s.TickPeriod())
}

func TestLoadMergesDefaults(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put(params.DBW_SETTINGS, []byte(`{"vehicle_mass": 1500, "end_policy": "wrap"}`)))

	s := VehicleSettings{}
	require.True(t, s.LoadFrom(store))
	assert.Equal(t, 1500.0, s.VehicleMass)
	assert.Equal(t, waypoints.Wrap, s.UpdaterConfig().EndPolicy)
	assert.Equal(t, 14.8, s.SteerRatio)
}

func TestLoadMissingKeepsDefaults(t *testing.T) {
	store := newTestStore(t)
	s := VehicleSettings{VehicleMass: 1}
	assert.False(t, s.LoadFrom(store))
	assert.Equal(t, 1736.35, s.VehicleMass)
}

func TestLoadCorruptKeepsDefaults(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put(params.DBW_SETTINGS, []byte(`{"vehicle_mass": `)))

	s := VehicleSettings{VehicleMass: 1}
	assert.False(t, s.LoadFrom(store))
	assert.Equal(t, 1736.35, s.VehicleMass)
}

func TestSaveRoundTrip(t *testing.T) {
	store := newTestStore(t)
	s := VehicleSettings{}
	s.Default()
	s.LookaheadWaypoints = 80
	require.NoError(t, s.SaveTo(store))

	loaded := VehicleSettings{}
	require.True(t, loaded.LoadFrom(store))
	assert.Equal(t, s, loaded)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("nonsense"))
}

func TestHandle(t *testing.T) {
	defer slog.SetLogLoggerLevel(slog.LevelInfo)
	s := VehicleSettings{}
	s.Default()
	s.VehicleMass = 1

	in := newInput(t)
	in.SetType(dbw.DbwInputType_loadDefaultSettings)
	s.Handle(in)
	assert.Equal(t, 1736.35, s.VehicleMass)

	in = newInput(t)
	in.SetType(dbw.DbwInputType_setLogLevel)
	require.NoError(t, in.SetStr("debug"))
	s.Handle(in)
	assert.Equal(t, "debug", s.LogLevel)
}
