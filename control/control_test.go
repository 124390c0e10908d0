package control

import (
	gm "math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Duration
}

func (f *fakeClock) Now() time.Duration {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now += d
}

func testConfig() Config {
	return Config{
		VehicleMass:   1736.35,
		FuelCapacity:  13.5,
		BrakeDeadband: 0.1,
		DecelLimit:    -5,
		AccelLimit:    1,
		WheelRadius:   0.2413,
		Yaw: YawConfig{
			WheelBase:     2.8498,
			SteerRatio:    14.8,
			MinSpeed:      0.1,
			MaxLatAccel:   3,
			MaxSteerAngle: 8,
		},
		Throttle:           PIDConfig{Kp: 0.3, Ki: 0.1, Kd: 0, Min: 0, Max: 0.2},
		VelocityTau:        0.5,
		VelocitySampleTime: 0.02,
		FullStopTorque:     700,
		CreepVelocity:      0.1,
		BrakeThrottle:      0.1,
		StoppedVelocity:    1e-3,
	}
}

func TestLowPassFirstSamplePassesThrough(t *testing.T) {
	f := NewLowPassFilter(0.5, 0.02)
	assert.False(t, f.Ready())
	assert.Equal(t, 7.5, f.Filt(7.5))
	assert.True(t, f.Ready())
	assert.InDelta(t, 7.5*(1-0.02/0.52), f.Filt(0), 1e-12)
}

func TestLowPassConvergesMonotonically(t *testing.T) {
	f := NewLowPassFilter(0.5, 0.02)
	f.Filt(0)
	last := 0.0
	for range 500 {
		out := f.Filt(10)
		require.GreaterOrEqual(t, out, last)
		require.LessOrEqual(t, out, 10.0)
		last = out
	}
	assert.InDelta(t, 10.0, last, 1e-3)
}

func TestPIDOutputBounded(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pid := NewPID(PIDConfig{Kp: 2, Ki: 5, Kd: 0.5, Min: -1, Max: 0.2})
	for range 10000 {
		err := (r.Float64() - 0.5) * 200
		dt := (r.Float64() - 0.1) * 0.5
		out := pid.Step(err, dt)
		require.GreaterOrEqual(t, out, -1.0)
		require.LessOrEqual(t, out, 0.2)
	}
}

func TestPIDIntegralAntiWindup(t *testing.T) {
	pid := NewPID(PIDConfig{Kp: 0, Ki: 0.1, Min: 0, Max: 0.2})
	for range 1000 {
		pid.Step(10, 1)
	}
	assert.InDelta(t, 2.0, pid.Integral(), 1e-12)

	// a windup would need thousands of steps to unwind, bounded it drops at once
	out := pid.Step(-10, 1)
	assert.Equal(t, 0.0, out)
}

func TestPIDResetMatchesFresh(t *testing.T) {
	cfg := PIDConfig{Kp: 0.3, Ki: 0.1, Kd: 0.05, Min: 0, Max: 0.2}
	used := NewPID(cfg)
	for i := range 50 {
		used.Step(float64(i%7)-3, 0.02)
	}
	used.Reset()
	fresh := NewPID(cfg)
	assert.Equal(t, fresh.Step(0.4, 0.02), used.Step(0.4, 0.02))
	assert.Equal(t, fresh.Step(-0.1, 0.03), used.Step(-0.1, 0.03))
}

func TestPIDNonPositiveDtSkipsDerivative(t *testing.T) {
	pid := NewPID(PIDConfig{Kp: 0, Ki: 0, Kd: 1, Min: -100, Max: 100})
	assert.Equal(t, 0.0, pid.Step(5, 0))
	assert.Equal(t, 0.0, pid.Step(10, -1))
	assert.False(t, gm.IsNaN(pid.Step(1, 0)))
}

func TestSteeringBounded(t *testing.T) {
	yaw := NewYawController(testConfig().Yaw)
	r := rand.New(rand.NewSource(2))
	for range 10000 {
		lin := (r.Float64() - 0.2) * 100
		ang := (r.Float64() - 0.5) * 20
		cur := (r.Float64() - 0.2) * 100
		s := yaw.Steering(lin, ang, cur)
		require.False(t, gm.IsNaN(s))
		require.LessOrEqual(t, gm.Abs(s), 8.0)
	}
}

func TestSteeringCases(t *testing.T) {
	cfg := testConfig().Yaw
	yaw := NewYawController(cfg)

	assert.Equal(t, 0.0, yaw.Steering(0, 1, 10), "no target speed")
	assert.Equal(t, 0.0, yaw.Steering(10, 0, 10), "straight")

	// slow enough that the lateral limit is not hit
	expected := gm.Atan(cfg.WheelBase*0.1/5) * cfg.SteerRatio
	assert.InDelta(t, expected, yaw.Steering(5, 0.1, 5), 1e-12)

	// stationary car uses the target speed
	assert.InDelta(t, expected, yaw.Steering(5, 0.1, 0), 1e-12)

	// 20 m/s at 1 rad/s is 20 m/s^2, limited to 3 m/s^2
	limited := gm.Atan(cfg.WheelBase*(3.0/20)/20) * cfg.SteerRatio
	assert.InDelta(t, limited, yaw.Steering(20, 1, 20), 1e-12)
	assert.InDelta(t, -limited, yaw.Steering(20, -1, 20), 1e-12)
}

func TestSteeringNonPositiveMinSpeed(t *testing.T) {
	for _, minSpeed := range []float64{0, -1} {
		cfg := testConfig().Yaw
		cfg.MinSpeed = minSpeed
		yaw := NewYawController(cfg)

		assert.Equal(t, 0.0, yaw.Steering(0, 0.5, 0), "min speed %v", minSpeed)
		assert.Equal(t, 0.0, yaw.Steering(-2, 0.5, -2), "min speed %v", minSpeed)

		s := yaw.Steering(0.5, 0.1, 0)
		assert.False(t, gm.IsNaN(s) || gm.IsInf(s, 0), "min speed %v", minSpeed)
		expected := gm.Atan(cfg.WheelBase*0.1/0.5) * cfg.SteerRatio
		assert.InDelta(t, expected, s, 1e-12)
	}
}

func TestControllerDisabledIsNeutral(t *testing.T) {
	clock := &fakeClock{}
	c := NewController(testConfig(), clock.Now)
	cmds := []DriveTarget{{LinearVelocity: 10, AngularVelocity: 1}, {LinearVelocity: 0}, {LinearVelocity: -3, AngularVelocity: -4}}
	for _, target := range cmds {
		clock.Advance(20 * time.Millisecond)
		assert.Equal(t, Neutral, c.Control(VehicleState{Velocity: 4}, false, target))
	}
}

func TestControllerDisableResetsThrottleLoop(t *testing.T) {
	clock := &fakeClock{}
	c := NewController(testConfig(), clock.Now)
	for range 100 {
		clock.Advance(time.Second)
		c.Control(VehicleState{Velocity: 0.5}, true, DriveTarget{LinearVelocity: 10})
	}
	require.NotZero(t, c.throttle.Integral())
	c.Control(VehicleState{}, false, DriveTarget{})
	assert.Zero(t, c.throttle.Integral())
}

func TestControllerFullStop(t *testing.T) {
	clock := &fakeClock{}
	c := NewController(testConfig(), clock.Now)
	clock.Advance(20 * time.Millisecond)
	cmd := c.Control(VehicleState{Velocity: 0.05}, true, DriveTarget{})
	assert.Equal(t, 0.0, cmd.Throttle)
	assert.Equal(t, 700.0, cmd.Brake)
}

func TestControllerDecelerationBrake(t *testing.T) {
	cfg := testConfig()
	clock := &fakeClock{}
	c := NewController(cfg, clock.Now)
	clock.Advance(20 * time.Millisecond)
	cmd := c.Control(VehicleState{Velocity: 10}, true, DriveTarget{LinearVelocity: 8})
	assert.Equal(t, 0.0, cmd.Throttle)
	assert.InDelta(t, 2.0*cfg.VehicleMass*cfg.WheelRadius, cmd.Brake, 1e-9)
}

func TestControllerDecelerationLimited(t *testing.T) {
	cfg := testConfig()
	clock := &fakeClock{}
	c := NewController(cfg, clock.Now)
	clock.Advance(20 * time.Millisecond)
	cmd := c.Control(VehicleState{Velocity: 20}, true, DriveTarget{LinearVelocity: 5})
	assert.Equal(t, 0.0, cmd.Throttle)
	assert.InDelta(t, 5.0*cfg.VehicleMass*cfg.WheelRadius, cmd.Brake, 1e-9)
}

func TestControllerAccelerates(t *testing.T) {
	clock := &fakeClock{}
	c := NewController(testConfig(), clock.Now)
	clock.Advance(20 * time.Millisecond)
	cmd := c.Control(VehicleState{Velocity: 5}, true, DriveTarget{LinearVelocity: 10, AngularVelocity: 0.1})
	assert.Equal(t, 0.2, cmd.Throttle)
	assert.Equal(t, 0.0, cmd.Brake)
	assert.Greater(t, cmd.Steer, 0.0)
}

func TestControllerActuationExclusive(t *testing.T) {
	clock := &fakeClock{}
	c := NewController(testConfig(), clock.Now)
	r := rand.New(rand.NewSource(3))
	for range 5000 {
		clock.Advance(time.Duration(r.Intn(40)) * time.Millisecond)
		state := VehicleState{Velocity: r.Float64() * 30}
		target := DriveTarget{LinearVelocity: r.Float64() * 30, AngularVelocity: (r.Float64() - 0.5) * 2}
		cmd := c.Control(state, r.Intn(10) > 0, target)
		require.GreaterOrEqual(t, cmd.Throttle, 0.0)
		require.LessOrEqual(t, cmd.Throttle, 0.2)
		require.GreaterOrEqual(t, cmd.Brake, 0.0)
		if cmd.Brake > 0 {
			require.Zero(t, cmd.Throttle)
		}
		require.LessOrEqual(t, gm.Abs(cmd.Steer), 8.0)
	}
}
