package control

import (
	gm "math"
	"time"

	m "pfeifer.dev/dbwd/math"
)

// Config is everything the controller needs about the vehicle. It is copied
// at construction and never changed afterwards.
type Config struct {
	VehicleMass   float64 `json:"vehicle_mass"`
	FuelCapacity  float64 `json:"fuel_capacity"`
	BrakeDeadband float64 `json:"brake_deadband"`
	DecelLimit    float64 `json:"decel_limit"`
	AccelLimit    float64 `json:"accel_limit"`
	WheelRadius   float64 `json:"wheel_radius"`

	Yaw      YawConfig `json:"yaw"`
	Throttle PIDConfig `json:"throttle"`

	VelocityTau        float64 `json:"velocity_tau"`
	VelocitySampleTime float64 `json:"velocity_sample_time"`

	FullStopTorque  float64 `json:"full_stop_torque"`
	CreepVelocity   float64 `json:"creep_velocity"`
	BrakeThrottle   float64 `json:"brake_throttle"`
	StoppedVelocity float64 `json:"stopped_velocity"`
}

// Controller is the longitudinal and lateral loop. It must only be used from
// one goroutine.
type Controller struct {
	cfg      Config
	yaw      YawController
	throttle *PID
	velocity *LowPassFilter
	clock    Clock
	lastTime time.Duration
}

func NewController(cfg Config, clock Clock) *Controller {
	if clock == nil {
		clock = MonotonicClock()
	}
	cfg.DecelLimit = -gm.Abs(cfg.DecelLimit)
	return &Controller{
		cfg:      cfg,
		yaw:      NewYawController(cfg.Yaw),
		throttle: NewPID(cfg.Throttle),
		velocity: NewLowPassFilter(cfg.VelocityTau, cfg.VelocitySampleTime),
		clock:    clock,
		lastTime: clock(),
	}
}

// Control computes the next actuator command. When disabled the throttle loop
// is reset and the neutral command is returned.
func (c *Controller) Control(state VehicleState, enabled bool, target DriveTarget) Command {
	if !enabled {
		c.throttle.Reset()
		c.lastTime = c.clock()
		return Neutral
	}

	currentVelocity := c.velocity.Filt(state.Velocity)
	steer := c.yaw.Steering(target.LinearVelocity, target.AngularVelocity, currentVelocity)
	velocityError := target.LinearVelocity - currentVelocity

	now := c.clock()
	sampleTime := (now - c.lastTime).Seconds()
	c.lastTime = now

	throttle := c.throttle.Step(velocityError, sampleTime)
	brake := 0.0

	if gm.Abs(target.LinearVelocity) <= c.cfg.StoppedVelocity && currentVelocity < c.cfg.CreepVelocity {
		throttle = 0
		brake = c.cfg.FullStopTorque
	} else if throttle < c.cfg.BrakeThrottle && velocityError < 0 {
		throttle = 0
		decel := m.Clamp(velocityError, c.cfg.DecelLimit, 0)
		brake = gm.Abs(decel) * c.cfg.VehicleMass * c.cfg.WheelRadius
	}

	return Command{Throttle: throttle, Brake: brake, Steer: steer}
}

// FilteredVelocity is the last smoothed velocity sample.
func (c *Controller) FilteredVelocity() float64 {
	return c.velocity.Last()
}
