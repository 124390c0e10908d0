package control

import (
	gm "math"

	m "pfeifer.dev/dbwd/math"
)

// minSteeringSpeed is the lowest MinSpeed accepted, so speeds used as
// divisors stay positive.
const minSteeringSpeed = 1e-3

type YawConfig struct {
	WheelBase     float64 `json:"wheel_base"`
	SteerRatio    float64 `json:"steer_ratio"`
	MinSpeed      float64 `json:"min_speed"`
	MaxLatAccel   float64 `json:"max_lat_accel"`
	MaxSteerAngle float64 `json:"max_steer_angle"`
}

// YawController maps a requested yaw rate to a steering wheel angle using a
// kinematic bicycle model.
type YawController struct {
	cfg YawConfig
}

func NewYawController(cfg YawConfig) YawController {
	cfg.MaxSteerAngle = gm.Abs(cfg.MaxSteerAngle)
	cfg.MaxLatAccel = gm.Abs(cfg.MaxLatAccel)
	cfg.MinSpeed = max(cfg.MinSpeed, minSteeringSpeed)
	return YawController{cfg: cfg}
}

func (y YawController) angle(curvature float64) float64 {
	a := gm.Atan(y.cfg.WheelBase*curvature) * y.cfg.SteerRatio
	return m.Clamp(a, -y.cfg.MaxSteerAngle, y.cfg.MaxSteerAngle)
}

// Steering returns the steering wheel angle in radians. The target yaw rate
// is rescaled to the current speed and limited by the lateral acceleration
// budget before being turned into a curvature.
func (y YawController) Steering(linearVelocity, angularVelocity, currentVelocity float64) float64 {
	if linearVelocity <= y.cfg.MinSpeed {
		return 0
	}
	v := currentVelocity
	if v <= y.cfg.MinSpeed {
		v = linearVelocity
	}

	yawRate := v * angularVelocity / linearVelocity
	maxYawRate := y.cfg.MaxLatAccel / v
	yawRate = m.Clamp(yawRate, -maxYawRate, maxYawRate)
	if yawRate == 0 {
		return 0
	}
	return y.angle(yawRate / v)
}
