package control

import (
	m "pfeifer.dev/dbwd/math"
)

type PIDConfig struct {
	Kp  float64 `json:"kp"`
	Ki  float64 `json:"ki"`
	Kd  float64 `json:"kd"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PID is a velocity loop with a saturated output. The integral is bounded so
// that its contribution alone can never push the output past Min or Max.
type PID struct {
	cfg PIDConfig

	integral  float64
	lastError float64
}

func NewPID(cfg PIDConfig) *PID {
	if cfg.Min > cfg.Max {
		cfg.Min, cfg.Max = cfg.Max, cfg.Min
	}
	return &PID{cfg: cfg}
}

func (p *PID) Reset() {
	p.integral = 0
	p.lastError = 0
}

// Step advances the loop by dt seconds. A non-positive dt neither integrates
// nor differentiates.
func (p *PID) Step(err, dt float64) float64 {
	derivative := 0.0
	if dt > 0 {
		p.integral = p.boundIntegral(p.integral + err*dt)
		derivative = (err - p.lastError) / dt
	}
	p.lastError = err

	val := p.cfg.Kp*err + p.cfg.Ki*p.integral + p.cfg.Kd*derivative
	return m.Clamp(val, p.cfg.Min, p.cfg.Max)
}

func (p *PID) Integral() float64 {
	return p.integral
}

func (p *PID) boundIntegral(integral float64) float64 {
	if p.cfg.Ki == 0 {
		return integral
	}
	lo, hi := p.cfg.Min/p.cfg.Ki, p.cfg.Max/p.cfg.Ki
	if lo > hi {
		lo, hi = hi, lo
	}
	return m.Clamp(integral, lo, hi)
}
