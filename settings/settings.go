package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"pfeifer.dev/dbwd/cereal/dbw"
	"pfeifer.dev/dbwd/control"
	"pfeifer.dev/dbwd/params"
	"pfeifer.dev/dbwd/utils"
	"pfeifer.dev/dbwd/waypoints"
)

var (
	Settings = VehicleSettings{}
)

type VehicleSettings struct {
	LogLevel string `json:"log_level"`

	VehicleMass   float64 `json:"vehicle_mass"`
	FuelCapacity  float64 `json:"fuel_capacity"`
	BrakeDeadband float64 `json:"brake_deadband"`
	DecelLimit    float64 `json:"decel_limit"`
	AccelLimit    float64 `json:"accel_limit"`
	WheelRadius   float64 `json:"wheel_radius"`
	WheelBase     float64 `json:"wheel_base"`
	SteerRatio    float64 `json:"steer_ratio"`
	MaxLatAccel   float64 `json:"max_lat_accel"`
	MaxSteerAngle float64 `json:"max_steer_angle"`
	MinSpeed      float64 `json:"min_speed"`

	ThrottleKp  float64 `json:"throttle_kp"`
	ThrottleKi  float64 `json:"throttle_ki"`
	ThrottleKd  float64 `json:"throttle_kd"`
	ThrottleMin float64 `json:"throttle_min"`
	ThrottleMax float64 `json:"throttle_max"`

	VelocityTau        float64 `json:"velocity_tau"`
	VelocitySampleTime float64 `json:"velocity_sample_time"`

	FullStopTorque  float64 `json:"full_stop_torque"`
	CreepVelocity   float64 `json:"creep_velocity"`
	BrakeThrottle   float64 `json:"brake_throttle"`
	StoppedVelocity float64 `json:"stopped_velocity"`

	LookaheadWaypoints int     `json:"lookahead_waypoints"`
	MaxDecel           float64 `json:"max_decel"`
	StopMargin         int     `json:"stop_margin"`
	StopVelocity       float64 `json:"stop_velocity"`
	EndPolicy          string  `json:"end_policy"`

	ControlRate      float64 `json:"control_rate"`
	ReloadTrajectory bool    `json:"reload_trajectory"`
	CruiseSpeed      float64 `json:"cruise_speed"`
}

func (s *VehicleSettings) Default() {
	s.LogLevel = "error"

	s.VehicleMass = 1736.35
	s.FuelCapacity = 13.5
	s.BrakeDeadband = 0.1
	s.DecelLimit = -5
	s.AccelLimit = 1
	s.WheelRadius = 0.2413
	s.WheelBase = 2.8498
	s.SteerRatio = 14.8
	s.MaxLatAccel = 3
	s.MaxSteerAngle = 8
	s.MinSpeed = 0.1

	s.ThrottleKp = 0.3
	s.ThrottleKi = 0.1
	s.ThrottleKd = 0
	s.ThrottleMin = 0
	s.ThrottleMax = 0.2

	s.VelocityTau = 0.5
	s.VelocitySampleTime = 0.02

	s.FullStopTorque = 700
	s.CreepVelocity = 0.1
	s.BrakeThrottle = 0.1
	s.StoppedVelocity = 1e-3

	s.LookaheadWaypoints = 50
	s.MaxDecel = 0.5
	s.StopMargin = 2
	s.StopVelocity = 1
	s.EndPolicy = string(waypoints.Truncate)

	s.ControlRate = 50
	s.ReloadTrajectory = false
	s.CruiseSpeed = 25 * MPH_TO_MS
}

func (s *VehicleSettings) ControlConfig() control.Config {
	return control.Config{
		VehicleMass:   s.VehicleMass,
		FuelCapacity:  s.FuelCapacity,
		BrakeDeadband: s.BrakeDeadband,
		DecelLimit:    s.DecelLimit,
		AccelLimit:    s.AccelLimit,
		WheelRadius:   s.WheelRadius,
		Yaw: control.YawConfig{
			WheelBase:     s.WheelBase,
			SteerRatio:    s.SteerRatio,
			MinSpeed:      s.MinSpeed,
			MaxLatAccel:   s.MaxLatAccel,
			MaxSteerAngle: s.MaxSteerAngle,
		},
		Throttle: control.PIDConfig{
			Kp:  s.ThrottleKp,
			Ki:  s.ThrottleKi,
			Kd:  s.ThrottleKd,
			Min: s.ThrottleMin,
			Max: s.ThrottleMax,
		},
		VelocityTau:        s.VelocityTau,
		VelocitySampleTime: s.VelocitySampleTime,
		FullStopTorque:     s.FullStopTorque,
		CreepVelocity:      s.CreepVelocity,
		BrakeThrottle:      s.BrakeThrottle,
		StoppedVelocity:    s.StoppedVelocity,
	}
}

func (s *VehicleSettings) UpdaterConfig() waypoints.UpdaterConfig {
	return waypoints.UpdaterConfig{
		LookaheadWaypoints: s.LookaheadWaypoints,
		MaxDecel:           s.MaxDecel,
		StopMargin:         s.StopMargin,
		StopVelocity:       s.StopVelocity,
		EndPolicy:          waypoints.EndPolicy(strings.ToLower(s.EndPolicy)),
	}
}

// TickPeriod converts the control rate to a ticker period, falling back to
// 50 Hz for non-positive rates.
func (s *VehicleSettings) TickPeriod() time.Duration {
	rate := s.ControlRate
	if rate <= 0 {
		rate = 50
	}
	return time.Duration(float64(time.Second) / rate)
}

func (s *VehicleSettings) Load() (success bool) {
	return s.LoadFrom(params.Default)
}

func (s *VehicleSettings) LoadFrom(store *params.Store) (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := store.Get(params.DBW_SETTINGS)
	if errors.Is(err, fs.ErrNotExist) {
		utils.Logde(err, "no persisted settings, using defaults")
		return false
	}
	if err != nil {
		utils.Loge(err, "could not read settings")
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Logwe(err, "could not parse persisted settings")
		return false
	}

	s.setLogLevel()

	return true
}

func (s *VehicleSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *VehicleSettings) Save() {
	utils.Loge(s.SaveTo(params.Default), "could not save settings")
}

func (s *VehicleSettings) SaveTo(store *params.Store) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return store.Put(params.DBW_SETTINGS, data)
}

func (s *VehicleSettings) setLogLevel() {
	slog.SetLogLoggerLevel(ParseLogLevel(s.LogLevel))
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// Handle applies a runtime settings command. Vehicle parameters changed here
// only take effect for controllers built afterwards.
func (s *VehicleSettings) Handle(input dbw.DbwIn) {
	switch input.Type() {
	case dbw.DbwInputType_reloadSettings:
		s.Load()
	case dbw.DbwInputType_saveSettings:
		s.Save()
	case dbw.DbwInputType_loadDefaultSettings:
		s.Default()
	case dbw.DbwInputType_setLogLevel:
		logLevel, err := input.Str()
		if err != nil {
			utils.Loge(err, "could not read log level")
			return
		}
		s.LogLevel = logLevel
		s.setLogLevel()
	}
}
