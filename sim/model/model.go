package model

import (
	"fmt"

	"github.com/mahendrafhrz/eldig-sps/dsp/signal"
)

// Channel indices.
const (
	Humidity = iota
	SpO2
	Pressure
	IMU
	Particle
	Flow
	Nozzle
	Solenoid
	Vibrator
	DoseDisplay
	Heater
	LED

	// Count is the number of channels.
	Count
)

// SensorCount is the number of sensor channels. Indices below it are
// sensors, the rest are actuators.
const SensorCount = 6

// Role tags a channel as sensor or actuator.
type Role int

const (
	Sensor Role = iota
	Actuator
)

func (r Role) String() string {
	switch r {
	case Sensor:
		return "Sensor"
	case Actuator:
		return "Actuator"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// RoleOf returns the role of channel index.
func RoleOf(index int) Role {
	if index < SensorCount {
		return Sensor
	}
	return Actuator
}

// Frequency returns the modulation frequency assigned to channel index:
// 0.1 + 0.1·index Hz.
func Frequency(index int) float64 {
	return 0.1 + 0.1*float64(index)
}

// Input carries everything a generator may read for one tick.
type Input struct {
	// Time is the simulated time after this tick's clock advance.
	Time float64

	Timestep  float64
	Frequency float64

	// Control is the channel control value, already clamped to [0,1].
	Control float64

	// Deps holds this tick's raw values of the channels named by
	// Inputs, in the same order.
	Deps []float64

	// Rand is the engine random source. Models that draw from it do so
	// before the engine draws the channel's noise sample.
	Rand signal.Source
}

// Generator produces one raw sample per tick.
type Generator interface {
	// Inputs lists channels whose current-tick raw value Generate reads.
	Inputs() []int
	// Generate returns the raw value for the tick and updates carry state.
	Generate(in Input) float64
	// Reset restores carry state to its initial value.
	Reset()
}

// New returns a fresh generator for channel index.
func New(index int) (Generator, error) {
	switch index {
	case Humidity:
		return humidity{}, nil
	case SpO2:
		return spo2{}, nil
	case Pressure:
		return &pressure{}, nil
	case IMU:
		return imu{}, nil
	case Particle:
		return particle{}, nil
	case Flow:
		return flow{}, nil
	case Nozzle:
		return &nozzle{}, nil
	case Solenoid:
		return solenoid{}, nil
	case Vibrator:
		return vibrator{}, nil
	case DoseDisplay:
		return &doseDisplay{}, nil
	case Heater:
		return heater{}, nil
	case LED:
		return led{}, nil
	default:
		return nil, fmt.Errorf("model: channel index %d outside [0,%d)", index, Count)
	}
}

// Defaults returns a fresh generator for every channel, indexed by channel.
func Defaults() []Generator {
	out := make([]Generator, Count)
	for i := range out {
		g, err := New(i)
		if err != nil {
			panic(err)
		}
		out[i] = g
	}
	return out
}

// Func adapts a stateless function into a Generator with no inputs.
type Func func(in Input) float64

func (Func) Inputs() []int { return nil }

func (f Func) Generate(in Input) float64 { return f(in) }

func (Func) Reset() {}

// stateless is embedded by models without carry state or inputs.
type stateless struct{}

func (stateless) Inputs() []int { return nil }

func (stateless) Reset() {}
