package model

import (
	"fmt"
	"math"
)

// Parameter describes how a channel's control value maps to the physical
// quantity shown to the user: value = Offset + Span·c.
type Parameter struct {
	Label  string
	Offset float64
	Span   float64
	Format string // fmt verb applied to the value
}

// Value returns the physical parameter for control value c.
func (p Parameter) Value(c float64) float64 {
	return p.Offset + p.Span*c
}

// Text returns the formatted readout for control value c.
func (p Parameter) Text(c float64) string {
	return fmt.Sprintf(p.Format, p.Value(c))
}

// Reference is a model pole in the s-plane, with an optional zero.
type Reference struct {
	Pole    float64
	Zero    float64 // meaningful only when HasZero
	HasZero bool
}

// ZPole maps the reference pole to the z-plane for timestep dt.
func (r Reference) ZPole(dt float64) float64 {
	return math.Exp(r.Pole * dt)
}

// Descriptor is the static, read-only description of one channel.
type Descriptor struct {
	Index     int
	Role      Role
	Name      string
	Frequency float64
	Parameter Parameter
	AxisLabel string

	// RawMin and RawMax bound the raw value axis for display.
	RawMin, RawMax float64

	reference func(c float64) Reference
}

// Reference returns the channel's reference pole for control value c.
// Only the nozzle pole depends on c.
func (d Descriptor) Reference(c float64) Reference {
	if d.reference == nil {
		return Reference{}
	}
	return d.reference(c)
}

func pole(p float64) func(float64) Reference {
	return func(float64) Reference { return Reference{Pole: p} }
}

func poleZero(p, z float64) func(float64) Reference {
	return func(float64) Reference { return Reference{Pole: p, Zero: z, HasZero: true} }
}

var descriptors = [Count]Descriptor{
	Humidity: {
		Name:      "Humidity",
		Parameter: Parameter{Label: "Humidity (φ - RH setpoint)", Offset: 20, Span: 60, Format: "%.0f%% RH"},
		AxisLabel: "Relative Humidity (%)",
		RawMin:    0,
		RawMax:    120,
		reference: pole(-0.5),
	},
	SpO2: {
		Name:      "SpO2",
		Parameter: Parameter{Label: "SpO2 (B - ratio gain)", Offset: 20, Span: 20, Format: "B=%.1f"},
		AxisLabel: "SpO2 (%)",
		RawMin:    0,
		RawMax:    105,
		reference: pole(-1.0),
	},
	Pressure: {
		Name:      "Pressure",
		Parameter: Parameter{Label: "Pressure (pAmp - ΔP amplitude)", Offset: 500, Span: 1500, Format: "%.0f Pa"},
		AxisLabel: "ΔP (Pa)",
		RawMin:    0,
		RawMax:    200,
		reference: pole(-0.3),
	},
	IMU: {
		Name:      "IMU",
		Parameter: Parameter{Label: "IMU (θmax - tilt angle)", Offset: 0, Span: 45, Format: "%.0f°"},
		AxisLabel: "Acceleration (m/s²)",
		RawMin:    -20,
		RawMax:    20,
		reference: pole(-2.0),
	},
	Particle: {
		Name:      "Particle",
		Parameter: Parameter{Label: "Particle (K - weighting)", Offset: 0.5, Span: 1.5, Format: "K=%.2f"},
		AxisLabel: "Concentration Cm (a.u.)",
		RawMin:    0,
		RawMax:    1000,
		reference: pole(-0.2),
	},
	Flow: {
		Name:      "Flow",
		Parameter: Parameter{Label: "Flow (Cd - discharge coeff)", Offset: 0.5, Span: 0.5, Format: "Cd=%.2f"},
		AxisLabel: "Flow Q (m³/s)",
		RawMin:    -0.005,
		RawMax:    0.03,
		reference: pole(-1.2),
	},
	Nozzle: {
		Name:      "Nozzle",
		Parameter: Parameter{Label: "Nozzle (τs - time constant)", Offset: 0.1, Span: 0.9, Format: "τ=%.2fs"},
		AxisLabel: "Nozzle Output (a.u.)",
		RawMin:    -0.005,
		RawMax:    0.03,
		reference: func(c float64) Reference {
			return Reference{Pole: -1 / math.Max(0.1+0.9*c, minNozzleTau)}
		},
	},
	Solenoid: {
		Name:      "Solenoid",
		Parameter: Parameter{Label: "Solenoid (Imax - coil current)", Offset: 0.2, Span: 1.8, Format: "%.2f A"},
		AxisLabel: "Force (N)",
		RawMin:    0,
		RawMax:    40,
		reference: poleZero(-3.0, -0.5),
	},
	Vibrator: {
		Name:      "Vibrator",
		Parameter: Parameter{Label: "Vibrator (σ² - spread)", Offset: 0.1, Span: 1.5, Format: "σ²=%.2f"},
		AxisLabel: "Vibration Level (a.u.)",
		RawMin:    0,
		RawMax:    1.2,
		reference: pole(-1.5),
	},
	DoseDisplay: {
		Name:      "Dose Display",
		Parameter: Parameter{Label: "Dose Display (L0 - brightness)", Offset: 50, Span: 150, Format: "L0=%.0f"},
		AxisLabel: "Luminance L(t)",
		RawMin:    -10,
		RawMax:    40,
		reference: pole(-0.7),
	},
	Heater: {
		Name:      "Heater",
		Parameter: Parameter{Label: "Heater (t_ox fraction)", Offset: 0.1, Span: 0.9, Format: "t_ox=%.2f"},
		AxisLabel: "Conductivity (S/m, scaled)",
		RawMin:    0,
		RawMax:    20,
		reference: poleZero(-1.0, -0.1),
	},
	LED: {
		Name:      "LED",
		Parameter: Parameter{Label: "LED (Vj - forward voltage)", Offset: 1.5, Span: 1.0, Format: "%.2f V"},
		AxisLabel: "Current (mA)",
		RawMin:    -0.1,
		RawMax:    2,
		reference: pole(-4.0),
	},
}

func init() {
	for i := range descriptors {
		descriptors[i].Index = i
		descriptors[i].Role = RoleOf(i)
		descriptors[i].Frequency = Frequency(i)
	}
}

// Describe returns the descriptor for channel index.
func Describe(index int) (Descriptor, bool) {
	if index < 0 || index >= Count {
		return Descriptor{}, false
	}
	return descriptors[index], true
}

// Lookup returns the index of the channel with the given display name.
func Lookup(name string) (int, bool) {
	for i := range descriptors {
		if descriptors[i].Name == name {
			return i, true
		}
	}
	return 0, false
}
