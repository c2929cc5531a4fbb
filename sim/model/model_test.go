package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahendrafhrz/eldig-sps/dsp/signal"
)

const testDt = 0.1

func input(index int, t, c float64, deps ...float64) Input {
	return Input{
		Time:      t,
		Timestep:  testDt,
		Frequency: Frequency(index),
		Control:   c,
		Deps:      deps,
		Rand:      signal.NewSequence(),
	}
}

func mustNew(t *testing.T, index int) Generator {
	t.Helper()
	g, err := New(index)
	require.NoError(t, err)
	return g
}

func TestNewRejectsUnknownIndex(t *testing.T) {
	for _, idx := range []int{-1, Count, 100} {
		_, err := New(idx)
		assert.Error(t, err, "index %d", idx)
	}
}

func TestRoles(t *testing.T) {
	for i := 0; i < Count; i++ {
		want := Sensor
		if i >= SensorCount {
			want = Actuator
		}
		assert.Equal(t, want, RoleOf(i), "channel %d", i)
	}
	assert.Equal(t, "Sensor", Sensor.String())
	assert.Equal(t, "Actuator", Actuator.String())
}

func TestFrequencies(t *testing.T) {
	assert.InDelta(t, 0.1, Frequency(0), 1e-15)
	assert.InDelta(t, 1.2, Frequency(11), 1e-15)
}

func TestSolenoidPeakForce(t *testing.T) {
	g := mustNew(t, Solenoid)
	// sin(2π·f·t) = 1 at t = 1/(4f)
	tPeak := 1 / (4 * Frequency(Solenoid))
	got := g.Generate(input(Solenoid, tPeak, 1))
	assert.InDelta(t, 20.0, got, 1e-12)
}

func TestHumidityAtZeroPhase(t *testing.T) {
	g := mustNew(t, Humidity)
	// cp = φ at t = 0, so RH = 100·φ/(φ+ε)
	got := g.Generate(input(Humidity, 0, 0.5))
	assert.InDelta(t, 100*50/(50+1e-6), got, 1e-12)
}

func TestSpO2AtZeroPhase(t *testing.T) {
	g := mustNew(t, SpO2)
	// ACred = 0.8, ACir = 0.9
	b := 30.0
	want := 110 - b*(0.8/(0.9/1.1+1e-6))
	assert.InDelta(t, want, g.Generate(input(SpO2, 0, 0.5)), 1e-12)
}

func TestPressurePeakDetectorUsesPreviousState(t *testing.T) {
	g := mustNew(t, Pressure)
	// at t = 0, p = pAmp/2 = 625 for c = 0.5
	first := g.Generate(input(Pressure, 0, 0.5))
	assert.InDelta(t, 0.05*625/10, first, 1e-12)

	second := g.Generate(input(Pressure, 0, 0.5))
	v1 := 0.05 * 625
	assert.InDelta(t, (v1+0.05*(625-v1))/10, second, 1e-12)

	// release path: input below the envelope pulls with 0.15
	g.Reset()
	for range 200 {
		g.Generate(input(Pressure, 0, 1))
	}
	high := g.Generate(input(Pressure, 0, 1)) * 10
	low := g.Generate(input(Pressure, 0, 0)) * 10
	assert.InDelta(t, high+0.15*(250-high), low, 1e-9)
}

func TestIMUDrawsFromSource(t *testing.T) {
	g := mustNew(t, IMU)
	in := input(IMU, 0, 0)
	in.Rand = signal.NewSequence(1)
	// θ = 0, so a = bias + 0.05·(2·1-1)
	assert.InDelta(t, 0.1, g.Generate(in), 1e-12)

	in.Rand = signal.NewSequence(0)
	assert.InDelta(t, 0.0, g.Generate(in), 1e-12)
}

func TestParticleNonNegative(t *testing.T) {
	g := mustNew(t, Particle)
	for k := range 200 {
		v := g.Generate(input(Particle, float64(k)*testDt, 0))
		require.GreaterOrEqual(t, v, 0.0)
	}
}

func TestFlowUsesPressureInput(t *testing.T) {
	g := mustNew(t, Flow)
	assert.Equal(t, []int{Pressure}, g.Inputs())

	cd := 0.75
	got := g.Generate(input(Flow, 0, 0.5, 60))
	assert.InDelta(t, cd*1e-4*math.Sqrt(2*60/1.2), got, 1e-15)

	// ΔP is floored at 10 Pa
	low := g.Generate(input(Flow, 0, 0.5, -5))
	assert.InDelta(t, cd*1e-4*math.Sqrt(2*10/1.2), low, 1e-15)
}

func TestNozzleFirstOrderLag(t *testing.T) {
	g := mustNew(t, Nozzle)
	assert.Equal(t, []int{Flow}, g.Inputs())

	// τ = 1 at c = 1: y converges to a constant input
	var y float64
	for range 300 {
		y = g.Generate(input(Nozzle, 0, 1, 0.02))
	}
	assert.InDelta(t, 0.02, y, 1e-9)

	g.Reset()
	first := g.Generate(input(Nozzle, 0, 1, 0.02))
	assert.InDelta(t, testDt*0.02, first, 1e-15)
}

func TestVibratorBounded(t *testing.T) {
	g := mustNew(t, Vibrator)
	assert.InDelta(t, 1.0, g.Generate(input(Vibrator, 0, 0.5)), 1e-12)
	for k := range 200 {
		v := g.Generate(input(Vibrator, float64(k)*testDt, 0))
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestDoseDisplayDecay(t *testing.T) {
	g := mustNew(t, DoseDisplay)
	// t = 0, source at 0.5: L = L0
	assert.InDelta(t, 125.0, g.Generate(input(DoseDisplay, 0, 0.5)), 1e-12)

	late := g.Generate(input(DoseDisplay, 30, 0.5))
	assert.Less(t, math.Abs(late), 0.04*125)
}

func TestHeaterWeightedConductivity(t *testing.T) {
	g := mustNew(t, Heater)
	// fox = 1 at c = 1: σ = 1e4, value = 10 at zero phase
	assert.InDelta(t, 10.0, g.Generate(input(Heater, 0, 1)), 1e-9)
	// fox = 0.1 at c = 0: σ = 0.1·1e4 + 0.9·5e3 = 5500
	assert.InDelta(t, 5.5, g.Generate(input(Heater, 0, 0)), 1e-9)
}

func TestLEDExponentCapped(t *testing.T) {
	g := mustNew(t, LED)
	want := 1e-12 * (math.Exp(20) - 1) * 1e3
	// qVj/(n·kB·T) is above 20 for every control value
	assert.InDelta(t, want, g.Generate(input(LED, 0, 0)), 1e-12)
	assert.InDelta(t, want, g.Generate(input(LED, 0, 1)), 1e-12)
}

func TestModelsTotal(t *testing.T) {
	gens := Defaults()
	require.Len(t, gens, Count)
	for i, g := range gens {
		for _, c := range []float64{0, 0.5, 1} {
			for k := range 64 {
				deps := make([]float64, len(g.Inputs()))
				v := g.Generate(input(i, float64(k)*testDt, c, deps...))
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "channel %d c=%v k=%d: %v", i, c, k, v)
			}
		}
	}
}

func TestFuncGenerator(t *testing.T) {
	var g Generator = Func(func(in Input) float64 { return in.Time * 2 })
	assert.Nil(t, g.Inputs())
	assert.Equal(t, 3.0, g.Generate(Input{Time: 1.5}))
	g.Reset()
}
