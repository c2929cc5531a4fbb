package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	d, ok := Describe(Solenoid)
	require.True(t, ok)
	assert.Equal(t, "Solenoid", d.Name)
	assert.Equal(t, Actuator, d.Role)
	assert.InDelta(t, 0.8, d.Frequency, 1e-15)
	assert.Equal(t, "Force (N)", d.AxisLabel)
	assert.Equal(t, 0.0, d.RawMin)
	assert.Equal(t, 40.0, d.RawMax)

	_, ok = Describe(Count)
	assert.False(t, ok)
	_, ok = Describe(-1)
	assert.False(t, ok)
}

func TestDescriptorsComplete(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < Count; i++ {
		d, ok := Describe(i)
		require.True(t, ok)
		assert.Equal(t, i, d.Index)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Parameter.Label)
		assert.NotEmpty(t, d.AxisLabel)
		assert.Less(t, d.RawMin, d.RawMax, d.Name)
		assert.False(t, seen[d.Name], "duplicate name %q", d.Name)
		seen[d.Name] = true

		idx, ok := Lookup(d.Name)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	_, ok := Lookup("Thermometer")
	assert.False(t, ok)
}

func TestParameterText(t *testing.T) {
	tests := []struct {
		index int
		c     float64
		want  string
	}{
		{Humidity, 0.75, "65% RH"},
		{SpO2, 0.5, "B=30.0"},
		{Pressure, 1, "2000 Pa"},
		{IMU, 1, "45°"},
		{Flow, 0.5, "Cd=0.75"},
		{Nozzle, 1, "τ=1.00s"},
		{Solenoid, 0.5, "1.10 A"},
		{DoseDisplay, 0, "L0=50"},
		{LED, 0.25, "1.75 V"},
	}
	for _, tt := range tests {
		d, _ := Describe(tt.index)
		assert.Equal(t, tt.want, d.Parameter.Text(tt.c), d.Name)
	}
}

func TestReferencePoles(t *testing.T) {
	d, _ := Describe(Solenoid)
	r := d.Reference(0.5)
	assert.Equal(t, -3.0, r.Pole)
	assert.True(t, r.HasZero)
	assert.Equal(t, -0.5, r.Zero)

	d, _ = Describe(LED)
	r = d.Reference(0.5)
	assert.Equal(t, -4.0, r.Pole)
	assert.False(t, r.HasZero)
	assert.InDelta(t, math.Exp(-0.4), r.ZPole(0.1), 1e-15)

	d, _ = Describe(Nozzle)
	assert.InDelta(t, -10.0, d.Reference(0).Pole, 1e-12)
	assert.InDelta(t, -1.0, d.Reference(1).Pole, 1e-12)
}
