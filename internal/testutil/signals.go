// Package testutil holds deterministic stimulus and tolerance helpers shared
// by package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates amplitude·sin(2π·freqHz·n/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// BinSine generates a sine that completes exactly bin cycles over length
// samples, so its energy lands in a single DFT bin.
func BinSine(bin int, amplitude float64, length int) []float64 {
	return DeterministicSine(float64(bin), float64(length), amplitude, length)
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude]
// with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Exponential generates x0·exp(rate·n·dt).
func Exponential(x0, rate, dt float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = x0 * math.Exp(rate*float64(i)*dt)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
