// Package sim runs the inhaler channel simulation.
//
// An [Engine] owns twelve channels, their generators and carry state, a
// shared ring of raw, noisy and filtered history, and the analysis stages
// that read it. [Engine.Tick] advances everything by one timestep as a
// single atomic update; readers never observe a partially written tick.
//
// A [Runner] drives an engine at a fixed wall-clock interval and reports
// each tick through a callback.
package sim
