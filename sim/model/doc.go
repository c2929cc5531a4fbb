// Package model holds the twelve channel models of the inhaler simulation.
//
// Each channel index maps to one [Generator]. Six are sensors, six are
// actuators. A generator produces one raw value per tick from the simulated
// time, its control value in [0,1], its modulation frequency and whatever
// carry state it owns. Generators that read another channel's raw value for
// the same tick declare it through [Generator.Inputs]; the engine evaluates
// declared inputs first.
//
// Static display data for every channel (name, role, parameter readout,
// axis label, raw axis range, reference pole) lives in the [Descriptor]
// table returned by [Describe].
package model
