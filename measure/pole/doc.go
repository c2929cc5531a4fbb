// Package pole estimates a first-order system pole from two consecutive
// samples.
//
// Assuming x[n] = x[n-1]·exp(p·dt), the ratio a = x[n]/x[n-1] gives
//
//	s = ln(a)/dt    (continuous-time pole)
//	z = exp(s·dt)   (discrete-time pole)
//
// The divisor is floored, the ratio and the z estimate are clamped, so the
// estimate is defined for every finite input. This is a slope-in-log-space
// identifier, not a general system-identification method.
package pole
