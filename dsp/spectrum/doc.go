// Package spectrum computes magnitude spectra of fixed-length sample
// windows.
//
// The default [Analyzer] backend evaluates the discrete Fourier transform
// directly, bin by bin, for the first N/2 bins:
//
//	|X[k]| / N,  X[k] = Σ x[t]·exp(-2πi·k·t/N)
//
// An FFT plan backend produces the same bins and is available for
// cross-checking and larger sizes.
package spectrum
