// Package onepole provides first-order recursive smoothers:
//
//	y[n] = y[n-1] + α·(x[n] - y[n-1])
//
// [Smoother] uses a single coefficient; [Follower] switches between an
// attack and a release coefficient depending on whether the input is above
// or below the current output.
package onepole
