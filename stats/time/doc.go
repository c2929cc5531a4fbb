// Package time provides summary statistics for fixed-length sample windows
// and the display axis range derived from them.
//
//nolint:revive
package time
