// Package buffer provides the fixed-capacity sample history used by the
// simulation engine. A [Ring] keeps one circular sequence per channel and
// per processing stage, and every sequence shares a single write cursor so
// slot k of all sequences belongs to the same tick.
package buffer
