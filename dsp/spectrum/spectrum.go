package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// PeakBin returns the index and value of the largest magnitude. Ties keep
// the lowest index. An empty input returns (-1, 0).
func PeakBin(mag []float64) (int, float64) {
	if len(mag) == 0 {
		return -1, 0
	}
	best := 0
	for k := 1; k < len(mag); k++ {
		if mag[k] > mag[best] {
			best = k
		}
	}
	return best, mag[best]
}

// NormalizeToPeak returns mag scaled so the largest bin is 1. When every
// bin is zero the values are returned unscaled.
func NormalizeToPeak(mag []float64) []float64 {
	out := make([]float64, len(mag))
	_, peak := PeakBin(mag)
	if peak <= 0 {
		copy(out, mag)
		return out
	}
	vecmath.ScaleBlock(out, mag, 1/peak)
	return out
}
