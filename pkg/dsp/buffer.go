// Package dsp provides the few sample-buffer operations the adapter and the
// bundled engines need. Nothing here allocates.
package dsp

import "math"

// MinDB is treated as silence by DBToGain.
const MinDB = -200.0

// Clear zeroes a buffer
func Clear(buffer []float32) {
	clear(buffer)
}

// Copy copies min(len(dst), len(src)) samples from src to dst.
func Copy(dst, src []float32) {
	copy(dst, src)
}

// Scale multiplies buffer by a constant
func Scale(buffer []float32, scale float32) {
	for i := range buffer {
		buffer[i] *= scale
	}
}

// Multiply scales each sample by the matching entry of gains. Samples past
// len(gains) keep the last gain.
func Multiply(buffer, gains []float32) {
	if len(gains) == 0 {
		return
	}
	n := min(len(buffer), len(gains))
	for i := 0; i < n; i++ {
		buffer[i] *= gains[i]
	}
	Scale(buffer[n:], gains[len(gains)-1])
}

// DBToGain converts decibels to a linear factor. Values at or below MinDB
// return 0.
func DBToGain(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10, db/20)
}

// GainToDB converts a linear factor to decibels, MinDB for values <= 0.
func GainToDB(gain float64) float64 {
	if gain <= 0 {
		return MinDB
	}
	return 20 * math.Log10(gain)
}

// Peak finds the maximum absolute value in a buffer
func Peak(buffer []float32) float32 {
	var peak float32
	for _, s := range buffer {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}
