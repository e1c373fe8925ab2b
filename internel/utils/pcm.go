package utils

import "math"

// Float64ToInt32 scales samples in [-1, 1] to full-range 32-bit PCM.
// Values outside the range are clipped.
func Float64ToInt32(input []float64) []int32 {
	output := make([]int32, len(input))
	for i, v := range input {
		v = max(-1, min(1, v))
		output[i] = int32(v * math.MaxInt32)
	}
	return output
}

func Int32ToFloat64(input []int32) []float64 {
	output := make([]float64, len(input))
	for i, v := range input {
		output[i] = float64(v) / math.MaxInt32
	}
	return output
}

// Normalize divides by the largest magnitude so the peak sits at ±1.
// All-zero input is returned as is.
func Normalize(input []float64) []float64 {
	peak := 0.0
	for _, v := range input {
		peak = max(peak, math.Abs(v))
	}
	output := make([]float64, len(input))
	if peak == 0 {
		copy(output, input)
		return output
	}
	for i, v := range input {
		output[i] = v / peak
	}
	return output
}
