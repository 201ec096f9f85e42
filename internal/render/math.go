package render

import "math"

func cos32(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
