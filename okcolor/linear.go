package okcolor

import "math"

// LinearRGB holds linear-light channel values in [0, 1].
type LinearRGB struct {
	R float64
	G float64
	B float64
}

// 8-bit sRGB to linear lookup.
var linear8 = func() (lut [256]float64) {
	for i := range lut {
		lut[i] = toLinear(float64(i) / 255)
	}
	return lut
}()

// Linear converts 8-bit sRGB channels to linear light.
func Linear(r, g, b uint8) LinearRGB {
	return LinearRGB{
		R: linear8[r],
		G: linear8[g],
		B: linear8[b],
	}
}

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	} else {
		return x / 12.92
	}
}
