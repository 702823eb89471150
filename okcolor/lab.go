// based on:
// https://bottosson.github.io/posts/oklab/

package okcolor

import "math"

type Lab struct {
	L float64 // perceived lightness
	A float64 // how green/red the color is
	B float64 // how blue/yellow the color is
}

// FromRGB converts an 8-bit sRGB color to Oklab.
func FromRGB(r, g, b uint8) Lab {
	return FromLinear(Linear(r, g, b))
}

func FromLinear(col LinearRGB) Lab {
	var l, m, s float64
	l = math.Cbrt(0.4122214708*col.R + 0.5363325363*col.G + 0.0514459929*col.B)
	m = math.Cbrt(0.2119034982*col.R + 0.6806995451*col.G + 0.1073969566*col.B)
	s = math.Cbrt(0.0883024619*col.R + 0.2817188376*col.G + 0.6299787005*col.B)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// Distance is the Euclidean distance in Oklab (deltaE OK).
func (lc Lab) Distance(o Lab) float64 {
	dL := lc.L - o.L
	da := lc.A - o.A
	db := lc.B - o.B
	return math.Sqrt(dL*dL + da*da + db*db)
}
