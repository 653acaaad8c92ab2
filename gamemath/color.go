package gamemath

import "image/color"

// LerpRGBA blends a toward b; t=0 gives a and t=1 gives b. t is clamped to [0, 1].
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(Lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// WithAlpha returns c with its alpha scaled by f in [0, 1], premultiplied.
func WithAlpha(c color.RGBA, f float64) color.RGBA {
	f = Clamp(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
