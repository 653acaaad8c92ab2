package gamemath

// Lerp moves current toward target by fraction k of the remaining distance.
// For k in (0, 1] repeated application converges on target without overshoot.
func Lerp(current, target, k float64) float64 {
	return current + (target-current)*k
}

// LerpPoint applies Lerp to both axes.
func LerpPoint(x, y, targetX, targetY, k float64) (float64, float64) {
	return Lerp(x, targetX, k), Lerp(y, targetY, k)
}

// Clamp restricts v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Near reports whether a and b differ by less than eps.
func Near(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}

// ScaleRect scales the rectangle (x, y, w, h) by s around its center.
func ScaleRect(x, y, w, h, s float64) (float64, float64, float64, float64) {
	sw, sh := w*s, h*s
	return x + (w-sw)/2, y + (h-sh)/2, sw, sh
}
