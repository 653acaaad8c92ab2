package gamemath

// Advance moves a point by its velocity and reflects the velocity on any axis whose
// new coordinate left [0, width] or [0, height]. The position itself is not corrected,
// so a point can sit outside the bounds for one frame before heading back.
func Advance(x, y, dx, dy, width, height float64) (nx, ny, ndx, ndy float64) {
	nx, ny = x+dx, y+dy
	ndx, ndy = dx, dy
	if nx < 0 || nx > width {
		ndx = -dx
	}
	if ny < 0 || ny > height {
		ndy = -dy
	}
	return nx, ny, ndx, ndy
}

// RandRange maps u in [0, 1) onto [lo, hi).
func RandRange(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}
