package raf

// point2d is the small 2D-vector helper MulAlgo3 uses to track the running
// (||.||_1, signed-sum) accumulator while sweeping sorted noise terms.
// Grounded on original_source/src/geometry/point2d.h.
type point2d struct {
	x, y float64
}

func point2dFMA(alpha float64, a, b point2d) point2d {
	return point2d{x: alpha*a.x + b.x, y: alpha*a.y + b.y}
}

// findLine returns the slope m and intercept q of the line through a, b.
func findLine(a, b point2d) (m, q float64) {
	m = (b.y - a.y) / (b.x - a.x)
	q = a.y - m*a.x
	return m, q
}
