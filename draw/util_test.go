package draw

import "math"

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
