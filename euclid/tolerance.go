package euclid

import "math"

// FloatEqualThreshold is the absolute tolerance used by the AlmostEqual
// helpers. Good enough for unit-disk coordinates, not for general use.
const FloatEqualThreshold = 1e-8

func FloatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < FloatEqualThreshold
}

// AlmostEquals compares both coordinates with FloatAlmostEqual.
func (p Point) AlmostEquals(q Point) bool {
	return FloatAlmostEqual(p.X, q.X) && FloatAlmostEqual(p.Y, q.Y)
}
