package weld2d

import "math"

// Global tuning constants based on meters-kilograms-seconds (MKS) units.

const Pi = math.Pi

// LinearSlop is a small length used as a constraint tolerance. Usually it
// is chosen to be numerically significant, but visually insignificant.
const LinearSlop = 0.005

// AngularSlop is a small angle used as a constraint tolerance. Usually it
// is chosen to be numerically significant, but visually insignificant.
const AngularSlop = 2.0 / 180.0 * Pi

func weldAssert(a bool) {
	if !a {
		panic("weld2d assert")
	}
}
