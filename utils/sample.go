// SPDX-License-Identifier: EPL-2.0

package utils

// Int16ToFloat32 scales a 16-bit sample into [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767, so both ends
// stay inside the int16 range.
func Float32ToInt16(x float32) int16 {
	x = min(max(x, -1), 1)
	return int16(x * 32767.0)
}

// CubicInterpolate evaluates the Catmull-Rom spline through four
// consecutive samples at x, the fractional position between y1 and y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
