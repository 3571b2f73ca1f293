package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Normalize returns the unit vector of v. ok is false for vectors too short to have a direction.
func Normalize(v mgl32.Vec3) (n mgl32.Vec3, ok bool) {
	l := v.Len()
	if l < 1e-6 {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// XYLenSqr returns the squared length of the vector projected on the playfield plane.
func XYLenSqr(v mgl32.Vec3) float32 {
	return v.X()*v.X() + v.Y()*v.Y()
}

// DirectionXY returns the unit playfield direction for an angle in degrees, 0 pointing towards -Y
// (up the playfield) and increasing clockwise.
func DirectionXY(angle float32) mgl32.Vec3 {
	rad := mgl32.DegToRad(angle)
	return mgl32.Vec3{math32.Sin(rad), -math32.Cos(rad), 0}
}
