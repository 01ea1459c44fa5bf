// Package physics implements the collision engine behind the breakout arena:
// shape tests, pair detection, positional correction, velocity reflection,
// curved paddle modulation and motion integration.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector in world units (cells, y pointing up).
type Vec2 = mgl64.Vec2

// MaxBounceAngle bounds the angle between a rebound velocity and the
// collision normal: eight ninths of a right angle.
const MaxBounceAngle = math.Pi / 2 / 9 * 8

// V builds a Vec2 from its components.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// AngleBetween returns the signed angle in radians that rotates a onto b.
// The result lies in [-π, π]; counter-clockwise is positive.
func AngleBetween(a, b Vec2) float64 {
	return math.Atan2(a.X()*b.Y()-a.Y()*b.X(), a.Dot(b))
}

// Rotate turns v counter-clockwise by angle radians.
func Rotate(v Vec2, angle float64) Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// ClampAngle limits angle to [-MaxBounceAngle, MaxBounceAngle].
func ClampAngle(angle float64) float64 {
	return mgl64.Clamp(angle, -MaxBounceAngle, MaxBounceAngle)
}

func absVec(v Vec2) Vec2 {
	return Vec2{math.Abs(v.X()), math.Abs(v.Y())}
}

func lengthSquared(v Vec2) float64 {
	return v.Dot(v)
}
