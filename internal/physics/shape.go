package physics

import "math"

// Body is the collision shape of an entity.
type Body int

const (
	BodyRect   Body = iota // Axis-aligned rectangle sized by Transform.Scale
	BodyCircle             // Circle with diameter Transform.Scale.X
)

// String returns the body name.
func (b Body) String() string {
	switch b {
	case BodyRect:
		return "Rect"
	case BodyCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// CollisionResult describes one overlap between two shapes.
type CollisionResult struct {
	Normal     Vec2 // Unit vector pointing from the first shape toward the second
	Correction Vec2 // Penetration along ±Normal; magnitude is the overlap depth
}

// fallbackNormal is used when two circle centers coincide.
var fallbackNormal = Vec2{1, 0}

// CircleCircle tests two circles given their centers and sizes. Only the X
// component of the size is used, as the diameter.
func CircleCircle(aPos, aSize, bPos, bSize Vec2) (CollisionResult, bool) {
	aRadius := aSize.X() / 2
	bRadius := bSize.X() / 2
	offset := bPos.Sub(aPos)
	distance := offset.Len()

	if distance >= aRadius+bRadius {
		return CollisionResult{}, false
	}

	normal := fallbackNormal
	if distance > 0 {
		normal = offset.Mul(1 / distance)
	}
	return CollisionResult{
		Normal:     normal,
		Correction: normal.Mul(aRadius + bRadius - distance),
	}, true
}

// RectRect tests two axis-aligned rectangles given their centers and sizes.
// The axis with the smaller penetration wins; ties resolve to the X axis.
func RectRect(aPos, aSize, bPos, bSize Vec2) (CollisionResult, bool) {
	aMin, aMax := bounds(aPos, aSize)
	bMin, bMax := bounds(bPos, bSize)

	overlaps := aMin.X() < bMax.X() && aMax.X() > bMin.X() &&
		aMin.Y() < bMax.Y() && aMax.Y() > bMin.Y()
	if !overlaps {
		return CollisionResult{}, false
	}

	xDir, xDepth := axisPenetration(aMin.X(), aMax.X(), bMin.X(), bMax.X(), aPos.X(), bPos.X())
	yDir, yDepth := axisPenetration(aMin.Y(), aMax.Y(), bMin.Y(), bMax.Y(), aPos.Y(), bPos.Y())

	if yDepth < xDepth {
		normal := Vec2{0, yDir}
		return CollisionResult{Normal: normal, Correction: normal.Mul(yDepth)}, true
	}
	normal := Vec2{xDir, 0}
	return CollisionResult{Normal: normal, Correction: normal.Mul(xDepth)}, true
}

// axisPenetration returns the direction (+1 when b lies ahead of a) and the
// overlap depth of two intervals along one axis. Partial overlaps measure
// the overlapped edge; containment falls back to comparing centers.
func axisPenetration(aMin, aMax, bMin, bMax, aCenter, bCenter float64) (float64, float64) {
	switch {
	case aMin < bMin && aMax > bMin && aMax < bMax:
		return 1, math.Abs(bMin - aMax)
	case aMin > bMin && aMin < bMax && aMax > bMax:
		return -1, math.Abs(aMin - bMax)
	case aCenter < bCenter:
		return 1, math.Abs(bMin - aMax)
	default:
		return -1, math.Abs(aMin - bMax)
	}
}

// RectCircle tests an axis-aligned rectangle against a circle. The normal
// points from the rectangle toward the circle and is always axis-aligned.
func RectCircle(rectPos, rectSize, circlePos, circleSize Vec2) (CollisionResult, bool) {
	half := rectSize.Mul(0.5)
	radius := circleSize.X() / 2
	distance := absVec(circlePos.Sub(rectPos))

	if distance.X() > half.X()+radius || distance.Y() > half.Y()+radius {
		return CollisionResult{}, false
	}

	// Beyond both edges the circle can only reach the corner.
	if distance.X() > half.X() && distance.Y() > half.Y() {
		if lengthSquared(distance.Sub(half)) > radius*radius {
			return CollisionResult{}, false
		}
	}

	adjusted := distance.Sub(half)
	if adjusted.X() > adjusted.Y() {
		normal := Vec2{-1, 0}
		if circlePos.X() > rectPos.X() {
			normal = Vec2{1, 0}
		}
		return CollisionResult{Normal: normal, Correction: normal.Mul(radius - adjusted.X())}, true
	}

	normal := Vec2{0, -1}
	if circlePos.Y() > rectPos.Y() {
		normal = Vec2{0, 1}
	}
	return CollisionResult{Normal: normal, Correction: normal.Mul(radius - adjusted.Y())}, true
}

func bounds(center, size Vec2) (Vec2, Vec2) {
	half := size.Mul(0.5)
	return center.Sub(half), center.Add(half)
}
