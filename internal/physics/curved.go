package physics

import "github.com/go-gl/mathgl/mgl64"

// ApplyCurvedBounces bends the rebound of entities that hit a CurvedBounce
// surface. It runs after ApplyBounces and replaces the reflected direction
// with one whose angle to the surface normal is shifted by up to Curvature,
// in proportion to how far from the surface center the impact happened.
// Speed is preserved. Events without a curved surface facing a moving
// collidee are ignored; events with despawned entities are skipped and
// returned.
func ApplyCurvedBounces(w *World, events Events) Events {
	var skipped Events
	for _, ev := range events {
		first, okFirst := w.lookup(ev.Collidees[0])
		second, okSecond := w.lookup(ev.Collidees[1])
		if !okFirst || !okSecond {
			skipped = append(skipped, ev)
			continue
		}

		var surface, mover *record
		var normal Vec2
		switch {
		case first.curved != nil && second.velocity != nil:
			surface, mover, normal = first, second, ev.Result.Normal
		case second.curved != nil && first.velocity != nil:
			surface, mover, normal = second, first, ev.Result.Normal.Mul(-1)
		default:
			continue
		}

		ratio := impactRatio(normal, surface.transform, mover.transform.Position, ev)
		velocity := *mover.velocity
		angle := ClampAngle(AngleBetween(normal, velocity) + ratio*surface.curved.Curvature)
		*mover.velocity = Rotate(normal, angle).Mul(velocity.Len())
	}
	return skipped
}

// impactRatio returns where along the struck face the impact happened,
// from -1 to 1, signed so that a positive ratio turns the rebound
// counter-clockwise. Only axis-aligned normals are supported.
func impactRatio(normal Vec2, surface Transform, impact Vec2, ev CollisionEvent) float64 {
	half := surface.Scale.Mul(0.5)
	center := surface.Position

	var ratio float64
	switch normal {
	case Vec2{1, 0}:
		ratio = (center.Y() - impact.Y()) / half.Y()
	case Vec2{-1, 0}:
		ratio = (impact.Y() - center.Y()) / half.Y()
	case Vec2{0, 1}:
		ratio = (center.X() - impact.X()) / half.X()
	case Vec2{0, -1}:
		ratio = (impact.X() - center.X()) / half.X()
	default:
		panic(invariantf("curved surface hit along non axis-aligned normal %v (%d, %d)", normal, ev.Collidees[0], ev.Collidees[1]))
	}

	return mgl64.Clamp(ratio, -1, 1)
}
