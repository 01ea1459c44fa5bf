package physics

// MovingPolicy decides how the reflector treats a collision between two
// moving entities.
type MovingPolicy int

const (
	// MovingElastic exchanges the velocity components along the normal as
	// for two equal masses, scaled by the bounciness product.
	MovingElastic MovingPolicy = iota
	// MovingFatal treats the pair as an invariant violation.
	MovingFatal
)

// String returns the policy name.
func (p MovingPolicy) String() string {
	switch p {
	case MovingElastic:
		return "elastic"
	case MovingFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Reflect bounces velocity off a surface with the given unit normal. The
// reversed velocity's angle to the normal is mirrored and clamped to
// MaxBounceAngle; the speed is scaled by bounciness.
func Reflect(velocity, normal Vec2, bounciness float64) Vec2 {
	reversed := velocity.Mul(-1)
	speed := reversed.Len() * bounciness
	angle := ClampAngle(-AngleBetween(normal, reversed))
	return Rotate(normal, angle).Mul(speed)
}

// ApplyBounces updates velocities for every event with exactly one moving
// collidee. The normal is oriented toward the moving side before
// reflecting. Two moving collidees follow policy; two static collidees
// panic with an *InvariantError. Events whose entities are gone or lost
// their collision properties are skipped and returned.
func ApplyBounces(w *World, events Events, policy MovingPolicy) Events {
	var skipped Events
	for _, ev := range events {
		first, okFirst := w.lookup(ev.Collidees[0])
		second, okSecond := w.lookup(ev.Collidees[1])
		if !okFirst || !okSecond || first.collision == nil || second.collision == nil {
			skipped = append(skipped, ev)
			continue
		}

		normal := ev.Result.Normal
		bounciness := first.collision.Bounciness * second.collision.Bounciness

		switch {
		case first.velocity != nil && second.velocity != nil:
			if policy == MovingFatal {
				panic(invariantf("collision between moving entities %d and %d", ev.Collidees[0], ev.Collidees[1]))
			}
			*first.velocity, *second.velocity = exchange(*first.velocity, *second.velocity, normal, bounciness)
		case first.velocity != nil:
			*first.velocity = Reflect(*first.velocity, normal.Mul(-1), bounciness)
		case second.velocity != nil:
			*second.velocity = Reflect(*second.velocity, normal, bounciness)
		default:
			panic(invariantf("collision between static entities %d and %d", ev.Collidees[0], ev.Collidees[1]))
		}
	}
	return skipped
}

// exchange resolves an impact between two equal masses. normal points from
// a toward b. Pairs already separating are left alone.
func exchange(a, b, normal Vec2, restitution float64) (Vec2, Vec2) {
	closing := a.Sub(b).Dot(normal)
	if closing <= 0 {
		return a, b
	}
	impulse := normal.Mul(closing * (1 + restitution) / 2)
	return a.Sub(impulse), b.Add(impulse)
}
