package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name       string
		velocity   Vec2
		normal     Vec2
		bounciness float64
		expected   Vec2
	}{
		{"head on", V(0, -10), V(0, 1), 1, V(0, 10)},
		{"diagonal mirrors", V(3, -4), V(0, 1), 1, V(3, 4)},
		{"side wall", V(-4, 3), V(1, 0), 1, V(4, 3)},
		{"damped", V(3, -4), V(0, 1), 0.4, V(1.2, 1.6)},
		{"absorbed", V(3, -4), V(0, 1), 0, V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.expected, Reflect(tt.velocity, tt.normal, tt.bounciness))
		})
	}
}

func TestReflectClampsGrazingAngle(t *testing.T) {
	out := Reflect(V(10, -0.01), V(0, 1), 1)

	assert.InDelta(t, MaxBounceAngle, math.Abs(AngleBetween(V(0, 1), out)), eps)
	assert.Greater(t, out.Y(), 0.0, "rebound leaves the surface")
	assert.InDelta(t, V(10, -0.01).Len(), out.Len(), eps)
}

func TestReflectProperties(t *testing.T) {
	normals := []Vec2{V(1, 0), V(-1, 0), V(0, 1), V(0, -1), V(1, 1).Normalize()}
	for _, normal := range normals {
		for deg := 0; deg < 360; deg += 7 {
			angle := float64(deg) * math.Pi / 180
			in := Rotate(V(12, 0), angle)
			for _, b := range []float64{1, 0.75, 0.3} {
				out := Reflect(in, normal, b)
				assert.LessOrEqual(t, out.Len(), in.Len()*b+eps)
				assert.LessOrEqual(t, math.Abs(AngleBetween(normal, out)), MaxBounceAngle+eps)
			}
		}
	}
}

func bouncePair(firstVel, secondVel *Vec2, normal Vec2) (*World, Events) {
	w := NewWorld()
	first := spawnBody(w, BodyRect, V(0, 0), V(10, 1), GroupWall, NewMask(GroupBall))
	second := spawnBody(w, BodyCircle, V(0, 1), V(1, 1), GroupBall, NewMask(GroupWall))
	if firstVel != nil {
		w.SetVelocity(first, *firstVel)
	}
	if secondVel != nil {
		w.SetVelocity(second, *secondVel)
	}
	return w, Events{{Collidees: [2]Entity{first, second}, Result: CollisionResult{Normal: normal}}}
}

func TestApplyBouncesSecondMoving(t *testing.T) {
	v := V(3, -4)
	w, events := bouncePair(nil, &v, V(0, 1))

	skipped := ApplyBounces(w, events, MovingElastic)
	assert.Empty(t, skipped)

	got, _ := w.Velocity(events[0].Collidees[1])
	assertVec(t, V(3, 4), got)
}

func TestApplyBouncesFirstMoving(t *testing.T) {
	v := V(3, 4)
	// Normal points from the moving first collidee into the static one.
	w, events := bouncePair(&v, nil, V(0, 1))

	ApplyBounces(w, events, MovingElastic)

	got, _ := w.Velocity(events[0].Collidees[0])
	assertVec(t, V(3, -4), got)
}

func TestApplyBouncesUsesBouncinessProduct(t *testing.T) {
	v := V(0, -10)
	w, events := bouncePair(nil, &v, V(0, 1))
	for i, b := range []float64{0.5, 0.8} {
		props, _ := w.Collision(events[0].Collidees[i])
		props.Bounciness = b
		w.SetCollision(events[0].Collidees[i], props)
	}

	ApplyBounces(w, events, MovingElastic)

	got, _ := w.Velocity(events[0].Collidees[1])
	assertVec(t, V(0, 4), got)
}

func TestApplyBouncesBothMovingElastic(t *testing.T) {
	tests := []struct {
		name             string
		a, b             Vec2
		expectA, expectB Vec2
	}{
		{"approaching", V(1, 0), V(-1, 0), V(-1, 0), V(1, 0)},
		{"one at rest", V(2, 1), V(0, 0), V(0, 1), V(2, 0)},
		{"separating", V(-1, 0), V(1, 0), V(-1, 0), V(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a, tt.b
			w, events := bouncePair(&a, &b, V(1, 0))

			ApplyBounces(w, events, MovingElastic)

			gotA, _ := w.Velocity(events[0].Collidees[0])
			gotB, _ := w.Velocity(events[0].Collidees[1])
			assertVec(t, tt.expectA, gotA, "first")
			assertVec(t, tt.expectB, gotB, "second")
		})
	}
}

func TestApplyBouncesBothMovingFatal(t *testing.T) {
	a, b := V(1, 0), V(-1, 0)
	w, events := bouncePair(&a, &b, V(1, 0))

	assert.PanicsWithError(t,
		"physics: invariant violated: collision between moving entities 1 and 2",
		func() { ApplyBounces(w, events, MovingFatal) })
}

func TestApplyBouncesNeitherMovingPanics(t *testing.T) {
	w, events := bouncePair(nil, nil, V(0, 1))

	assert.Panics(t, func() { ApplyBounces(w, events, MovingElastic) })
}

func TestApplyBouncesSkipsStale(t *testing.T) {
	v := V(0, -1)
	w, events := bouncePair(nil, &v, V(0, 1))
	w.Despawn(events[0].Collidees[0])

	skipped := ApplyBounces(w, events, MovingElastic)
	require.Len(t, skipped, 1)

	got, _ := w.Velocity(events[0].Collidees[1])
	assertVec(t, V(0, -1), got, "velocity untouched")
}

func TestMovingPolicyString(t *testing.T) {
	assert.Equal(t, "elastic", MovingElastic.String())
	assert.Equal(t, "fatal", MovingFatal.String())
}
