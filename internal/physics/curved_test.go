package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paddleCurvature = math.Pi / 3

func curvedPair(ballX float64, velocity Vec2) (*World, Entity, Entity) {
	w := NewWorld()
	paddle := spawnBody(w, BodyRect, V(0, 0), V(10, 2), GroupPaddle, NewMask(GroupBall))
	w.SetCurved(paddle, CurvedBounce{Curvature: paddleCurvature})
	ball := spawnBall(w, V(ballX, 1.4), velocity)
	return w, paddle, ball
}

func TestApplyCurvedBounces(t *testing.T) {
	tests := []struct {
		name     string
		ballX    float64
		expected Vec2
	}{
		{"center keeps angle", 0, V(0, 10)},
		{"right edge turns right", 5, Rotate(V(0, 10), -paddleCurvature)},
		{"left edge turns left", -5, Rotate(V(0, 10), paddleCurvature)},
		{"beyond edge clamps ratio", 7, Rotate(V(0, 10), -paddleCurvature)},
		{"halfway", 2.5, Rotate(V(0, 10), -paddleCurvature/2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, paddle, ball := curvedPair(tt.ballX, V(0, 10))
			events := Events{{Collidees: [2]Entity{paddle, ball}, Result: CollisionResult{Normal: V(0, 1)}}}

			skipped := ApplyCurvedBounces(w, events)
			assert.Empty(t, skipped)

			got, _ := w.Velocity(ball)
			assertVec(t, tt.expected, got)
		})
	}
}

func TestApplyCurvedBouncesAddsCurvature(t *testing.T) {
	normal := V(0, 1)
	for _, start := range []float64{-0.3, -0.1, 0, 0.2, 0.3} {
		for _, ballX := range []float64{-5, 0, 5} {
			in := Rotate(normal, start).Mul(8)
			w, paddle, ball := curvedPair(ballX, in)
			events := Events{{Collidees: [2]Entity{paddle, ball}, Result: CollisionResult{Normal: normal}}}

			ApplyCurvedBounces(w, events)

			got, _ := w.Velocity(ball)
			ratio := -ballX / 5
			assert.InDelta(t, start+ratio*paddleCurvature, AngleBetween(normal, got), eps, "start=%v x=%v", start, ballX)
			assert.InDelta(t, 8, got.Len(), eps, "speed preserved")
		}
	}
}

func TestApplyCurvedBouncesClampsAngle(t *testing.T) {
	normal := V(0, 1)
	w, paddle, ball := curvedPair(-5, Rotate(normal, 1.2).Mul(10))
	events := Events{{Collidees: [2]Entity{paddle, ball}, Result: CollisionResult{Normal: normal}}}

	ApplyCurvedBounces(w, events)

	got, _ := w.Velocity(ball)
	assert.InDelta(t, MaxBounceAngle, AngleBetween(normal, got), eps)
}

func TestApplyCurvedBouncesSideFaces(t *testing.T) {
	w := NewWorld()
	paddle := spawnBody(w, BodyRect, V(0, 0), V(2, 10), GroupPaddle, NewMask(GroupBall))
	w.SetCurved(paddle, CurvedBounce{Curvature: paddleCurvature})
	right := spawnBall(w, V(1.4, -5), V(10, 0))
	left := spawnBall(w, V(-1.4, -5), V(-10, 0))

	events := Events{
		{Collidees: [2]Entity{paddle, right}, Result: CollisionResult{Normal: V(1, 0)}},
		{Collidees: [2]Entity{paddle, left}, Result: CollisionResult{Normal: V(-1, 0)}},
	}
	ApplyCurvedBounces(w, events)

	// Hits below center on the right face turn counter-clockwise (upward).
	got, _ := w.Velocity(right)
	assertVec(t, Rotate(V(10, 0), paddleCurvature), got)
	// On the left face the ratio is negated, turning clockwise (upward again).
	got, _ = w.Velocity(left)
	assertVec(t, Rotate(V(-10, 0), -paddleCurvature), got)
}

func TestApplyCurvedBouncesSurfaceInSecondSlot(t *testing.T) {
	w, paddle, ball := curvedPair(5, V(0, 10))
	events := Events{{Collidees: [2]Entity{ball, paddle}, Result: CollisionResult{Normal: V(0, -1)}}}

	ApplyCurvedBounces(w, events)

	got, _ := w.Velocity(ball)
	assertVec(t, Rotate(V(0, 10), -paddleCurvature), got)
}

func TestApplyCurvedBouncesIgnoresFlatSurfaces(t *testing.T) {
	w := NewWorld()
	wall := spawnWall(w, V(0, 0), V(10, 2))
	ball := spawnBall(w, V(4, 1.4), V(0, 10))
	events := Events{{Collidees: [2]Entity{wall, ball}, Result: CollisionResult{Normal: V(0, 1)}}}

	skipped := ApplyCurvedBounces(w, events)
	assert.Empty(t, skipped)

	got, _ := w.Velocity(ball)
	assertVec(t, V(0, 10), got)
}

func TestApplyCurvedBouncesDiagonalNormalPanics(t *testing.T) {
	w, paddle, ball := curvedPair(0, V(0, 10))
	events := Events{{Collidees: [2]Entity{paddle, ball}, Result: CollisionResult{Normal: V(0.6, 0.8)}}}

	assert.Panics(t, func() { ApplyCurvedBounces(w, events) })
}

func TestApplyCurvedBouncesSkipsStale(t *testing.T) {
	w, paddle, ball := curvedPair(5, V(0, 10))
	w.Despawn(ball)
	events := Events{{Collidees: [2]Entity{paddle, ball}, Result: CollisionResult{Normal: V(0, 1)}}}

	skipped := ApplyCurvedBounces(w, events)
	require.Len(t, skipped, 1)
}
