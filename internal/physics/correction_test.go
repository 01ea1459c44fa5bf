package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCorrections(t *testing.T) {
	correction := V(0, 2)

	tests := []struct {
		name          string
		firstMoving   bool
		secondMoving  bool
		expectedFirst Vec2
		expectedSec   Vec2
	}{
		{"second moving", false, true, V(0, 0), V(0, 12)},
		{"first moving", true, false, V(0, -2), V(0, 10)},
		{"both moving", true, true, V(0, -1), V(0, 11)},
		{"neither moving", false, false, V(0, 0), V(0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			first := w.Spawn(Transform{Position: V(0, 0)})
			second := w.Spawn(Transform{Position: V(0, 10)})
			if tt.firstMoving {
				w.SetVelocity(first, V(1, 1))
			}
			if tt.secondMoving {
				w.SetVelocity(second, V(1, 1))
			}

			events := Events{{Collidees: [2]Entity{first, second}, Result: CollisionResult{Normal: V(0, 1), Correction: correction}}}
			skipped := ApplyCorrections(w, events)
			assert.Empty(t, skipped)

			tr, _ := w.Transform(first)
			assertVec(t, tt.expectedFirst, tr.Position, "first")
			tr, _ = w.Transform(second)
			assertVec(t, tt.expectedSec, tr.Position, "second")
		})
	}
}

func TestApplyCorrectionsMovesFirstAgainstCorrection(t *testing.T) {
	w := NewWorld()
	block := spawnBody(w, BodyRect, V(0, 0), V(2, 2), GroupBlock, NewMask(GroupWall))
	w.SetVelocity(block, V(0, 1))
	spawnBody(w, BodyRect, V(0, 1.5), V(2, 2), GroupWall, NewMask(GroupBlock))

	events := DetectCollisions(w)
	require.Len(t, events, 1)
	assert.Equal(t, block, events[0].Collidees[0])
	assertVec(t, V(0, 0.5), events[0].Result.Correction)

	ApplyCorrections(w, events)

	tr, _ := w.Transform(block)
	assertVec(t, V(0, -0.5), tr.Position, "first collidee backs away from the second")
	assert.Empty(t, DetectCollisions(w), "correction should separate the pair")
}

func TestApplyCorrectionsAccumulates(t *testing.T) {
	w := NewWorld()
	floor := w.Spawn(Transform{})
	side := w.Spawn(Transform{})
	ball := w.Spawn(Transform{Position: V(5, 5)})
	w.SetVelocity(ball, V(0, -1))

	events := Events{
		{Collidees: [2]Entity{floor, ball}, Result: CollisionResult{Normal: V(0, 1), Correction: V(0, 0.25)}},
		{Collidees: [2]Entity{side, ball}, Result: CollisionResult{Normal: V(1, 0), Correction: V(0.5, 0)}},
	}
	ApplyCorrections(w, events)

	tr, _ := w.Transform(ball)
	assertVec(t, V(5.5, 5.25), tr.Position)
}

func TestApplyCorrectionsSkipsStale(t *testing.T) {
	w := NewWorld()
	wall := w.Spawn(Transform{})
	gone := w.Spawn(Transform{})
	ball := w.Spawn(Transform{Position: V(0, 1)})
	w.SetVelocity(ball, V(0, -1))
	w.Despawn(gone)

	events := Events{
		{Collidees: [2]Entity{gone, ball}, Result: CollisionResult{Normal: V(0, 1), Correction: V(0, 5)}},
		{Collidees: [2]Entity{wall, ball}, Result: CollisionResult{Normal: V(0, 1), Correction: V(0, 1)}},
	}
	skipped := ApplyCorrections(w, events)

	assert.Equal(t, events[:1], skipped)
	tr, _ := w.Transform(ball)
	assertVec(t, V(0, 2), tr.Position, "only the live event applies")
}
