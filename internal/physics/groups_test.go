package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupValues(t *testing.T) {
	assert.Equal(t, CollisionGroup(1), GroupPaddle)
	assert.Equal(t, CollisionGroup(2), GroupBall)
	assert.Equal(t, CollisionGroup(4), GroupBlock)
	assert.Equal(t, CollisionGroup(8), GroupWall)
	assert.Equal(t, CollisionGroup(16), GroupPowerup)
}

func TestCollisionMask(t *testing.T) {
	m := NewMask(GroupPaddle, GroupBall)
	assert.True(t, m.ContainsGroup(GroupPaddle))
	assert.True(t, m.ContainsGroup(GroupBall))
	assert.False(t, m.ContainsGroup(GroupWall))

	m = m.With(GroupWall).Without(GroupPaddle)
	assert.False(t, m.ContainsGroup(GroupPaddle))
	assert.True(t, m.ContainsGroup(GroupWall))

	assert.True(t, m.Intersects(NewMask(GroupWall, GroupBlock)))
	assert.False(t, m.Intersects(NewMask(GroupBlock)))
}

func TestCollisionMaskString(t *testing.T) {
	tests := []struct {
		mask     CollisionMask
		expected string
	}{
		{NewMask(), "CollisionMask()"},
		{NewMask(GroupPaddle, GroupBall), "CollisionMask(Paddle | Ball)"},
		{NewMask(GroupPowerup, GroupBlock), "CollisionMask(Block | Powerup)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mask.String())
		})
	}
}

func TestAcceptsIsBidirectional(t *testing.T) {
	ball := CollisionProperties{Group: NewMask(GroupBall), Mask: NewMask(GroupWall)}
	wall := CollisionProperties{Group: NewMask(GroupWall), Mask: NewMask(GroupBall)}
	deaf := CollisionProperties{Group: NewMask(GroupWall), Mask: NewMask(GroupPaddle)}

	assert.True(t, accepts(ball, wall))
	assert.True(t, accepts(wall, ball))
	assert.False(t, accepts(ball, deaf), "ball accepts wall but wall does not accept ball")
	assert.False(t, accepts(deaf, ball))
}
