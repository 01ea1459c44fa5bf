package physics

import "strings"

// CollisionGroup is a single category bit an entity belongs to.
type CollisionGroup uint16

// Collision groups used by the arena.
const (
	GroupPaddle  CollisionGroup = 1 << iota // Player paddle
	GroupBall                               // Balls in play
	GroupBlock                              // Bricks
	GroupWall                               // Arena walls
	GroupPowerup                            // Falling power-up capsules
)

var groupNames = []struct {
	group CollisionGroup
	name  string
}{
	{GroupPaddle, "Paddle"},
	{GroupBall, "Ball"},
	{GroupBlock, "Block"},
	{GroupWall, "Wall"},
	{GroupPowerup, "Powerup"},
}

// String returns the group name.
func (g CollisionGroup) String() string {
	for _, n := range groupNames {
		if n.group == g {
			return n.name
		}
	}
	return "Unknown"
}

// CollisionMask is a set of collision groups. It describes both the groups
// an entity belongs to and the groups it accepts contact with.
type CollisionMask uint16

// NewMask builds a mask from the given groups.
func NewMask(groups ...CollisionGroup) CollisionMask {
	var m CollisionMask
	for _, g := range groups {
		m |= CollisionMask(g)
	}
	return m
}

// With returns a copy of the mask including g.
func (m CollisionMask) With(g CollisionGroup) CollisionMask {
	return m | CollisionMask(g)
}

// Without returns a copy of the mask excluding g.
func (m CollisionMask) Without(g CollisionGroup) CollisionMask {
	return m &^ CollisionMask(g)
}

// ContainsGroup reports whether g is in the mask.
func (m CollisionMask) ContainsGroup(g CollisionGroup) bool {
	return m&CollisionMask(g) != 0
}

// Intersects reports whether the two masks share any group.
func (m CollisionMask) Intersects(other CollisionMask) bool {
	return m&other != 0
}

// String lists the groups in the mask, e.g. "CollisionMask(Paddle | Ball)".
func (m CollisionMask) String() string {
	names := make([]string, 0, len(groupNames))
	for _, n := range groupNames {
		if m.ContainsGroup(n.group) {
			names = append(names, n.name)
		}
	}
	return "CollisionMask(" + strings.Join(names, " | ") + ")"
}

// accepts reports whether a and b mutually accept each other's groups.
// A one-sided match is not enough.
func accepts(a, b CollisionProperties) bool {
	return a.Mask.Intersects(b.Group) && b.Mask.Intersects(a.Group)
}
