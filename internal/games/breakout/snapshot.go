package breakout

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// snapshotScale quantizes world coordinates to thousandths of a cell.
const snapshotScale = 1000

// BodySnapshot is a quantized position and velocity.
type BodySnapshot struct {
	X, Y   int
	VX, VY int
}

// BrickSnapshot is a live brick and its remaining hits.
type BrickSnapshot struct {
	Row, Col int
	HP       int
}

// PickupSnapshot is a falling pickup.
type PickupSnapshot struct {
	Type PickupType
	Body BodySnapshot
}

// Snapshot contains the game state for replay comparison and determinism
// checks. Floats are quantized so two runs hash identically.
type Snapshot struct {
	Tick            int
	Score           int
	Lives           int
	LevelIndex      int
	BricksRemaining int
	State           string
	ServeDelay      int

	Mode         int // 0=Campaign, 1=Endless
	EndlessCycle int

	PaddleX     int
	PaddleWidth int

	Balls   []BodySnapshot   // In spawn order
	Pickups []PickupSnapshot // In spawn order
	Bricks  []BrickSnapshot  // Sorted by row, then column
	Effects []Effect

	RNGState uint64
}

func quantize(v float64) int {
	return int(math.Round(v * snapshotScale))
}

func (g *Game) bodySnapshot(e physics.Entity) BodySnapshot {
	t, _ := g.world.Transform(e)
	v, _ := g.world.Velocity(e)
	return BodySnapshot{
		X:  quantize(t.Position.X()),
		Y:  quantize(t.Position.Y()),
		VX: quantize(v.X()),
		VY: quantize(v.Y()),
	}
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	paddle, _ := g.world.Transform(g.paddle)
	snap := Snapshot{
		Tick:            g.tickCount,
		Score:           g.score,
		Lives:           g.lives,
		LevelIndex:      g.levelIndex,
		BricksRemaining: g.breakable,
		State:           g.state,
		ServeDelay:      g.serveDelay,
		Mode:            int(g.mode),
		EndlessCycle:    g.endlessCycle,
		PaddleX:         quantize(paddle.Position.X()),
		PaddleWidth:     quantize(paddle.Scale.X()),
		RNGState:        g.powerups.RNGState(),
	}

	for _, ball := range g.balls {
		snap.Balls = append(snap.Balls, g.bodySnapshot(ball))
	}

	for _, e := range g.world.Entities() {
		if typ, ok := g.pickups[e]; ok {
			snap.Pickups = append(snap.Pickups, PickupSnapshot{Type: typ, Body: g.bodySnapshot(e)})
		}
	}

	for _, st := range g.bricks {
		snap.Bricks = append(snap.Bricks, BrickSnapshot{Row: st.row, Col: st.col, HP: st.brick.HP})
	}
	slices.SortFunc(snap.Bricks, func(a, b BrickSnapshot) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})

	snap.Effects = g.powerups.Effects()
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	var h uint64
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range []int{
		snap.Tick, snap.Score, snap.Lives, snap.LevelIndex, snap.BricksRemaining,
		snap.ServeDelay, snap.Mode, snap.EndlessCycle, snap.PaddleX, snap.PaddleWidth,
	} {
		mix(v)
	}
	for _, r := range snap.State {
		mix(int(r))
	}

	mixBody := func(b BodySnapshot) {
		mix(b.X)
		mix(b.Y)
		mix(b.VX)
		mix(b.VY)
	}
	for _, b := range snap.Balls {
		mixBody(b)
	}
	for _, p := range snap.Pickups {
		mix(int(p.Type))
		mixBody(p.Body)
	}
	for _, b := range snap.Bricks {
		mix(b.Row)
		mix(b.Col)
		mix(b.HP)
	}
	for _, e := range snap.Effects {
		mix(int(e.Type))
		mix(e.UntilTick)
	}

	return h*31 + snap.RNGState
}
