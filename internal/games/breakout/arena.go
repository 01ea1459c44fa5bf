package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// hudRows is the number of screen rows above the arena.
const hudRows = 2

// Collision setups of each body kind.
var (
	wallMask   = physics.NewMask(physics.GroupBall, physics.GroupPowerup)
	paddleMask = physics.NewMask(physics.GroupBall, physics.GroupPowerup)
	ballMask   = physics.NewMask(physics.GroupBlock, physics.GroupWall, physics.GroupPaddle)
	brickMask  = physics.NewMask(physics.GroupBall)
	pickupMask = physics.NewMask(physics.GroupPaddle, physics.GroupWall)
)

// pickupSize is the width and height of a falling pickup.
const pickupSize = 0.8

// arena maps the screen onto world coordinates. The world has its origin
// at the bottom-left corner of the arena with y growing upward; one unit
// is one screen cell.
type arena struct {
	screenH int

	width  float64
	height float64

	brickW    float64
	brickH    float64
	brickLeft float64 // Left edge of column 0
	brickTop  float64 // Top edge of row 0
	rows      int     // Level rows that fit above the paddle
	cols      int     // Level columns that fit between the walls

	paddleY float64 // Paddle center
}

// newArena computes the layout of level on a screenW x screenH screen.
func newArena(screenW, screenH int, cfg config.BreakoutConfig, level *Level) arena {
	a := arena{
		screenH: screenH,
		width:   float64(screenW),
		height:  float64(screenH - hudRows),
		brickH:  float64(max(cfg.Arena.BrickHeight, 1)),
	}
	a.paddleY = float64(cfg.Paddle.Lift) + cfg.Paddle.Height/2
	a.brickTop = a.height - 1 - float64(cfg.Arena.TopMargin)

	inner := a.width - 2
	a.brickW = max(1, math.Floor(inner/float64(max(level.Width, 1))))
	a.cols = min(level.Width, int(inner/a.brickW))
	a.brickLeft = 1 + math.Floor((inner-a.brickW*float64(a.cols))/2)

	// Keep at least four free rows between the bricks and the paddle top.
	free := a.brickTop - (a.paddleY + cfg.Paddle.Height/2) - 4
	a.rows = max(0, min(level.Height, int(free/a.brickH)))
	return a
}

// brickCenter returns the world position of the brick at (row, col).
func (a arena) brickCenter(row, col int) physics.Vec2 {
	return physics.V(
		a.brickLeft+(float64(col)+0.5)*a.brickW,
		a.brickTop-(float64(row)+0.5)*a.brickH,
	)
}

// toScreen converts a world position to screen column and row.
func (a arena) toScreen(p physics.Vec2) (int, int) {
	col := int(math.Floor(p.X()))
	row := a.screenH - 1 - int(math.Floor(p.Y()))
	return col, row
}

// walls are the arena boundaries. bottom swallows whatever touches it.
type walls struct {
	left, right, top, bottom physics.Entity
}

// spawnWalls adds the four arena walls to w.
func (a arena) spawnWalls(w *physics.World, bounciness float64) walls {
	props := physics.CollisionProperties{
		Body:       physics.BodyRect,
		Group:      physics.NewMask(physics.GroupWall),
		Mask:       wallMask,
		Bounciness: bounciness,
	}
	spawn := func(pos, size physics.Vec2) physics.Entity {
		e := w.Spawn(physics.Transform{Position: pos, Scale: size})
		w.SetCollision(e, props)
		return e
	}

	tall := a.height + 2
	return walls{
		left:   spawn(physics.V(0.5, a.height/2), physics.V(1, tall)),
		right:  spawn(physics.V(a.width-0.5, a.height/2), physics.V(1, tall)),
		top:    spawn(physics.V(a.width/2, a.height-0.5), physics.V(a.width, 1)),
		bottom: spawn(physics.V(a.width/2, -1), physics.V(a.width, 1)),
	}
}

// spawnPaddle adds the curved paddle centered horizontally.
func (a arena) spawnPaddle(w *physics.World, width float64, cfg config.BreakoutConfig) physics.Entity {
	e := w.Spawn(physics.Transform{
		Position: physics.V(a.width/2, a.paddleY),
		Scale:    physics.V(width, cfg.Paddle.Height),
	})
	w.SetCollision(e, physics.CollisionProperties{
		Body:       physics.BodyRect,
		Group:      physics.NewMask(physics.GroupPaddle),
		Mask:       paddleMask,
		Bounciness: cfg.Physics.Bounciness.Paddle,
	})
	w.SetCurved(e, physics.CurvedBounce{Curvature: cfg.Physics.PaddleCurvature})
	return e
}

// spawnBall adds a moving ball.
func (a arena) spawnBall(w *physics.World, pos, velocity physics.Vec2, cfg config.BreakoutConfig) physics.Entity {
	d := cfg.Physics.BallDiameter
	e := w.Spawn(physics.Transform{Position: pos, Scale: physics.V(d, d)})
	w.SetVelocity(e, velocity)
	w.SetCollision(e, physics.CollisionProperties{
		Body:       physics.BodyCircle,
		Group:      physics.NewMask(physics.GroupBall),
		Mask:       ballMask,
		Bounciness: cfg.Physics.Bounciness.Ball,
	})
	return e
}

// spawnBrick adds a static brick at (row, col).
func (a arena) spawnBrick(w *physics.World, row, col int, bounciness float64) physics.Entity {
	e := w.Spawn(physics.Transform{
		Position: a.brickCenter(row, col),
		Scale:    physics.V(a.brickW, a.brickH),
	})
	w.SetCollision(e, physics.CollisionProperties{
		Body:       physics.BodyRect,
		Group:      physics.NewMask(physics.GroupBlock),
		Mask:       brickMask,
		Bounciness: bounciness,
	})
	return e
}

// spawnPickup adds a falling pickup at pos.
func (a arena) spawnPickup(w *physics.World, pos physics.Vec2, fallSpeed float64) physics.Entity {
	e := w.Spawn(physics.Transform{Position: pos, Scale: physics.V(pickupSize, pickupSize)})
	w.SetVelocity(e, physics.V(0, -fallSpeed))
	props := physics.DefaultCollisionProperties()
	props.Group = physics.NewMask(physics.GroupPowerup)
	props.Mask = pickupMask
	w.SetCollision(e, props)
	return e
}
