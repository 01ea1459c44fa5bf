package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Autopilot returns the input a scripted player would give this tick: it
// launches when serving and keeps the paddle under the lowest ball.
func Autopilot(g *Game) core.InputFrame {
	var in core.InputFrame
	switch g.state {
	case StateServe:
		if g.serveDelay == 0 {
			in.Set(core.ActionLaunch)
		}
		return in
	case StatePlaying:
	default:
		return in
	}

	paddle, ok := g.world.Transform(g.paddle)
	if !ok {
		return in
	}

	lowest := math.Inf(1)
	target := paddle.Position.X()
	for _, ball := range g.balls {
		t, ok := g.world.Transform(ball)
		if ok && t.Position.Y() < lowest {
			lowest = t.Position.Y()
			target = t.Position.X()
		}
	}

	// Half a step of dead zone stops the paddle from jittering.
	deadZone := g.cfg.Physics.PaddleSpeed * g.runtime.TickSeconds() / 2
	switch dx := target - paddle.Position.X(); {
	case dx < -deadZone:
		in.Set(core.ActionLeft)
	case dx > deadZone:
		in.Set(core.ActionRight)
	}
	return in
}
