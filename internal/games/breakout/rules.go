package breakout

import "github.com/vovakirdan/tui-breakout/internal/physics"

// DestroyTarget selects which collidee a DestroyOnCollision entity removes.
type DestroyTarget int

const (
	DestroyThis  DestroyTarget = iota // The marked entity itself
	DestroyOther                      // Whatever the marked entity touched
)

// DestroyOnCollision despawns entities at the end of a tick based on the
// targets marked on collidees. An entity removed by one event is not
// processed again by later events of the same tick.
type DestroyOnCollision struct {
	targets   map[physics.Entity]DestroyTarget
	OnDestroy func(e physics.Entity)
}

// NewDestroyOnCollision creates an empty rule.
func NewDestroyOnCollision() *DestroyOnCollision {
	return &DestroyOnCollision{targets: make(map[physics.Entity]DestroyTarget)}
}

// Mark makes e destroy target on every collision.
func (d *DestroyOnCollision) Mark(e physics.Entity, target DestroyTarget) {
	d.targets[e] = target
}

// Unmark removes e from the rule.
func (d *DestroyOnCollision) Unmark(e physics.Entity) {
	delete(d.targets, e)
}

// Reset forgets every marked entity.
func (d *DestroyOnCollision) Reset() {
	clear(d.targets)
}

// OnCollisions implements physics.Listener.
func (d *DestroyOnCollision) OnCollisions(w *physics.World, events physics.Events) {
	removed := make(map[physics.Entity]struct{})
	for _, ev := range events {
		for i, e := range ev.Collidees {
			target, ok := d.targets[e]
			if !ok {
				continue
			}
			if _, gone := removed[e]; gone {
				continue
			}

			victim := e
			if target == DestroyOther {
				victim = ev.Collidees[1-i]
			}
			if _, gone := removed[victim]; gone || !w.Alive(victim) {
				continue
			}

			removed[victim] = struct{}{}
			w.Despawn(victim)
			delete(d.targets, victim)
			if d.OnDestroy != nil {
				d.OnDestroy(victim)
			}
		}
	}
}

// ScoreOnCollision awards points when a marked entity is hit. Each entity
// scores at most once per tick however many events involve it.
type ScoreOnCollision struct {
	points  map[physics.Entity]int
	Total   int
	OnScore func(e physics.Entity, points int)
}

// NewScoreOnCollision creates an empty rule.
func NewScoreOnCollision() *ScoreOnCollision {
	return &ScoreOnCollision{points: make(map[physics.Entity]int)}
}

// Set makes e worth points per tick it is hit.
func (s *ScoreOnCollision) Set(e physics.Entity, points int) {
	if points <= 0 {
		delete(s.points, e)
		return
	}
	s.points[e] = points
}

// Remove stops e from scoring.
func (s *ScoreOnCollision) Remove(e physics.Entity) {
	delete(s.points, e)
}

// Reset forgets every entity and the total.
func (s *ScoreOnCollision) Reset() {
	clear(s.points)
	s.Total = 0
}

// OnCollisions implements physics.Listener.
func (s *ScoreOnCollision) OnCollisions(_ *physics.World, events physics.Events) {
	scored := make(map[physics.Entity]struct{})
	for _, ev := range events {
		for _, e := range ev.Collidees {
			points, ok := s.points[e]
			if !ok {
				continue
			}
			if _, done := scored[e]; done {
				continue
			}
			scored[e] = struct{}{}
			s.Total += points
			if s.OnScore != nil {
				s.OnScore(e, points)
			}
		}
	}
}
