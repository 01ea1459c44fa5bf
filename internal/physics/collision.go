package physics

// CollisionEvent reports one overlapping pair found during a tick.
// Result.Normal points from Collidees[0] toward Collidees[1].
type CollisionEvent struct {
	Collidees [2]Entity
	Result    CollisionResult
}

// Involves reports whether e is one of the collidees.
func (ev CollisionEvent) Involves(e Entity) bool {
	return ev.Collidees[0] == e || ev.Collidees[1] == e
}

// Other returns the collidee that is not e. The second result is false
// when e is not part of the event.
func (ev CollisionEvent) Other(e Entity) (Entity, bool) {
	switch e {
	case ev.Collidees[0]:
		return ev.Collidees[1], true
	case ev.Collidees[1]:
		return ev.Collidees[0], true
	default:
		return 0, false
	}
}

// Events is the ordered batch of collision events produced by one tick.
type Events []CollisionEvent

// Involving returns the events that include e, in order.
func (evs Events) Involving(e Entity) Events {
	var out Events
	for _, ev := range evs {
		if ev.Involves(e) {
			out = append(out, ev)
		}
	}
	return out
}

// collidable is an entity snapshot taken at the start of detection.
type collidable struct {
	entity    Entity
	transform Transform
	props     CollisionProperties
}

// DetectCollisions tests every unordered pair of collidable entities and
// returns one event per overlapping pair, in pair enumeration order.
func DetectCollisions(w *World) Events {
	events, _ := detect(w)
	return events
}

// detect also returns how many pairs passed the group/mask filter.
func detect(w *World) (Events, int) {
	w.compact()
	bodies := make([]collidable, 0, len(w.order))
	for _, e := range w.order {
		r := w.records[e]
		if r.collision == nil {
			continue
		}
		bodies = append(bodies, collidable{entity: e, transform: r.transform, props: *r.collision})
	}

	var events Events
	tested := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if !accepts(a.props, b.props) {
				continue
			}
			tested++

			// Rect-circle tests always take the rect first.
			if a.props.Body == BodyCircle && b.props.Body == BodyRect {
				a, b = b, a
			}

			result, ok := narrowPhase(a, b)
			if !ok {
				continue
			}
			events = append(events, CollisionEvent{
				Collidees: [2]Entity{a.entity, b.entity},
				Result:    result,
			})
		}
	}
	return events, tested
}

func narrowPhase(a, b collidable) (CollisionResult, bool) {
	at, bt := a.transform, b.transform
	switch {
	case a.props.Body == BodyRect && b.props.Body == BodyRect:
		return RectRect(at.Position, at.Scale, bt.Position, bt.Scale)
	case a.props.Body == BodyCircle && b.props.Body == BodyCircle:
		return CircleCircle(at.Position, at.Scale, bt.Position, bt.Scale)
	case a.props.Body == BodyRect && b.props.Body == BodyCircle:
		return RectCircle(at.Position, at.Scale, bt.Position, bt.Scale)
	default:
		panic(invariantf("no collision test for %s-%s pair (%d, %d)", a.props.Body, b.props.Body, a.entity, b.entity))
	}
}
