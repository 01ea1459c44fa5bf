package physics

// Entity identifies an object in a World. Zero is never allocated.
type Entity uint64

// Transform places an entity in the world. Scale is the full size of the
// body: width and height for a rect, diameter in X for a circle.
type Transform struct {
	Position Vec2
	Scale    Vec2
}

// CollisionProperties make an entity take part in collision detection.
type CollisionProperties struct {
	Body       Body
	Group      CollisionMask // Groups the entity belongs to
	Mask       CollisionMask // Groups the entity accepts contact with
	Bounciness float64       // Multiplier on reflected speed
}

// DefaultCollisionProperties returns a rect body with empty group and mask
// and a bounciness of 1.
func DefaultCollisionProperties() CollisionProperties {
	return CollisionProperties{
		Body:       BodyRect,
		Bounciness: 1.0,
	}
}

// CurvedBounce marks a surface that bends rebounds depending on where along
// its face the impact happened.
type CurvedBounce struct {
	Curvature float64 // Maximum extra deflection in radians
}

// record holds the components attached to one entity.
// A non-nil velocity is what makes an entity movable.
type record struct {
	transform Transform
	velocity  *Vec2
	collision *CollisionProperties
	curved    *CurvedBounce
}

// World is the entity table the engine operates on. It is not safe for
// concurrent use; one tick runs to completion on the calling goroutine.
type World struct {
	next    Entity
	records map[Entity]*record
	order   []Entity // Spawn order, may contain despawned ids until compacted
	dead    int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		records: make(map[Entity]*record),
	}
}

// Spawn adds an entity with the given transform and returns its id.
func (w *World) Spawn(t Transform) Entity {
	w.next++
	id := w.next
	w.records[id] = &record{transform: t}
	w.order = append(w.order, id)
	return id
}

// Despawn removes an entity and all its components. Unknown or already
// removed ids are ignored.
func (w *World) Despawn(e Entity) {
	if _, ok := w.records[e]; !ok {
		return
	}
	delete(w.records, e)
	w.dead++
}

// Alive reports whether the entity exists.
func (w *World) Alive(e Entity) bool {
	_, ok := w.records[e]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.records)
}

// Entities returns the live entities in spawn order.
func (w *World) Entities() []Entity {
	w.compact()
	out := make([]Entity, len(w.order))
	copy(out, w.order)
	return out
}

// compact drops despawned ids from the spawn order.
func (w *World) compact() {
	if w.dead == 0 {
		return
	}
	live := w.order[:0]
	for _, e := range w.order {
		if _, ok := w.records[e]; ok {
			live = append(live, e)
		}
	}
	w.order = live
	w.dead = 0
}

// Transform returns the entity's transform.
func (w *World) Transform(e Entity) (Transform, bool) {
	r, ok := w.records[e]
	if !ok {
		return Transform{}, false
	}
	return r.transform, true
}

// SetTransform replaces the entity's transform.
func (w *World) SetTransform(e Entity, t Transform) {
	if r, ok := w.records[e]; ok {
		r.transform = t
	}
}

// SetPosition moves the entity without touching its scale.
func (w *World) SetPosition(e Entity, p Vec2) {
	if r, ok := w.records[e]; ok {
		r.transform.Position = p
	}
}

// Velocity returns the entity's velocity. The second result is false for
// static entities.
func (w *World) Velocity(e Entity) (Vec2, bool) {
	r, ok := w.records[e]
	if !ok || r.velocity == nil {
		return Vec2{}, false
	}
	return *r.velocity, true
}

// SetVelocity attaches or replaces the entity's velocity, making it movable.
func (w *World) SetVelocity(e Entity, v Vec2) {
	r, ok := w.records[e]
	if !ok {
		return
	}
	if r.velocity == nil {
		r.velocity = new(Vec2)
	}
	*r.velocity = v
}

// RemoveVelocity makes the entity static.
func (w *World) RemoveVelocity(e Entity) {
	if r, ok := w.records[e]; ok {
		r.velocity = nil
	}
}

// Collision returns the entity's collision properties.
func (w *World) Collision(e Entity) (CollisionProperties, bool) {
	r, ok := w.records[e]
	if !ok || r.collision == nil {
		return CollisionProperties{}, false
	}
	return *r.collision, true
}

// SetCollision attaches or replaces the entity's collision properties.
func (w *World) SetCollision(e Entity, p CollisionProperties) {
	if r, ok := w.records[e]; ok {
		props := p
		r.collision = &props
	}
}

// RemoveCollision takes the entity out of collision detection.
func (w *World) RemoveCollision(e Entity) {
	if r, ok := w.records[e]; ok {
		r.collision = nil
	}
}

// Curved returns the entity's curved bounce surface.
func (w *World) Curved(e Entity) (CurvedBounce, bool) {
	r, ok := w.records[e]
	if !ok || r.curved == nil {
		return CurvedBounce{}, false
	}
	return *r.curved, true
}

// SetCurved marks the entity as a curved bounce surface.
func (w *World) SetCurved(e Entity, c CurvedBounce) {
	if r, ok := w.records[e]; ok {
		curved := c
		r.curved = &curved
	}
}

// RemoveCurved turns the entity back into a flat surface.
func (w *World) RemoveCurved(e Entity) {
	if r, ok := w.records[e]; ok {
		r.curved = nil
	}
}

// lookup returns the live record for e.
func (w *World) lookup(e Entity) (*record, bool) {
	r, ok := w.records[e]
	return r, ok
}
