package physics

func spawnBody(w *World, body Body, pos, size Vec2, group CollisionGroup, mask CollisionMask) Entity {
	e := w.Spawn(Transform{Position: pos, Scale: size})
	props := DefaultCollisionProperties()
	props.Body = body
	props.Group = NewMask(group)
	props.Mask = mask
	w.SetCollision(e, props)
	return e
}

func spawnBall(w *World, pos, velocity Vec2) Entity {
	e := spawnBody(w, BodyCircle, pos, V(1, 1), GroupBall, NewMask(GroupWall, GroupBlock, GroupPaddle))
	w.SetVelocity(e, velocity)
	return e
}

func spawnWall(w *World, pos, size Vec2) Entity {
	return spawnBody(w, BodyRect, pos, size, GroupWall, NewMask(GroupBall, GroupPowerup))
}
