package physics

// Integrate advances every movable entity by velocity*dt.
func Integrate(w *World, dt float64) {
	w.compact()
	for _, e := range w.order {
		r := w.records[e]
		if r.velocity == nil {
			continue
		}
		r.transform.Position = r.transform.Position.Add(r.velocity.Mul(dt))
	}
}
