package physics

// ApplyCorrections pushes overlapping entities apart using the correction
// vectors computed at detection time. Only movable entities are displaced:
// the second collidee moves along the correction and the first against it,
// each taking half when both move. Corrections from several events on the
// same entity accumulate. Events referring to despawned entities are
// skipped and returned.
func ApplyCorrections(w *World, events Events) Events {
	var skipped Events
	for _, ev := range events {
		first, okFirst := w.lookup(ev.Collidees[0])
		second, okSecond := w.lookup(ev.Collidees[1])
		if !okFirst || !okSecond {
			skipped = append(skipped, ev)
			continue
		}

		correction := ev.Result.Correction
		switch {
		case first.velocity != nil && second.velocity != nil:
			half := correction.Mul(0.5)
			first.transform.Position = first.transform.Position.Sub(half)
			second.transform.Position = second.transform.Position.Add(half)
		case first.velocity != nil:
			first.transform.Position = first.transform.Position.Sub(correction)
		case second.velocity != nil:
			second.transform.Position = second.transform.Position.Add(correction)
		}
	}
	return skipped
}
