package body

const (
	// TrailCap bounds the trail length; the oldest entry is evicted first.
	TrailCap = 1000

	// TrailMinStep is the displacement (simulation units) a body must cover
	// from its last recorded point before a new trail entry is appended.
	TrailMinStep = 1.0
)

// RecordTrail appends the current position to the trail when the body has
// moved more than TrailMinStep since the last recorded point. The trail is
// display-only; nothing in the physics reads it.
func (b *Body) RecordTrail() {
	if n := len(b.Trail); n > 0 && b.Position.Dist(b.Trail[n-1]) <= TrailMinStep {
		return
	}
	b.Trail = append(b.Trail, b.Position)
	if len(b.Trail) > TrailCap {
		b.Trail = b.Trail[len(b.Trail)-TrailCap:]
	}
}

// ClearTrail drops all recorded history.
func (b *Body) ClearTrail() {
	b.Trail = nil
}
