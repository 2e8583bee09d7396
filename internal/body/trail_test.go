package body

import (
	"testing"
)

func TestRecordTrailThreshold(t *testing.T) {
	b := &Body{Mass: 1, Radius: 1, Position: Vec3{0, 0, 0}}

	b.RecordTrail()
	if len(b.Trail) != 1 {
		t.Fatalf("first record: trail length %d, want 1", len(b.Trail))
	}

	// A displacement at or under the threshold records nothing.
	b.Position = Vec3{0.5, 0, 0}
	b.RecordTrail()
	b.Position = Vec3{1.0, 0, 0}
	b.RecordTrail()
	if len(b.Trail) != 1 {
		t.Errorf("sub-threshold moves recorded: trail length %d, want 1", len(b.Trail))
	}

	b.Position = Vec3{1.5, 0, 0}
	b.RecordTrail()
	if len(b.Trail) != 2 {
		t.Errorf("supra-threshold move not recorded: trail length %d, want 2", len(b.Trail))
	}
	if b.Trail[1] != (Vec3{1.5, 0, 0}) {
		t.Errorf("recorded %v, want current position", b.Trail[1])
	}
}

func TestRecordTrailCapFIFO(t *testing.T) {
	b := &Body{Mass: 1, Radius: 1}

	// Each move covers 2 units, well past the threshold.
	for i := 0; i < TrailCap+100; i++ {
		b.Position = Vec3{float64(i) * 2, 0, 0}
		b.RecordTrail()
	}

	if len(b.Trail) != TrailCap {
		t.Fatalf("trail length %d, want %d", len(b.Trail), TrailCap)
	}

	// The 100 oldest entries were evicted first.
	if b.Trail[0] != (Vec3{200, 0, 0}) {
		t.Errorf("oldest surviving entry %v, want {200 0 0}", b.Trail[0])
	}
	last := b.Trail[len(b.Trail)-1]
	if last != (Vec3{float64(TrailCap+99) * 2, 0, 0}) {
		t.Errorf("newest entry %v", last)
	}
}

func TestClearTrail(t *testing.T) {
	b := &Body{Mass: 1, Radius: 1, Trail: []Vec3{{1, 0, 0}, {2, 0, 0}}}
	b.ClearTrail()
	if len(b.Trail) != 0 {
		t.Errorf("trail length %d after clear", len(b.Trail))
	}
}
