// Package body defines the simulated entity and its vector math.
//
// A [Body] is a point mass with spatial extent; the [Vec3] helpers cover the
// add/sub/scale/length/normalize operations the physics needs. A registry is
// a plain []*Body snapshot: the stepping code never mutates a snapshot it was
// handed, it works on a [CloneSet] copy and returns that.
package body
