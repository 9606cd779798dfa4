// Package geom provides the integer coordinate math used by structure
// generation. Positions are absolute world coordinates at the API boundary
// and converted to origin-relative vectors before storage.
package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Vec3 is an integer 3-vector (x, y, z). It is a value type: assignment
// copies, so an origin handed to a machine can never be mutated through
// the caller's copy afterwards.
type Vec3 [3]int32

// Zero is the default origin.
var Zero = Vec3{0, 0, 0}

// Sub returns the component-wise difference v - o. This is the
// relativization primitive: Sub(origin) converts an absolute world
// position into a position relative to origin. Negative components are
// valid and mean "behind/below the origin".
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Neg returns the component-wise negation of v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Slice returns the vector as a fresh []int32, suitable for NBT int-array
// fields. A new slice is allocated on every call so stored structures
// never alias each other.
func (v Vec3) Slice() []int32 {
	return []int32{v[0], v[1], v[2]}
}

// String formats the vector as "x,y,z", the same form Parse accepts.
func (v Vec3) String() string {
	return fmt.Sprintf("%d,%d,%d", v[0], v[1], v[2])
}

// Parse converts a "x,y,z" string into a Vec3. Exactly three
// comma-separated integer components are required; anything else is an
// invalid-argument error.
func Parse(s string) (Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vec3{}, fmt.Errorf("coordinate %q: want 3 components, got %d", s, len(parts))
	}
	var v Vec3
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return Vec3{}, fmt.Errorf("coordinate %q: component %d is not an integer: %w", s, i, err)
		}
		v[i] = int32(n)
	}
	return v, nil
}

// FromSlice converts a decoded triple (e.g. from a YAML plan) into a
// Vec3. Fails fast on any length other than 3 rather than truncating or
// zero-filling.
func FromSlice(xs []int) (Vec3, error) {
	if len(xs) != 3 {
		return Vec3{}, fmt.Errorf("coordinate triple has %d components, want 3", len(xs))
	}
	return Vec3{int32(xs[0]), int32(xs[1]), int32(xs[2])}, nil
}
