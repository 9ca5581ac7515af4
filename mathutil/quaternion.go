package mathutil

import "math"

// Quaternion is a rotation represented as (X, Y, Z, W).
type Quaternion struct {
	X, Y, Z, W float64
}

// QuaternionIdentity is the no-rotation quaternion.
var QuaternionIdentity = Quaternion{0, 0, 0, 1}

// Cmp is a lexicographic tuple comparator on (X, Y, Z, W).
func (q Quaternion) Cmp(o Quaternion) int {
	if d := cmpFloat(q.X, o.X); d != 0 {
		return d
	}
	if d := cmpFloat(q.Y, o.Y); d != 0 {
		return d
	}
	if d := cmpFloat(q.Z, o.Z); d != 0 {
		return d
	}
	return cmpFloat(q.W, o.W)
}

// Normalize returns q scaled to unit length. The zero quaternion is
// returned unchanged (there is no meaningful normalized form).
func (q Quaternion) Normalize() Quaternion {
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if n == 0 {
		return q
	}
	return Quaternion{q.X / n, q.Y / n, q.Z / n, q.W / n}
}
