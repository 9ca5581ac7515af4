// Package mathutil provides the small set of value types scripts depend on:
// Vector3, Sphere, AABB, plus the tuple comparators and string round-trip
// helpers the original source code's operator-overloaded types exposed.
//
// Comparators are lexicographic tuple compares on components, never
// Euclidean magnitude — see Vector3.Cmp.
package mathutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector3 is a 3D point or displacement with value semantics.
type Vector3 struct {
	X, Y, Z float64
}

var (
	Vector3Zero    = Vector3{0, 0, 0}
	Vector3One     = Vector3{1, 1, 1}
	Vector3Right   = Vector3{1, 0, 0}
	Vector3Up      = Vector3{0, 1, 0}
	Vector3Forward = Vector3{0, 0, 1}
	Vector3Back    = Vector3{0, 0, -1}
)

// Delim is the component separator String uses. ToString and
// Vector3FromString take their separator as an explicit argument.
const Delim = ","

// Add returns the componentwise sum.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the componentwise difference.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean magnitude.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance between v and o.
func (v Vector3) Distance(o Vector3) float64 {
	return v.Sub(o).Length()
}

// Cmp is a lexicographic tuple comparator on (X, Y, Z): it returns a
// negative number if v < o, 0 if equal, a positive number if v > o. This is
// NOT a magnitude comparison; two vectors of equal length but different
// direction are not equal under Cmp.
func (v Vector3) Cmp(o Vector3) int {
	if d := cmpFloat(v.X, o.X); d != 0 {
		return d
	}
	if d := cmpFloat(v.Y, o.Y); d != 0 {
		return d
	}
	return cmpFloat(v.Z, o.Z)
}

// CmpScalar coerces s into a uniform (s,s,s) vector before comparing,
// mirroring the source's Cmp(SQFloat)/Cmp(SQInteger) scalar trampolines.
func (v Vector3) CmpScalar(s float64) int {
	return v.Cmp(Vector3{s, s, s})
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// RotateXZBy rotates v around the Y axis by angle degrees about center:
// translate by -center, rotate (x,z) in-plane, translate back.
func (v Vector3) RotateXZBy(angleDeg float64, center Vector3) Vector3 {
	x, z := rotate2D(v.X-center.X, v.Z-center.Z, angleDeg)
	return Vector3{x + center.X, v.Y, z + center.Z}
}

// CenterRotateXZBy rotates v around the Y axis about the origin.
func (v Vector3) CenterRotateXZBy(angleDeg float64) Vector3 {
	return v.RotateXZBy(angleDeg, Vector3Zero)
}

// RotateXYBy rotates v around the Z axis by angle degrees about center.
func (v Vector3) RotateXYBy(angleDeg float64, center Vector3) Vector3 {
	x, y := rotate2D(v.X-center.X, v.Y-center.Y, angleDeg)
	return Vector3{x + center.X, y + center.Y, v.Z}
}

// CenterRotateXYBy rotates v around the Z axis about the origin.
func (v Vector3) CenterRotateXYBy(angleDeg float64) Vector3 {
	return v.RotateXYBy(angleDeg, Vector3Zero)
}

// RotateYZBy rotates v around the X axis by angle degrees about center.
func (v Vector3) RotateYZBy(angleDeg float64, center Vector3) Vector3 {
	y, z := rotate2D(v.Y-center.Y, v.Z-center.Z, angleDeg)
	return Vector3{v.X, y + center.Y, z + center.Z}
}

// CenterRotateYZBy rotates v around the X axis about the origin.
func (v Vector3) CenterRotateYZBy(angleDeg float64) Vector3 {
	return v.RotateYZBy(angleDeg, Vector3Zero)
}

func rotate2D(a, b, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return a*cos - b*sin, a*sin + b*cos
}

// String formats v using Delim as the component separator.
func (v Vector3) String() string {
	return v.ToString(Delim)
}

// ToString formats v as "X<delim>Y<delim>Z".
func (v Vector3) ToString(delim string) string {
	return strconv.FormatFloat(v.X, 'g', -1, 64) + delim +
		strconv.FormatFloat(v.Y, 'g', -1, 64) + delim +
		strconv.FormatFloat(v.Z, 'g', -1, 64)
}

// Vector3FromString parses the inverse of ToString. It returns an error if s
// does not split into exactly three numeric components.
func Vector3FromString(delim, s string) (Vector3, error) {
	parts := strings.Split(s, delim)
	if len(parts) != 3 {
		return Vector3{}, fmt.Errorf("mathutil: Vector3FromString: expected 3 components, got %d", len(parts))
	}
	var out [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Vector3{}, fmt.Errorf("mathutil: Vector3FromString: component %d: %w", i, err)
		}
		out[i] = f
	}
	return Vector3{out[0], out[1], out[2]}, nil
}
