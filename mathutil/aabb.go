package mathutil

import "math"

// AABB is an axis-aligned bounding box, stored as componentwise min/max
// corners. The zero value is NOT a valid empty box (it is the degenerate
// box at the origin); use NewEmptyAABB to get an identity element for
// Merge.
type AABB struct {
	Min, Max Vector3
}

// NewAABB returns the AABB with the given corners, normalized so that Min
// holds the componentwise minimum and Max the componentwise maximum.
func NewAABB(a, b Vector3) AABB {
	return AABB{
		Min: Vector3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Vector3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// NewEmptyAABB returns a box whose Min is +Inf and Max is -Inf in every
// component — the identity element for Merge.
func NewEmptyAABB() AABB {
	return AABB{
		Min: Vector3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: Vector3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// MergePoint returns b expanded to also contain p: min = componentwise-min,
// max = componentwise-max.
func (b AABB) MergePoint(p Vector3) AABB {
	return AABB{
		Min: Vector3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Vector3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

// Merge returns b expanded to also contain o.
func (b AABB) Merge(o AABB) AABB {
	return b.MergePoint(o.Min).MergePoint(o.Max)
}

// MergeSphere returns b expanded to contain s's bounding box.
func (b AABB) MergeSphere(s Sphere) AABB {
	r := Vector3{s.Radius, s.Radius, s.Radius}
	return b.Merge(AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)})
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b AABB) Contains(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether b and o overlap (including touching edges).
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}
