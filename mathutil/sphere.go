package mathutil

// Sphere is a center point plus radius.
type Sphere struct {
	Center Vector3
	Radius float64
}

// Contains reports whether p lies within s, inclusive of the boundary.
func (s Sphere) Contains(p Vector3) bool {
	return s.Center.Distance(p) <= s.Radius
}

// Intersects reports whether s and o overlap.
func (s Sphere) Intersects(o Sphere) bool {
	return s.Center.Distance(o.Center) <= s.Radius+o.Radius
}
