package area

import (
	"errors"
	"math"
)

// Point2 is a 2D point used to define an area's polygon.
type Point2 struct {
	X, Y float64
}

// ErrAreaManaged is returned by any mutator called while the area is
// currently managed (spec.md's Area::CheckLock: "cannot be modified while
// being managed").
var ErrAreaManaged = errors.New("area: cannot be modified while managed")

// Area is a polygonal region: an incrementally-maintained bounding box plus
// an ordered list of ≥3 points (0–2 permitted but then only the bbox is
// testable), a user name/id, and the list of cells it currently belongs to
// — an area is managed iff that list is non-empty (spec.md §3).
type Area struct {
	Name string
	ID   int64

	L, B, R, T float64 // bounding box

	Points []Point2
	Cells  []*Cell
}

// NewArea returns an empty area whose bounding box is the Merge identity
// (L,B = +Inf, R,T = -Inf), matching the original's DEF_L/B/R/T.
func NewArea(name string) *Area {
	return &Area{
		Name: name,
		L:    math.Inf(1), B: math.Inf(1),
		R: math.Inf(-1), T: math.Inf(-1),
	}
}

// NewTriangle returns an area seeded with three points, as in the seed
// scenario of spec.md §8.1.
func NewTriangle(a, b, c Point2) *Area {
	area := NewArea("")
	area.AddPoint(a)
	area.AddPoint(b)
	area.AddPoint(c)
	return area
}

// Managed reports whether the area is currently recorded in any cell.
func (a *Area) Managed() bool {
	return len(a.Cells) > 0
}

// checkLock enforces spec.md's CheckLock gate: mutators are rejected while
// the area is managed, since its bbox must stay stable while indexed.
func (a *Area) checkLock() error {
	if a.Managed() {
		return ErrAreaManaged
	}
	return nil
}

// Expand grows the bounding box, componentwise min/max, to also cover
// (x, y) — the same merge idiom as mathutil.AABB.MergePoint (spec.md §4.B).
func (a *Area) Expand(x, y float64) {
	a.L = math.Min(a.L, x)
	a.B = math.Min(a.B, y)
	a.R = math.Max(a.R, x)
	a.T = math.Max(a.T, y)
}

// AddPoint appends p to the polygon and expands the bounding box.
func (a *Area) AddPoint(p Point2) error {
	if err := a.checkLock(); err != nil {
		return err
	}
	a.Points = append(a.Points, p)
	a.Expand(p.X, p.Y)
	return nil
}

// AddPointEx is the (x, y) form of AddPoint.
func (a *Area) AddPointEx(x, y float64) error {
	return a.AddPoint(Point2{X: x, Y: y})
}

// AddVirtualPoint expands the bounding box without adding to the polygon.
func (a *Area) AddVirtualPoint(x, y float64) error {
	if err := a.checkLock(); err != nil {
		return err
	}
	a.Expand(x, y)
	return nil
}

// AddCircleEx samples a circle of radius r centered at (cx, cy) into
// segments points, θ_i = 2π·i/segments, per spec.md §6.2. A single lock
// check precedes the loop — the original checks once per iteration, which
// is equivalent since nothing inside the loop can change the lock state
// (see DESIGN.md's Open Question decisions).
func (a *Area) AddCircleEx(cx, cy, r float64, segments int) error {
	if err := a.checkLock(); err != nil {
		return err
	}
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := r*math.Cos(theta) + cx
		y := r*math.Sin(theta) + cy
		a.Points = append(a.Points, Point2{X: x, Y: y})
		a.Expand(x, y)
	}
	return nil
}

// isInsideSentinelSlope is the original's UINT32_MAX sentinel, used for
// near-vertical edges (|dx| < 1e-6) so the computed intercept forces the
// ray-cross test the same way the C++ code's (float)(uint32_t)-1 does.
const isInsideSentinelSlope = float64(uint32(0xffffffff))

// IsInside runs the Jordan-curve (even-odd) ray-cast test along +X. It
// returns false unconditionally when the area has fewer than 3 points —
// "can't possibly be in an area that doesn't exist". Treating such an area
// as just its bbox is done one layer up, in Test, which only calls IsInside
// when the polygon has at least 3 points. Each edge pairs a point with its
// predecessor, so the <= half of the crossing test covers a vertex at the
// top of its edge (the triangle's shared top vertex counts as inside).
func (a *Area) IsInside(x, y float64) bool {
	n := len(a.Points)
	if n < 3 {
		return false
	}
	crossings := 0
	for i := 0; i < n; i++ {
		pa := a.Points[i]
		pb := a.Points[(i+n-1)%n]

		var x1, x2 float64
		if pa.X < pb.X {
			x1, x2 = pa.X, pb.X
		} else {
			x1, x2 = pb.X, pa.X
		}

		if x > x1 && x <= x2 && (y < pa.Y || y <= pb.Y) {
			dx := pb.X - pa.X
			dy := pb.Y - pa.Y

			var k float64
			if math.Abs(dx) < 0.000001 {
				k = isInsideSentinelSlope
			} else {
				k = dy / dx
			}

			m := pa.Y - k*pa.X
			y2 := k*x + m
			if y <= y2 {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

// Test reports whether (x, y) lies in the area's bounding box and, if the
// polygon has at least 3 points, also passes IsInside. An area with fewer
// than 3 points is considered to fill its whole bounding box.
func (a *Area) Test(x, y float64) bool {
	if a.L <= x && a.R >= x && a.B <= y && a.T >= y {
		if len(a.Points) < 3 {
			return true
		}
		return a.IsInside(x, y)
	}
	return false
}

// IntersectsBBox reports whether a's bounding box intersects o's.
func (a *Area) IntersectsBBox(o *Area) bool {
	return a.L <= o.R && o.L <= a.R && a.B <= o.T && o.B <= a.T
}

func (a *Area) intersectsCellBBox(c *Cell) bool {
	return a.L <= c.R && c.L <= a.R && a.B <= c.T && c.B <= a.T
}
