package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3CmpIsTupleNotMagnitude(t *testing.T) {
	a := Vector3{1, 0, 0}
	b := Vector3{0, 1, 0}
	assert.NotEqual(t, 0, a.Cmp(b), "equal length must not imply Cmp==0")
	assert.Equal(t, 0, a.Cmp(a))
	assert.Equal(t, -1, Vector3{0, 0, 0}.Cmp(Vector3{1, 0, 0}))
	assert.Equal(t, 1, Vector3{1, 0, 0}.Cmp(Vector3{0, 0, 0}))
}

func TestVector3StringRoundTrip(t *testing.T) {
	v := Vector3{1.5, -2.25, 3}
	got, err := Vector3FromString(Delim, v.ToString(Delim))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestVector3FromStringRejectsWrongArity(t *testing.T) {
	_, err := Vector3FromString(",", "1,2")
	assert.Error(t, err)
}

func TestVector3RotateXZByQuarterTurn(t *testing.T) {
	v := Vector3{1, 0, 0}
	got := v.CenterRotateXZBy(90)
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)
	assert.InDelta(t, -1, got.Z, 1e-9)
}

func TestVector3RotateAboutOffCenterPivot(t *testing.T) {
	v := Vector3{2, 0, 1}
	center := Vector3{1, 0, 1}
	got := v.RotateXZBy(180, center)
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)
	assert.InDelta(t, 1, got.Z, 1e-9)
}

func TestAABBMergeWithSphere(t *testing.T) {
	box := AABB{Min: Vector3{0, 0, 0}, Max: Vector3{1, 1, 1}}
	s := Sphere{Center: Vector3{5, 5, 5}, Radius: 2}
	merged := box.MergeSphere(s)
	assert.Equal(t, Vector3{0, 0, 0}, merged.Min)
	assert.Equal(t, Vector3{7, 7, 7}, merged.Max)
}

func TestAABBEmptyIsMergeIdentity(t *testing.T) {
	empty := NewEmptyAABB()
	box := AABB{Min: Vector3{1, 2, 3}, Max: Vector3{4, 5, 6}}
	assert.Equal(t, box, empty.Merge(box))
}

func TestAABBIntersects(t *testing.T) {
	a := AABB{Min: Vector3{0, 0, 0}, Max: Vector3{1, 1, 1}}
	b := AABB{Min: Vector3{1, 1, 1}, Max: Vector3{2, 2, 2}}
	c := AABB{Min: Vector3{2, 2, 2}, Max: Vector3{3, 3, 3}}
	assert.True(t, a.Intersects(b), "touching boxes must intersect")
	assert.False(t, a.Intersects(c))
}
