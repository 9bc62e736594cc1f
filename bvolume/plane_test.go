package bvolume

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestNewPlaneFromPoints(t *testing.T) {
	a := r3.Vector{X: 0, Y: 0, Z: 5}
	b := r3.Vector{X: 1, Y: 0, Z: 5}
	c := r3.Vector{X: 0, Y: 1, Z: 5}
	plane := NewPlaneFromPoints(a, b, c)
	test.That(t, plane.Normal, test.ShouldResemble, r3.Vector{X: 0, Y: 0, Z: 1})
	test.That(t, plane.Distance, test.ShouldAlmostEqual, -5)
	for _, pt := range []r3.Vector{a, b, c} {
		test.That(t, plane.DotCoordinate(pt), test.ShouldAlmostEqual, 0)
	}
}

func TestNewPlaneFromVector4(t *testing.T) {
	plane := NewPlaneFromVector4(mgl64.Vec4{1, 2, 3, 4})
	test.That(t, plane.Normal, test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, plane.Distance, test.ShouldEqual, 4)
}

func TestPlaneNormalized(t *testing.T) {
	t.Run("rescales normal and distance together", func(t *testing.T) {
		plane := NewPlane(r3.Vector{X: 0, Y: 0, Z: 2}, 4).Normalized()
		test.That(t, plane.Normal.X, test.ShouldAlmostEqual, 0)
		test.That(t, plane.Normal.Y, test.ShouldAlmostEqual, 0)
		test.That(t, plane.Normal.Z, test.ShouldAlmostEqual, 1)
		test.That(t, plane.Distance, test.ShouldAlmostEqual, 2)
	})
	t.Run("unit normal untouched", func(t *testing.T) {
		plane := NewPlane(r3.Vector{X: 1, Y: 0, Z: 0}, 3)
		test.That(t, plane.Normalized(), test.ShouldResemble, plane)
	})
	t.Run("zero normal is a no-op", func(t *testing.T) {
		plane := NewPlane(r3.Vector{}, 3)
		test.That(t, plane.Normalized(), test.ShouldResemble, plane)
	})
}

func TestPlaneDots(t *testing.T) {
	plane := NewPlane(r3.Vector{X: 0, Y: 1, Z: 0}, -2)
	test.That(t, plane.DotNormal(r3.Vector{X: 3, Y: 4, Z: 5}), test.ShouldEqual, 4)
	test.That(t, plane.DotCoordinate(r3.Vector{X: 3, Y: 4, Z: 5}), test.ShouldEqual, 2)
	test.That(t, plane.DotCoordinate(r3.Vector{X: 0, Y: 2, Z: 0}), test.ShouldEqual, 0)
	test.That(t, plane.Dot(mgl64.Vec4{3, 4, 5, 1}), test.ShouldEqual, 2)
	test.That(t, plane.Dot(mgl64.Vec4{3, 4, 5, 0}), test.ShouldEqual, 4)
}

func TestPlaneIntersectRay(t *testing.T) {
	plane := NewPlane(r3.Vector{X: 0, Y: 0, Z: 1}, -5)

	pt := plane.IntersectRay(NewRay(r3.Vector{}, r3.Vector{X: 0, Y: 0, Z: 1}))
	test.That(t, pt.X, test.ShouldAlmostEqual, 0)
	test.That(t, pt.Y, test.ShouldAlmostEqual, 0)
	test.That(t, pt.Z, test.ShouldAlmostEqual, 5)

	// the raw solver has no parallel guard: the degenerate division leaks
	// into the result
	pt = plane.IntersectRay(NewRay(r3.Vector{}, r3.Vector{X: 1, Y: 0, Z: 0}))
	test.That(t, math.IsInf(pt.X, 0) || math.IsNaN(pt.X), test.ShouldBeTrue)
}

func TestPlaneIntersectPlane(t *testing.T) {
	t.Run("axis-aligned planes", func(t *testing.T) {
		a := NewPlane(r3.Vector{X: 1, Y: 0, Z: 0}, -2) // x = 2
		b := NewPlane(r3.Vector{X: 0, Y: 1, Z: 0}, -3) // y = 3
		line := a.IntersectPlane(b)
		test.That(t, line.Direction, test.ShouldResemble, r3.Vector{X: 0, Y: 0, Z: 1})
		test.That(t, a.DotCoordinate(line.Position), test.ShouldAlmostEqual, 0)
		test.That(t, b.DotCoordinate(line.Position), test.ShouldAlmostEqual, 0)
	})
	t.Run("line lies on both planes", func(t *testing.T) {
		a := NewPlaneFromPoints(r3.Vector{X: 1, Y: 0, Z: 0}, r3.Vector{X: 0, Y: 1, Z: 0}, r3.Vector{X: 0, Y: 0, Z: 1})
		b := NewPlane(r3.Vector{X: 0, Y: 0, Z: 1}, -0.25)
		line := a.IntersectPlane(b)
		test.That(t, a.DotCoordinate(line.Position), test.ShouldAlmostEqual, 0)
		test.That(t, b.DotCoordinate(line.Position), test.ShouldAlmostEqual, 0)
		test.That(t, a.DotNormal(line.Direction), test.ShouldAlmostEqual, 0)
		test.That(t, b.DotNormal(line.Direction), test.ShouldAlmostEqual, 0)
	})
	t.Run("parallel planes degenerate", func(t *testing.T) {
		a := NewPlane(r3.Vector{X: 0, Y: 0, Z: 1}, 0)
		b := NewPlane(r3.Vector{X: 0, Y: 0, Z: 1}, -1)
		line := a.IntersectPlane(b)
		test.That(t, line.Direction, test.ShouldResemble, r3.Vector{})
		test.That(t, math.IsNaN(line.Position.X) || math.IsInf(line.Position.X, 0), test.ShouldBeTrue)
	})
}

func TestPlaneIntersectsBox(t *testing.T) {
	plane := NewPlane(r3.Vector{X: 0, Y: 0, Z: 1}, -5) // z = 5
	cases := []struct {
		name     string
		box      BoundingBox
		expected PlaneIntersectionType
	}{
		{"above", NewBoundingBox(r3.Vector{X: 0, Y: 0, Z: 6}, r3.Vector{X: 1, Y: 1, Z: 7}), Front},
		{"below", NewBoundingBox(r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 1, Y: 1, Z: 1}), Back},
		{"straddling", NewBoundingBox(r3.Vector{X: 0, Y: 0, Z: 4}, r3.Vector{X: 1, Y: 1, Z: 6}), Intersecting},
		{"touching from below", NewBoundingBox(r3.Vector{X: 0, Y: 0, Z: 4}, r3.Vector{X: 1, Y: 1, Z: 5}), Intersecting},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			test.That(t, plane.IntersectsBox(c.box), test.ShouldEqual, c.expected)
		})
	}

	t.Run("negative normal flips the extreme corners", func(t *testing.T) {
		flipped := NewPlane(r3.Vector{X: 0, Y: 0, Z: -1}, 5) // same plane, opposite side
		above := NewBoundingBox(r3.Vector{X: 0, Y: 0, Z: 6}, r3.Vector{X: 1, Y: 1, Z: 7})
		test.That(t, flipped.IntersectsBox(above), test.ShouldEqual, Back)
	})
}

func TestPlaneIntersectsSphere(t *testing.T) {
	plane := NewPlane(r3.Vector{X: 1, Y: 0, Z: 0}, 0)
	cases := []struct {
		name     string
		sphere   BoundingSphere
		expected PlaneIntersectionType
	}{
		{"centered on the plane", BoundingSphere{Center: r3.Vector{}, Radius: 5}, Intersecting},
		{"in front", BoundingSphere{Center: r3.Vector{X: 10, Y: 0, Z: 0}, Radius: 5}, Front},
		{"behind", BoundingSphere{Center: r3.Vector{X: -10, Y: 0, Z: 0}, Radius: 5}, Back},
		{"tangent", BoundingSphere{Center: r3.Vector{X: 5, Y: 0, Z: 0}, Radius: 5}, Intersecting},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			test.That(t, plane.IntersectsSphere(c.sphere), test.ShouldEqual, c.expected)
		})
	}
}

func TestPlaneIntersectsFrustum(t *testing.T) {
	frustum := makeTestFrustum(t)

	_, err := NewPlane(r3.Vector{X: 0, Y: 0, Z: 1}, 0).IntersectsFrustum(&BoundingFrustum{})
	test.That(t, err, test.ShouldBeError, ErrMalformedFrustum)

	cases := []struct {
		name     string
		plane    Plane
		expected PlaneIntersectionType
	}{
		{"cutting through", NewPlane(r3.Vector{X: 0, Y: 0, Z: 1}, 50), Intersecting},
		{"all corners in front", NewPlane(r3.Vector{X: 0, Y: 0, Z: -1}, 0), Front},
		{"all corners behind", NewPlane(r3.Vector{X: 0, Y: 0, Z: 1}, 0), Back},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.plane.IntersectsFrustum(frustum)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, got, test.ShouldEqual, c.expected)
		})
	}
}
