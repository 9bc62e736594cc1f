package bvolume

import (
	"github.com/golang/geo/r3"
)

// numBoxCorners is the number of vertices of an axis-aligned box.
const numBoxCorners = 8

// BoundingBox is an axis-aligned box described by its component-wise Min and
// Max corners. Min <= Max holds on every axis for boxes built through the
// constructors.
type BoundingBox struct {
	Min r3.Vector
	Max r3.Vector
}

// NewBoundingBox instantiates the box spanning two opposite corners, given in
// either order; the corners are normalized per axis so Min <= Max always
// holds.
func NewBoundingBox(a, b r3.Vector) BoundingBox {
	return BoundingBox{Min: vecMin(a, b), Max: vecMax(a, b)}
}

// NewBoundingBoxFromPoints instantiates the smallest box enclosing all given
// points. An empty sequence is an error: no valid box exists.
func NewBoundingBoxFromPoints(pts []r3.Vector) (BoundingBox, error) {
	if len(pts) == 0 {
		return BoundingBox{}, ErrNoPoints
	}
	box := BoundingBox{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		box.Min = vecMin(box.Min, pt)
		box.Max = vecMax(box.Max, pt)
	}
	return box, nil
}

// NewBoundingBoxFromSphere instantiates the tightest box enclosing a sphere.
func NewBoundingBoxFromSphere(s BoundingSphere) BoundingBox {
	extent := r3.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return BoundingBox{Min: s.Center.Sub(extent), Max: s.Center.Add(extent)}
}

// MergeBoundingBoxes returns the smallest box enclosing both inputs.
func MergeBoundingBoxes(a, b BoundingBox) BoundingBox {
	return BoundingBox{Min: vecMin(a.Min, b.Min), Max: vecMax(a.Max, b.Max)}
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// ContainsPoint classifies a point against the box: Contains for the strict
// interior, Intersects for the boundary, Disjoint outside.
func (b BoundingBox) ContainsPoint(pt r3.Vector) ContainmentType {
	if pt.X < b.Min.X || pt.X > b.Max.X ||
		pt.Y < b.Min.Y || pt.Y > b.Max.Y ||
		pt.Z < b.Min.Z || pt.Z > b.Max.Z {
		return Disjoint
	}
	if pt.X > b.Min.X && pt.X < b.Max.X &&
		pt.Y > b.Min.Y && pt.Y < b.Max.Y &&
		pt.Z > b.Min.Z && pt.Z < b.Max.Z {
		return Contains
	}
	return Intersects
}

// ContainsBox classifies another box: Disjoint when separated on any axis,
// Contains when the other box lies strictly inside, Intersects otherwise.
func (b BoundingBox) ContainsBox(other BoundingBox) ContainmentType {
	if other.Min.X > b.Max.X || other.Max.X < b.Min.X ||
		other.Min.Y > b.Max.Y || other.Max.Y < b.Min.Y ||
		other.Min.Z > b.Max.Z || other.Max.Z < b.Min.Z {
		return Disjoint
	}
	if other.Min.X > b.Min.X && other.Max.X < b.Max.X &&
		other.Min.Y > b.Min.Y && other.Max.Y < b.Max.Y &&
		other.Min.Z > b.Min.Z && other.Max.Z < b.Max.Z {
		return Contains
	}
	return Intersects
}

// ContainsSphere classifies a sphere against the box. Contains requires the
// center to clear both faces by at least Radius on every axis, not merely a
// non-overlapping clamp distance.
func (b BoundingBox) ContainsSphere(s BoundingSphere) ContainmentType {
	clamped := vecClamp(s.Center, b.Min, b.Max)
	if s.Center.Sub(clamped).Norm2() > s.Radius*s.Radius {
		return Disjoint
	}
	if s.Center.X-b.Min.X >= s.Radius && b.Max.X-s.Center.X >= s.Radius &&
		s.Center.Y-b.Min.Y >= s.Radius && b.Max.Y-s.Center.Y >= s.Radius &&
		s.Center.Z-b.Min.Z >= s.Radius && b.Max.Z-s.Center.Z >= s.Radius {
		return Contains
	}
	return Intersects
}

// ContainsFrustum classifies a frustum against the box. The only error
// condition is a malformed frustum.
func (b BoundingBox) ContainsFrustum(f *BoundingFrustum) (ContainmentType, error) {
	if err := f.validate(); err != nil {
		return Disjoint, err
	}
	if !f.IntersectsBox(b) {
		return Disjoint, nil
	}
	for _, corner := range f.corners {
		if b.ContainsPoint(corner) == Disjoint {
			return Intersects, nil
		}
	}
	return Contains, nil
}

// IntersectsBox reports whether the boxes overlap, boundary contact included.
func (b BoundingBox) IntersectsBox(other BoundingBox) bool {
	return other.Min.X <= b.Max.X && other.Max.X >= b.Min.X &&
		other.Min.Y <= b.Max.Y && other.Max.Y >= b.Min.Y &&
		other.Min.Z <= b.Max.Z && other.Max.Z >= b.Min.Z
}

// IntersectsSphere reports whether the sphere overlaps the box, boundary
// contact included.
func (b BoundingBox) IntersectsSphere(s BoundingSphere) bool {
	clamped := vecClamp(s.Center, b.Min, b.Max)
	return s.Center.Sub(clamped).Norm2() <= s.Radius*s.Radius
}

// SupportMapping returns the corner of the box furthest along the given
// direction, the box's GJK support function.
func (b BoundingBox) SupportMapping(direction r3.Vector) r3.Vector {
	support := b.Min
	if direction.X >= 0 {
		support.X = b.Max.X
	}
	if direction.Y >= 0 {
		support.Y = b.Max.Y
	}
	if direction.Z >= 0 {
		support.Z = b.Max.Z
	}
	return support
}

// Corners returns the 8 vertices of the box in a fixed order: the Max.Y face
// first, then the Min.Y face, each traversed (Min.X, Max.Z), (Max.X, Max.Z),
// (Max.X, Min.Z), (Min.X, Min.Z).
func (b BoundingBox) Corners() [numBoxCorners]r3.Vector {
	return [numBoxCorners]r3.Vector{
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
	}
}

// CornersInto writes the 8 corners into buf starting at start, in the same
// order as Corners. It fails fast on a nil or undersized buffer or an
// out-of-range start index.
func (b BoundingBox) CornersInto(buf []r3.Vector, start int) error {
	if buf == nil || start < 0 || len(buf)-start < numBoxCorners {
		return newBadCornerBufferError(len(buf), start)
	}
	corners := b.Corners()
	copy(buf[start:], corners[:])
	return nil
}
