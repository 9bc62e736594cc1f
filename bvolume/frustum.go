package bvolume

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

const (
	numFrustumPlanes  = 6
	numFrustumCorners = 8
)

// Corners of the normalized device coordinate cube, near face then far face,
// each traversed (left, top), (right, top), (right, bottom), (left, bottom).
var ndcCorners = [numFrustumCorners]mgl64.Vec3{
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{-1, -1, -1},
	{-1, 1, 1},
	{1, 1, 1},
	{1, -1, 1},
	{-1, -1, 1},
}

// BoundingFrustum is a view frustum derived from a view-projection transform:
// 6 inward-facing planes and the 8 corner points where they meet. Planes and
// corners are computed together at construction and never updated separately,
// keeping the two arrays mutually consistent. The zero value is malformed and
// rejected with ErrMalformedFrustum by every query that consumes it.
type BoundingFrustum struct {
	planes  []Plane
	corners []r3.Vector
}

// NewBoundingFrustum derives a frustum from a view-projection transform. The
// planes come from the Gribb/Hartmann row combinations of the matrix and the
// corners from pushing the NDC cube through its inverse; a singular transform
// is an error since no corner set exists for it.
//
// Plane order is near, far, left, right, top, bottom. Corner order is the near
// quad then the far quad, each traversed (left, top), (right, top),
// (right, bottom), (left, bottom).
func NewBoundingFrustum(viewProj mgl64.Mat4) (*BoundingFrustum, error) {
	if viewProj.Det() == 0 {
		return nil, newSingularTransformError()
	}

	rows := [4]mgl64.Vec4{viewProj.Row(0), viewProj.Row(1), viewProj.Row(2), viewProj.Row(3)}
	planes := []Plane{
		NewPlaneFromVector4(rows[3].Add(rows[2])).Normalized(), // near
		NewPlaneFromVector4(rows[3].Sub(rows[2])).Normalized(), // far
		NewPlaneFromVector4(rows[3].Add(rows[0])).Normalized(), // left
		NewPlaneFromVector4(rows[3].Sub(rows[0])).Normalized(), // right
		NewPlaneFromVector4(rows[3].Sub(rows[1])).Normalized(), // top
		NewPlaneFromVector4(rows[3].Add(rows[1])).Normalized(), // bottom
	}

	inv := viewProj.Inv()
	corners := make([]r3.Vector, numFrustumCorners)
	for i, ndc := range ndcCorners {
		world := mgl64.TransformCoordinate(ndc, inv)
		corners[i] = r3.Vector{X: world.X(), Y: world.Y(), Z: world.Z()}
	}

	return &BoundingFrustum{planes: planes, corners: corners}, nil
}

// validate rejects frustums without exactly 6 planes and 8 corners, which
// covers nil and zero-value frustums.
func (f *BoundingFrustum) validate() error {
	if f == nil || len(f.planes) != numFrustumPlanes || len(f.corners) != numFrustumCorners {
		return ErrMalformedFrustum
	}
	return nil
}

// Planes returns a copy of the frustum's 6 inward-facing planes, in near, far,
// left, right, top, bottom order.
func (f *BoundingFrustum) Planes() [numFrustumPlanes]Plane {
	var planes [numFrustumPlanes]Plane
	copy(planes[:], f.planes)
	return planes
}

// Corners returns a copy of the frustum's 8 corners, near quad then far quad.
func (f *BoundingFrustum) Corners() [numFrustumCorners]r3.Vector {
	var corners [numFrustumCorners]r3.Vector
	copy(corners[:], f.corners)
	return corners
}

// ContainsPoint classifies a point against the frustum: Contains strictly
// inside all 6 planes, Intersects within DistanceThreshold of a plane,
// Disjoint outside.
// A malformed frustum contains nothing.
func (f *BoundingFrustum) ContainsPoint(pt r3.Vector) ContainmentType {
	if f.validate() != nil {
		return Disjoint
	}
	result := Contains
	for _, p := range f.planes {
		signed := p.DotCoordinate(pt)
		if signed < -DistanceThreshold {
			return Disjoint
		}
		if signed <= DistanceThreshold {
			result = Intersects
		}
	}
	return result
}

// IntersectsBox reports whether the box overlaps the frustum, by testing the
// box's support point against each plane: if even the corner furthest along a
// plane's normal is behind that plane, the box is fully outside.
// A malformed frustum intersects nothing.
func (f *BoundingFrustum) IntersectsBox(b BoundingBox) bool {
	if f.validate() != nil {
		return false
	}
	for _, p := range f.planes {
		if p.DotCoordinate(b.SupportMapping(p.Normal)) < 0 {
			return false
		}
	}
	return true
}
