package bvolume

import (
	"math"

	"github.com/golang/geo/r3"
)

// BoundingSphere is a sphere described by its center and a non-negative
// radius.
type BoundingSphere struct {
	Center r3.Vector
	Radius float64
}

// NewBoundingSphere instantiates a new BoundingSphere. A negative radius is an
// error; a zero radius is allowed and describes a point.
func NewBoundingSphere(center r3.Vector, radius float64) (BoundingSphere, error) {
	if radius < 0 {
		return BoundingSphere{}, newBadRadiusError(radius)
	}
	return BoundingSphere{Center: center, Radius: radius}, nil
}

// NewBoundingSphereFromBox instantiates the smallest sphere enclosing a box:
// centered at the box center with the half-diagonal as radius.
func NewBoundingSphereFromBox(b BoundingBox) BoundingSphere {
	center := b.Center()
	return BoundingSphere{Center: center, Radius: b.Max.Sub(center).Norm()}
}

// NewBoundingSphereFromPoints instantiates a sphere enclosing all given
// points, centered at their centroid. The result encloses every input point
// but is not guaranteed to be the minimal enclosing sphere. An empty sequence
// is an error.
func NewBoundingSphereFromPoints(pts []r3.Vector) (BoundingSphere, error) {
	if len(pts) == 0 {
		return BoundingSphere{}, ErrNoPoints
	}
	var center r3.Vector
	for _, pt := range pts {
		center = center.Add(pt)
	}
	center = center.Mul(1 / float64(len(pts)))

	radius2 := 0.0
	for _, pt := range pts {
		if d2 := pt.Sub(center).Norm2(); d2 > radius2 {
			radius2 = d2
		}
	}
	return BoundingSphere{Center: center, Radius: math.Sqrt(radius2)}, nil
}
