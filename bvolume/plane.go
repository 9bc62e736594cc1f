package bvolume

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Plane is the set of points P satisfying dot(Normal, P) + Distance = 0.
// Normal should be unit length for the distance-based classifications to be
// meaningful; Normalized rescales both fields consistently.
type Plane struct {
	Normal   r3.Vector
	Distance float64
}

// NewPlane instantiates a new Plane from a normal and a signed offset along it.
func NewPlane(normal r3.Vector, distance float64) Plane {
	return Plane{Normal: normal, Distance: distance}
}

// NewPlaneFromPoints instantiates the plane through three points, with the
// normal taken from the cross product of the two edge vectors out of a.
func NewPlaneFromPoints(a, b, c r3.Vector) Plane {
	normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: normal, Distance: -normal.Dot(a)}
}

// NewPlaneFromVector4 instantiates a plane from a homogeneous vector, xyz as
// the normal and w as the distance.
func NewPlaneFromVector4(v mgl64.Vec4) Plane {
	return Plane{Normal: r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}, Distance: v.W()}
}

// Normalized returns the plane rescaled so its normal is unit length. A plane
// whose normal is already unit length within tolerance, or whose normal is
// exactly zero, is returned unchanged; a zero normal is deliberately a no-op
// rather than a source of NaNs.
func (p Plane) Normalized() Plane {
	norm2 := p.Normal.Norm2()
	if norm2 == 0 || math.Abs(norm2-1) < unitLengthEpsilon {
		return p
	}
	inv := 1 / math.Sqrt(norm2)
	return Plane{Normal: p.Normal.Mul(inv), Distance: p.Distance * inv}
}

// Dot evaluates the homogeneous plane equation against a 4-component vector.
func (p Plane) Dot(v mgl64.Vec4) float64 {
	return p.Normal.X*v.X() + p.Normal.Y*v.Y() + p.Normal.Z*v.Z() + p.Distance*v.W()
}

// DotNormal returns the dot product of the plane normal with a direction.
func (p Plane) DotNormal(v r3.Vector) float64 {
	return p.Normal.Dot(v)
}

// DotCoordinate returns the signed distance of a point from the plane,
// positive on the normal's side.
func (p Plane) DotCoordinate(pt r3.Vector) float64 {
	return p.Normal.Dot(pt) + p.Distance
}

// IntersectRay returns the point where the ray's supporting line crosses the
// plane. Unlike Ray.IntersectsPlane this is the raw solver: it does not guard
// against rays parallel to the plane, for which the division degenerates and
// NaN or Inf components propagate into the result.
func (p Plane) IntersectRay(r Ray) r3.Vector {
	t := (-p.Distance - p.Normal.Dot(r.Position)) / p.Normal.Dot(r.Direction)
	return r.Position.Add(r.Direction.Mul(t))
}

// IntersectPlane returns the line of intersection of two planes as a Ray.
// Parallel planes produce a zero direction and a division by zero; the NaN or
// Inf components propagate into the result rather than raising an error.
func (p Plane) IntersectPlane(other Plane) Ray {
	dir := p.Normal.Cross(other.Normal)
	pos := other.Normal.Cross(dir).Mul(-p.Distance).
		Add(dir.Cross(p.Normal).Mul(-other.Distance)).
		Mul(1 / dir.Norm2())
	return Ray{Position: pos, Direction: dir}
}

// IntersectsBox classifies an axis-aligned box against the plane using the
// box's two extreme corners along the normal.
func (p Plane) IntersectsBox(b BoundingBox) PlaneIntersectionType {
	var near, far r3.Vector
	if p.Normal.X >= 0 {
		near.X, far.X = b.Min.X, b.Max.X
	} else {
		near.X, far.X = b.Max.X, b.Min.X
	}
	if p.Normal.Y >= 0 {
		near.Y, far.Y = b.Min.Y, b.Max.Y
	} else {
		near.Y, far.Y = b.Max.Y, b.Min.Y
	}
	if p.Normal.Z >= 0 {
		near.Z, far.Z = b.Min.Z, b.Max.Z
	} else {
		near.Z, far.Z = b.Max.Z, b.Min.Z
	}
	if p.DotCoordinate(near) > 0 {
		return Front
	}
	if p.DotCoordinate(far) < 0 {
		return Back
	}
	return Intersecting
}

// IntersectsSphere classifies a sphere against the plane by the signed
// distance of its center.
func (p Plane) IntersectsSphere(s BoundingSphere) PlaneIntersectionType {
	dist := p.DotCoordinate(s.Center)
	if dist > s.Radius {
		return Front
	}
	if dist < -s.Radius {
		return Back
	}
	return Intersecting
}

// IntersectsFrustum classifies a frustum against the plane by the signs of its
// corner distances, short-circuiting as soon as corners appear on both sides.
func (p Plane) IntersectsFrustum(f *BoundingFrustum) (PlaneIntersectionType, error) {
	if err := f.validate(); err != nil {
		return Intersecting, err
	}
	var front, back bool
	for _, corner := range f.corners {
		if p.DotCoordinate(corner) >= 0 {
			front = true
		} else {
			back = true
		}
		if front && back {
			return Intersecting, nil
		}
	}
	if front {
		return Front, nil
	}
	return Back, nil
}
